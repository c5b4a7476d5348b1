package services

import (
	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

const testLocation = "AIIMS Blood Bank, Delhi"

// testLedger returns a ledger seeded with the canonical starting inventory
func testLedger() *ledger.Ledger {
	return ledger.New(testLocation, model.Inventory{
		model.OPositive:  {Total: 45, Available: 38},
		model.ONegative:  {Total: 12, Available: 8},
		model.APositive:  {Total: 30, Available: 25},
		model.ANegative:  {Total: 10, Available: 6},
		model.BPositive:  {Total: 28, Available: 22},
		model.BNegative:  {Total: 8, Available: 4},
		model.ABPositive: {Total: 15, Available: 12},
		model.ABNegative: {Total: 5, Available: 2},
	})
}
