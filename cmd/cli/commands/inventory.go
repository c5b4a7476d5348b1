package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

// InventoryCmd creates the inventory command
func InventoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Show per-group stock counters and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventory, err := app.Ledger.Inventory(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nBlood Inventory - %s\n\n", app.Ledger.Location())
			fmt.Printf("  %-6s %-10s %-10s %s\n", "Group", "Available", "Total", "Status")
			for _, group := range model.BloodGroups {
				item := inventory[group]
				level := model.StockStatus(item.Available, item.Total)
				fmt.Printf("  %-6s %-10d %-10d %s %s\n", group, item.Available, item.Total, stockEmoji(level), level.Label())
			}
			fmt.Println()

			return nil
		},
	}
}
