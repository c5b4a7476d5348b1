package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// OverviewCmd creates the overview command
func OverviewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show dashboard KPIs and a stock summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kpi, err := services.Overview(app.Ctx, app.Ledger, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n🩸 %s\n\n", app.Ledger.Location())
			fmt.Printf("Total Inventory:       %d units\n", kpi.TotalInventory)
			fmt.Printf("Available Units:       %d\n", kpi.AvailableUnits)
			fmt.Printf("Upcoming Appointments: %d\n", kpi.UpcomingAppointments)
			fmt.Printf("Total Donations:       %d\n", kpi.TotalDonations)
			fmt.Printf("Total Redemptions:     %d\n\n", kpi.TotalRedemptions)

			inventory, err := app.Ledger.Inventory(app.Ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Stock by Blood Group:\n")
			for _, group := range model.BloodGroups {
				item := inventory[group]
				level := model.StockStatus(item.Available, item.Total)
				fmt.Printf("  %-4s %2d/%2d  %s %s\n", group, item.Available, item.Total, stockEmoji(level), level.Label())
			}
			fmt.Println()

			return nil
		},
	}
}
