package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RedemptionsCmd creates the redemptions command
func RedemptionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "redemptions",
		Short: "List redeemed credits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			redemptions, err := app.Ledger.GetRedemptions(app.Ctx)
			if err != nil {
				return err
			}

			if len(redemptions) == 0 {
				fmt.Println("\nNo credits redeemed yet.")
				return nil
			}

			fmt.Printf("\nFound %d redemption(s):\n\n", len(redemptions))
			for _, r := range redemptions {
				linked := r.LinkedRequestID
				if linked == "" {
					linked = "-"
				}
				fmt.Printf("- %s  %s  %s → %s  linked: %s  %s\n",
					r.DonationID, r.BloodGroup, r.DonationLocation, r.RedemptionLocation,
					linked, r.Timestamp.Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}
}
