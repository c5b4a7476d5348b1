package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DonationsCmd creates the donations command
func DonationsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "donations",
		Short: "List donation credits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			donations, err := app.Ledger.GetDonations(app.Ctx)
			if err != nil {
				return err
			}

			if len(donations) == 0 {
				fmt.Println("\nNo donations recorded yet.")
				return nil
			}

			// OTPs stay hidden; they are only shown once, on the receipt
			fmt.Printf("\nFound %d donation(s):\n\n", len(donations))
			for _, d := range donations {
				linked := d.LinkedRequestID
				if linked == "" {
					linked = "-"
				}
				fmt.Printf("- %s  %s (%s)  %s  linked: %s  [%s]\n",
					d.ID, d.DonorName, d.BloodGroup, d.DonationType, linked, d.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
