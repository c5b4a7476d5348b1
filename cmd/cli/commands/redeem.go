package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// RedeemCmd creates the redeem command. Redemption is a one-way debit: the
// attempt is validated first, then applied only after explicit confirmation.
func RedeemCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <d_rtid> <otp>",
		Short: "Verify a donation credit and redeem it (requires confirmation)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			donationID := normalizeToken(args[0])
			otp := args[1]

			app.Logger.Debug("redeem command", zap.String("d_rtid", donationID))

			pending, err := services.PrepareRedemption(app.Ctx, app.Ledger, app.Logger, donationID, otp)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			donation := pending.Donation()
			prompt := fmt.Sprintf("Redeem the %s credit donated by %s? This finalizes the transaction and updates inventory.",
				donation.BloodGroup, donation.DonorName)
			if !confirm(prompt) {
				fmt.Println("\nRedemption cancelled. Nothing was changed.")
				return nil
			}

			redemption, err := services.CommitRedemption(app.Ctx, app.Ledger, app.Logger, pending)
			if err != nil {
				return fmt.Errorf("redemption failed: %w", err)
			}

			fmt.Printf("\n✓ Redemption successful!\n\n")
			fmt.Printf("D-RTID:      %s\n", redemption.DonationID)
			fmt.Printf("Blood Group: %s\n", redemption.BloodGroup)
			fmt.Printf("Redeemed at: %s\n\n", redemption.RedemptionLocation)

			return nil
		},
	}
}
