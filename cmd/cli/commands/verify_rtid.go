package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// VerifyRtidCmd creates the verifyRtid command
func VerifyRtidCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verifyRtid <rtid>",
		Short: "Look up the details behind a D-RTID or H-RTID token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := normalizeToken(args[0])

			app.Logger.Debug("verifyRtid command", zap.String("rtid", token))

			details, err := services.VerifyToken(app.Ctx, app.Ledger, app.Logger, token)
			if err != nil {
				return err
			}

			switch details.Kind {
			case services.TokenDonation:
				donation := details.Donation
				linked := donation.LinkedRequestID
				if linked == "" {
					linked = "N/A (Standard Donation)"
				}
				fmt.Printf("\n✓ Authentic Donor RTID (D-RTID)\n\n")
				fmt.Printf("Donor Name:          %s\n", donation.DonorName)
				fmt.Printf("Blood Group:         %s\n", donation.BloodGroup)
				fmt.Printf("Donation Type:       %s\n", donation.DonationType)
				fmt.Printf("Donation Location:   %s\n", donation.Location)
				fmt.Printf("Linked Patient RTID: %s\n", linked)
				fmt.Printf("Credit Status:       %s\n\n", donation.Status)
			case services.TokenRequest:
				request := details.Request
				fmt.Printf("\n✓ Authentic Patient Request (H-RTID)\n\n")
				fmt.Printf("Patient Name:      %s\n", request.PatientName)
				fmt.Printf("Blood Group:       %s\n", request.BloodGroup)
				fmt.Printf("Units Required:    %d\n", request.Units)
				fmt.Printf("Hospital Location: %s\n", request.City)
				fmt.Printf("Request Status:    %s\n\n", request.Status)
			}

			return nil
		},
	}
}
