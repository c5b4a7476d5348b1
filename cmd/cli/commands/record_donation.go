package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// RecordDonationCmd creates the recordDonation command
func RecordDonationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordDonation <donor_name> <blood_group>",
		Short: "Record a blood donation and mint its credit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeFlag, _ := cmd.Flags().GetString("type")
			linked, _ := cmd.Flags().GetString("linked-hrtid")
			appointmentID, _ := cmd.Flags().GetString("appointment")

			donationType := model.DonationStandard
			if typeFlag == "linked" || linked != "" {
				donationType = model.DonationLinked
			}

			app.Logger.Debug("recordDonation command",
				zap.String("donor", args[0]),
				zap.String("blood_group", args[1]),
				zap.String("linked_hrtid", linked),
				zap.String("appointment_rtid", appointmentID))

			donation, err := services.RecordDonation(app.Ctx, app.Ledger, app.Logger, services.RecordDonationInput{
				DonorName:       args[0],
				BloodGroup:      model.BloodGroup(args[1]),
				DonationType:    donationType,
				LinkedRequestID: normalizeToken(linked),
				AppointmentID:   normalizeToken(appointmentID),
			})
			if err != nil {
				return describeLinkedTokenError(err)
			}

			printDonationReceipt(donation)
			return nil
		},
	}

	cmd.Flags().String("type", "standard", "Donation type: standard or linked")
	cmd.Flags().String("linked-hrtid", "", "Link this donation to a patient request (H-RTID)")
	cmd.Flags().String("appointment", "", "Appointment RTID this donation was checked in from")

	return cmd
}

// describeLinkedTokenError rewords token format failures for the operator
func describeLinkedTokenError(err error) error {
	var vErr *rtid.ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	switch vErr.Reason {
	case rtid.ReasonInvalidDate:
		return fmt.Errorf("invalid date in H-RTID, check that day/month/year are correct")
	case rtid.ReasonInvalidYear:
		return fmt.Errorf("H-RTID year out of allowed range")
	default:
		return fmt.Errorf("invalid H-RTID format, expected H-RTID-ddmmyyyy-XXXX")
	}
}

func printDonationReceipt(donation *model.Donation) {
	fmt.Printf("\n✓ Donation registered successfully!\n\n")
	fmt.Printf("Donor:       %s\n", donation.DonorName)
	fmt.Printf("Blood Group: %s\n", donation.BloodGroup)
	fmt.Printf("D-RTID:      %s\n", donation.ID)
	fmt.Printf("OTP:         %s\n", donation.OTP)
	if donation.LinkedRequestID != "" {
		fmt.Printf("Linked H-RTID: %s\n", donation.LinkedRequestID)
	}
	fmt.Println()
	printTokenQR(donation.ID)
}
