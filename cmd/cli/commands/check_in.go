package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// CheckInCmd creates the checkIn command. Checking in resolves an upcoming
// appointment, pre-populates the donation form with its donor details, and
// records the donation against it.
func CheckInCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkIn <appointment_rtid>",
		Short: "Check in an upcoming appointment and record its donation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID := normalizeToken(args[0])
			linked, _ := cmd.Flags().GetString("linked-hrtid")

			app.Logger.Debug("checkIn command", zap.String("appointment_rtid", appointmentID))

			appointment, err := services.CheckInAppointment(app.Ctx, app.Ledger, app.Logger, appointmentID)
			if err != nil {
				return err
			}

			fmt.Printf("\nChecking in %s (%s), appointment %s\n", appointment.DonorName, appointment.BloodGroup, appointment.ID)

			donationType := model.DonationStandard
			if linked != "" {
				donationType = model.DonationLinked
			}

			donation, err := services.RecordDonation(app.Ctx, app.Ledger, app.Logger, services.RecordDonationInput{
				DonorName:       appointment.DonorName,
				BloodGroup:      appointment.BloodGroup,
				DonationType:    donationType,
				LinkedRequestID: normalizeToken(linked),
				AppointmentID:   appointment.ID,
			})
			if err != nil {
				return describeLinkedTokenError(err)
			}

			printDonationReceipt(donation)
			return nil
		},
	}

	cmd.Flags().String("linked-hrtid", "", "Link this donation to a patient request (H-RTID)")

	return cmd
}
