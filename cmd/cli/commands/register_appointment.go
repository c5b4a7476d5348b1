package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// RegisterAppointmentCmd creates the registerAppointment command
func RegisterAppointmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "registerAppointment <donor_name> <blood_group> <date> <time>",
		Short: "Register a donation appointment (date as YYYY-MM-DD)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("registerAppointment command", zap.Strings("args", args))

			appointment, err := services.RegisterAppointment(app.Ctx, app.Ledger, app.Logger, services.RegisterAppointmentInput{
				DonorName:  args[0],
				BloodGroup: model.BloodGroup(args[1]),
				Date:       args[2],
				Time:       args[3],
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Appointment registered!\n\n")
			fmt.Printf("Appointment RTID: %s\n", appointment.ID)
			fmt.Printf("Donor:            %s\n", appointment.DonorName)
			fmt.Printf("Blood Group:      %s\n", appointment.BloodGroup)
			fmt.Printf("Scheduled:        %s at %s\n\n", appointment.Date.Format("2006-01-02"), appointment.Time)

			return nil
		},
	}
}
