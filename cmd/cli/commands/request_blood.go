package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// RequestBloodCmd creates the requestBlood command
func RequestBloodCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "requestBlood <patient_name> <blood_group> <units> <city> <required_date> <required_time>",
		Short: "Submit a patient blood request",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Units below one, or unparseable, default to one
			units, err := strconv.Atoi(args[2])
			if err != nil {
				units = 1
			}

			app.Logger.Debug("requestBlood command",
				zap.String("patient", args[0]),
				zap.String("blood_group", args[1]),
				zap.Int("units", units))

			request, err := services.SubmitBloodRequest(app.Ctx, app.Ledger, app.Logger, services.SubmitBloodRequestInput{
				PatientName:  args[0],
				BloodGroup:   model.BloodGroup(args[1]),
				Units:        units,
				City:         args[3],
				RequiredDate: args[4],
				RequiredTime: args[5],
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Request submitted successfully!\n\n")
			fmt.Printf("Patient:     %s\n", request.PatientName)
			fmt.Printf("Blood Group: %s\n", request.BloodGroup)
			fmt.Printf("Units:       %d\n", request.Units)
			fmt.Printf("H-RTID:      %s\n\n", request.ID)
			printTokenQR(request.ID)

			return nil
		},
	}
}
