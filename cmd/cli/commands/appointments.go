package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AppointmentsCmd creates the appointments command
func AppointmentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List donation appointments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appointments, err := app.Ledger.GetAppointments(app.Ctx)
			if err != nil {
				return err
			}

			if len(appointments) == 0 {
				fmt.Println("\nNo appointments registered yet.")
				return nil
			}

			fmt.Printf("\nFound %d appointment(s):\n\n", len(appointments))
			for _, a := range appointments {
				fmt.Printf("- %s  %s (%s)  %s %s  [%s]\n",
					a.ID, a.DonorName, a.BloodGroup, a.Date.Format("2006-01-02"), a.Time, a.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
