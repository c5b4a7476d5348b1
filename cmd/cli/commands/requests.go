package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequestsCmd creates the requests command
func RequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "List patient blood requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := app.Ledger.GetRequests(app.Ctx)
			if err != nil {
				return err
			}

			if len(requests) == 0 {
				fmt.Println("\nNo blood requests submitted yet.")
				return nil
			}

			fmt.Printf("\nFound %d request(s):\n\n", len(requests))
			for _, r := range requests {
				fmt.Printf("- %s  %s (%s)  %d unit(s)  %s  needed %s %s  [%s]\n",
					r.ID, r.PatientName, r.BloodGroup, r.Units, r.City, r.RequiredDate, r.RequiredTime, r.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
