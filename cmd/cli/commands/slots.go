package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/raktsetu/bloodbank-cli/pkg/core/services"
)

// SlotsCmd creates the slots command
func SlotsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slots [count]",
		Short: "Suggest upcoming bookable appointment slots (default 7 days)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 7
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("count must be a number: %w", err)
				}
				count = parsed
			}

			now := time.Now().UTC()
			from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			dates, err := services.SuggestAppointmentSlots(app.Cfg, app.Logger, from, count)
			if err != nil {
				return err
			}

			fmt.Printf("\nUpcoming donation days at %s:\n\n", app.Cfg.Location)
			for i, date := range dates {
				fmt.Printf("  %2d. %s  (slots: %v)\n", i+1, date.Format("2006-01-02 (Monday)"), app.Cfg.SlotTimes)
			}
			fmt.Println()

			return nil
		},
	}
}
