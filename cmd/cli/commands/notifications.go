package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NotificationsCmd creates the notifications command (the dashboard drawer)
func NotificationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show the notification feed, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markRead, _ := cmd.Flags().GetBool("mark-read")

			notifications, err := app.Ledger.GetNotifications(app.Ctx)
			if err != nil {
				return err
			}

			if len(notifications) == 0 {
				fmt.Println("\nNo notifications.")
				return nil
			}

			fmt.Printf("\n🔔 Notifications (%d unread):\n\n", app.Ledger.UnreadNotifications())
			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "•"
				}
				fmt.Printf("%s %s %s  %s\n", marker, categoryIcon(n.Category), n.Timestamp.Format("15:04"), n.Message)
			}
			fmt.Println()

			if markRead {
				if err := app.Ledger.MarkNotificationsRead(app.Ctx); err != nil {
					return err
				}
				fmt.Println("All notifications marked as read.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("mark-read", false, "Mark all notifications as read after showing them")

	return cmd
}
