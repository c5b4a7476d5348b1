package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/cmd/cli/commands"
	"github.com/raktsetu/bloodbank-cli/internal/config"
	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
	"github.com/raktsetu/bloodbank-cli/pkg/utils/logging"
)

var (
	env  string
	demo bool
	app  *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bloodbank",
		Short: "Blood Bank CLI - Manage donations, credits, and requests",
		Long: `A terminal dashboard for a blood bank: donor appointments, donation
intake, blood requests, credit verification and redemption, and RTID lookup.
All ledger state is held in memory for the duration of the session.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "local", "Environment name (used for log file naming)")
	rootCmd.PersistentFlags().BoolVar(&demo, "demo", false, "Seed the ledger with sample appointments and notifications")

	rootCmd.AddCommand(commands.OverviewCmd(appRef()))
	rootCmd.AddCommand(commands.InventoryCmd(appRef()))
	rootCmd.AddCommand(commands.AppointmentsCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterAppointmentCmd(appRef()))
	rootCmd.AddCommand(commands.CheckInCmd(appRef()))
	rootCmd.AddCommand(commands.RecordDonationCmd(appRef()))
	rootCmd.AddCommand(commands.DonationsCmd(appRef()))
	rootCmd.AddCommand(commands.RequestBloodCmd(appRef()))
	rootCmd.AddCommand(commands.RequestsCmd(appRef()))
	rootCmd.AddCommand(commands.RedeemCmd(appRef()))
	rootCmd.AddCommand(commands.RedemptionsCmd(appRef()))
	rootCmd.AddCommand(commands.VerifyRtidCmd(appRef()))
	rootCmd.AddCommand(commands.NotificationsCmd(appRef()))
	rootCmd.AddCommand(commands.SlotsCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp fills
// it in. Commands hold the pointer; the fields are set during
// PersistentPreRunE.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, configuration, and the session ledger
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting blood bank session", zap.String("environment", env))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg
	app.Logger.Debug("Configuration loaded", zap.String("location", cfg.Location))

	app.Ledger = ledger.New(cfg.Location, cfg.Inventory())
	app.Logger.Info("Ledger initialized", zap.String("location", cfg.Location))

	if demo {
		seedDemoData(app)
	}

	return nil
}

// seedDemoData loads the sample appointments and notifications the dashboard
// starts with in demo mode
func seedDemoData(app *commands.AppContext) {
	now := time.Now()
	samples := []model.Appointment{
		{
			ID:         rtid.GenerateUnique(rtid.PrefixDonation, now, app.Ledger.TokenExists),
			DonorName:  "Rahul Verma",
			BloodGroup: model.OPositive,
			Date:       now,
			Time:       "10:30 AM",
			Status:     model.AppointmentUpcoming,
		},
		{
			ID:         rtid.GenerateUnique(rtid.PrefixDonation, now, app.Ledger.TokenExists),
			DonorName:  "Priya Sharma",
			BloodGroup: model.APositive,
			Date:       now,
			Time:       "02:00 PM",
			Status:     model.AppointmentUpcoming,
		},
	}
	for i := range samples {
		app.Ledger.InsertAppointment(app.Ctx, &samples[i])
	}

	app.Ledger.AddNotification(model.Notification{
		ID:        "demo-1",
		Message:   "New blood donation registered: O+ by Rahul Verma",
		Category:  model.NotifySuccess,
		Timestamp: now,
	})
	app.Ledger.AddNotification(model.Notification{
		ID:        "demo-2",
		Message:   "Low stock alert: AB- blood group is running low",
		Category:  model.NotifyWarning,
		Timestamp: now,
	})

	app.Logger.Info("Demo data seeded", zap.Int("appointments", len(samples)))
}
