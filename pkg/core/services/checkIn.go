package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// CheckInAppointment resolves an upcoming appointment so a donation flow can
// be pre-populated with its donor details. It mutates nothing; the state
// change happens later in RecordDonation.
func CheckInAppointment(ctx context.Context, store ledger.AppointmentStore, logger *zap.Logger, appointmentID string) (*model.Appointment, error) {
	appointment, err := store.FindAppointment(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up appointment %s: %w", appointmentID, err)
	}
	if appointment.Status != model.AppointmentUpcoming {
		return nil, fmt.Errorf("appointment %s: %w", appointmentID, model.ErrAppointmentClosed)
	}

	logger.Info("Appointment check-in",
		zap.String("appointment_rtid", appointment.ID),
		zap.String("donor", appointment.DonorName))

	return appointment, nil
}
