package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// RegisterAppointmentInput carries the appointment registration form fields
type RegisterAppointmentInput struct {
	DonorName  string           `validate:"required"`
	BloodGroup model.BloodGroup `validate:"required"`
	Date       string           `validate:"required,datetime=2006-01-02"`
	Time       string           `validate:"required"`
}

// RegisterAppointment creates an upcoming appointment with a fresh
// D-RTID-shaped identifier.
func RegisterAppointment(ctx context.Context, store ledger.AppointmentStore, logger *zap.Logger, in RegisterAppointmentInput) (*model.Appointment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid appointment input: %w", err)
	}
	if !in.BloodGroup.IsValid() {
		return nil, fmt.Errorf("unknown blood group %q", in.BloodGroup)
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse appointment date: %w", err)
	}

	appointment := &model.Appointment{
		ID:         rtid.GenerateUnique(rtid.PrefixDonation, time.Now(), store.TokenExists),
		DonorName:  in.DonorName,
		BloodGroup: in.BloodGroup,
		Date:       date,
		Time:       in.Time,
		Status:     model.AppointmentUpcoming,
	}

	logger.Info("Registering appointment",
		zap.String("appointment_rtid", appointment.ID),
		zap.String("donor", appointment.DonorName),
		zap.String("blood_group", string(appointment.BloodGroup)))

	if err := store.InsertAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	notify(store, fmt.Sprintf("New appointment registered: %s (%s)", in.DonorName, in.BloodGroup), model.NotifyInfo)

	return appointment, nil
}
