package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// RecordDonationInput carries the donation registration form fields.
// AppointmentID is set when the donation comes from an appointment check-in.
type RecordDonationInput struct {
	DonorName       string             `validate:"required"`
	BloodGroup      model.BloodGroup   `validate:"required"`
	DonationType    model.DonationType `validate:"required"`
	LinkedRequestID string
	AppointmentID   string
}

// RecordDonation mints a new AVAILABLE donation credit with a fresh D-RTID
// and OTP. For H-RTID-linked donations the linked token must pass format
// validation before any state changes. Donations from an appointment
// check-in add one unit to the blood group's counters and complete the
// appointment.
func RecordDonation(ctx context.Context, store ledger.DonationStore, logger *zap.Logger, in RecordDonationInput) (*model.Donation, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid donation input: %w", err)
	}
	if !in.BloodGroup.IsValid() {
		return nil, fmt.Errorf("unknown blood group %q", in.BloodGroup)
	}
	if !in.DonationType.IsValid() {
		return nil, fmt.Errorf("unknown donation type %q", in.DonationType)
	}

	linkedID := ""
	if in.DonationType == model.DonationLinked && in.LinkedRequestID != "" {
		if err := rtid.Validate(in.LinkedRequestID); err != nil {
			return nil, fmt.Errorf("invalid linked h-rtid: %w", err)
		}
		linkedID = in.LinkedRequestID
	}

	now := time.Now()
	donation := &model.Donation{
		ID:              rtid.GenerateUnique(rtid.PrefixDonation, now, store.TokenExists),
		OTP:             rtid.GenerateOTP(),
		BloodGroup:      in.BloodGroup,
		DonorName:       in.DonorName,
		DonationType:    in.DonationType,
		LinkedRequestID: linkedID,
		Status:          model.DonationAvailable,
		Location:        store.Location(),
		Timestamp:       now,
	}

	logger.Info("Recording donation",
		zap.String("d_rtid", donation.ID),
		zap.String("donor", donation.DonorName),
		zap.String("blood_group", string(donation.BloodGroup)),
		zap.String("donation_type", string(donation.DonationType)),
		zap.String("appointment_rtid", in.AppointmentID))

	if err := store.InsertDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to insert donation: %w", err)
	}

	if in.AppointmentID != "" {
		if err := store.AdjustInventory(ctx, in.BloodGroup, 1, 1); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
		if err := store.CompleteAppointment(ctx, in.AppointmentID); err != nil {
			if !errors.Is(err, model.ErrAppointmentNotFound) {
				return nil, fmt.Errorf("failed to complete appointment: %w", err)
			}
			logger.Warn("Donation referenced an unknown appointment", zap.String("appointment_rtid", in.AppointmentID))
		}
	}

	notify(store, fmt.Sprintf("New donation: %s by %s", in.BloodGroup, in.DonorName), model.NotifySuccess)

	return donation, nil
}
