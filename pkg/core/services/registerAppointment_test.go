package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
)

func TestRegisterAppointment(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	appointment, err := RegisterAppointment(ctx, store, logger, RegisterAppointmentInput{
		DonorName:  "Rahul Verma",
		BloodGroup: model.OPositive,
		Date:       "2025-09-15",
		Time:       "10:30 AM",
	})
	require.NoError(t, err)

	assert.NoError(t, rtid.Validate(appointment.ID))
	assert.True(t, rtid.IsDonationToken(appointment.ID))
	assert.Equal(t, "Rahul Verma", appointment.DonorName)
	assert.Equal(t, model.AppointmentUpcoming, appointment.Status)
	assert.Equal(t, "2025-09-15", appointment.Date.Format("2006-01-02"))

	stored, err := store.FindAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, stored.ID)

	feed, err := store.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, model.NotifyInfo, feed[0].Category)
	assert.Contains(t, feed[0].Message, "Rahul Verma")
}

func TestRegisterAppointment_InvalidInput(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterAppointmentInput
	}{
		{"missing donor name", RegisterAppointmentInput{BloodGroup: model.OPositive, Date: "2025-09-15", Time: "10:30 AM"}},
		{"missing blood group", RegisterAppointmentInput{DonorName: "Rahul Verma", Date: "2025-09-15", Time: "10:30 AM"}},
		{"unknown blood group", RegisterAppointmentInput{DonorName: "Rahul Verma", BloodGroup: "C+", Date: "2025-09-15", Time: "10:30 AM"}},
		{"malformed date", RegisterAppointmentInput{DonorName: "Rahul Verma", BloodGroup: model.OPositive, Date: "15/09/2025", Time: "10:30 AM"}},
		{"missing time", RegisterAppointmentInput{DonorName: "Rahul Verma", BloodGroup: model.OPositive, Date: "2025-09-15"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment, err := RegisterAppointment(ctx, store, logger, tt.input)
			assert.Error(t, err)
			assert.Nil(t, appointment)
		})
	}

	appointments, err := store.GetAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments, "rejected registrations must not change state")
}

func TestCheckInAppointment(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	registered, err := RegisterAppointment(ctx, store, logger, RegisterAppointmentInput{
		DonorName:  "Priya Sharma",
		BloodGroup: model.APositive,
		Date:       "2025-09-16",
		Time:       "02:00 PM",
	})
	require.NoError(t, err)

	appointment, err := CheckInAppointment(ctx, store, logger, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, appointment.ID)

	// Check-in itself mutates nothing
	stored, err := store.FindAppointment(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentUpcoming, stored.Status)

	_, err = CheckInAppointment(ctx, store, logger, "D-RTID-01012025-NONE")
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
}

func TestCheckInAppointment_CompletedAppointment(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	registered, err := RegisterAppointment(ctx, store, logger, RegisterAppointmentInput{
		DonorName:  "Priya Sharma",
		BloodGroup: model.APositive,
		Date:       "2025-09-16",
		Time:       "02:00 PM",
	})
	require.NoError(t, err)
	require.NoError(t, store.CompleteAppointment(ctx, registered.ID))

	_, err = CheckInAppointment(ctx, store, logger, registered.ID)
	assert.ErrorIs(t, err, model.ErrAppointmentClosed)
}
