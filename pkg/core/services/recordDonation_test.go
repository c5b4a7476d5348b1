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

func TestRecordDonation_Standard(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:    "Rahul Verma",
		BloodGroup:   model.OPositive,
		DonationType: model.DonationStandard,
	})
	require.NoError(t, err)

	assert.NoError(t, rtid.Validate(donation.ID))
	assert.True(t, rtid.IsDonationToken(donation.ID))
	assert.Len(t, donation.OTP, 6)
	assert.Equal(t, model.DonationAvailable, donation.Status)
	assert.Equal(t, testLocation, donation.Location)
	assert.Empty(t, donation.LinkedRequestID)

	// A walk-in donation leaves the counters alone
	inv, err := store.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.InventoryItem{Total: 45, Available: 38}, inv[model.OPositive])

	feed, err := store.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, model.NotifySuccess, feed[0].Category)
}

func TestRecordDonation_LinkedToRequest(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:       "Priya Sharma",
		BloodGroup:      model.BNegative,
		DonationType:    model.DonationLinked,
		LinkedRequestID: "H-RTID-15082025-AB12",
	})
	require.NoError(t, err)
	assert.Equal(t, "H-RTID-15082025-AB12", donation.LinkedRequestID)
	assert.Equal(t, model.DonationLinked, donation.DonationType)
}

func TestRecordDonation_InvalidLinkedToken(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name   string
		token  string
		reason rtid.Reason
	}{
		{"garbage", "not-a-token", rtid.ReasonPattern},
		{"impossible date", "H-RTID-31022024-AB12", rtid.ReasonInvalidDate},
		{"year out of range", "H-RTID-15111999-AB12", rtid.ReasonInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RecordDonation(ctx, store, logger, RecordDonationInput{
				DonorName:       "Priya Sharma",
				BloodGroup:      model.BNegative,
				DonationType:    model.DonationLinked,
				LinkedRequestID: tt.token,
			})
			var vErr *rtid.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.reason, vErr.Reason)
		})
	}

	// Rejected submissions never reach the ledger
	donations, err := store.GetDonations(ctx)
	require.NoError(t, err)
	assert.Empty(t, donations)
}

func TestRecordDonation_FromAppointment(t *testing.T) {
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

	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:     appointment.DonorName,
		BloodGroup:    appointment.BloodGroup,
		DonationType:  model.DonationStandard,
		AppointmentID: appointment.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, donation)

	// One unit enters the counters and the appointment closes
	inv, err := store.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.InventoryItem{Total: 46, Available: 39}, inv[model.OPositive])

	stored, err := store.FindAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentCompleted, stored.Status)
}

func TestRecordDonation_UnknownAppointment(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	// The donation still records; the dangling appointment id is only logged
	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:     "Rahul Verma",
		BloodGroup:    model.OPositive,
		DonationType:  model.DonationStandard,
		AppointmentID: "D-RTID-01012025-NONE",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DonationAvailable, donation.Status)

	inv, err := store.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.InventoryItem{Total: 46, Available: 39}, inv[model.OPositive])
}

func TestRecordDonation_InvalidInput(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name  string
		input RecordDonationInput
	}{
		{"missing donor name", RecordDonationInput{BloodGroup: model.OPositive, DonationType: model.DonationStandard}},
		{"unknown blood group", RecordDonationInput{DonorName: "Rahul Verma", BloodGroup: "Z-", DonationType: model.DonationStandard}},
		{"unknown donation type", RecordDonationInput{DonorName: "Rahul Verma", BloodGroup: model.OPositive, DonationType: "Apheresis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation, err := RecordDonation(ctx, store, logger, tt.input)
			assert.Error(t, err)
			assert.Nil(t, donation)
		})
	}
}
