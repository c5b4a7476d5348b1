package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

func TestOverview_FreshLedger(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	kpi, err := Overview(ctx, store, logger)
	require.NoError(t, err)
	assert.Equal(t, 153, kpi.TotalInventory)
	assert.Equal(t, 117, kpi.AvailableUnits)
	assert.Zero(t, kpi.UpcomingAppointments)
	assert.Zero(t, kpi.TotalDonations)
	assert.Zero(t, kpi.TotalRedemptions)
}

func TestOverview_CountsActivity(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := RegisterAppointment(ctx, store, logger, RegisterAppointmentInput{
		DonorName:  "Rahul Verma",
		BloodGroup: model.OPositive,
		Date:       "2025-09-15",
		Time:       "10:30 AM",
	})
	require.NoError(t, err)

	completed, err := RegisterAppointment(ctx, store, logger, RegisterAppointmentInput{
		DonorName:  "Priya Sharma",
		BloodGroup: model.APositive,
		Date:       "2025-09-16",
		Time:       "02:00 PM",
	})
	require.NoError(t, err)

	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:     completed.DonorName,
		BloodGroup:    completed.BloodGroup,
		DonationType:  model.DonationStandard,
		AppointmentID: completed.ID,
	})
	require.NoError(t, err)

	pending, err := PrepareRedemption(ctx, store, logger, donation.ID, donation.OTP)
	require.NoError(t, err)
	_, err = CommitRedemption(ctx, store, logger, pending)
	require.NoError(t, err)

	kpi, err := Overview(ctx, store, logger)
	require.NoError(t, err)

	// Donation added one A+ unit, redemption took it back out
	assert.Equal(t, 153, kpi.TotalInventory)
	assert.Equal(t, 117, kpi.AvailableUnits)
	assert.Equal(t, 1, kpi.UpcomingAppointments, "completed appointments do not count")
	assert.Equal(t, 1, kpi.TotalDonations)
	assert.Equal(t, 1, kpi.TotalRedemptions)
}
