package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

func TestVerifyToken_Donation(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	donation, err := RecordDonation(ctx, store, logger, RecordDonationInput{
		DonorName:    "Rahul Verma",
		BloodGroup:   model.OPositive,
		DonationType: model.DonationStandard,
	})
	require.NoError(t, err)

	details, err := VerifyToken(ctx, store, logger, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, TokenDonation, details.Kind)
	require.NotNil(t, details.Donation)
	assert.Nil(t, details.Request)
	assert.Equal(t, donation.ID, details.Donation.ID)
	assert.Equal(t, model.DonationAvailable, details.Donation.Status)
}

func TestVerifyToken_Request(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	request, err := SubmitBloodRequest(ctx, store, logger, SubmitBloodRequestInput{
		PatientName:  "Anita Desai",
		BloodGroup:   model.ABNegative,
		Units:        2,
		City:         "Delhi",
		RequiredDate: "2025-09-20",
		RequiredTime: "09:00 AM",
	})
	require.NoError(t, err)

	details, err := VerifyToken(ctx, store, logger, request.ID)
	require.NoError(t, err)
	assert.Equal(t, TokenRequest, details.Kind)
	require.NotNil(t, details.Request)
	assert.Nil(t, details.Donation)
	assert.Equal(t, "Anita Desai", details.Request.PatientName)
}

func TestVerifyToken_NotFound(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := VerifyToken(ctx, store, logger, "D-RTID-01012025-NONE")
	assert.ErrorIs(t, err, model.ErrDonationNotFound)

	_, err = VerifyToken(ctx, store, logger, "H-RTID-01012025-NONE")
	assert.ErrorIs(t, err, model.ErrRequestNotFound)
}

func TestVerifyToken_UnknownPrefix(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	for _, token := range []string{"X-RTID-01012025-AB12", "garbage", ""} {
		_, err := VerifyToken(ctx, store, logger, token)
		assert.ErrorIs(t, err, model.ErrInvalidTokenFormat)
	}
}
