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

func TestSubmitBloodRequest(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	request, err := SubmitBloodRequest(ctx, store, logger, SubmitBloodRequestInput{
		PatientName:  "Anita Desai",
		BloodGroup:   model.ABNegative,
		Units:        3,
		City:         "Delhi",
		RequiredDate: "2025-09-20",
		RequiredTime: "09:00 AM",
	})
	require.NoError(t, err)

	assert.NoError(t, rtid.Validate(request.ID))
	assert.True(t, rtid.IsRequestToken(request.ID))
	assert.Equal(t, 3, request.Units)
	assert.Equal(t, testLocation, request.HospitalName)
	assert.Equal(t, model.RequestStatusPending, request.Status)

	stored, err := store.FindRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita Desai", stored.PatientName)

	feed, err := store.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, model.NotifyInfo, feed[0].Category)
}

func TestSubmitBloodRequest_UnitsDefaultToOne(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	for _, units := range []int{0, -5} {
		request, err := SubmitBloodRequest(ctx, store, logger, SubmitBloodRequestInput{
			PatientName:  "Anita Desai",
			BloodGroup:   model.OPositive,
			Units:        units,
			City:         "Delhi",
			RequiredDate: "2025-09-20",
			RequiredTime: "09:00 AM",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, request.Units)
	}
}

func TestSubmitBloodRequest_InvalidInput(t *testing.T) {
	store := testLedger()
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name  string
		input SubmitBloodRequestInput
	}{
		{"missing patient name", SubmitBloodRequestInput{BloodGroup: model.OPositive, City: "Delhi", RequiredDate: "2025-09-20", RequiredTime: "09:00 AM"}},
		{"unknown blood group", SubmitBloodRequestInput{PatientName: "Anita Desai", BloodGroup: "Q+", City: "Delhi", RequiredDate: "2025-09-20", RequiredTime: "09:00 AM"}},
		{"missing city", SubmitBloodRequestInput{PatientName: "Anita Desai", BloodGroup: model.OPositive, RequiredDate: "2025-09-20", RequiredTime: "09:00 AM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := SubmitBloodRequest(ctx, store, logger, tt.input)
			assert.Error(t, err)
			assert.Nil(t, request)
		})
	}

	requests, err := store.GetRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
