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

// SubmitBloodRequestInput carries the blood request form fields
type SubmitBloodRequestInput struct {
	PatientName  string           `validate:"required"`
	BloodGroup   model.BloodGroup `validate:"required"`
	Units        int
	City         string `validate:"required"`
	RequiredDate string `validate:"required"`
	RequiredTime string `validate:"required"`
}

// SubmitBloodRequest mints a new pending blood request with a fresh H-RTID.
// Units below one default to one.
func SubmitBloodRequest(ctx context.Context, store ledger.RequestStore, logger *zap.Logger, in SubmitBloodRequestInput) (*model.BloodRequest, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid blood request input: %w", err)
	}
	if !in.BloodGroup.IsValid() {
		return nil, fmt.Errorf("unknown blood group %q", in.BloodGroup)
	}

	units := in.Units
	if units < 1 {
		units = 1
	}

	request := &model.BloodRequest{
		ID:           rtid.GenerateUnique(rtid.PrefixRequest, time.Now(), store.TokenExists),
		PatientName:  in.PatientName,
		BloodGroup:   in.BloodGroup,
		Units:        units,
		City:         in.City,
		RequiredDate: in.RequiredDate,
		RequiredTime: in.RequiredTime,
		HospitalName: store.Location(),
		Status:       model.RequestStatusPending,
		CreatedAt:    time.Now(),
	}

	logger.Info("Submitting blood request",
		zap.String("h_rtid", request.ID),
		zap.String("patient", request.PatientName),
		zap.String("blood_group", string(request.BloodGroup)),
		zap.Int("units", request.Units))

	if err := store.InsertRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to insert blood request: %w", err)
	}

	notify(store, fmt.Sprintf("New blood request: %d unit(s) of %s for %s", units, in.BloodGroup, in.PatientName), model.NotifyInfo)

	return request, nil
}
