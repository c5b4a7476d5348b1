package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// Overview aggregates the KPI counters shown on the overview screen
func Overview(ctx context.Context, store ledger.OverviewStore, logger *zap.Logger) (*model.KPIData, error) {
	inventory, err := store.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	appointments, err := store.GetAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	donations, err := store.GetDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations: %w", err)
	}
	redemptions, err := store.GetRedemptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch redemptions: %w", err)
	}

	kpi := &model.KPIData{
		TotalDonations:   len(donations),
		TotalRedemptions: len(redemptions),
	}
	for _, item := range inventory {
		kpi.TotalInventory += item.Total
		kpi.AvailableUnits += item.Available
	}
	for _, a := range appointments {
		if a.Status == model.AppointmentUpcoming {
			kpi.UpcomingAppointments++
		}
	}

	logger.Debug("Computed overview KPIs",
		zap.Int("total_inventory", kpi.TotalInventory),
		zap.Int("available_units", kpi.AvailableUnits),
		zap.Int("upcoming_appointments", kpi.UpcomingAppointments))

	return kpi, nil
}
