package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/internal/config"
)

// SuggestAppointmentSlots expands the configured donation-day recurrence
// rule into the next count bookable dates on or after from.
func SuggestAppointmentSlots(cfg *config.Config, logger *zap.Logger, from time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("slot count must be positive, got %d", count)
	}

	rule, err := rrule.StrToRRule(cfg.DonationDays)
	if err != nil {
		return nil, fmt.Errorf("failed to parse donation day rule: %w", err)
	}
	rule.DTStart(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC))

	dates := make([]time.Time, 0, count)
	next := rule.After(from, true)
	for !next.IsZero() && len(dates) < count {
		dates = append(dates, next)
		next = rule.After(next, false)
	}

	logger.Debug("Suggested appointment slots",
		zap.Int("requested", count),
		zap.Int("found", len(dates)))

	return dates, nil
}
