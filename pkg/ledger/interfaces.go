package ledger

import (
	"context"
	"time"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

// NotificationSink receives feed entries emitted as operation side effects
type NotificationSink interface {
	AddNotification(n model.Notification)
}

// AppointmentStore defines the store operations needed to register and look
// up appointments
type AppointmentStore interface {
	NotificationSink
	TokenExists(token string) bool
	InsertAppointment(ctx context.Context, a *model.Appointment) error
	GetAppointments(ctx context.Context) ([]model.Appointment, error)
	FindAppointment(ctx context.Context, id string) (*model.Appointment, error)
}

// DonationStore defines the store operations needed to record a donation
type DonationStore interface {
	NotificationSink
	Location() string
	TokenExists(token string) bool
	InsertDonation(ctx context.Context, d *model.Donation) error
	FindAppointment(ctx context.Context, id string) (*model.Appointment, error)
	CompleteAppointment(ctx context.Context, id string) error
	AdjustInventory(ctx context.Context, group model.BloodGroup, totalDelta, availableDelta int) error
}

// RequestStore defines the store operations needed to submit a blood request
type RequestStore interface {
	NotificationSink
	Location() string
	TokenExists(token string) bool
	InsertRequest(ctx context.Context, r *model.BloodRequest) error
}

// CreditStore defines the store operations needed by the redemption flow
type CreditStore interface {
	NotificationSink
	Location() string
	FindDonation(ctx context.Context, id string) (*model.Donation, error)
	RedeemDonation(ctx context.Context, id, redemptionLocation string, now time.Time) (model.Redemption, error)
}

// TokenReader defines the read-only lookups used by token verification
type TokenReader interface {
	FindDonation(ctx context.Context, id string) (*model.Donation, error)
	FindRequest(ctx context.Context, id string) (*model.BloodRequest, error)
}

// OverviewStore defines the read-only aggregation inputs for the KPI view
type OverviewStore interface {
	Inventory(ctx context.Context) (model.Inventory, error)
	GetAppointments(ctx context.Context) ([]model.Appointment, error)
	GetDonations(ctx context.Context) ([]model.Donation, error)
	GetRedemptions(ctx context.Context) ([]model.Redemption, error)
}
