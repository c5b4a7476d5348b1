// Package ledger holds the in-memory credit ledger: donations, blood
// requests, redemptions, appointments, inventory counters, and the
// notification feed. State lives and dies with the session; there is no
// persistence.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

// Ledger is the single in-memory registry behind all dashboard operations.
// It is passed explicitly to operation functions; there are no package-level
// singletons. All methods are safe for concurrent use.
type Ledger struct {
	mu sync.Mutex

	location      string
	inventory     model.Inventory
	appointments  []model.Appointment
	donations     []model.Donation
	redemptions   []model.Redemption
	requests      []model.BloodRequest
	notifications []model.Notification
}

// New creates a ledger for the given bank location, seeded with the supplied
// inventory counters. The seed is copied; groups absent from the seed start
// at zero.
func New(location string, seed model.Inventory) *Ledger {
	inv := make(model.Inventory, len(model.BloodGroups))
	for _, g := range model.BloodGroups {
		inv[g] = seed[g]
	}
	return &Ledger{
		location:  location,
		inventory: inv,
	}
}

// Location returns the blood bank location used for donations, redemptions,
// and request hospital names.
func (l *Ledger) Location() string {
	return l.location
}

// TokenExists reports whether an identifier is already in use by any
// appointment, donation, or request.
func (l *Ledger) TokenExists(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.appointments {
		if l.appointments[i].ID == token {
			return true
		}
	}
	for i := range l.donations {
		if l.donations[i].ID == token {
			return true
		}
	}
	for i := range l.requests {
		if l.requests[i].ID == token {
			return true
		}
	}
	return false
}

// Inventory returns a copy of the current stock counters
func (l *Ledger) Inventory(ctx context.Context) (model.Inventory, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv := make(model.Inventory, len(l.inventory))
	for g, item := range l.inventory {
		inv[g] = item
	}
	return inv, nil
}

// AdjustInventory applies deltas to a blood group's counters. Counters are
// clamped so that 0 <= available <= total always holds.
func (l *Ledger) AdjustInventory(ctx context.Context, group model.BloodGroup, totalDelta, availableDelta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.adjustInventoryLocked(group, totalDelta, availableDelta)
	return nil
}

func (l *Ledger) adjustInventoryLocked(group model.BloodGroup, totalDelta, availableDelta int) {
	item := l.inventory[group]
	item.Total += totalDelta
	item.Available += availableDelta
	if item.Total < 0 {
		item.Total = 0
	}
	if item.Available < 0 {
		item.Available = 0
	}
	if item.Available > item.Total {
		item.Available = item.Total
	}
	l.inventory[group] = item
}

// InsertAppointment adds a new appointment record
func (l *Ledger) InsertAppointment(ctx context.Context, a *model.Appointment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.appointments = append(l.appointments, *a)
	return nil
}

// GetAppointments returns all appointments, newest first
func (l *Ledger) GetAppointments(ctx context.Context) ([]model.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return newestFirst(l.appointments), nil
}

// FindAppointment looks up an appointment by id
func (l *Ledger) FindAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.appointments {
		if l.appointments[i].ID == id {
			a := l.appointments[i]
			return &a, nil
		}
	}
	return nil, model.ErrAppointmentNotFound
}

// CompleteAppointment transitions an upcoming appointment to Completed.
// Completed and Cancelled appointments never transition again.
func (l *Ledger) CompleteAppointment(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.appointments {
		if l.appointments[i].ID == id {
			if l.appointments[i].Status == model.AppointmentUpcoming {
				l.appointments[i].Status = model.AppointmentCompleted
			}
			return nil
		}
	}
	return model.ErrAppointmentNotFound
}

// InsertDonation adds a new donation credit
func (l *Ledger) InsertDonation(ctx context.Context, d *model.Donation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.donations = append(l.donations, *d)
	return nil
}

// GetDonations returns all donations, newest first
func (l *Ledger) GetDonations(ctx context.Context) ([]model.Donation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return newestFirst(l.donations), nil
}

// FindDonation looks up a donation by D-RTID
func (l *Ledger) FindDonation(ctx context.Context, id string) (*model.Donation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.donations {
		if l.donations[i].ID == id {
			d := l.donations[i]
			return &d, nil
		}
	}
	return nil, model.ErrDonationNotFound
}

// RedeemDonation consumes a donation credit: it marks the donation REDEEMED,
// appends the redemption record, and decrements the blood group's counters.
// The status check and all three mutations happen under one lock, so a
// credit can be redeemed at most once even under concurrent callers.
func (l *Ledger) RedeemDonation(ctx context.Context, id, redemptionLocation string, now time.Time) (model.Redemption, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.donations {
		if l.donations[i].ID != id {
			continue
		}
		if l.donations[i].Status == model.DonationRedeemed {
			return model.Redemption{}, model.ErrAlreadyRedeemed
		}
		l.donations[i].Status = model.DonationRedeemed

		redemption := model.Redemption{
			DonationID:         l.donations[i].ID,
			BloodGroup:         l.donations[i].BloodGroup,
			DonationLocation:   l.donations[i].Location,
			RedemptionLocation: redemptionLocation,
			LinkedRequestID:    l.donations[i].LinkedRequestID,
			Timestamp:          now,
		}
		l.redemptions = append(l.redemptions, redemption)
		l.adjustInventoryLocked(l.donations[i].BloodGroup, -1, -1)
		return redemption, nil
	}
	return model.Redemption{}, model.ErrDonationNotFound
}

// GetRedemptions returns all redemption records, newest first
func (l *Ledger) GetRedemptions(ctx context.Context) ([]model.Redemption, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return newestFirst(l.redemptions), nil
}

// InsertRequest adds a new blood request
func (l *Ledger) InsertRequest(ctx context.Context, r *model.BloodRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, *r)
	return nil
}

// GetRequests returns all blood requests, newest first
func (l *Ledger) GetRequests(ctx context.Context) ([]model.BloodRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return newestFirst(l.requests), nil
}

// FindRequest looks up a blood request by H-RTID
func (l *Ledger) FindRequest(ctx context.Context, id string) (*model.BloodRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.requests {
		if l.requests[i].ID == id {
			r := l.requests[i]
			return &r, nil
		}
	}
	return nil, model.ErrRequestNotFound
}

// AddNotification appends an entry to the notification feed
func (l *Ledger) AddNotification(n model.Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.notifications = append(l.notifications, n)
}

// GetNotifications returns the notification feed, newest first
func (l *Ledger) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return newestFirst(l.notifications), nil
}

// MarkNotificationsRead marks every feed entry as read
func (l *Ledger) MarkNotificationsRead(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.notifications {
		l.notifications[i].Read = true
	}
	return nil
}

// UnreadNotifications counts unread feed entries
func (l *Ledger) UnreadNotifications() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for i := range l.notifications {
		if !l.notifications[i].Read {
			count++
		}
	}
	return count
}

// newestFirst copies a slice in reverse insertion order
func newestFirst[T any](items []T) []T {
	out := make([]T, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	return out
}
