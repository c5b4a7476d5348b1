package model

import "time"

// BloodGroup is one of the eight supported blood groups
type BloodGroup string

const (
	OPositive  BloodGroup = "O+"
	ONegative  BloodGroup = "O-"
	APositive  BloodGroup = "A+"
	ANegative  BloodGroup = "A-"
	BPositive  BloodGroup = "B+"
	BNegative  BloodGroup = "B-"
	ABPositive BloodGroup = "AB+"
	ABNegative BloodGroup = "AB-"
)

// BloodGroups lists all supported blood groups in display order
var BloodGroups = []BloodGroup{
	OPositive, ONegative,
	APositive, ANegative,
	BPositive, BNegative,
	ABPositive, ABNegative,
}

func (g BloodGroup) IsValid() bool {
	for _, known := range BloodGroups {
		if g == known {
			return true
		}
	}
	return false
}

// DonationType distinguishes walk-in donations from ones made against a
// specific patient request
type DonationType string

const (
	DonationStandard DonationType = "Standard Donation"
	DonationLinked   DonationType = "H-RTID-Linked"
)

func (t DonationType) IsValid() bool {
	return t == DonationStandard || t == DonationLinked
}

// DonationStatus tracks the credit lifecycle of a donation
type DonationStatus string

const (
	DonationAvailable DonationStatus = "AVAILABLE"
	DonationRedeemed  DonationStatus = "REDEEMED"
)

type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "Upcoming"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// RequestStatusPending is the only request status the system assigns; there
// is no fulfillment workflow.
const RequestStatusPending = "PENDING"

// InventoryItem holds per-group stock counters. Available never exceeds Total.
type InventoryItem struct {
	Total     int
	Available int
}

// Inventory maps every blood group to its stock counters
type Inventory map[BloodGroup]InventoryItem

// Appointment is a scheduled donation slot for a donor
type Appointment struct {
	ID         string
	DonorName  string
	BloodGroup BloodGroup
	Date       time.Time
	Time       string
	Status     AppointmentStatus
}

// Donation is a redeemable credit minted when a donation is recorded.
// Immutable once created except for Status.
type Donation struct {
	ID              string // D-RTID token
	OTP             string // 6-digit numeric string
	BloodGroup      BloodGroup
	DonorName       string
	DonationType    DonationType
	LinkedRequestID string // optional H-RTID token
	Status          DonationStatus
	Location        string
	Timestamp       time.Time
}

// BloodRequest is a patient request for blood units
type BloodRequest struct {
	ID           string // H-RTID token
	PatientName  string
	BloodGroup   BloodGroup
	Units        int
	City         string
	RequiredDate string
	RequiredTime string
	HospitalName string
	Status       string
	CreatedAt    time.Time
}

// Redemption records the one-time consumption of a donation credit.
// Append-only.
type Redemption struct {
	DonationID         string
	BloodGroup         BloodGroup
	DonationLocation   string
	RedemptionLocation string
	LinkedRequestID    string
	Timestamp          time.Time
}

type NotificationCategory string

const (
	NotifyInfo    NotificationCategory = "info"
	NotifyWarning NotificationCategory = "warning"
	NotifySuccess NotificationCategory = "success"
	NotifyError   NotificationCategory = "error"
)

// Notification is an observational feed entry shown in the dashboard drawer
type Notification struct {
	ID        string
	Message   string
	Category  NotificationCategory
	Timestamp time.Time
	Read      bool
}

// KPIData aggregates the read-only counters shown on the overview screen
type KPIData struct {
	TotalInventory       int
	AvailableUnits       int
	UpcomingAppointments int
	TotalDonations       int
	TotalRedemptions     int
}
