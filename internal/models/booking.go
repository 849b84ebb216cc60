package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingExtra is an add-on selected for one booking, priced per billed
// day in the booking's currency.
type BookingExtra struct {
	Name      string  `json:"name" validate:"required"`
	DailyRate float64 `json:"daily_rate" validate:"gte=0"`
}

// BookingRequest carries everything the pricing engine needs to turn a
// rental wish into an itemized quote. It is created per wizard session,
// immutable once submitted, and re-derived in full on every input change.
// Dates travel as ISO-8601 strings exactly as the booking UI supplies
// them; the engine treats unparseable dates as absent.
type BookingRequest struct {
	AssetID        int64     `json:"asset_id" validate:"required"`
	AssetType      AssetType `json:"asset_type"`
	AssetDailyRate float64   `json:"asset_daily_rate" validate:"gte=0"`
	Currency       string    `json:"currency" validate:"required,currency_code"`

	PickupAt  string `json:"pickup_at" validate:"required,iso_datetime"`
	DropoffAt string `json:"dropoff_at" validate:"required,iso_datetime"`

	RequestedTier InsuranceTierID `json:"requested_tier" validate:"omitempty,oneof=base black signature"`
	Extras        []BookingExtra  `json:"extras" validate:"omitempty,dive"`
	SecondDriver  bool            `json:"second_driver"`

	DriverBirthDate  string `json:"driver_birth_date" validate:"omitempty,iso_date,past_date"`
	LicenseIssueDate string `json:"license_issue_date" validate:"omitempty,iso_date,past_date"`

	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Membership *MembershipRecord `json:"membership,omitempty"`
}

// Booking is the immutable record persisted after submission: the request
// as received plus the breakdown that priced it.
type Booking struct {
	ID         int64            `json:"id" db:"id"`
	ClientID   *int64           `json:"client_id,omitempty" db:"client_id"`
	AssetID    int64            `json:"asset_id" db:"asset_id"`
	Status     BookingStatus    `json:"status" db:"status"`
	Currency   string           `json:"currency" db:"currency"`
	PickupAt   time.Time        `json:"pickup_at" db:"pickup_at"`
	DropoffAt  time.Time        `json:"dropoff_at" db:"dropoff_at"`
	Request    BookingRequest   `json:"request" db:"request"`
	Breakdown  PricingBreakdown `json:"breakdown" db:"breakdown"`
	PaymentRef string           `json:"payment_ref,omitempty" db:"payment_ref"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}
