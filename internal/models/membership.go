package models

import (
	"time"
)

type MembershipTierID string
type MembershipStatus string

const (
	MembershipTierSilver   MembershipTierID = "silver"
	MembershipTierGold     MembershipTierID = "gold"
	MembershipTierPlatinum MembershipTierID = "platinum"

	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusSuspended MembershipStatus = "suspended"
	MembershipStatusCancelled MembershipStatus = "cancelled"
	MembershipStatusExpired   MembershipStatus = "expired"
)

// MembershipTier describes a subscription level: a flat discount fraction
// plus the explicit whitelist of service categories it applies to.
type MembershipTier struct {
	ID               MembershipTierID  `json:"id"`
	Name             string            `json:"name"`
	DiscountFraction float64           `json:"discount_fraction"`
	Services         []ServiceCategory `json:"services"`
	AnnualFee        float64           `json:"annual_fee"`
}

// AppliesTo reports whether the tier's discount covers a service category.
func (t *MembershipTier) AppliesTo(category ServiceCategory) bool {
	for _, svc := range t.Services {
		if svc == category {
			return true
		}
	}
	return false
}

// MembershipRecord is the subscription state attached to an authenticated
// client. Guests have none.
type MembershipRecord struct {
	ID          int64            `json:"id" db:"id"`
	ClientID    int64            `json:"client_id" db:"client_id"`
	TierID      MembershipTierID `json:"tier_id" db:"tier_id" validate:"required,oneof=silver gold platinum"`
	Status      MembershipStatus `json:"status" db:"status"`
	RenewalDate time.Time        `json:"renewal_date" db:"renewal_date"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the membership gates discounts at the given
// instant: status must be active and the renewal date must not be in the
// past.
func (m *MembershipRecord) IsActive(now time.Time) bool {
	if m == nil {
		return false
	}
	return m.Status == MembershipStatusActive && !m.RenewalDate.Before(now)
}

// DefaultMembershipTiers lists the three subscription levels in ascending
// order of discount.
func DefaultMembershipTiers() []MembershipTier {
	return []MembershipTier{
		{
			ID:               MembershipTierSilver,
			Name:             "Silver Club",
			DiscountFraction: 0.10,
			AnnualFee:        1200,
			Services: []ServiceCategory{
				ServiceCarRental,
				ServicePremiumWash,
			},
		},
		{
			ID:               MembershipTierGold,
			Name:             "Gold Club",
			DiscountFraction: 0.15,
			AnnualFee:        2500,
			Services: []ServiceCategory{
				ServiceCarRental,
				ServicePremiumWash,
				ServiceYachtCharter,
				ServiceMechanicalService,
			},
		},
		{
			ID:               MembershipTierPlatinum,
			Name:             "Platinum Club",
			DiscountFraction: 0.20,
			AnnualFee:        5000,
			Services: []ServiceCategory{
				ServiceCarRental,
				ServicePremiumWash,
				ServiceLuxuryWash,
				ServiceYachtCharter,
				ServiceVillaStay,
				ServiceHelicopterFlight,
				ServiceMechanicalService,
			},
		},
	}
}
