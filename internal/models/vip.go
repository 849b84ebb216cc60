package models

// VipDiscountTier is one rung of a VIP profile's duration-discount ladder.
type VipDiscountTier struct {
	MinDays          int     `json:"min_days"`
	DiscountFraction float64 `json:"discount_fraction"`
}

// VipClientProfile is a static allow-list entry for a designated
// high-value client. When a booking request matches one, its flat daily
// rate replaces the asset's listed rate entirely, whatever asset was
// selected. Matched, never created or destroyed at runtime.
type VipClientProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	DailyRate     float64           `json:"daily_rate"`
	DiscountTiers []VipDiscountTier `json:"discount_tiers"`

	UnlimitedKm      bool `json:"unlimited_km"`
	IncludeKaskoBase bool `json:"include_kasko_base"`
	ExcludeCarWash   bool `json:"exclude_car_wash"`
	NoCents          bool `json:"no_cents"`
	NoDeposit        bool `json:"no_deposit"`
}

// DefaultVipProfiles is the allow-list shipped with the platform.
// Profile identities are stored pre-normalized (lower-case, trimmed).
func DefaultVipProfiles() []VipClientProfile {
	return []VipClientProfile{
		{
			Email:     "massimo.runchina@mail.com",
			FirstName: "massimo",
			LastName:  "runchina",
			DailyRate: 339,
			DiscountTiers: []VipDiscountTier{
				{MinDays: 3, DiscountFraction: 0.10},
				{MinDays: 7, DiscountFraction: 0.20},
			},
			UnlimitedKm:      true,
			IncludeKaskoBase: true,
			ExcludeCarWash:   true,
			NoCents:          true,
			NoDeposit:        true,
		},
		{
			Email:     "a.castellani@mail.com",
			FirstName: "alessandro",
			LastName:  "castellani",
			DailyRate: 450,
			DiscountTiers: []VipDiscountTier{
				{MinDays: 5, DiscountFraction: 0.12},
				{MinDays: 10, DiscountFraction: 0.18},
			},
			UnlimitedKm: true,
			NoDeposit:   true,
		},
	}
}
