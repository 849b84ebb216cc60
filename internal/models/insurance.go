package models

type InsuranceTierID string

const (
	InsuranceTierBase      InsuranceTierID = "base"
	InsuranceTierBlack     InsuranceTierID = "black"
	InsuranceTierSignature InsuranceTierID = "signature"
)

// InsuranceTier is static reference data describing one KASKO coverage
// level. Tiers are ordered Base < Black < Signature with strictly
// increasing eligibility thresholds; they are never mutated at runtime.
type InsuranceTier struct {
	ID              InsuranceTierID    `json:"id"`
	Name            string             `json:"name"`
	MinAge          int                `json:"min_age"`
	MinLicenseYears int                `json:"min_license_years"`
	DailyRates      map[string]float64 `json:"daily_rates"`
}

func (t *InsuranceTier) DailyRate(currency string) float64 {
	if rate, ok := t.DailyRates[currency]; ok {
		return rate
	}
	return t.DailyRates["EUR"]
}

// DefaultInsuranceTiers lists the three KASKO tiers in ascending order.
// Base carries no per-day premium; its cost is bundled into the rental
// rate.
func DefaultInsuranceTiers() []InsuranceTier {
	return []InsuranceTier{
		{
			ID:              InsuranceTierBase,
			Name:            "KASKO Base",
			MinAge:          18,
			MinLicenseYears: 2,
			DailyRates:      map[string]float64{"EUR": 0, "USD": 0, "GBP": 0},
		},
		{
			ID:              InsuranceTierBlack,
			Name:            "KASKO Black",
			MinAge:          25,
			MinLicenseYears: 5,
			DailyRates:      map[string]float64{"EUR": 30, "USD": 35, "GBP": 27},
		},
		{
			ID:              InsuranceTierSignature,
			Name:            "KASKO Signature",
			MinAge:          30,
			MinLicenseYears: 10,
			DailyRates:      map[string]float64{"EUR": 50, "USD": 58, "GBP": 45},
		},
	}
}
