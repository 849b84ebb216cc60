package models

// DriverProfile is derived from calendar dates at evaluation time and
// never stored, so results shift at each year boundary as real time
// passes. Nil fields mean the source date was absent or unparseable.
type DriverProfile struct {
	Age          *int `json:"age,omitempty"`
	LicenseYears *int `json:"license_years,omitempty"`
}

// EligibilityReason explains why a driver was not eligible for the next
// insurance tier up, so the caller can render a message.
type EligibilityReason string

const (
	ReasonNone                      EligibilityReason = ""
	ReasonAgeMissing                EligibilityReason = "age-missing"
	ReasonLicenseMissing            EligibilityReason = "license-missing"
	ReasonBaseRequirementUnmet      EligibilityReason = "base-requirement-unmet"
	ReasonBlackRequirementUnmet     EligibilityReason = "black-requirement-unmet"
	ReasonSignatureRequirementUnmet EligibilityReason = "signature-requirement-unmet"
)

// InsuranceEligibility is the structured result of the tier resolver.
// When Insurable is false the Tier field still carries Base as a default
// selection for display purposes; callers must block submission in that
// case rather than charge Base coverage.
type InsuranceEligibility struct {
	Tier      InsuranceTierID   `json:"tier"`
	Insurable bool              `json:"insurable"`
	Reason    EligibilityReason `json:"reason,omitempty"`
}

// DiscountedPrice itemizes a membership discount application. All four
// fields are unit-rounded and internally consistent: FinalPrice equals
// OriginalPrice minus DiscountAmount.
type DiscountedPrice struct {
	OriginalPrice    float64 `json:"original_price"`
	DiscountFraction float64 `json:"discount_fraction"`
	DiscountAmount   float64 `json:"discount_amount"`
	FinalPrice       float64 `json:"final_price"`
}

// PricingBreakdown is the engine's output: a fully itemized quote.
// It is recomputed whole on every relevant input change, never patched.
type PricingBreakdown struct {
	BilledDays int    `json:"billed_days"`
	Currency   string `json:"currency"`

	IncludedKm  int  `json:"included_km"`
	UnlimitedKm bool `json:"unlimited_km"`

	RentalCost    float64 `json:"rental_cost"`
	InsuranceCost float64 `json:"insurance_cost"`
	ExtrasCost    float64 `json:"extras_cost"`

	YoungDriverFee   float64 `json:"young_driver_fee"`
	RecentLicenseFee float64 `json:"recent_license_fee"`
	SecondDriverFee  float64 `json:"second_driver_fee"`

	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	Insurance    InsuranceEligibility `json:"insurance"`
	SelectedTier InsuranceTierID      `json:"selected_tier"`
	Driver       DriverProfile        `json:"driver"`

	VipApplied        bool    `json:"vip_applied"`
	VipDailyRate      float64 `json:"vip_daily_rate,omitempty"`
	VipDiscountAmount float64 `json:"vip_discount_amount,omitempty"`
	VipMessage        string  `json:"vip_message,omitempty"`
	DepositWaived     bool    `json:"deposit_waived"`
	WashFeeExcluded   bool    `json:"wash_fee_excluded"`
}

// Submittable reports whether the breakdown describes a bookable quote:
// a positive billed day count and an insurable driver.
func (b *PricingBreakdown) Submittable() bool {
	return b.BilledDays > 0 && b.Insurance.Insurable
}
