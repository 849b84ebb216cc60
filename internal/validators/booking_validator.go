package validators

import (
	"errors"

	"luxerent/internal/models"
)

// Submission block errors. The pricing engine never raises on bad input;
// it hands back reason codes and zero values. This validator is the
// caller-side contract that turns those into hard submission blocks.
var (
	ErrNoBilledDays  = errors.New("rental period resolves to zero billed days")
	ErrNotInsurable  = errors.New("driver does not qualify for any insurance tier")
	ErrDriverData    = errors.New("driver birth date or license issue date is missing or invalid")
	ErrZeroDailyRate = errors.New("asset daily rate must be positive for non-VIP bookings")
)

// ValidateBookingRequest checks a request's raw fields before it reaches
// the engine. Date format errors are rejected here so the engine can
// keep its absorb-everything behavior for the recompute path.
func ValidateBookingRequest(req *models.BookingRequest) ValidationErrors {
	return ValidateStruct(req)
}

// ValidateSubmittable enforces the hard submission blocks on a computed
// breakdown: zero billed days is not a quote, and a driver who qualifies
// for no tier must never be charged Base coverage just because Base came
// back as the default selection.
func ValidateSubmittable(breakdown *models.PricingBreakdown) error {
	if breakdown.BilledDays <= 0 {
		return ErrNoBilledDays
	}
	if !breakdown.Insurance.Insurable {
		switch breakdown.Insurance.Reason {
		case models.ReasonAgeMissing, models.ReasonLicenseMissing:
			return ErrDriverData
		default:
			return ErrNotInsurable
		}
	}
	if !breakdown.VipApplied && breakdown.RentalCost <= 0 {
		return ErrZeroDailyRate
	}
	return nil
}
