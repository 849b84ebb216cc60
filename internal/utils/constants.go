package utils

import "time"

// Application Constants
const (
	AppName    = "LuxeRent"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "EUR"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Rental Constants
	MinimumLicenseYears    = 2
	QuoteSessionTTL        = 30 * time.Minute
	HoursPerBilledDay      = 24
	DefaultTaxRate         = 0.10
	YoungDriverFeePerDay   = 10.0
	RecentLicenseFeePerDay = 20.0
	SecondDriverFeePerDay  = 10.0

	// Payment Constants
	MinChargeAmount = 1.0
	MaxChargeAmount = 500000.0

	// Rate Limiting
	DefaultRateLimit = 100
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrUnauthorized        = "unauthorized"
	ErrForbidden           = "forbidden"
	ErrValidationFailed    = "validation failed"
	ErrPaymentFailed       = "payment failed"
	ErrAssetNotFound       = "asset not found"
	ErrQuoteNotSubmittable = "quote is not submittable"
)

// Cache Keys
const (
	CacheAssetPrefix        = "asset:"
	CacheQuoteSessionPrefix = "quote_session:"
	CacheRateLimitPrefix    = "rate_limit:"
)

// Event Types
const (
	EventBookingSubmitted = "booking_submitted"
	EventBookingCancelled = "booking_cancelled"
	EventPaymentProcessed = "payment_processed"
)
