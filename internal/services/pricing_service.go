package services

import (
	"fmt"
	"strings"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/utils"
)

// PricingConfig carries the flat engine parameters. Defaults match the
// platform's published rate card.
type PricingConfig struct {
	TaxRate                float64
	YoungDriverFeePerDay   float64
	RecentLicenseFeePerDay float64
	SecondDriverFeePerDay  float64
	YoungDriverAgeLimit    int
	RecentLicenseYearLimit int
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:                utils.DefaultTaxRate,
		YoungDriverFeePerDay:   utils.YoungDriverFeePerDay,
		RecentLicenseFeePerDay: utils.RecentLicenseFeePerDay,
		SecondDriverFeePerDay:  utils.SecondDriverFeePerDay,
		YoungDriverAgeLimit:    25,
		RecentLicenseYearLimit: 3,
	}
}

// PricingService is the quote assembler: a pure calculator that turns a
// BookingRequest into an itemized PricingBreakdown. It holds no mutable
// state and never retains a request, so concurrent evaluation needs no
// locking. The only wall-clock dependence is the age/seniority
// derivation, which is intentional; the clock is injectable for tests.
type PricingService struct {
	config    PricingConfig
	insurance *InsuranceService
	vip       *VipService
	now       func() time.Time
}

func NewPricingService(config PricingConfig, insurance *InsuranceService, vip *VipService) *PricingService {
	return &PricingService{
		config:    config,
		insurance: insurance,
		vip:       vip,
		now:       time.Now,
	}
}

// WithClock replaces the evaluation clock. Test hook.
func (s *PricingService) WithClock(now func() time.Time) *PricingService {
	s.now = now
	return s
}

// ComputeQuote prices a booking request. It never fails on bad input:
// unparseable dates collapse to zero billed days or an absent driver
// profile, and the resulting breakdown carries the reason codes the
// caller must inspect before allowing submission.
func (s *PricingService) ComputeQuote(req *models.BookingRequest) *models.PricingBreakdown {
	now := s.now()
	days := s.billedDays(req)
	driver := s.deriveDriver(req, now)
	eligibility := s.insurance.Resolve(driver)

	breakdown := &models.PricingBreakdown{
		BilledDays:   days,
		Currency:     req.Currency,
		Insurance:    eligibility,
		SelectedTier: selectTier(req.RequestedTier, eligibility),
		Driver:       driver,
	}

	profile, isVip := s.vip.Match(req.Email, req.FirstName, req.LastName)
	if isVip {
		s.applyVipPricing(breakdown, req, profile, days, now)
	} else {
		breakdown.RentalCost = utils.RoundToUnit(req.AssetDailyRate * float64(days))
		breakdown.IncludedKm = IncludedMileage(days)
	}

	if !isVip || !profile.IncludeKaskoBase {
		breakdown.InsuranceCost = s.insuranceCost(breakdown.SelectedTier, req.Currency, days)
	}

	breakdown.ExtrasCost = s.extrasCost(req, profile, breakdown)

	young, recent, second := s.SupplementFees(driver, req.SecondDriver, days)
	breakdown.YoungDriverFee = young
	breakdown.RecentLicenseFee = recent
	breakdown.SecondDriverFee = second

	subtotal := utils.RoundToUnit(breakdown.RentalCost +
		breakdown.InsuranceCost +
		breakdown.ExtrasCost +
		young + recent + second)
	if isVip && profile.NoCents {
		subtotal = utils.RoundToWholeUnit(subtotal)
	}
	breakdown.Subtotal = subtotal

	breakdown.TaxAmount = utils.RoundToUnit(subtotal * s.config.TaxRate)

	total := utils.RoundToUnit(subtotal + breakdown.TaxAmount)
	if isVip && profile.NoCents {
		total = utils.RoundToWholeUnit(total)
	}
	breakdown.Total = total

	return breakdown
}

// SupplementFees computes the young-driver, recent-license and
// second-driver surcharges, each a flat per-day amount multiplied by
// billed days and individually unit-rounded.
func (s *PricingService) SupplementFees(driver models.DriverProfile, secondDriver bool, billedDays int) (young, recent, second float64) {
	if billedDays <= 0 {
		return 0, 0, 0
	}

	if driver.Age != nil && *driver.Age > 0 && *driver.Age < s.config.YoungDriverAgeLimit {
		young = utils.RoundToUnit(s.config.YoungDriverFeePerDay * float64(billedDays))
	}
	if driver.LicenseYears != nil &&
		*driver.LicenseYears >= utils.MinimumLicenseYears &&
		*driver.LicenseYears < s.config.RecentLicenseYearLimit {
		recent = utils.RoundToUnit(s.config.RecentLicenseFeePerDay * float64(billedDays))
	}
	if secondDriver {
		second = utils.RoundToUnit(s.config.SecondDriverFeePerDay * float64(billedDays))
	}
	return young, recent, second
}

// IncludedMileage maps a billed day count to the disclosed kilometer
// allowance. A stepped schedule, not a linear rate: the marginal
// allowance shrinks over the first four days, then settles at 60 km/day.
func IncludedMileage(billedDays int) int {
	switch {
	case billedDays <= 0:
		return 0
	case billedDays == 1:
		return 100
	case billedDays == 2:
		return 180
	case billedDays == 3:
		return 240
	case billedDays == 4:
		return 300
	default:
		return 300 + (billedDays-4)*60
	}
}

func (s *PricingService) billedDays(req *models.BookingRequest) int {
	pickup, okP := utils.ParseDateTime(req.PickupAt)
	dropoff, okD := utils.ParseDateTime(req.DropoffAt)
	if !okP || !okD {
		return 0
	}
	return utils.BilledDays(pickup, dropoff)
}

func (s *PricingService) deriveDriver(req *models.BookingRequest, now time.Time) models.DriverProfile {
	var driver models.DriverProfile

	if birth, ok := utils.ParseDate(req.DriverBirthDate); ok {
		if age := utils.YearsSince(birth, now); age >= 0 {
			driver.Age = &age
		}
	}
	if issued, ok := utils.ParseDate(req.LicenseIssueDate); ok {
		if years := utils.YearsSince(issued, now); years >= 0 {
			driver.LicenseYears = &years
		}
	}
	return driver
}

func (s *PricingService) insuranceCost(tierID models.InsuranceTierID, currency string, days int) float64 {
	tier := s.insurance.Tier(tierID)
	if tier == nil || days <= 0 {
		return 0
	}
	return utils.RoundToUnit(tier.DailyRate(currency) * float64(days))
}

func (s *PricingService) extrasCost(req *models.BookingRequest, profile *models.VipClientProfile, breakdown *models.PricingBreakdown) float64 {
	total := 0.0
	for _, extra := range req.Extras {
		if profile != nil && profile.ExcludeCarWash && isWashExtra(extra.Name) {
			breakdown.WashFeeExcluded = true
			continue
		}
		total += utils.RoundToUnit(extra.DailyRate * float64(breakdown.BilledDays))
	}
	return utils.RoundToUnit(total)
}

// applyVipPricing substitutes the profile's flat daily rate for the
// asset's listed rate and applies the membership-gated duration discount.
func (s *PricingService) applyVipPricing(breakdown *models.PricingBreakdown, req *models.BookingRequest, profile *models.VipClientProfile, days int, now time.Time) {
	membershipActive := req.Membership.IsActive(now)
	fraction := s.vip.DiscountFraction(profile, days, membershipActive)

	base := profile.DailyRate * float64(days)
	discount := utils.RoundToUnit(base * fraction)
	rental := utils.RoundToUnit(base - discount)

	breakdown.VipApplied = true
	breakdown.VipDailyRate = profile.DailyRate
	breakdown.VipDiscountAmount = discount
	breakdown.RentalCost = rental
	breakdown.DepositWaived = profile.NoDeposit
	breakdown.UnlimitedKm = profile.UnlimitedKm
	if !profile.UnlimitedKm {
		breakdown.IncludedKm = IncludedMileage(days)
	}

	if fraction > 0 {
		breakdown.VipMessage = fmt.Sprintf(
			"VIP rate %s/day with %.0f%% duration discount",
			utils.FormatCurrency(profile.DailyRate, req.Currency), fraction*100)
	} else {
		breakdown.VipMessage = fmt.Sprintf(
			"VIP rate %s/day", utils.FormatCurrency(profile.DailyRate, req.Currency))
	}
}

var tierRank = map[models.InsuranceTierID]int{
	models.InsuranceTierBase:      0,
	models.InsuranceTierBlack:     1,
	models.InsuranceTierSignature: 2,
}

// selectTier is the tier actually charged: what the client asked for,
// capped at the highest tier the driver qualifies for. An absent request
// defaults to Base. Not-insurable drivers get Base for display only; the
// submission block happens downstream.
func selectTier(requested models.InsuranceTierID, eligibility models.InsuranceEligibility) models.InsuranceTierID {
	if !eligibility.Insurable {
		return models.InsuranceTierBase
	}
	if requested == "" {
		return models.InsuranceTierBase
	}
	if tierRank[requested] <= tierRank[eligibility.Tier] {
		return requested
	}
	return eligibility.Tier
}

func isWashExtra(name string) bool {
	return strings.Contains(strings.ToLower(name), "wash")
}
