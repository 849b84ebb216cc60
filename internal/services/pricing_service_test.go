package services

import (
	"testing"
	"time"

	"luxerent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestPricingService() *PricingService {
	return NewPricingService(
		DefaultPricingConfig(),
		NewInsuranceService(models.DefaultInsuranceTiers()),
		NewVipService(models.DefaultVipProfiles()),
	).WithClock(testClock)
}

func activeMembership() *models.MembershipRecord {
	return &models.MembershipRecord{
		TierID:      models.MembershipTierGold,
		Status:      models.MembershipStatusActive,
		RenewalDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeQuote_StandardOneDay(t *testing.T) {
	service := newTestPricingService()

	// Driver qualifies up to Black but rides on Base; the insurance line
	// charges the selected tier, not the highest eligible one.
	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   100,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-11T09:00:00Z",
		DriverBirthDate:  "1996-01-15",
		LicenseIssueDate: "2021-01-15",
	}

	b := service.ComputeQuote(req)

	assert.Equal(t, 1, b.BilledDays)
	assert.Equal(t, models.InsuranceTierBlack, b.Insurance.Tier)
	assert.True(t, b.Insurance.Insurable)
	assert.Equal(t, models.InsuranceTierBase, b.SelectedTier)
	assert.Equal(t, 100.0, b.RentalCost)
	assert.Equal(t, 0.0, b.InsuranceCost)
	assert.Equal(t, 0.0, b.YoungDriverFee+b.RecentLicenseFee+b.SecondDriverFee)
	assert.Equal(t, 100.0, b.Subtotal)
	assert.Equal(t, 10.0, b.TaxAmount)
	assert.Equal(t, 110.0, b.Total)
	assert.Equal(t, 100, b.IncludedKm)
	assert.True(t, b.Submittable())
}

func TestComputeQuote_YoungRecentLicenseDriver(t *testing.T) {
	service := newTestPricingService()

	// Age 22, license held two and a half years: both the young-driver
	// and recent-license surcharges apply per billed day.
	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   100,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-12T09:00:00Z",
		DriverBirthDate:  "2004-01-15",
		LicenseIssueDate: "2023-12-01",
	}

	b := service.ComputeQuote(req)

	require.NotNil(t, b.Driver.Age)
	require.NotNil(t, b.Driver.LicenseYears)
	assert.Equal(t, 22, *b.Driver.Age)
	assert.Equal(t, 2, *b.Driver.LicenseYears)

	assert.Equal(t, 2, b.BilledDays)
	assert.Equal(t, 20.0, b.YoungDriverFee)
	assert.Equal(t, 40.0, b.RecentLicenseFee)
	assert.Equal(t, 200.0, b.RentalCost)
	assert.Equal(t, 260.0, b.Subtotal)
	assert.Equal(t, 26.0, b.TaxAmount)
	assert.Equal(t, 286.0, b.Total)
}

func TestComputeQuote_VipOneDayNoMembership(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   1200, // listed rate irrelevant for VIPs
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-11T09:00:00Z",
		DriverBirthDate:  "1980-01-15",
		LicenseIssueDate: "2000-01-15",
		Email:            " Massimo.Runchina@mail.com ",
	}

	b := service.ComputeQuote(req)

	assert.True(t, b.VipApplied)
	assert.Equal(t, 339.0, b.VipDailyRate)
	assert.Equal(t, 0.0, b.VipDiscountAmount, "no active membership, no ladder discount")
	assert.Equal(t, 339.0, b.RentalCost)
	assert.Equal(t, 339.0, b.Subtotal)
	assert.True(t, b.UnlimitedKm)
	assert.Equal(t, 0, b.IncludedKm)
	assert.True(t, b.DepositWaived)
	assert.Equal(t, 0.0, b.InsuranceCost)

	// NoCents profile: the grand total lands on a whole currency unit.
	assert.Equal(t, 373.0, b.Total)
	assert.Zero(t, int64(b.Total*100)%100)
}

func TestComputeQuote_VipSevenDaysWithMembership(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   1200,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-17T09:00:00Z",
		DriverBirthDate:  "1980-01-15",
		LicenseIssueDate: "2000-01-15",
		Email:            "massimo.runchina@mail.com",
		Membership:       activeMembership(),
	}

	b := service.ComputeQuote(req)

	assert.Equal(t, 7, b.BilledDays)
	assert.True(t, b.VipApplied)
	// 339 x 7 = 2373.00; 20% rung at 7 days; discount rounded before subtraction.
	assert.Equal(t, 474.60, b.VipDiscountAmount)
	assert.Equal(t, 1898.40, b.RentalCost)
}

func TestComputeQuote_OneYearSeniorityBlocksAllTiers(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   100,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-11T09:00:00Z",
		DriverBirthDate:  "2004-01-15",
		LicenseIssueDate: "2025-06-01",
	}

	b := service.ComputeQuote(req)

	require.NotNil(t, b.Driver.LicenseYears)
	assert.Equal(t, 1, *b.Driver.LicenseYears)
	assert.False(t, b.Insurance.Insurable)
	assert.Equal(t, models.InsuranceTierBase, b.Insurance.Tier)
	assert.Equal(t, models.ReasonBaseRequirementUnmet, b.Insurance.Reason)
	assert.False(t, b.Submittable())
	assert.Equal(t, 0.0, b.InsuranceCost)
}

func TestComputeQuote_RequestedTierCharged(t *testing.T) {
	service := newTestPricingService()

	base := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   200,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-13T09:00:00Z",
		DriverBirthDate:  "1980-01-15",
		LicenseIssueDate: "2000-01-15",
	}

	t.Run("signature honored for qualifying driver", func(t *testing.T) {
		req := *base
		req.RequestedTier = models.InsuranceTierSignature
		b := service.ComputeQuote(&req)
		assert.Equal(t, models.InsuranceTierSignature, b.SelectedTier)
		assert.Equal(t, 150.0, b.InsuranceCost, "50/day x 3 days")
	})

	t.Run("request capped at eligibility", func(t *testing.T) {
		req := *base
		req.DriverBirthDate = "1999-01-15" // age 27: Black at most
		req.LicenseIssueDate = "2019-01-15"
		req.RequestedTier = models.InsuranceTierSignature
		b := service.ComputeQuote(&req)
		assert.Equal(t, models.InsuranceTierBlack, b.SelectedTier)
		assert.Equal(t, 90.0, b.InsuranceCost, "30/day x 3 days")
	})
}

func TestComputeQuote_UnparseableDatesAbsorbed(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   100,
		Currency:         "EUR",
		PickupAt:         "whenever",
		DropoffAt:        "2026-06-11T09:00:00Z",
		DriverBirthDate:  "2023-02-31", // impossible date treated as absent
		LicenseIssueDate: "2000-01-15",
	}

	b := service.ComputeQuote(req)

	assert.Equal(t, 0, b.BilledDays)
	assert.Nil(t, b.Driver.Age)
	assert.False(t, b.Insurance.Insurable)
	assert.Equal(t, models.ReasonAgeMissing, b.Insurance.Reason)
	assert.False(t, b.Submittable())
	assert.Equal(t, 0.0, b.Total)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   455.55,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-14T10:00:00Z",
		DriverBirthDate:  "2004-01-15",
		LicenseIssueDate: "2023-12-01",
		SecondDriver:     true,
		Extras:           []models.BookingExtra{{Name: "Child seat", DailyRate: 12.5}},
	}

	first := service.ComputeQuote(req)
	second := service.ComputeQuote(req)
	assert.Equal(t, first, second)
}

func TestComputeQuote_ExtrasAndSecondDriver(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   100,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-12T09:00:00Z",
		DriverBirthDate:  "1980-01-15",
		LicenseIssueDate: "2000-01-15",
		SecondDriver:     true,
		Extras: []models.BookingExtra{
			{Name: "Premium wash", DailyRate: 15},
			{Name: "Child seat", DailyRate: 10},
		},
	}

	b := service.ComputeQuote(req)

	assert.Equal(t, 2, b.BilledDays)
	assert.Equal(t, 50.0, b.ExtrasCost, "(15+10)/day x 2 days")
	assert.Equal(t, 20.0, b.SecondDriverFee)
	assert.False(t, b.WashFeeExcluded)
}

func TestComputeQuote_VipWashExclusion(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   1200,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-12T09:00:00Z",
		DriverBirthDate:  "1980-01-15",
		LicenseIssueDate: "2000-01-15",
		Email:            "massimo.runchina@mail.com",
		Extras: []models.BookingExtra{
			{Name: "Premium Wash", DailyRate: 15},
			{Name: "Child seat", DailyRate: 10},
		},
	}

	b := service.ComputeQuote(req)

	assert.True(t, b.WashFeeExcluded)
	assert.Equal(t, 20.0, b.ExtrasCost, "only the child seat is billed")
}

// Supplements are never suppressed by VIP pricing.
func TestComputeQuote_VipDoesNotWaiveSupplements(t *testing.T) {
	service := newTestPricingService()

	req := &models.BookingRequest{
		AssetID:          1,
		AssetDailyRate:   1200,
		Currency:         "EUR",
		PickupAt:         "2026-06-10T09:00:00Z",
		DropoffAt:        "2026-06-12T09:00:00Z",
		DriverBirthDate:  "2002-01-15", // 24: young-driver fee applies
		LicenseIssueDate: "2018-01-15",
		Email:            "a.castellani@mail.com",
		SecondDriver:     true,
	}

	b := service.ComputeQuote(req)

	assert.True(t, b.VipApplied)
	assert.Equal(t, 20.0, b.YoungDriverFee)
	assert.Equal(t, 20.0, b.SecondDriverFee)
}

func TestSupplementFees(t *testing.T) {
	service := newTestPricingService()

	tests := []struct {
		name         string
		age          *int
		licenseYears *int
		secondDriver bool
		days         int
		wantYoung    float64
		wantRecent   float64
		wantSecond   float64
	}{
		{name: "no supplements", age: intPtr(40), licenseYears: intPtr(15), days: 3},
		{name: "young driver", age: intPtr(24), licenseYears: intPtr(5), days: 3, wantYoung: 30},
		{name: "age 25 is not young", age: intPtr(25), licenseYears: intPtr(5), days: 3},
		{name: "recent license at 2 years", age: intPtr(40), licenseYears: intPtr(2), days: 4, wantRecent: 80},
		{name: "3 license years is not recent", age: intPtr(40), licenseYears: intPtr(3), days: 4},
		{name: "second driver", age: intPtr(40), licenseYears: intPtr(15), secondDriver: true, days: 5, wantSecond: 50},
		{name: "all three stack", age: intPtr(22), licenseYears: intPtr(2), secondDriver: true, days: 2, wantYoung: 20, wantRecent: 40, wantSecond: 20},
		{name: "zero days zeroes everything", age: intPtr(22), licenseYears: intPtr(2), secondDriver: true, days: 0},
		{name: "missing data means no fee", days: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := models.DriverProfile{Age: tt.age, LicenseYears: tt.licenseYears}
			young, recent, second := service.SupplementFees(driver, tt.secondDriver, tt.days)
			assert.Equal(t, tt.wantYoung, young)
			assert.Equal(t, tt.wantRecent, recent)
			assert.Equal(t, tt.wantSecond, second)
		})
	}
}

func TestIncludedMileage(t *testing.T) {
	tests := []struct {
		days     int
		expected int
	}{
		{days: 0, expected: 0},
		{days: 1, expected: 100},
		{days: 2, expected: 180},
		{days: 3, expected: 240},
		{days: 4, expected: 300},
		{days: 5, expected: 360},
		{days: 8, expected: 540},
		{days: 30, expected: 1860},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IncludedMileage(tt.days), "days=%d", tt.days)
	}
}

// The allowance never decreases as the rental gets longer.
func TestIncludedMileage_Monotonic(t *testing.T) {
	previous := 0
	for days := 1; days <= 60; days++ {
		current := IncludedMileage(days)
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}
