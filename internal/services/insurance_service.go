package services

import (
	"sort"

	"luxerent/internal/models"
)

// InsuranceService resolves which KASKO tier a driver qualifies for.
// The tier table is injected so deployments can vary thresholds without
// touching resolver logic.
type InsuranceService struct {
	tiers []models.InsuranceTier
}

// NewInsuranceService builds a resolver over the given tier table. Tiers
// are kept sorted by ascending eligibility threshold.
func NewInsuranceService(tiers []models.InsuranceTier) *InsuranceService {
	sorted := make([]models.InsuranceTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MinLicenseYears != sorted[j].MinLicenseYears {
			return sorted[i].MinLicenseYears < sorted[j].MinLicenseYears
		}
		return sorted[i].MinAge < sorted[j].MinAge
	})
	return &InsuranceService{tiers: sorted}
}

// Tier returns the tier definition for an identifier, or nil.
func (s *InsuranceService) Tier(id models.InsuranceTierID) *models.InsuranceTier {
	for i := range s.tiers {
		if s.tiers[i].ID == id {
			return &s.tiers[i]
		}
	}
	return nil
}

// Resolve returns the highest tier the driver qualifies for, regardless
// of what was requested, plus the reason the next tier up was out of
// reach. A driver who qualifies for nothing still gets Base back as a
// default selection with Insurable false; callers must treat that as a
// hard submission block, not as Base coverage.
func (s *InsuranceService) Resolve(driver models.DriverProfile) models.InsuranceEligibility {
	if driver.Age == nil {
		return models.InsuranceEligibility{
			Tier:      models.InsuranceTierBase,
			Insurable: false,
			Reason:    models.ReasonAgeMissing,
		}
	}
	if driver.LicenseYears == nil {
		return models.InsuranceEligibility{
			Tier:      models.InsuranceTierBase,
			Insurable: false,
			Reason:    models.ReasonLicenseMissing,
		}
	}

	// Highest tier first
	for i := len(s.tiers) - 1; i >= 0; i-- {
		tier := s.tiers[i]
		if *driver.Age >= tier.MinAge && *driver.LicenseYears >= tier.MinLicenseYears {
			reason := models.ReasonNone
			if i < len(s.tiers)-1 {
				reason = requirementUnmetReason(s.tiers[i+1].ID)
			}
			return models.InsuranceEligibility{
				Tier:      tier.ID,
				Insurable: true,
				Reason:    reason,
			}
		}
	}

	return models.InsuranceEligibility{
		Tier:      models.InsuranceTierBase,
		Insurable: false,
		Reason:    requirementUnmetReason(s.tiers[0].ID),
	}
}

func requirementUnmetReason(id models.InsuranceTierID) models.EligibilityReason {
	switch id {
	case models.InsuranceTierSignature:
		return models.ReasonSignatureRequirementUnmet
	case models.InsuranceTierBlack:
		return models.ReasonBlackRequirementUnmet
	default:
		return models.ReasonBaseRequirementUnmet
	}
}
