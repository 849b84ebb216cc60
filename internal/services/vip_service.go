package services

import (
	"luxerent/internal/models"
	"luxerent/internal/utils"
)

// VipService matches booking requests against the static VIP allow-list
// and resolves duration-discount fractions from a profile's ladder.
// Matching is an exact lookup on normalized keys, never substring
// containment, so partial name overlaps cannot produce false positives.
type VipService struct {
	byEmail map[string]*models.VipClientProfile
	byName  map[string]*models.VipClientProfile
}

func NewVipService(profiles []models.VipClientProfile) *VipService {
	s := &VipService{
		byEmail: make(map[string]*models.VipClientProfile, len(profiles)),
		byName:  make(map[string]*models.VipClientProfile, len(profiles)),
	}
	for i := range profiles {
		p := &profiles[i]
		if key := utils.NormalizeEmail(p.Email); key != "" {
			s.byEmail[key] = p
		}
		if key := utils.NameKey(p.FirstName, p.LastName); key != "" {
			s.byName[key] = p
		}
	}
	return s
}

// Match looks up a profile by email first, then by first+last name pair.
// Both lookups are case-insensitive and whitespace-trimmed. A miss is the
// expected, common case and is not an error.
func (s *VipService) Match(email, firstName, lastName string) (*models.VipClientProfile, bool) {
	if key := utils.NormalizeEmail(email); key != "" {
		if p, ok := s.byEmail[key]; ok {
			return p, true
		}
	}
	if key := utils.NameKey(firstName, lastName); key != "" {
		if p, ok := s.byName[key]; ok {
			return p, true
		}
	}
	return nil, false
}

// DiscountFraction selects the ladder entry with the largest MinDays not
// exceeding billedDays. The duration discount is granted only alongside
// an active membership; a VIP identity match alone yields the flat rate
// with no discount.
func (s *VipService) DiscountFraction(profile *models.VipClientProfile, billedDays int, membershipActive bool) float64 {
	if profile == nil || !membershipActive {
		return 0
	}

	best := 0.0
	bestMinDays := -1
	for _, tier := range profile.DiscountTiers {
		if billedDays >= tier.MinDays && tier.MinDays > bestMinDays {
			best = tier.DiscountFraction
			bestMinDays = tier.MinDays
		}
	}
	return best
}
