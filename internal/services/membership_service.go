package services

import (
	"context"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
	"luxerent/internal/utils"
	"luxerent/pkg/logger"
)

// MembershipService resolves club-tier discounts and looks up membership
// records for authenticated clients. Unknown tiers and guests silently
// resolve to "no discount"; absence of a membership is the common case.
type MembershipService struct {
	tiers  map[models.MembershipTierID]models.MembershipTier
	repo   interfaces.MembershipRepository
	logger *logger.Logger
}

func NewMembershipService(tiers []models.MembershipTier, repo interfaces.MembershipRepository, log *logger.Logger) *MembershipService {
	index := make(map[models.MembershipTierID]models.MembershipTier, len(tiers))
	for _, tier := range tiers {
		index[tier.ID] = tier
	}
	return &MembershipService{tiers: index, repo: repo, logger: log}
}

// ResolveDiscount maps a membership tier and a service category to an
// eligibility flag and discount fraction. Zero fraction when the tier is
// unknown or the category is outside the tier's whitelist.
func (s *MembershipService) ResolveDiscount(tierID models.MembershipTierID, category models.ServiceCategory) (bool, float64) {
	tier, ok := s.tiers[tierID]
	if !ok {
		return false, 0
	}
	if !tier.AppliesTo(category) {
		return false, 0
	}
	return true, tier.DiscountFraction
}

// CalculateDiscountedPrice itemizes a tier discount on a price. Both the
// discount amount and the final price are unit-rounded so the two fields
// can never drift apart by a leftover fraction of a cent.
func (s *MembershipService) CalculateDiscountedPrice(price float64, tierID models.MembershipTierID, category models.ServiceCategory) models.DiscountedPrice {
	eligible, fraction := s.ResolveDiscount(tierID, category)
	if !eligible {
		return models.DiscountedPrice{
			OriginalPrice: utils.RoundToUnit(price),
			FinalPrice:    utils.RoundToUnit(price),
		}
	}

	amount := utils.RoundToUnit(price * fraction)
	return models.DiscountedPrice{
		OriginalPrice:    utils.RoundToUnit(price),
		DiscountFraction: fraction,
		DiscountAmount:   amount,
		FinalPrice:       utils.RoundToUnit(price - amount),
	}
}

// RecordForClient fetches the membership record attached to a client, or
// nil for guests and clients who never enrolled.
func (s *MembershipService) RecordForClient(ctx context.Context, clientID int64) (*models.MembershipRecord, error) {
	record, err := s.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// IsActive reports whether a record currently gates duration discounts.
func (s *MembershipService) IsActive(record *models.MembershipRecord, now time.Time) bool {
	return record.IsActive(now)
}

// Tiers exposes the configured tier table for catalog endpoints.
func (s *MembershipService) Tiers() []models.MembershipTier {
	out := make([]models.MembershipTier, 0, len(s.tiers))
	for _, tier := range s.tiers {
		out = append(out, tier)
	}
	return out
}
