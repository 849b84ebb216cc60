package services

import (
	"context"
	"fmt"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/utils"
	"luxerent/pkg/cache"
	"luxerent/pkg/logger"
)

// Cache is the subset of the redis wrapper the service layer needs.
// Tests substitute an in-memory implementation.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string) (int64, error)
	SetExpire(ctx context.Context, key string, expiration time.Duration) error
}

// QuoteSession is a priced quote parked in redis between the quote call
// and submission. Submitting by session ID replays the stored request
// through the engine so a stale client cannot book at a price the
// engine would no longer produce.
type QuoteSession struct {
	ID        string                  `json:"id"`
	ClientID  int64                   `json:"client_id,omitempty"`
	Request   models.BookingRequest   `json:"request"`
	Breakdown models.PricingBreakdown `json:"breakdown"`
	CreatedAt time.Time               `json:"created_at"`
	ExpiresAt time.Time               `json:"expires_at"`
}

type CacheService struct {
	cache  Cache
	logger *logger.Logger
	ttl    time.Duration
}

func NewCacheService(c Cache, log *logger.Logger) *CacheService {
	return &CacheService{
		cache:  c,
		logger: log,
		ttl:    utils.QuoteSessionTTL,
	}
}

// SaveQuoteSession stores a computed quote and returns the session ID
// the client uses to submit it later.
func (s *CacheService) SaveQuoteSession(ctx context.Context, clientID int64, request *models.BookingRequest, breakdown *models.PricingBreakdown) (*QuoteSession, error) {
	now := time.Now().UTC()
	session := &QuoteSession{
		ID:        utils.GenerateRandomString(32),
		ClientID:  clientID,
		Request:   *request,
		Breakdown: *breakdown,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	key := utils.CacheQuoteSessionPrefix + session.ID
	if err := s.cache.Set(ctx, key, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}

	s.logger.WithField("quote_session_id", session.ID).Debug("Quote session stored")
	return session, nil
}

// GetQuoteSession returns the stored session, or (nil, nil) when the
// session expired or never existed.
func (s *CacheService) GetQuoteSession(ctx context.Context, sessionID string) (*QuoteSession, error) {
	key := utils.CacheQuoteSessionPrefix + sessionID

	var session QuoteSession
	if err := s.cache.Get(ctx, key, &session); err != nil {
		if cache.IsMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quote session: %w", err)
	}

	return &session, nil
}

func (s *CacheService) DeleteQuoteSession(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, utils.CacheQuoteSessionPrefix+sessionID)
}

// CacheAsset keeps the asset catalog hot; the catalog changes rarely
// and the quote endpoint reads it on every call.
func (s *CacheService) CacheAsset(ctx context.Context, asset *models.Asset, expiration time.Duration) error {
	key := fmt.Sprintf("%s%d", utils.CacheAssetPrefix, asset.ID)
	return s.cache.Set(ctx, key, asset, expiration)
}

func (s *CacheService) GetCachedAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	key := fmt.Sprintf("%s%d", utils.CacheAssetPrefix, assetID)

	var asset models.Asset
	if err := s.cache.Get(ctx, key, &asset); err != nil {
		if cache.IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}

	return &asset, nil
}

func (s *CacheService) InvalidateAsset(ctx context.Context, assetID int64) error {
	return s.cache.Delete(ctx, fmt.Sprintf("%s%d", utils.CacheAssetPrefix, assetID))
}

// CheckRateLimit applies a fixed-window counter keyed by caller identity.
func (s *CacheService) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	rateLimitKey := utils.CacheRateLimitPrefix + key

	count, err := s.cache.Increment(ctx, rateLimitKey)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := s.cache.SetExpire(ctx, rateLimitKey, window); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("Failed to set rate limit window")
		}
	}

	return count <= limit, nil
}
