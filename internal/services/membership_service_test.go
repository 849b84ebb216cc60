package services

import (
	"context"
	"io"
	"testing"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
	"luxerent/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stdout"})
	require.NoError(t, err)
	log.SetOutput(io.Discard)
	return log
}

type fakeMembershipRepo struct {
	records map[int64]*models.MembershipRecord
}

func (r *fakeMembershipRepo) GetByClientID(_ context.Context, clientID int64) (*models.MembershipRecord, error) {
	record, ok := r.records[clientID]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return record, nil
}

func (r *fakeMembershipRepo) Create(_ context.Context, record *models.MembershipRecord) error {
	r.records[record.ClientID] = record
	return nil
}

func (r *fakeMembershipRepo) UpdateStatus(_ context.Context, id int64, status models.MembershipStatus) error {
	for _, record := range r.records {
		if record.ID == id {
			record.Status = status
		}
	}
	return nil
}

func TestMembershipService_ResolveDiscount(t *testing.T) {
	service := NewMembershipService(models.DefaultMembershipTiers(), nil, newTestLogger(t))

	tests := []struct {
		name         string
		tier         models.MembershipTierID
		category     models.ServiceCategory
		wantEligible bool
		wantFraction float64
	}{
		{name: "silver on car rental", tier: models.MembershipTierSilver, category: models.ServiceCarRental, wantEligible: true, wantFraction: 0.10},
		{name: "silver excludes yacht charter", tier: models.MembershipTierSilver, category: models.ServiceYachtCharter, wantEligible: false},
		{name: "gold on yacht charter", tier: models.MembershipTierGold, category: models.ServiceYachtCharter, wantEligible: true, wantFraction: 0.15},
		{name: "gold excludes villa stay", tier: models.MembershipTierGold, category: models.ServiceVillaStay, wantEligible: false},
		{name: "platinum on villa stay", tier: models.MembershipTierPlatinum, category: models.ServiceVillaStay, wantEligible: true, wantFraction: 0.20},
		{name: "unknown tier", tier: "bronze", category: models.ServiceCarRental, wantEligible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eligible, fraction := service.ResolveDiscount(tt.tier, tt.category)
			assert.Equal(t, tt.wantEligible, eligible)
			assert.Equal(t, tt.wantFraction, fraction)
		})
	}
}

func TestMembershipService_CalculateDiscountedPrice(t *testing.T) {
	service := NewMembershipService(models.DefaultMembershipTiers(), nil, newTestLogger(t))

	t.Run("eligible discount itemized and consistent", func(t *testing.T) {
		result := service.CalculateDiscountedPrice(333.33, models.MembershipTierGold, models.ServiceCarRental)
		assert.Equal(t, 333.33, result.OriginalPrice)
		assert.Equal(t, 0.15, result.DiscountFraction)
		assert.Equal(t, 50.0, result.DiscountAmount)
		assert.Equal(t, 283.33, result.FinalPrice)
		assert.InDelta(t, result.OriginalPrice-result.DiscountAmount, result.FinalPrice, 1e-9)
	})

	t.Run("ineligible category passes price through", func(t *testing.T) {
		result := service.CalculateDiscountedPrice(500, models.MembershipTierSilver, models.ServiceVillaStay)
		assert.Equal(t, 500.0, result.OriginalPrice)
		assert.Equal(t, 0.0, result.DiscountFraction)
		assert.Equal(t, 0.0, result.DiscountAmount)
		assert.Equal(t, 500.0, result.FinalPrice)
	})
}

func TestMembershipService_RecordForClient(t *testing.T) {
	repo := &fakeMembershipRepo{records: map[int64]*models.MembershipRecord{
		7: {ID: 1, ClientID: 7, TierID: models.MembershipTierGold, Status: models.MembershipStatusActive},
	}}
	service := NewMembershipService(models.DefaultMembershipTiers(), repo, newTestLogger(t))

	record, err := service.RecordForClient(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.MembershipTierGold, record.TierID)

	record, err = service.RecordForClient(context.Background(), 99)
	require.NoError(t, err, "absent membership is not an error")
	assert.Nil(t, record)
}

func TestMembershipRecord_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		record   *models.MembershipRecord
		expected bool
	}{
		{name: "nil record", record: nil, expected: false},
		{
			name:     "active with future renewal",
			record:   &models.MembershipRecord{Status: models.MembershipStatusActive, RenewalDate: now.AddDate(0, 6, 0)},
			expected: true,
		},
		{
			name:     "renewal date today still active",
			record:   &models.MembershipRecord{Status: models.MembershipStatusActive, RenewalDate: now},
			expected: true,
		},
		{
			name:     "renewal in the past",
			record:   &models.MembershipRecord{Status: models.MembershipStatusActive, RenewalDate: now.AddDate(0, 0, -1)},
			expected: false,
		},
		{
			name:     "suspended with future renewal",
			record:   &models.MembershipRecord{Status: models.MembershipStatusSuspended, RenewalDate: now.AddDate(1, 0, 0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.IsActive(now))
		})
	}
}
