package services

import (
	"testing"

	"luxerent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVipService_Match(t *testing.T) {
	service := NewVipService(models.DefaultVipProfiles())

	tests := []struct {
		name      string
		email     string
		firstName string
		lastName  string
		wantMatch bool
		wantRate  float64
	}{
		{
			name:      "exact email",
			email:     "massimo.runchina@mail.com",
			wantMatch: true,
			wantRate:  339,
		},
		{
			name:      "email with case and padding",
			email:     " Massimo.Runchina@mail.com ",
			wantMatch: true,
			wantRate:  339,
		},
		{
			name:      "name pair when email unknown",
			email:     "other@mail.com",
			firstName: "MASSIMO",
			lastName:  "Runchina",
			wantMatch: true,
			wantRate:  339,
		},
		{
			name:      "second profile by name",
			firstName: "Alessandro",
			lastName:  "Castellani",
			wantMatch: true,
			wantRate:  450,
		},
		{
			name:      "partial name does not match",
			firstName: "Massimo",
			lastName:  "",
			wantMatch: false,
		},
		{
			name:      "unknown identity",
			email:     "nobody@mail.com",
			firstName: "Jane",
			lastName:  "Doe",
			wantMatch: false,
		},
		{
			name:      "empty request",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, ok := service.Match(tt.email, tt.firstName, tt.lastName)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				require.NotNil(t, profile)
				assert.Equal(t, tt.wantRate, profile.DailyRate)
			}
		})
	}
}

func TestVipService_DiscountFraction(t *testing.T) {
	service := NewVipService(models.DefaultVipProfiles())
	profile, ok := service.Match("massimo.runchina@mail.com", "", "")
	require.True(t, ok)

	tests := []struct {
		name             string
		billedDays       int
		membershipActive bool
		expected         float64
	}{
		{name: "below first rung", billedDays: 2, membershipActive: true, expected: 0},
		{name: "first rung boundary", billedDays: 3, membershipActive: true, expected: 0.10},
		{name: "between rungs", billedDays: 5, membershipActive: true, expected: 0.10},
		{name: "second rung boundary", billedDays: 7, membershipActive: true, expected: 0.20},
		{name: "far beyond ladder keeps top rung", billedDays: 30, membershipActive: true, expected: 0.20},
		{name: "inactive membership gates discount off", billedDays: 10, membershipActive: false, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.DiscountFraction(profile, tt.billedDays, tt.membershipActive))
		})
	}
}

func TestVipService_DiscountFraction_NilProfile(t *testing.T) {
	service := NewVipService(nil)
	assert.Equal(t, 0.0, service.DiscountFraction(nil, 10, true))
}
