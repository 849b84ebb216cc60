package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToUnit(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "already exact", value: 305.10, expected: 305.10},
		{name: "half rounds up", value: 10.005, expected: 10.01},
		{name: "below half rounds down", value: 10.004, expected: 10.00},
		{name: "float artifact collapses", value: 305.09999999999997, expected: 305.10},
		{name: "negative half rounds away from zero", value: -10.005, expected: -10.01},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundToUnit(tt.value), 1e-9)
		})
	}
}

func TestRoundToUnit_NeverMovesMoreThanHalfCent(t *testing.T) {
	for _, v := range []float64{0.001, 1.2349, 99.999, 1234.5678, 305.09999999999997} {
		rounded := RoundToUnit(v)
		assert.Less(t, math.Abs(rounded-v), 0.005, "value %v moved too far", v)
	}
}

func TestRoundToUnit_Idempotent(t *testing.T) {
	for _, v := range []float64{10.005, 372.9, 339.0, 0.015, 123.456} {
		once := RoundToUnit(v)
		assert.Equal(t, once, RoundToUnit(once))
	}
}

func TestRoundToWholeUnit(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "half rounds up", value: 372.5, expected: 373},
		{name: "below half rounds down", value: 372.49, expected: 372},
		{name: "nine tenths rounds up", value: 372.9, expected: 373},
		{name: "whole stays whole", value: 339, expected: 339},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToWholeUnit(tt.value))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int64
	}{
		{name: "whole amount", value: 373, expected: 37300},
		{name: "two decimals", value: 372.90, expected: 37290},
		{name: "sub-cent residue rounds first", value: 305.09999999999997, expected: 30510},
		{name: "scaling artifact", value: 19.99, expected: 1999},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMinorUnits(tt.value))
		})
	}
}

func TestApplyPercentageDiscount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		fraction float64
		expected float64
	}{
		{name: "ten percent", amount: 1000, fraction: 0.10, expected: 900},
		{name: "discount rounded before subtraction", amount: 333.33, fraction: 0.15, expected: 283.33},
		{name: "zero fraction is identity", amount: 251.07, fraction: 0, expected: 251.07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ApplyPercentageDiscount(tt.amount, tt.fraction), 1e-9)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "€305.10", FormatCurrency(305.09999999999997, "EUR"))
	assert.Equal(t, "$42.00", FormatCurrency(42, "USD"))
	// Unknown currencies fall back to EUR formatting.
	assert.Equal(t, "€10.00", FormatCurrency(10, "XXX"))
}

func TestParseCurrencyAmount(t *testing.T) {
	value, err := ParseCurrencyAmount("€1,250.50")
	assert.NoError(t, err)
	assert.Equal(t, 1250.50, value)

	_, err = ParseCurrencyAmount("not-a-number")
	assert.Error(t, err)
}

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("EUR"))
	assert.True(t, IsSupportedCurrency("AED"))
	assert.False(t, IsSupportedCurrency("eur"))
	assert.False(t, IsSupportedCurrency("XYZ"))
}
