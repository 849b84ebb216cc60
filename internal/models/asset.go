package models

import (
	"time"
)

type AssetType string
type ServiceCategory string
type AssetStatus string

const (
	AssetTypeCar        AssetType = "car"
	AssetTypeYacht      AssetType = "yacht"
	AssetTypeVilla      AssetType = "villa"
	AssetTypeJet        AssetType = "jet"
	AssetTypeHelicopter AssetType = "helicopter"

	ServiceCarRental         ServiceCategory = "car_rental"
	ServicePremiumWash       ServiceCategory = "premium_wash"
	ServiceLuxuryWash        ServiceCategory = "luxury_wash"
	ServiceYachtCharter      ServiceCategory = "yacht_charter"
	ServiceVillaStay         ServiceCategory = "villa_stay"
	ServiceHelicopterFlight  ServiceCategory = "helicopter_flight"
	ServiceMechanicalService ServiceCategory = "mechanical_service"

	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusBooked      AssetStatus = "booked"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

type Asset struct {
	ID          int64              `json:"id" db:"id"`
	Type        AssetType          `json:"type" db:"type" validate:"required,oneof=car yacht villa jet helicopter"`
	Name        string             `json:"name" db:"name" validate:"required"`
	Brand       string             `json:"brand" db:"brand"`
	Model       string             `json:"model" db:"model"`
	Year        int                `json:"year" db:"year"`
	Status      AssetStatus        `json:"status" db:"status"`
	DailyRates  map[string]float64 `json:"daily_rates" db:"daily_rates"`
	DepositRate float64            `json:"deposit_rate" db:"deposit_rate"`
	Location    string             `json:"location" db:"location"`
	ImageURL    string             `json:"image_url" db:"image_url"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" db:"updated_at"`
}

// DailyRate returns the asset's listed per-day rate for a currency,
// falling back to EUR when the requested currency is not priced.
func (a *Asset) DailyRate(currency string) float64 {
	if rate, ok := a.DailyRates[currency]; ok {
		return rate
	}
	return a.DailyRates["EUR"]
}

// RentalExtra is an optional add-on priced per billed day.
type RentalExtra struct {
	ID         int64              `json:"id" db:"id"`
	Name       string             `json:"name" db:"name" validate:"required"`
	DailyRates map[string]float64 `json:"daily_rates" db:"daily_rates"`
}

func (e *RentalExtra) DailyRate(currency string) float64 {
	if rate, ok := e.DailyRates[currency]; ok {
		return rate
	}
	return e.DailyRates["EUR"]
}

// ServiceCategoryForAsset maps an asset type to the service category used
// by membership discount whitelists.
func ServiceCategoryForAsset(assetType AssetType) ServiceCategory {
	switch assetType {
	case AssetTypeYacht:
		return ServiceYachtCharter
	case AssetTypeVilla:
		return ServiceVillaStay
	case AssetTypeHelicopter, AssetTypeJet:
		return ServiceHelicopterFlight
	default:
		return ServiceCarRental
	}
}
