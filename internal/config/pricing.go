package config

type PricingConfig struct {
	TaxRate                float64 `yaml:"tax_rate"`
	YoungDriverFeePerDay   float64 `yaml:"young_driver_fee_per_day"`
	RecentLicenseFeePerDay float64 `yaml:"recent_license_fee_per_day"`
	SecondDriverFeePerDay  float64 `yaml:"second_driver_fee_per_day"`
	YoungDriverAgeLimit    int     `yaml:"young_driver_age_limit"`
	RecentLicenseYearLimit int     `yaml:"recent_license_year_limit"`
}

func loadPricingConfig() *PricingConfig {
	return &PricingConfig{
		TaxRate:                getEnvAsFloat64("PRICING_TAX_RATE", 0.10),
		YoungDriverFeePerDay:   getEnvAsFloat64("PRICING_YOUNG_DRIVER_FEE", 10),
		RecentLicenseFeePerDay: getEnvAsFloat64("PRICING_RECENT_LICENSE_FEE", 20),
		SecondDriverFeePerDay:  getEnvAsFloat64("PRICING_SECOND_DRIVER_FEE", 10),
		YoungDriverAgeLimit:    getEnvAsInt("PRICING_YOUNG_DRIVER_AGE_LIMIT", 25),
		RecentLicenseYearLimit: getEnvAsInt("PRICING_RECENT_LICENSE_YEAR_LIMIT", 3),
	}
}
