package config

type MessagingConfig struct {
	Twilio         *TwilioConfig `yaml:"twilio"`
	ConciergePhone string        `yaml:"concierge_phone"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

func loadMessagingConfig() *MessagingConfig {
	return &MessagingConfig{
		Twilio: &TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},
		ConciergePhone: getEnv("CONCIERGE_PHONE", ""),
	}
}
