package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppChatLink(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		text     string
		expected string
	}{
		{
			name:     "plus prefix stripped",
			phone:    "+393331112222",
			text:     "",
			expected: "https://wa.me/393331112222",
		},
		{
			name:     "text escaped",
			phone:    "393331112222",
			text:     "Hello, I have a question",
			expected: "https://wa.me/393331112222?text=Hello%2C+I+have+a+question",
		},
		{
			name:     "surrounding whitespace trimmed",
			phone:    " +393331112222 ",
			text:     "",
			expected: "https://wa.me/393331112222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WhatsAppChatLink(tt.phone, tt.text))
		})
	}
}

func TestTwilioProvider_FromNumberFallback(t *testing.T) {
	provider := NewTwilioProvider("AC_test", "token", "+15550001111")
	assert.Equal(t, "+15550001111", provider.getFromNumber(""))
	assert.Equal(t, "+15550002222", provider.getFromNumber("+15550002222"))
}
