package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NormalizeEmail lower-cases and trims an email address so identity
// matching is insensitive to case and surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName lower-cases and trims a name component and collapses
// internal runs of whitespace to single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NameKey builds a stable lookup key from a first+last name pair.
func NameKey(firstName, lastName string) string {
	first := NormalizeName(firstName)
	last := NormalizeName(lastName)
	if first == "" && last == "" {
		return ""
	}
	return first + "|" + last
}

func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// GenerateRandomString returns a hex token of the requested length.
func GenerateRandomString(length int) string {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat("0", length)
	}
	return hex.EncodeToString(buf)[:length]
}

func ContainsString(slice []string, value string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
