package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number has no country prefix.
const DefaultRegion = "US"

// Normalize parses a raw phone number and returns it in E.164 format.
// Returns an error when the number cannot be parsed or is not valid.
func Normalize(raw, region string) (string, error) {
	if region == "" {
		region = DefaultRegion
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NormalizeOrKeep normalizes to E.164 when possible and falls back to the raw
// input otherwise. Used for lead/contact intake where bad numbers should not
// block the write.
func NormalizeOrKeep(raw, region string) string {
	if raw == "" {
		return ""
	}
	if normalized, err := Normalize(raw, region); err == nil {
		return normalized
	}
	return raw
}
