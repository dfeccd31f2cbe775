package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	e164Pattern         = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	indianMobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// NormalizePhone validates a phone number and normalizes it to E.164.
// Bare 10-digit Indian mobile numbers get the +91 country code; anything
// else must already carry its country code.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if stripped == "" {
		return "", fmt.Errorf("phone number is required")
	}

	if !strings.HasPrefix(stripped, "+") {
		if indianMobilePattern.MatchString(stripped) {
			stripped = "+91" + stripped
		} else if strings.HasPrefix(stripped, "0") && indianMobilePattern.MatchString(stripped[1:]) {
			stripped = "+91" + stripped[1:]
		} else {
			return "", fmt.Errorf("phone number %q is not in E.164 format", phone)
		}
	}

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("phone number %q is not a valid E.164 number", phone)
	}
	return stripped, nil
}
