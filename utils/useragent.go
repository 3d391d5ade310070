package utils

import (
	"fmt"
	"strings"

	ua "github.com/mileusna/useragent"
)

// DeviceLabel turns a raw User-Agent header into the short "Browser on OS
// (Device)" label stored on focus sessions.
func DeviceLabel(userAgent string) string {
	if userAgent == "" {
		return "Unknown Device"
	}

	parsed := ua.Parse(userAgent)

	browser := parsed.Name
	if browser == "" {
		browser = "Unknown Browser"
	}
	osName := parsed.OS
	if osName == "" {
		osName = "Unknown OS"
	}

	device := "Desktop"
	if parsed.Mobile {
		device = "Mobile"
	} else if parsed.Tablet {
		device = "Tablet"
	}

	return strings.TrimSpace(fmt.Sprintf("%s on %s (%s)", browser, osName, device))
}
