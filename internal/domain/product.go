package domain

import "strings"

// Platform identifies the e-commerce site the product text was extracted from
type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformFlipkart Platform = "flipkart"
	PlatformUnknown  Platform = "unknown"
)

// ParsePlatform converts a raw platform string from the extension into a Platform.
// Anything unrecognized maps to PlatformUnknown.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amazon":
		return PlatformAmazon
	case "flipkart":
		return PlatformFlipkart
	default:
		return PlatformUnknown
	}
}

// ProductText represents raw product listing text extracted from an e-commerce page.
// All fields are untrusted and may be empty; the normalizer handles defaulting.
type ProductText struct {
	Name           string   `json:"name"`
	Brand          string   `json:"brand,omitempty"`
	Description    string   `json:"description"`
	Specifications string   `json:"specifications,omitempty"`
	URL            string   `json:"url,omitempty"`
	Platform       Platform `json:"platform"`
}
