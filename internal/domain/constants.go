package domain

// Business validation constants
const (
	MaxGigTitleLength = 200
	MaxIDLength       = 64
)

// Time format constants
const (
	// TimeLayout is the wire format for slot timestamps (RFC 3339, UTC)
	TimeLayout = "2006-01-02T15:04:05Z07:00"
)
