package highrise

import "time"

// SinceLayout is the time layout Highrise expects for the since parameter.
const SinceLayout = "20060102150405"

// ValidateSince checks that since is exactly YYYYMMDDHHMMSS and names a real
// calendar instant.
func ValidateSince(since string) error {
	if len(since) != len(SinceLayout) {
		return &TimestampError{Value: since}
	}
	for i := 0; i < len(since); i++ {
		if since[i] < '0' || since[i] > '9' {
			return &TimestampError{Value: since}
		}
	}
	if _, err := time.Parse(SinceLayout, since); err != nil {
		return &TimestampError{Value: since}
	}
	return nil
}

// FormatSince renders t in the form accepted by ValidateSince, in UTC.
func FormatSince(t time.Time) string {
	return t.UTC().Format(SinceLayout)
}
