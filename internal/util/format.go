package util //nolint:revive // package name util hosts shared display formatting helpers

import (
	"fmt"
	"math"
	"time"
)

// FormatPrice formats a price for table display. Whole amounts drop the
// cents; zero renders as "free".
func FormatPrice(price float64) string {
	if price == 0 {
		return "free"
	}
	if price == math.Trunc(price) {
		return fmt.Sprintf("$%.0f", price)
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatAge formats how long ago a timestamp was, handling edge cases.
// Returns "—" for the zero time, coarsens with distance for readability.
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	age := time.Since(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 365*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
