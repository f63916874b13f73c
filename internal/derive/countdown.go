package derive

import (
	"fmt"
	"time"
)

// Countdown strings with no computable remainder.
const (
	ExpiredLabel    = "Expired"
	NoDeadlineLabel = "No deadline"
)

// TimeLeft renders the remaining time until deadline as seen at now,
// dropping leading zero units:
//
//	2h 5mins 0sec
//	3mins 12sec
//	45sec
//
// A deadline at or before now renders as "Expired"; a nil deadline as
// "No deadline". The value is recomputed on every page render, so the
// refresh cadence of the countdown equals the page refresh cadence.
func TimeLeft(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return NoDeadlineLabel
	}

	diff := deadline.Sub(now)
	if diff <= 0 {
		return ExpiredLabel
	}

	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	seconds := int(diff % time.Minute / time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dmins %dsec", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dmins %dsec", minutes, seconds)
	default:
		return fmt.Sprintf("%dsec", seconds)
	}
}
