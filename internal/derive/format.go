package derive

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a joining-date style date ("2 January 2006").
// The zero time renders as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return PlaceholderDash
	}
	return t.Format("2 January 2006")
}

// FormatShortDate renders a compact date ("02/01/2006").
// The zero time renders as "-".
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return PlaceholderDash
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a last-activity timestamp ("02/01/2006 3:04 PM").
// The zero time renders as "-".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return PlaceholderDash
	}
	return t.Format("02/01/2006 3:04 PM")
}

// FormatAmount renders a monetary value with thousands separators and no
// decimals ("250,000"). Fractions are truncated; amounts shown in the portal
// are whole riyals.
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(int64(v), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Capitalize upper-cases the first byte of s ("pending" -> "Pending").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// itoa is a local shorthand for strconv.Itoa.
func itoa(n int) string {
	return strconv.Itoa(n)
}
