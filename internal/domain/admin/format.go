package admin

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
)

// Tone is the visual weight of a status badge.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	TonePrimary Tone = "primary"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Badge is a label with a tone.
type Badge struct {
	Label string
	Tone  Tone
}

// FormatUptime renders seconds as "1h 2m 3s", "2m 3s" or "3s".
// Negative, NaN and infinite inputs render as "0s".
func FormatUptime(seconds float64) string {
	total := int64(0)
	if !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds > 0 {
		total = int64(math.Floor(seconds))
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatHealthState summarizes the health payload.
func FormatHealthState(status, db string) Badge {
	status = strings.ToLower(status)
	db = strings.ToLower(db)

	switch {
	case status == "ok" && db == "up":
		return Badge{Label: "Healthy", Tone: ToneSuccess}
	case status == "degraded" || db == "down":
		return Badge{Label: "Degraded", Tone: ToneWarning}
	default:
		return Badge{Label: "Unknown", Tone: ToneNeutral}
	}
}

// FormatRole renders a backend role.
func FormatRole(role string) Badge {
	normalized := strings.ToLower(strings.TrimSpace(role))

	switch domainauth.Role(normalized) {
	case domainauth.RoleSuperAdmin:
		return Badge{Label: "Super Admin", Tone: ToneDanger}
	case domainauth.RoleAdmin:
		return Badge{Label: "Admin", Tone: TonePrimary}
	case domainauth.RoleUser:
		return Badge{Label: "User", Tone: ToneNeutral}
	}

	if normalized == "" {
		return Badge{Label: "Unknown", Tone: ToneWarning}
	}
	return Badge{Label: capitalize(normalized), Tone: ToneWarning}
}

// FormatActiveState renders the account active flag.
func FormatActiveState(active bool) Badge {
	if active {
		return Badge{Label: "Aktif", Tone: ToneSuccess}
	}
	return Badge{Label: "Nonaktif", Tone: ToneDanger}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

var idMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatTimestamp renders an API timestamp in the local zone using Indonesian
// medium date and 24h time, e.g. "15 Jan 2024, 10.30.00".
// Empty input renders as "-"; unparsable input is returned as is.
func FormatTimestamp(value string) string {
	return FormatTimestampIn(value, time.Local)
}

// FormatTimestampIn is FormatTimestamp for an explicit location.
func FormatTimestampIn(value string, loc *time.Location) string {
	if value == "" {
		return "-"
	}
	t, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d %s %d, %02d.%02d.%02d",
		t.Day(), idMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute(), t.Second())
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
