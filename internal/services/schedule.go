package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ottocompiler/plantmon/internal/models"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp is best-effort: malformed or empty input reports ok=false
// instead of an error. Layouts without an offset are read as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp normalizes the instant to UTC before serializing, so every
// stored timestamp is an ISO-8601 UTC string.
func FormatTimestamp(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func NowUTC() string {
	return FormatTimestamp(time.Now())
}

// NextWatering projects the next watering instant: the latest watering event
// if one exists, else the creation timestamp, plus the interval in days.
// ok=false when the base timestamp cannot be parsed.
func NextWatering(createdAt string, lastWateredAt string, intervalDays int) (time.Time, bool) {
	baseValue := lastWateredAt
	if strings.TrimSpace(baseValue) == "" {
		baseValue = createdAt
	}
	base, ok := ParseTimestamp(baseValue)
	if !ok {
		return time.Time{}, false
	}
	if intervalDays <= 0 {
		intervalDays = models.DefaultWaterIntervalDays
	}
	return base.Add(time.Duration(intervalDays) * 24 * time.Hour), true
}

// HumanDelta renders the signed distance between target and now as "today",
// "in Nd" or "Nd ago". N is the floor of the duration in whole days, so an
// instant one hour in the past already reads "1d ago" while 23 hours ahead
// is still "today".
func HumanDelta(target time.Time, now time.Time) string {
	if target.IsZero() {
		return ""
	}
	days := int(math.Floor(target.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// IsDue reports whether the next watering instant is at or before now.
func IsDue(next time.Time, now time.Time) bool {
	return !next.After(now)
}
