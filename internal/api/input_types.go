package api

import (
	"strconv"
	"strings"
)

// plantInput is the one normalized shape for incoming plant payloads, JSON or
// form-encoded alike. Pointer fields distinguish "absent" from "empty" so the
// update path can fall back to stored values.
type plantInput struct {
	Name              *string `json:"name" form:"name"`
	Species           *string `json:"species" form:"species"`
	Location          *string `json:"location" form:"location"`
	WaterIntervalDays *int    `json:"water_interval_days" form:"water_interval_days"`
	Notes             *string `json:"notes" form:"notes"`
}

type waterLogInput struct {
	WateredAt string `json:"watered_at" form:"watered_at"`
	Note      string `json:"note" form:"note"`
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

// resolveInterval validates a submitted watering interval: absent or zero
// falls back, anything below one day clamps to one.
func resolveInterval(value *int, fallback int) int {
	if value == nil || *value == 0 {
		return fallback
	}
	if *value < 1 {
		return 1
	}
	return *value
}

// parseIntervalField is the form-field variant: unparsable text falls back,
// non-positive values clamp to one.
func parseIntervalField(raw string, fallback int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return fallback
	}
	if value < 1 {
		return 1
	}
	return value
}
