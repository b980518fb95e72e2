package services

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{
			name:  "rfc3339",
			value: "2026-03-01T10:30:00Z",
			want:  time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "rfc3339 with fraction and offset",
			value: "2026-03-01T10:30:00.250000+00:00",
			want:  time.Date(2026, 3, 1, 10, 30, 0, 250000000, time.UTC),
			ok:    true,
		},
		{
			name:  "bare datetime read as utc",
			value: "2026-03-01T10:30:00",
			want:  time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date only",
			value: "2026-03-01",
			want:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "garbage",
			value: "not-a-timestamp",
			ok:    false,
		},
		{
			name:  "empty",
			value: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("ParseTimestamp(%q) = %s, want %s", tt.value, got.Format(time.RFC3339Nano), tt.want.Format(time.RFC3339Nano))
			}
		})
	}
}

func TestFormatTimestampNormalizesToUTC(t *testing.T) {
	offset := time.FixedZone("UTC+3", 3*60*60)
	value := time.Date(2026, 3, 1, 13, 0, 0, 0, offset)

	if got := FormatTimestamp(value); got != "2026-03-01T10:00:00Z" {
		t.Fatalf("FormatTimestamp() = %q, want %q", got, "2026-03-01T10:00:00Z")
	}
}

func TestNextWateringFromCreationWhenNeverWatered(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	next, ok := NextWatering(FormatTimestamp(created), "", 3)
	if !ok {
		t.Fatal("expected a computable next watering")
	}
	if want := created.Add(3 * 24 * time.Hour); !next.Equal(want) {
		t.Fatalf("NextWatering() = %s, want %s", next.Format(time.RFC3339), want.Format(time.RFC3339))
	}
}

func TestNextWateringFromLatestEvent(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	watered := created.Add(24 * time.Hour)

	next, ok := NextWatering(FormatTimestamp(created), FormatTimestamp(watered), 3)
	if !ok {
		t.Fatal("expected a computable next watering")
	}
	if want := watered.Add(3 * 24 * time.Hour); !next.Equal(want) {
		t.Fatalf("NextWatering() = %s, want %s", next.Format(time.RFC3339), want.Format(time.RFC3339))
	}
}

func TestNextWateringAbsentWhenBaseUnparsable(t *testing.T) {
	if _, ok := NextWatering("broken", "", 7); ok {
		t.Fatal("expected absent next watering for unparsable creation timestamp")
	}
	if _, ok := NextWatering("2026-03-01T09:00:00Z", "broken", 7); ok {
		t.Fatal("expected absent next watering for unparsable last-watered timestamp")
	}
}

func TestNextWateringDefaultsNonPositiveInterval(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	next, ok := NextWatering(FormatTimestamp(created), "", 0)
	if !ok {
		t.Fatal("expected a computable next watering")
	}
	if want := created.Add(7 * 24 * time.Hour); !next.Equal(want) {
		t.Fatalf("NextWatering() = %s, want %s", next.Format(time.RFC3339), want.Format(time.RFC3339))
	}
}

func TestHumanDelta(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{name: "same instant", target: now, want: "today"},
		{name: "later the same day", target: now.Add(23 * time.Hour), want: "today"},
		{name: "just over a day ahead", target: now.Add(25 * time.Hour), want: "in 1d"},
		{name: "three days ahead", target: now.Add(3 * 24 * time.Hour), want: "in 3d"},
		{name: "an hour ago floors to a full day", target: now.Add(-time.Hour), want: "1d ago"},
		{name: "past days floor away from zero", target: now.Add(-49 * time.Hour), want: "3d ago"},
		{name: "zero target", target: time.Time{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanDelta(tt.target, now); got != tt.want {
				t.Fatalf("HumanDelta() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHumanDeltaStableForFrozenNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	target := now.Add(10 * time.Hour)

	first := HumanDelta(target, now)
	second := HumanDelta(target, now)
	if first != second || first != "today" {
		t.Fatalf("HumanDelta not stable: %q then %q", first, second)
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if !IsDue(now, now) {
		t.Fatal("next watering equal to now must be due")
	}
	if !IsDue(now.Add(-time.Minute), now) {
		t.Fatal("past next watering must be due")
	}
	if IsDue(now.Add(time.Minute), now) {
		t.Fatal("future next watering must not be due")
	}
}
