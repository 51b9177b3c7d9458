package entities

import (
	"testing"
)

func TestClockTimeString(t *testing.T) {
	tests := []struct {
		name string
		time ClockTime
		want string
	}{
		{"start of day", ClockTime(8.0), "08:00"},
		{"half hour", ClockTime(8.5), "08:30"},
		{"minute rounding carries to next hour", ClockTime(8.9999), "09:00"},
		{"quarter hour", ClockTime(13.25), "13:15"},
		{"past midnight without rollover", ClockTime(25.5), "25:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.time.String(); got != tt.want {
				t.Errorf("ClockTime(%v).String() = %q, want %q", float64(tt.time), got, tt.want)
			}
		})
	}
}

func TestClockTimeAdd(t *testing.T) {
	start := ClockTime(8.0)
	later := start.Add(2.5)
	if later.String() != "10:30" {
		t.Errorf("expected 10:30, got %s", later)
	}
	if !start.Before(later) {
		t.Error("expected start to be before later")
	}
}
