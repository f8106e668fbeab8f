package utils

import (
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"single night", day(1), day(2), 1},
		{"three nights", day(1), day(4), 3},
		{"partial day rounds up", day(1), day(2).Add(6 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	next := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("expected same calendar day")
	}
	if SameDay(night, next) {
		t.Error("expected different calendar days")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{28.799999999999997, 28.80},
		{0.005, 0.01},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", got)
	}
	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
