package progress

import (
	"testing"
	"time"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float64
		wantOK   bool
	}{
		{"quarter", 50 * time.Second, 200 * time.Second, 0.25, true},
		{"start", 0, 200 * time.Second, 0, true},
		{"end", 200 * time.Second, 200 * time.Second, 1, true},
		{"past end clamps", 250 * time.Second, 200 * time.Second, 1, true},
		{"unknown duration", 50 * time.Second, 0, 0, false},
		{"negative duration", 50 * time.Second, -time.Second, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Fraction(tt.elapsed, tt.duration)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Fraction(%v, %v) = (%v, %v), want (%v, %v)",
					tt.elapsed, tt.duration, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	got, ok := Percent(50*time.Second, 200*time.Second)
	if !ok || got != 25 {
		t.Errorf("Percent() = (%v, %v), want (25, true)", got, ok)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{50 * time.Second, "0:50"},
		{125 * time.Second, "2:05"},
		{59*time.Second + 999*time.Millisecond, "0:59"},
		{60 * time.Second, "1:00"},
		{61 * time.Minute, "61:00"},
		{-5 * time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSeekTarget(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		duration time.Duration
		want     time.Duration
		wantOK   bool
	}{
		{"half of 120s", 0.5, 120 * time.Second, 60 * time.Second, true},
		{"start", 0, 120 * time.Second, 0, true},
		{"clamped above", 1.5, 120 * time.Second, 120 * time.Second, true},
		{"clamped below", -0.2, 120 * time.Second, 0, true},
		{"unknown duration", 0.5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SeekTarget(tt.fraction, tt.duration)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SeekTarget(%v, %v) = (%v, %v), want (%v, %v)",
					tt.fraction, tt.duration, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClickFraction(t *testing.T) {
	tests := []struct {
		x, left, width int
		want           float64
	}{
		{10, 10, 40, 0},
		{30, 10, 40, 0.5},
		{50, 10, 40, 1},
		{5, 10, 40, 0},
		{90, 10, 40, 1},
		{10, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := ClickFraction(tt.x, tt.left, tt.width); got != tt.want {
			t.Errorf("ClickFraction(%d, %d, %d) = %v, want %v", tt.x, tt.left, tt.width, got, tt.want)
		}
	}
}
