package datemath_test

import (
	"testing"
	"time"

	"smart-task-manager/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseRelative(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 42, 0, time.UTC) // Wednesday, May 1, 2024

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "today",
			text: "pay bills today",
			want: time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "tomorrow",
			text: "submit report tomorrow",
			want: time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "day after tomorrow wins over tomorrow",
			text: "dentist day after tomorrow",
			want: time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "next week",
			text: "review goals next week",
			want: time.Date(2024, 5, 8, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "next month",
			text: "renew subscription next month",
			want: time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "in N days",
			text: "follow up in 3 days",
			want: time.Date(2024, 5, 4, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "next monday from wednesday is five days ahead",
			text: "team sync monday",
			want: time.Date(2024, 5, 6, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "same weekday resolves to today",
			text: "gym on wednesday",
			want: time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "nothing recognizable defaults to tomorrow",
			text: "water the plants",
			want: time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.text, base)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseAbsoluteDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "day first with full year",
			text: "renew passport 25/12/2024",
			want: time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "day first with two digit year",
			text: "tax deadline 15-7-25",
			want: time.Date(2025, 7, 15, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "dash separators",
			text: "conference 9-10-2024",
			want: time.Date(2024, 10, 9, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.text, base)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "pm conversion",
			text: "meet John tomorrow at 3pm",
			want: time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "am with minutes",
			text: "standup today 9:15 am",
			want: time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			name: "12am is midnight",
			text: "batch job today 12am",
			want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "12pm is noon",
			text: "lunch today at 12pm",
			want: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "no clock time defaults to 23:59",
			text: "groceries tomorrow",
			want: time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.text, base)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got.Second() != 0 {
				t.Errorf("Parse(%q) seconds = %d, want 0", tt.text, got.Second())
			}
		})
	}
}
