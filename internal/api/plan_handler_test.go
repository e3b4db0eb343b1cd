package api

import (
	"testing"
	"time"
)

func TestParseTargetTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "03:00:00", want: 3 * time.Hour},
		{in: "2:45:30", want: 2*time.Hour + 45*time.Minute + 30*time.Second},
		{in: "0:59:59", want: 59*time.Minute + 59*time.Second},
		{in: "03:00", wantErr: true},
		{in: "three hours", wantErr: true},
		{in: "03:75:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTargetTime(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseTargetTime(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTargetTime(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseTargetTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGeneratePlanRequestToDomain(t *testing.T) {
	base := GeneratePlanRequest{
		Profile: ProfileRequest{
			Gender:              "female",
			HeightCm:            170,
			WeightKg:            65,
			Age:                 32,
			FitnessLevel:        "intermediate",
			TrainingDaysPerWeek: 4,
		},
		RaceID:     "lidingo",
		TargetTime: "03:00:00",
		StartDate:  "2024-01-01",
		RaceDate:   "2024-03-25",
	}

	t.Run("valid", func(t *testing.T) {
		got, err := base.toDomain()
		if err != nil {
			t.Fatalf("toDomain() error: %v", err)
		}
		if got.TargetTime != 3*time.Hour {
			t.Errorf("TargetTime = %v, want 3h", got.TargetTime)
		}
		if got.StartDate.Weekday() != time.Monday {
			t.Errorf("StartDate weekday = %v, want Monday", got.StartDate.Weekday())
		}
		if got.RaceDate.Sub(got.StartDate) != 84*24*time.Hour {
			t.Errorf("date span = %v, want 84 days", got.RaceDate.Sub(got.StartDate))
		}
	})

	t.Run("bad start date", func(t *testing.T) {
		req := base
		req.StartDate = "01/01/2024"
		if _, err := req.toDomain(); err == nil {
			t.Error("toDomain() accepted malformed start_date")
		}
	})

	t.Run("bad target time", func(t *testing.T) {
		req := base
		req.TargetTime = "3h"
		if _, err := req.toDomain(); err == nil {
			t.Error("toDomain() accepted malformed target_time")
		}
	})
}
