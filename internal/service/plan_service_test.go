package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

func validTestRequest() domain.RacePlanRequest {
	return domain.RacePlanRequest{
		Profile: domain.Profile{
			Gender:              domain.GenderFemale,
			HeightCm:            170,
			WeightKg:            65,
			Age:                 32,
			FitnessLevel:        domain.LevelIntermediate,
			TrainingDaysPerWeek: 4,
		},
		RaceID:     "lidingo",
		TargetTime: 3 * time.Hour,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RaceDate:   time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RacePlanRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *domain.RacePlanRequest) {}, wantErr: false},
		{name: "height too low", mutate: func(r *domain.RacePlanRequest) { r.Profile.HeightCm = 90 }, wantErr: true},
		{name: "height too high", mutate: func(r *domain.RacePlanRequest) { r.Profile.HeightCm = 260 }, wantErr: true},
		{name: "weight too low", mutate: func(r *domain.RacePlanRequest) { r.Profile.WeightKg = 25 }, wantErr: true},
		{name: "underage", mutate: func(r *domain.RacePlanRequest) { r.Profile.Age = 17 }, wantErr: true},
		{name: "age too high", mutate: func(r *domain.RacePlanRequest) { r.Profile.Age = 101 }, wantErr: true},
		{name: "unknown gender", mutate: func(r *domain.RacePlanRequest) { r.Profile.Gender = "unknown" }, wantErr: true},
		{name: "unknown fitness level", mutate: func(r *domain.RacePlanRequest) { r.Profile.FitnessLevel = "elite" }, wantErr: true},
		{name: "zero target time", mutate: func(r *domain.RacePlanRequest) { r.TargetTime = 0 }, wantErr: true},
		{name: "missing start date", mutate: func(r *domain.RacePlanRequest) { r.StartDate = time.Time{} }, wantErr: true},
		{name: "missing race date", mutate: func(r *domain.RacePlanRequest) { r.RaceDate = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(&req)

			err := validateRequest(req)
			if tt.wantErr {
				if !errors.Is(err, ErrValidationFailed) {
					t.Fatalf("validateRequest() error = %v, want ErrValidationFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateRequest() unexpected error: %v", err)
			}
		})
	}
}

func TestFormatTargetTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{3 * time.Hour, "03:00:00"},
		{2*time.Hour + 45*time.Minute + 30*time.Second, "02:45:30"},
		{59 * time.Minute, "00:59:00"},
		{10*time.Hour + 5*time.Second, "10:00:05"},
	}
	for _, tt := range tests {
		if got := formatTargetTime(tt.in); got != tt.want {
			t.Errorf("formatTargetTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
