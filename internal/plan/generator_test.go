package plan

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

var testRaces = []domain.Race{
	{ID: "lidingo", Name: "Lidingöloppet", DistanceKm: 30},
}

func testRequest() domain.RacePlanRequest {
	return domain.RacePlanRequest{
		Profile: domain.Profile{
			Gender:              domain.GenderFemale,
			HeightCm:            172,
			WeightKg:            65,
			Age:                 34,
			FitnessLevel:        domain.LevelIntermediate,
			TrainingDaysPerWeek: 4,
		},
		RaceID:     "lidingo",
		TargetTime: 3 * time.Hour,
		StartDate:  date(2024, 1, 1),
		RaceDate:   date(2024, 3, 25),
	}
}

func TestGenerateTwelveWeekPlan(t *testing.T) {
	g := NewGenerator(testRaces, ScheduleConfig{})
	p, err := g.Generate(testRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if p.Summary.TotalWeeks != 12 {
		t.Errorf("total weeks = %d, want 12", p.Summary.TotalWeeks)
	}
	if len(p.Weeks) != 12 {
		t.Fatalf("got %d week plans, want 12", len(p.Weeks))
	}
	if len(p.Sessions) != 12*7 {
		t.Fatalf("got %d sessions, want %d", len(p.Sessions), 12*7)
	}

	// Week numbers contiguous from 1 with no gaps.
	for i, w := range p.Weeks {
		if w.WeekNumber != i+1 {
			t.Errorf("week at index %d numbered %d", i, w.WeekNumber)
		}
	}

	// Per-week session distances match the week target within 0.5 km,
	// and each week has exactly 4 training and 3 rest sessions.
	perWeek := make(map[int][]domain.Session)
	for _, s := range p.Sessions {
		perWeek[s.WeekNumber] = append(perWeek[s.WeekNumber], s)
	}
	for _, w := range p.Weeks {
		sessions := perWeek[w.WeekNumber]
		if len(sessions) != 7 {
			t.Fatalf("week %d has %d sessions", w.WeekNumber, len(sessions))
		}
		if diff := math.Abs(sumDistances(sessions) - w.TargetDistanceKm); diff > 0.5 {
			t.Errorf("week %d sessions sum to %.1f, target %.1f",
				w.WeekNumber, sumDistances(sessions), w.TargetDistanceKm)
		}
		nonRest := 0
		for _, s := range sessions {
			if s.Type != domain.SessionRest {
				nonRest++
			}
		}
		if nonRest != 4 {
			t.Errorf("week %d has %d training sessions, want 4", w.WeekNumber, nonRest)
		}
	}

	// Sessions ordered by (week number, date) and dates unique.
	for i := 1; i < len(p.Sessions); i++ {
		prev, cur := p.Sessions[i-1], p.Sessions[i]
		if cur.WeekNumber < prev.WeekNumber {
			t.Fatalf("sessions out of week order at index %d", i)
		}
		if cur.WeekNumber == prev.WeekNumber && !prev.Date.Before(cur.Date) {
			t.Fatalf("session dates not strictly increasing at index %d", i)
		}
	}

	// Plan total equals the sum over weeks.
	want := 0.0
	for _, w := range p.Weeks {
		want += sumDistances(perWeek[w.WeekNumber])
	}
	if diff := math.Abs(p.Summary.TotalDistanceKm - want); diff > 0.1 {
		t.Errorf("summary total %.1f, sessions total %.1f", p.Summary.TotalDistanceKm, want)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	g := NewGenerator(testRaces, ScheduleConfig{})
	first, err := g.Generate(testRequest())
	if err != nil {
		t.Fatalf("first Generate error: %v", err)
	}
	second, err := g.Generate(testRequest())
	if err != nil {
		t.Fatalf("second Generate error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests produced different plans")
	}
}

func TestGenerateErrorKinds(t *testing.T) {
	g := NewGenerator(testRaces, ScheduleConfig{})

	tests := []struct {
		name   string
		mutate func(*domain.RacePlanRequest)
		want   error
	}{
		{
			"unknown race",
			func(r *domain.RacePlanRequest) { r.RaceID = "vasaloppet" },
			ErrInvalidInput,
		},
		{
			"start after race",
			func(r *domain.RacePlanRequest) { r.StartDate = date(2024, 4, 1) },
			ErrInvalidInput,
		},
		{
			"zero target time",
			func(r *domain.RacePlanRequest) { r.TargetTime = 0 },
			ErrInvalidInput,
		},
		{
			"one week to race",
			func(r *domain.RacePlanRequest) { r.RaceDate = date(2024, 1, 10) },
			ErrInsufficientTime,
		},
		{
			"too many training days",
			func(r *domain.RacePlanRequest) { r.Profile.TrainingDaysPerWeek = 8 },
			ErrInvalidScheduleConstraint,
		},
		{
			"too few training days",
			func(r *domain.RacePlanRequest) { r.Profile.TrainingDaysPerWeek = 2 },
			ErrInvalidScheduleConstraint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(&req)
			_, err := g.Generate(req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Generate error = %v, want %v", err, tt.want)
			}
		})
	}
}
