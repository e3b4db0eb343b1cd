package plan

import (
	"fmt"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

// Generator assembles complete training plans. It holds only
// read-only data (the race catalogue and scheduling config), so one
// instance serves concurrent requests without locking.
type Generator struct {
	races    map[string]domain.Race
	schedule ScheduleConfig
}

// NewGenerator creates a Generator over the given race catalogue.
func NewGenerator(races []domain.Race, schedule ScheduleConfig) *Generator {
	byID := make(map[string]domain.Race, len(races))
	for _, r := range races {
		byID[r.ID] = r
	}
	return &Generator{races: byID, schedule: schedule}
}

// Generate runs the full pipeline for one request: paces and the
// weekly volume curve are derived independently, the scheduler maps
// each week onto concrete calendar days, and the results are merged
// into the final immutable plan. Generation is all-or-nothing; no
// partial plan is ever returned.
func (g *Generator) Generate(req domain.RacePlanRequest) (*domain.TrainingPlan, error) {
	race, ok := g.races[req.RaceID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown race %q", ErrInvalidInput, req.RaceID)
	}
	if !req.StartDate.Before(req.RaceDate) {
		return nil, fmt.Errorf("%w: start date must be before race date", ErrInvalidInput)
	}

	totalWeeks := TotalWeeks(req.StartDate, req.RaceDate)
	if totalWeeks < 2 {
		return nil, fmt.Errorf("%w: %d week(s) between start and race day", ErrInsufficientTime, totalWeeks)
	}

	paces, err := BuildPaceSet(req.TargetTime, race.DistanceKm, req.Profile.FitnessLevel)
	if err != nil {
		return nil, err
	}

	weeks, err := PlanWeeks(totalWeeks, req.Profile.FitnessLevel, req.StartDate)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, totalWeeks*7)
	totalKm := 0.0
	for _, week := range weeks {
		weekSessions, err := ScheduleWeek(week, req.Profile.TrainingDaysPerWeek, paces, g.schedule)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, weekSessions...)
		totalKm += sumDistances(weekSessions)
	}

	return &domain.TrainingPlan{
		Summary: domain.PlanSummary{
			RaceID:          race.ID,
			RaceName:        race.Name,
			TotalWeeks:      totalWeeks,
			TotalDistanceKm: roundKm(totalKm),
			StartDate:       req.StartDate,
			RaceDate:        req.RaceDate,
		},
		Paces:    paces,
		Weeks:    weeks,
		Sessions: sessions,
	}, nil
}
