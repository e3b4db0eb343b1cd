package plan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

// ScheduleConfig carries the scheduler's tunables. The zero value is
// usable: the long run lands on the last training day of the week.
type ScheduleConfig struct {
	// PreferredLongRunDay pins the long run to a specific weekday when
	// that weekday is one of the selected training days.
	PreferredLongRunDay *time.Weekday
}

// ScheduleWeek turns one WeekPlan into seven concrete sessions, one
// per calendar day. Training days come from the preferred-day table;
// the remaining weekdays become rest sessions. The week's target
// distance is split across the non-rest sessions using the fixed
// per-type shares, with the rounding remainder apportioned to the long
// run so the week total matches the target exactly.
func ScheduleWeek(week domain.WeekPlan, daysPerWeek int, paces domain.PaceSet, cfg ScheduleConfig) ([]domain.Session, error) {
	if daysPerWeek < 3 || daysPerWeek > 7 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScheduleConstraint, daysPerWeek)
	}

	template, ok := sessionTemplates[week.Phase][daysPerWeek]
	if !ok {
		return nil, fmt.Errorf("%w: no session template for phase %q with %d days", ErrInvalidInput, week.Phase, daysPerWeek)
	}

	distances := splitDistance(week.TargetDistanceKm, template)

	// Pick the training-day offsets and order them chronologically.
	offsets := append([]int(nil), preferredDayOffsets[:daysPerWeek]...)
	sort.Ints(offsets)

	longRunOffset := pickLongRunOffset(offsets, week.StartDate, cfg)

	// Fill the non-long slots onto the remaining training days in
	// template order.
	assignment := make(map[int]int, daysPerWeek) // day offset -> template slot
	slot := 0
	for _, off := range offsets {
		if off == longRunOffset {
			assignment[off] = len(template) - 1 // long run is the final slot
			continue
		}
		if template[slot] == domain.SessionLongRun {
			slot++
		}
		assignment[off] = slot
		slot++
	}

	focus := focusByPhase[week.Phase]
	sessions := make([]domain.Session, 0, 7)
	for day := 0; day < 7; day++ {
		date := week.StartDate.AddDate(0, 0, day)
		s := domain.Session{
			WeekNumber: week.WeekNumber,
			Date:       date,
			DayName:    date.Weekday().String(),
			Type:       domain.SessionRest,
			WeekFocus:  focus,
		}
		if idx, isTraining := assignment[day]; isTraining {
			s.Type = template[idx]
			s.DistanceKm = distances[idx]
			if zone, hasPace := paceZoneBySession[s.Type]; hasPace {
				s.Pace = paces.Format(zone)
			}
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// splitDistance apportions the weekly target across the template
// slots. Fixed-share types take their table fraction; easy runs split
// the remainder evenly. When a template has no easy runs the fixed
// shares are normalized instead.
func splitDistance(targetKm float64, template []domain.SessionType) []float64 {
	weights := make([]float64, len(template))
	fixedTotal := 0.0
	easyCount := 0
	for i, st := range template {
		if share, ok := distanceShare[st]; ok {
			weights[i] = share
			fixedTotal += share
		} else {
			easyCount++
		}
	}
	if easyCount > 0 {
		easyShare := (1.0 - fixedTotal) / float64(easyCount)
		for i, st := range template {
			if _, fixed := distanceShare[st]; !fixed && st != domain.SessionRest {
				weights[i] = easyShare
			}
		}
		fixedTotal = 1.0
	}

	distances := make([]float64, len(template))
	longIdx := 0
	allocated := 0.0
	for i, st := range template {
		distances[i] = roundKm(targetKm * weights[i] / fixedTotal)
		allocated += distances[i]
		if st == domain.SessionLongRun {
			longIdx = i
		}
	}
	// Rounding remainder goes to the long run.
	distances[longIdx] = roundKm(distances[longIdx] + targetKm - allocated)
	return distances
}

// pickLongRunOffset chooses the training-day offset carrying the long
// run: the configured weekday when it is a training day, otherwise the
// last training day of the week.
func pickLongRunOffset(offsets []int, weekStart time.Time, cfg ScheduleConfig) int {
	if cfg.PreferredLongRunDay != nil {
		for _, off := range offsets {
			if weekStart.AddDate(0, 0, off).Weekday() == *cfg.PreferredLongRunDay {
				return off
			}
		}
	}
	return offsets[len(offsets)-1]
}

// sumDistances totals session distances, rounded to one decimal.
func sumDistances(sessions []domain.Session) float64 {
	total := 0.0
	for _, s := range sessions {
		total += s.DistanceKm
	}
	return math.Round(total*10) / 10
}
