package plan

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

func testPaces(t *testing.T) domain.PaceSet {
	t.Helper()
	paces, err := BuildPaceSet(3*time.Hour, 30, domain.LevelIntermediate)
	if err != nil {
		t.Fatalf("BuildPaceSet returned error: %v", err)
	}
	return paces
}

func buildWeek(phase domain.Phase, targetKm float64) domain.WeekPlan {
	start := date(2024, 1, 1) // a Monday
	return domain.WeekPlan{
		WeekNumber:       1,
		Phase:            phase,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 6),
		TargetDistanceKm: targetKm,
	}
}

func TestScheduleWeekInvalidDayCount(t *testing.T) {
	paces := testPaces(t)
	for _, days := range []int{0, 2, 8} {
		_, err := ScheduleWeek(buildWeek(domain.PhaseBuild, 40), days, paces, ScheduleConfig{})
		if !errors.Is(err, ErrInvalidScheduleConstraint) {
			t.Errorf("days=%d: error = %v, want ErrInvalidScheduleConstraint", days, err)
		}
	}
}

func TestScheduleWeekBuildPhaseFourDays(t *testing.T) {
	paces := testPaces(t)
	week := buildWeek(domain.PhaseBuild, 40)

	sessions, err := ScheduleWeek(week, 4, paces, ScheduleConfig{})
	if err != nil {
		t.Fatalf("ScheduleWeek returned error: %v", err)
	}
	if len(sessions) != 7 {
		t.Fatalf("got %d sessions, want 7", len(sessions))
	}

	var nonRest, rest int
	var longRun *domain.Session
	for i := range sessions {
		s := sessions[i]
		if s.Type == domain.SessionRest {
			rest++
			if s.DistanceKm != 0 || s.Pace != "" {
				t.Errorf("rest session on %s has distance %.1f pace %q", s.DayName, s.DistanceKm, s.Pace)
			}
			continue
		}
		nonRest++
		if s.Type == domain.SessionLongRun {
			longRun = &sessions[i]
		}
	}
	if nonRest != 4 || rest != 3 {
		t.Errorf("got %d training / %d rest sessions, want 4 / 3", nonRest, rest)
	}

	// Weekly distances sum to the target within rounding tolerance.
	if diff := math.Abs(sumDistances(sessions) - week.TargetDistanceKm); diff > 0.5 {
		t.Errorf("session distances sum to %.1f, want %.1f +-0.5", sumDistances(sessions), week.TargetDistanceKm)
	}

	if longRun == nil {
		t.Fatal("no long run scheduled")
	}
	// With 4 training days the preferred offsets are Mon, Wed, Fri,
	// Sat; the long run defaults to the last of them.
	if longRun.Date.Weekday() != time.Saturday {
		t.Errorf("long run on %s, want Saturday", longRun.Date.Weekday())
	}
	// Long run carries the largest share of the week.
	for _, s := range sessions {
		if s.Type != domain.SessionLongRun && s.DistanceKm > longRun.DistanceKm {
			t.Errorf("%s session (%.1f km) longer than long run (%.1f km)", s.Type, s.DistanceKm, longRun.DistanceKm)
		}
	}
}

func TestScheduleWeekPaceAssignment(t *testing.T) {
	paces := testPaces(t)
	sessions, err := ScheduleWeek(buildWeek(domain.PhasePeak, 50), 5, paces, ScheduleConfig{})
	if err != nil {
		t.Fatalf("ScheduleWeek returned error: %v", err)
	}
	for _, s := range sessions {
		var want string
		switch s.Type {
		case domain.SessionEasyRun, domain.SessionLongRun:
			want = paces.Format(domain.ZoneEasy)
		case domain.SessionTempo:
			want = paces.Format(domain.ZoneTempo)
		case domain.SessionInterval:
			want = paces.Format(domain.ZoneInterval)
		case domain.SessionRest, domain.SessionCrossTrain:
			want = ""
		}
		if s.Pace != want {
			t.Errorf("%s session pace = %q, want %q", s.Type, s.Pace, want)
		}
	}
}

func TestScheduleWeekPreferredLongRunDay(t *testing.T) {
	paces := testPaces(t)
	wednesday := time.Wednesday
	cfg := ScheduleConfig{PreferredLongRunDay: &wednesday}

	// With 4 training days (Mon, Wed, Fri, Sat) the pin moves the long
	// run off the default Saturday onto Wednesday.
	sessions, err := ScheduleWeek(buildWeek(domain.PhaseBase, 45), 4, paces, cfg)
	if err != nil {
		t.Fatalf("ScheduleWeek returned error: %v", err)
	}
	found := false
	for _, s := range sessions {
		if s.Type == domain.SessionLongRun {
			found = true
			if s.Date.Weekday() != time.Wednesday {
				t.Errorf("long run on %s, want Wednesday", s.Date.Weekday())
			}
		}
	}
	if !found {
		t.Fatal("no long run scheduled")
	}

	// A pin on a non-training day falls back to the last training day.
	sunday := time.Sunday
	cfg = ScheduleConfig{PreferredLongRunDay: &sunday}
	sessions, err = ScheduleWeek(buildWeek(domain.PhaseBase, 45), 4, paces, cfg)
	if err != nil {
		t.Fatalf("ScheduleWeek returned error: %v", err)
	}
	for _, s := range sessions {
		if s.Type == domain.SessionLongRun && s.Date.Weekday() != time.Saturday {
			t.Errorf("long run on %s, want Saturday fallback", s.Date.Weekday())
		}
	}
}

func TestScheduleWeekDistancesSumAcrossTemplates(t *testing.T) {
	paces := testPaces(t)
	phases := []domain.Phase{domain.PhaseBase, domain.PhaseBuild, domain.PhasePeak, domain.PhaseTaper}
	for _, phase := range phases {
		for days := 3; days <= 7; days++ {
			week := buildWeek(phase, 42.5)
			sessions, err := ScheduleWeek(week, days, paces, ScheduleConfig{})
			if err != nil {
				t.Fatalf("ScheduleWeek(%s, %d) error: %v", phase, days, err)
			}
			if diff := math.Abs(sumDistances(sessions) - week.TargetDistanceKm); diff > 0.5 {
				t.Errorf("%s/%d days: distances sum to %.1f, want %.1f",
					phase, days, sumDistances(sessions), week.TargetDistanceKm)
			}
			nonRest := 0
			for _, s := range sessions {
				if s.Type != domain.SessionRest {
					nonRest++
				}
			}
			if nonRest != days {
				t.Errorf("%s/%d days: %d training sessions", phase, days, nonRest)
			}
		}
	}
}

func TestScheduleWeekDatesChronological(t *testing.T) {
	paces := testPaces(t)
	sessions, err := ScheduleWeek(buildWeek(domain.PhaseBase, 35), 3, paces, ScheduleConfig{})
	if err != nil {
		t.Fatalf("ScheduleWeek returned error: %v", err)
	}
	for i := 1; i < len(sessions); i++ {
		if !sessions[i-1].Date.Before(sessions[i].Date) {
			t.Errorf("session dates out of order at index %d", i)
		}
	}
	if sessions[0].DayName != "Monday" {
		t.Errorf("first day = %s, want Monday", sessions[0].DayName)
	}
}
