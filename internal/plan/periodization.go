package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

// TotalWeeks counts whole weeks between the training start and race
// day, rounding down, with a floor of one.
func TotalWeeks(startDate, raceDate time.Time) int {
	days := int(raceDate.Sub(startDate).Hours() / 24)
	weeks := days / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}

// phaseAllocation is the number of weeks given to each phase.
type phaseAllocation struct {
	Base  int
	Build int
	Peak  int
	Taper int
}

// allocatePhases splits the timeline into base/build/peak/taper weeks
// using the ~40/35/15/10 proportions. Every phase keeps at least one
// week once the timeline has room for all four; rounding remainders go
// to the build phase. Timelines of two or three weeks compress to
// base(+build)+taper only.
func allocatePhases(totalWeeks int) phaseAllocation {
	switch {
	case totalWeeks <= 2:
		return phaseAllocation{Base: 1, Taper: 1}
	case totalWeeks == 3:
		return phaseAllocation{Base: 1, Build: 1, Taper: 1}
	}

	taper := int(math.Ceil(0.10 * float64(totalWeeks)))
	peak := int(math.Round(0.15 * float64(totalWeeks)))
	base := int(math.Round(0.40 * float64(totalWeeks)))
	if peak < 1 {
		peak = 1
	}
	if base < 1 {
		base = 1
	}

	build := totalWeeks - base - peak - taper
	// Rounding can squeeze build out on short timelines; borrow back
	// from the larger phases so every phase keeps a week.
	for build < 1 && base > 1 {
		base--
		build++
	}
	for build < 1 && peak > 1 {
		peak--
		build++
	}
	return phaseAllocation{Base: base, Build: build, Peak: peak, Taper: taper}
}

// phaseForWeek resolves a 1-based week number against the allocation
// boundaries.
func (a phaseAllocation) phaseForWeek(week int) domain.Phase {
	switch {
	case week <= a.Base:
		return domain.PhaseBase
	case week <= a.Base+a.Build:
		return domain.PhaseBuild
	case week <= a.Base+a.Build+a.Peak:
		return domain.PhasePeak
	default:
		return domain.PhaseTaper
	}
}

// PlanWeeks builds the periodized weekly volume curve: a monotonic
// ramp from the level's starting volume to its peak across base, build
// and peak, a step-back recovery week every 4th week (skipped on
// timelines under 4 weeks, where compressing further is unsafe), and a
// strictly decreasing taper down to taperFloor of peak volume.
func PlanWeeks(totalWeeks int, level domain.FitnessLevel, startDate time.Time) ([]domain.WeekPlan, error) {
	if totalWeeks < 2 {
		return nil, fmt.Errorf("%w: %d week(s) between start and race day", ErrInsufficientTime, totalWeeks)
	}
	vol, ok := volumeByLevel[level]
	if !ok {
		return nil, fmt.Errorf("%w: unknown fitness level %q", ErrInvalidInput, level)
	}

	alloc := allocatePhases(totalWeeks)
	rampWeeks := totalWeeks - alloc.Taper

	weeks := make([]domain.WeekPlan, 0, totalWeeks)
	for w := 1; w <= totalWeeks; w++ {
		weekStart := startDate.AddDate(0, 0, (w-1)*7)
		wp := domain.WeekPlan{
			WeekNumber: w,
			Phase:      alloc.phaseForWeek(w),
			StartDate:  weekStart,
			EndDate:    weekStart.AddDate(0, 0, 6),
		}

		if wp.Phase == domain.PhaseTaper {
			taperIndex := w - rampWeeks // 1-based within the taper
			factor := 1.0 - (1.0-taperFloor)*float64(taperIndex)/float64(alloc.Taper)
			wp.TargetDistanceKm = roundKm(rampVolume(rampWeeks, rampWeeks, vol) * factor)
		} else if totalWeeks >= recoveryInterval && w%recoveryInterval == 0 {
			// Step-back rule: recovery relative to the prior week.
			wp.IsRecoveryWeek = true
			wp.TargetDistanceKm = roundKm(weeks[len(weeks)-1].TargetDistanceKm * recoveryFactor)
		} else {
			wp.TargetDistanceKm = roundKm(rampVolume(w, rampWeeks, vol))
		}

		weeks = append(weeks, wp)
	}
	return weeks, nil
}

// rampVolume interpolates linearly between the starting and peak
// weekly volume across the pre-taper weeks.
func rampVolume(week, rampWeeks int, vol volumeRange) float64 {
	if rampWeeks <= 1 {
		return vol.StartKm
	}
	frac := float64(week-1) / float64(rampWeeks-1)
	return vol.StartKm + (vol.PeakKm-vol.StartKm)*frac
}

func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
