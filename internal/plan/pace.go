package plan

import (
	"fmt"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

// BuildPaceSet derives the named training paces from a goal finish
// time over a known race distance. The race pace is the goal time
// divided by the distance; every other zone is a fixed multiplicative
// offset from it, picked from the fitness-level table, so the same
// goal time yields a gentler intensity spread for a beginner than for
// an advanced runner.
func BuildPaceSet(targetTime time.Duration, distanceKm float64, level domain.FitnessLevel) (domain.PaceSet, error) {
	if targetTime <= 0 {
		return nil, fmt.Errorf("%w: target time must be positive, got %s", ErrInvalidInput, targetTime)
	}
	if distanceKm <= 0 {
		return nil, fmt.Errorf("%w: race distance must be positive, got %.1f km", ErrInvalidInput, distanceKm)
	}
	offsets, ok := paceOffsetsByLevel[level]
	if !ok {
		return nil, fmt.Errorf("%w: unknown fitness level %q", ErrInvalidInput, level)
	}

	racePace := time.Duration(float64(targetTime) / distanceKm)

	return domain.PaceSet{
		domain.ZoneRace:      racePace,
		domain.ZoneEasy:      scalePace(racePace, offsets.Easy),
		domain.ZoneTempo:     scalePace(racePace, offsets.Tempo),
		domain.ZoneThreshold: scalePace(racePace, offsets.Threshold),
		domain.ZoneInterval:  scalePace(racePace, offsets.Interval),
	}, nil
}

func scalePace(base time.Duration, factor float64) time.Duration {
	return time.Duration(float64(base) * factor).Round(time.Second)
}
