package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

func TestBuildPaceSetRacePace(t *testing.T) {
	// 3:00:00 over 30 km is exactly 6:00/km.
	paces, err := BuildPaceSet(3*time.Hour, 30, domain.LevelIntermediate)
	if err != nil {
		t.Fatalf("BuildPaceSet returned error: %v", err)
	}
	if got := paces[domain.ZoneRace]; got != 6*time.Minute {
		t.Errorf("race pace = %v, want %v", got, 6*time.Minute)
	}
	if got := paces.Format(domain.ZoneRace); got != "6:00/km" {
		t.Errorf("formatted race pace = %q, want %q", got, "6:00/km")
	}
}

func TestBuildPaceSetZoneOrdering(t *testing.T) {
	levels := []domain.FitnessLevel{
		domain.LevelBeginner,
		domain.LevelIntermediate,
		domain.LevelAdvanced,
	}
	for _, level := range levels {
		t.Run(string(level), func(t *testing.T) {
			paces, err := BuildPaceSet(3*time.Hour, 30, level)
			if err != nil {
				t.Fatalf("BuildPaceSet returned error: %v", err)
			}
			// Easy must be slower than tempo, tempo slower than
			// threshold, threshold slower than interval.
			order := []domain.PaceZone{
				domain.ZoneEasy,
				domain.ZoneTempo,
				domain.ZoneThreshold,
				domain.ZoneInterval,
			}
			for i := 0; i < len(order)-1; i++ {
				if paces[order[i]] <= paces[order[i+1]] {
					t.Errorf("%s pace %v not slower than %s pace %v",
						order[i], paces[order[i]], order[i+1], paces[order[i+1]])
				}
			}
		})
	}
}

func TestBuildPaceSetBeginnerWiderEasyGap(t *testing.T) {
	beginner, err := BuildPaceSet(3*time.Hour, 30, domain.LevelBeginner)
	if err != nil {
		t.Fatalf("BuildPaceSet returned error: %v", err)
	}
	advanced, err := BuildPaceSet(3*time.Hour, 30, domain.LevelAdvanced)
	if err != nil {
		t.Fatalf("BuildPaceSet returned error: %v", err)
	}
	bGap := beginner[domain.ZoneEasy] - beginner[domain.ZoneRace]
	aGap := advanced[domain.ZoneEasy] - advanced[domain.ZoneRace]
	if bGap <= aGap {
		t.Errorf("beginner easy/race gap %v not wider than advanced %v", bGap, aGap)
	}
}

func TestBuildPaceSetInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		targetTime time.Duration
		distanceKm float64
		level      domain.FitnessLevel
	}{
		{"zero target time", 0, 30, domain.LevelBeginner},
		{"negative target time", -time.Hour, 30, domain.LevelBeginner},
		{"zero distance", 3 * time.Hour, 0, domain.LevelBeginner},
		{"unknown level", 3 * time.Hour, 30, domain.FitnessLevel("elite")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPaceSet(tt.targetTime, tt.distanceKm, tt.level)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("BuildPaceSet error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
