package plan

import "github.com/Kendal-dot/racebuddy/internal/domain"

// Static configuration tables for the generator. Loaded once at
// process start and never mutated, so concurrent generations can share
// them without locking.

// paceOffsets are multiplicative offsets applied to the race pace to
// derive the other zones. Values > 1 are slower than race pace,
// values < 1 faster. Beginners get a wider easy/race gap to keep the
// bulk of their running gentle.
type paceOffsets struct {
	Easy      float64
	Tempo     float64
	Threshold float64
	Interval  float64
}

var paceOffsetsByLevel = map[domain.FitnessLevel]paceOffsets{
	domain.LevelBeginner:     {Easy: 1.40, Tempo: 1.08, Threshold: 1.02, Interval: 0.92},
	domain.LevelIntermediate: {Easy: 1.30, Tempo: 1.05, Threshold: 0.98, Interval: 0.90},
	domain.LevelAdvanced:     {Easy: 1.22, Tempo: 1.02, Threshold: 0.95, Interval: 0.88},
}

// volumeRange bounds the weekly distance curve: StartKm is week 1,
// PeakKm is the last week before the taper.
type volumeRange struct {
	StartKm float64
	PeakKm  float64
}

var volumeByLevel = map[domain.FitnessLevel]volumeRange{
	domain.LevelBeginner:     {StartKm: 25, PeakKm: 45},
	domain.LevelIntermediate: {StartKm: 35, PeakKm: 60},
	domain.LevelAdvanced:     {StartKm: 45, PeakKm: 80},
}

const (
	// recoveryFactor scales a step-back week relative to the week
	// before it.
	recoveryFactor = 0.75
	// recoveryInterval inserts a step-back every Nth week.
	recoveryInterval = 4
	// taperFloor is the fraction of peak volume the final taper week
	// drops to.
	taperFloor = 0.45
)

// sessionTemplates maps (phase, training days per week) to the mix of
// session types for that week. The long run is always the final slot;
// the scheduler pins it to the preferred long-run day. New templates
// are added here without touching scheduling logic.
var sessionTemplates = map[domain.Phase]map[int][]domain.SessionType{
	domain.PhaseBase: {
		3: {domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
		4: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionLongRun},
		5: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
		6: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionLongRun},
		7: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
	},
	domain.PhaseBuild: {
		3: {domain.SessionTempo, domain.SessionInterval, domain.SessionLongRun},
		4: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionLongRun},
		5: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionEasyRun, domain.SessionLongRun},
		6: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionLongRun},
		7: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
	},
	domain.PhasePeak: {
		3: {domain.SessionTempo, domain.SessionInterval, domain.SessionLongRun},
		4: {domain.SessionTempo, domain.SessionInterval, domain.SessionEasyRun, domain.SessionLongRun},
		5: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionEasyRun, domain.SessionLongRun},
		6: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionLongRun},
		7: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionInterval, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
	},
	domain.PhaseTaper: {
		3: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionLongRun},
		4: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionLongRun},
		5: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
		6: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionLongRun},
		7: {domain.SessionEasyRun, domain.SessionTempo, domain.SessionEasyRun, domain.SessionCrossTrain, domain.SessionEasyRun, domain.SessionEasyRun, domain.SessionLongRun},
	},
}

// distanceShare is the fixed fraction of the weekly target each
// session type receives. Easy runs are not listed: they split whatever
// the fixed-share sessions leave over.
var distanceShare = map[domain.SessionType]float64{
	domain.SessionLongRun:    0.35,
	domain.SessionTempo:      0.20,
	domain.SessionInterval:   0.15,
	domain.SessionCrossTrain: 0.10,
}

// paceZoneBySession maps session types to the pace zone printed on the
// session. Rest and cross-training carry no pace.
var paceZoneBySession = map[domain.SessionType]domain.PaceZone{
	domain.SessionEasyRun:  domain.ZoneEasy,
	domain.SessionLongRun:  domain.ZoneEasy,
	domain.SessionTempo:    domain.ZoneTempo,
	domain.SessionInterval: domain.ZoneInterval,
}

// preferredDayOffsets orders weekday slots (offsets from the Monday
// week start) by how runners conventionally fill them: Mon, Wed, Fri,
// Sat first, then Tue, Thu, Sun.
var preferredDayOffsets = []int{0, 2, 4, 5, 1, 3, 6}

// focusByPhase is the descriptive label copied onto each session.
var focusByPhase = map[domain.Phase]string{
	domain.PhaseBase:  "Base building",
	domain.PhaseBuild: "Strength and speed",
	domain.PhasePeak:  "Race preparation",
	domain.PhaseTaper: "Taper",
}
