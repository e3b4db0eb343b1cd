package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phase is a contiguous block of weeks with a shared training emphasis.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// SessionType identifies the kind of activity scheduled on a day.
type SessionType string

const (
	SessionEasyRun    SessionType = "easy_run"
	SessionLongRun    SessionType = "long_run"
	SessionTempo      SessionType = "tempo"
	SessionInterval   SessionType = "interval"
	SessionRest       SessionType = "rest"
	SessionCrossTrain SessionType = "cross_train"
)

// PaceZone is a named training intensity with a time-per-km target.
type PaceZone string

const (
	ZoneEasy      PaceZone = "easy"
	ZoneTempo     PaceZone = "tempo"
	ZoneThreshold PaceZone = "threshold"
	ZoneInterval  PaceZone = "interval"
	ZoneRace      PaceZone = "race"
)

// PaceSet maps pace zones to time-per-kilometer targets. Derived from
// the goal time once per plan and read-only afterwards.
type PaceSet map[PaceZone]time.Duration

// Format renders a zone's pace as "M:SS/km", the format consumed by
// the calendar export and the UI.
func (p PaceSet) Format(zone PaceZone) string {
	d, ok := p[zone]
	if !ok || d <= 0 {
		return ""
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d/km", total/60, total%60)
}

// RacePlanRequest carries everything needed to generate one plan.
// Owned by the request; not persisted beyond the generation call.
type RacePlanRequest struct {
	Profile    Profile       `json:"profile"`
	RaceID     string        `json:"race_id"`
	TargetTime time.Duration `json:"target_time"`
	StartDate  time.Time     `json:"start_date"`
	RaceDate   time.Time     `json:"race_date"`
}

// WeekPlan is one week of the periodized volume curve.
type WeekPlan struct {
	WeekNumber       int       `bson:"weekNumber" json:"week_number"`
	Phase            Phase     `bson:"phase" json:"phase"`
	StartDate        time.Time `bson:"startDate" json:"start_date"`
	EndDate          time.Time `bson:"endDate" json:"end_date"`
	TargetDistanceKm float64   `bson:"targetDistanceKm" json:"target_distance_km"`
	IsRecoveryWeek   bool      `bson:"isRecoveryWeek" json:"is_recovery_week"`
}

// Session is one scheduled calendar-day activity. Sessions are
// generated once per plan and never mutated.
type Session struct {
	WeekNumber int         `bson:"weekNumber" json:"week_number"`
	Date       time.Time   `bson:"date" json:"date"`
	DayName    string      `bson:"dayName" json:"day_name"`
	Type       SessionType `bson:"type" json:"type"`
	DistanceKm float64     `bson:"distanceKm" json:"distance_km"`
	Pace       string      `bson:"pace,omitempty" json:"pace,omitempty"`
	WeekFocus  string      `bson:"weekFocus" json:"week_focus"`
}

// PlanSummary is the plan-level roll-up shown by the presentation layer.
type PlanSummary struct {
	RaceID          string    `bson:"raceId" json:"race_id"`
	RaceName        string    `bson:"raceName" json:"race_name"`
	TotalWeeks      int       `bson:"totalWeeks" json:"total_weeks"`
	TotalDistanceKm float64   `bson:"totalDistanceKm" json:"total_distance_km"`
	StartDate       time.Time `bson:"startDate" json:"start_date"`
	RaceDate        time.Time `bson:"raceDate" json:"race_date"`
}

// TrainingPlan is the generator output: a summary plus the full
// session sequence ordered by (week number, date).
type TrainingPlan struct {
	Summary  PlanSummary `bson:"summary" json:"summary"`
	Paces    PaceSet     `bson:"-" json:"paces"`
	Weeks    []WeekPlan  `bson:"weeks" json:"weeks"`
	Sessions []Session   `bson:"sessions" json:"sessions"`
}

// StoredPlan is the persisted form of a generated plan: the plan
// itself, the request echo needed by downstream formatting, and the
// object key of the exported calendar file.
type StoredPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Profile    Profile            `bson:"profile" json:"profile"`
	RaceID     string             `bson:"raceId" json:"race_id"`
	TargetTime string             `bson:"targetTime" json:"target_time"`
	Plan       TrainingPlan       `bson:"plan" json:"plan"`
	IcsKey     string             `bson:"icsKey,omitempty" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}
