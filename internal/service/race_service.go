package service

import (
	"errors"

	"github.com/Kendal-dot/racebuddy/internal/domain"
)

// --- Error Definitions ---
var (
	ErrRaceNotFound = errors.New("race not found")
)

// RaceService serves the static race catalogue and its tips. The
// catalogue is read-only after construction.
type RaceService interface {
	ListRaces() []domain.Race
	GetRace(raceID string) (domain.Race, error)
	GetTips(raceID string) ([]domain.RaceTip, error)
}

type raceService struct {
	races map[string]domain.Race
	order []string
	tips  map[string][]domain.RaceTip
}

// NewRaceService creates a race catalogue service over the built-in
// race data.
func NewRaceService() RaceService {
	s := &raceService{
		races: make(map[string]domain.Race),
		tips:  make(map[string][]domain.RaceTip),
	}
	for _, r := range builtinRaces {
		s.races[r.ID] = r
		s.order = append(s.order, r.ID)
	}
	for id, tips := range builtinTips {
		s.tips[id] = tips
	}
	return s
}

func (s *raceService) ListRaces() []domain.Race {
	races := make([]domain.Race, 0, len(s.order))
	for _, id := range s.order {
		races = append(races, s.races[id])
	}
	return races
}

func (s *raceService) GetRace(raceID string) (domain.Race, error) {
	race, ok := s.races[raceID]
	if !ok {
		return domain.Race{}, ErrRaceNotFound
	}
	return race, nil
}

func (s *raceService) GetTips(raceID string) ([]domain.RaceTip, error) {
	if _, ok := s.races[raceID]; !ok {
		return nil, ErrRaceNotFound
	}
	return s.tips[raceID], nil
}

// builtinRaces is the supported race catalogue.
var builtinRaces = []domain.Race{
	{
		ID:         "lidingo",
		Name:       "Lidingöloppet",
		DistanceKm: 30,
		Location:   "Lidingö, Stockholm",
		Description: "Lidingöloppet is one of Sweden's most traditional cross-country races and a " +
			"cornerstone of En Svensk Klassiker. The course crosses Lidingö's varied terrain with " +
			"forest sections, rocky passages and open ground. At 30 kilometers with roughly 400 " +
			"meters of climbing it demands both endurance and technical skill.",
		ElevationGainM:    400,
		TypicalConditions: "Autumn weather, 5-15°C, risk of rain and wet ground",
		KeyChallenges: []string{
			"Technical rocky sections around kilometers 8-12",
			"Long climb at kilometer 15",
			"Slippery footing in rain",
			"Dense forest with root-covered trails",
			"Mentally demanding distance",
		},
	},
}

// builtinTips holds training and race-day advice per race, also used
// as retrieval context by the chat assistant.
var builtinTips = map[string][]domain.RaceTip{
	"lidingo": {
		{
			Category:  "Technical training",
			Tip:       "Train regularly on technical terrain with roots and rocks",
			Rationale: "Lidingöloppet has many technical sections that require familiarity",
		},
		{
			Category:  "Hill training",
			Tip:       "Include long, steady climbs in your training",
			Rationale: "The course has several extended climbs that demand hill strength",
		},
		{
			Category:  "Long runs",
			Tip:       "Build up to sessions of 2-2.5 hours to handle the distance",
			Rationale: "30 km requires solid base endurance and mental strength",
		},
		{
			Category:  "Race day",
			Tip:       "Eat a proper breakfast 2-3 hours before the start and warm up thoroughly",
			Rationale: "A 30 km race burns through glycogen stores; starting cold risks early fatigue",
		},
		{
			Category:  "Pacing",
			Tip:       "Hold back on the first 10 km and save energy for the hills after kilometer 15",
			Rationale: "The hardest climbing comes in the second half of the course",
		},
	},
}
