package service

import (
	"errors"
	"testing"
)

func TestRaceCatalogue(t *testing.T) {
	s := NewRaceService()

	races := s.ListRaces()
	if len(races) == 0 {
		t.Fatal("ListRaces() returned an empty catalogue")
	}

	for _, race := range races {
		if race.ID == "" || race.Name == "" {
			t.Errorf("race %+v missing ID or name", race)
		}
		if race.DistanceKm <= 0 {
			t.Errorf("race %s has non-positive distance %v", race.ID, race.DistanceKm)
		}

		got, err := s.GetRace(race.ID)
		if err != nil {
			t.Fatalf("GetRace(%q) error: %v", race.ID, err)
		}
		if got.Name != race.Name {
			t.Errorf("GetRace(%q) = %q, want %q", race.ID, got.Name, race.Name)
		}
	}
}

func TestRaceCatalogueUnknownRace(t *testing.T) {
	s := NewRaceService()

	if _, err := s.GetRace("nope"); !errors.Is(err, ErrRaceNotFound) {
		t.Errorf("GetRace(unknown) error = %v, want ErrRaceNotFound", err)
	}
	if _, err := s.GetTips("nope"); !errors.Is(err, ErrRaceNotFound) {
		t.Errorf("GetTips(unknown) error = %v, want ErrRaceNotFound", err)
	}
}

func TestRaceTipsComplete(t *testing.T) {
	s := NewRaceService()

	tips, err := s.GetTips("lidingo")
	if err != nil {
		t.Fatalf("GetTips(lidingo) error: %v", err)
	}
	if len(tips) == 0 {
		t.Fatal("GetTips(lidingo) returned no tips")
	}
	for i, tip := range tips {
		if tip.Category == "" || tip.Tip == "" || tip.Rationale == "" {
			t.Errorf("tip %d has empty fields: %+v", i, tip)
		}
	}
}
