// Package ics serializes a generated training plan into an iCalendar
// document consumable by standard calendar clients.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
	"github.com/google/uuid"
)

const (
	prodID = "-//RaceBuddy//Training Plan//EN"
	// Training sessions default to a morning slot.
	sessionStartHour = 6
	sessionDuration  = time.Hour
	raceStartHour    = 9
	raceDuration     = 4 * time.Hour
)

// Generate renders the plan as a VCALENDAR document. Every non-rest
// session becomes a VEVENT with a 30-minute reminder, plus one event
// for race day itself. The plan guarantees session dates are concrete,
// unique per day and chronologically ordered, so events are emitted in
// plan order.
func Generate(p domain.TrainingPlan, race domain.Race, planID string, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Training plan - " + race.Name,
		"X-WR-CALDESC:Personal training plan for " + race.Name,
	}

	for _, s := range p.Sessions {
		if s.Type == domain.SessionRest {
			continue
		}
		lines = append(lines, sessionEvent(s, planID, now)...)
	}
	lines = append(lines, raceEvent(race, p.Summary.RaceDate, planID, now)...)
	lines = append(lines, "END:VCALENDAR")

	return strings.Join(lines, "\r\n") + "\r\n"
}

func sessionEvent(s domain.Session, planID string, now time.Time) []string {
	start := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), sessionStartHour, 0, 0, 0, s.Date.Location())
	end := start.Add(sessionDuration)

	title := fmt.Sprintf("%s %.1f km", sessionTitle(s.Type), s.DistanceKm)
	if s.Pace != "" {
		title += " @ " + s.Pace
	}

	descParts := []string{"Focus: " + s.WeekFocus, fmt.Sprintf("Week %d", s.WeekNumber)}
	if s.Pace != "" {
		if est := estimateDuration(s.DistanceKm, s.Pace); est != "" {
			descParts = append(descParts, "Estimated time: "+est)
		}
	}

	uid := fmt.Sprintf("%s-%s-%s@racebuddy", planID, s.Date.Format("2006-01-02"), uuid.NewString()[:8])

	return []string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"DTSTART:" + start.Format("20060102T150405"),
		"DTEND:" + end.Format("20060102T150405"),
		"SUMMARY:" + escape(title),
		"DESCRIPTION:" + escape(strings.Join(descParts, "\n")),
		"CATEGORIES:Training",
		"STATUS:CONFIRMED",
		"TRANSP:OPAQUE",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"DESCRIPTION:Time to train!",
		"TRIGGER:-PT30M",
		"END:VALARM",
		"END:VEVENT",
	}
}

func raceEvent(race domain.Race, raceDate time.Time, planID string, now time.Time) []string {
	start := time.Date(raceDate.Year(), raceDate.Month(), raceDate.Day(), raceStartHour, 0, 0, 0, raceDate.Location())
	end := start.Add(raceDuration)

	uid := fmt.Sprintf("%s-race-%s@racebuddy", planID, raceDate.Format("2006-01-02"))
	desc := fmt.Sprintf("RACE DAY! %s\n\nYou have trained hard for this. Good luck!", race.Name)

	return []string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"DTSTART:" + start.Format("20060102T150405"),
		"DTEND:" + end.Format("20060102T150405"),
		"SUMMARY:" + escape(race.Name+" - RACE DAY"),
		"DESCRIPTION:" + escape(desc),
		"CATEGORIES:Race",
		"STATUS:CONFIRMED",
		"TRANSP:OPAQUE",
		"PRIORITY:9",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"DESCRIPTION:Race day tomorrow. Prepare your gear.",
		"TRIGGER:-P1D",
		"END:VALARM",
		"END:VEVENT",
	}
}

func sessionTitle(t domain.SessionType) string {
	switch t {
	case domain.SessionEasyRun:
		return "Easy run"
	case domain.SessionLongRun:
		return "Long run"
	case domain.SessionTempo:
		return "Tempo run"
	case domain.SessionInterval:
		return "Interval training"
	case domain.SessionCrossTrain:
		return "Cross training"
	default:
		return "Training"
	}
}

// estimateDuration converts "M:SS/km" and a distance into a rough
// session length for the event description.
func estimateDuration(distanceKm float64, pace string) string {
	var min, sec int
	if _, err := fmt.Sscanf(strings.TrimSuffix(pace, "/km"), "%d:%d", &min, &sec); err != nil {
		return ""
	}
	total := int(distanceKm * float64(min*60+sec))
	if total <= 0 {
		return ""
	}
	h := total / 3600
	m := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%d:%02dh", h, m)
	}
	return fmt.Sprintf("%d min", m)
}

// escape applies the RFC 5545 TEXT escaping rules.
func escape(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
