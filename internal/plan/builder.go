package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/claude/couchplan/internal/i18n"
)

// Defaults applied by callers that accept raw input (the HTTP service and
// the CLI). Build itself uses the profile as given.
const (
	DefaultWeeks       = 10
	DefaultDaysPerWeek = 3
	DefaultDuration    = 30
	ReducedDuration    = 25
)

// ReductionNotice is appended to every workout description when the safety
// rule triggers.
const ReductionNotice = " (Reduced session duration for safety.)"

// Build produces the full ordered session sequence for one profile: the
// workout sessions placed by the fixed cadence formula, followed by one rest
// entry per (week, rest-day) pair, stably sorted by (week, day_offset).
//
// Degenerate inputs are not rejected: weeks or days-per-week of zero (or
// negative) simply yield no workout sessions. Validation is a caller concern.
//
// Build has no I/O side effects and never mutates the caller's profile.
func Build(p Profile) []Session {
	p = p.Sanitized()

	startDay := p.StartDay
	if startDay.IsZero() {
		startDay = time.Now()
	}

	weightStr := p.WeightString()
	threshold := p.weightThreshold()

	var sessions []Session

	for w := 0; w < p.Weeks; w++ {
		for d := 0; d < p.DaysPerWeek; d++ {
			// Fixed evenly-spaced placement. Integer division means
			// cadences that do not divide 7 bunch up at the start of
			// the week; that spacing is part of the plan's contract.
			dayOffset := d * (7 / p.DaysPerWeek)
			date := startDay.AddDate(0, 0, w*7+dayOffset)
			workout := WorkoutDetails(w+1, d+1)
			tip := BeginnerTip(d + 1)

			weather := NoLocationAdvisory
			if p.Location != "" {
				weather = WeatherAdvisory(p.Location, date)
			}

			description := fmt.Sprintf(
				"Follow the Couch to 5K plan - Week %d session. "+
					"Note: This plan is tailored for an adult %s aged %d with hypertension. "+
					"Weight: %s. Session time: %02d:%02d. "+
					"Please monitor your health and consult your doctor if needed.\n"+
					"Workout: %s\nTip: %s",
				w+1, p.Gender, p.Age, weightStr, p.Hour, p.Minute, workout, tip,
			)

			sessions = append(sessions, Session{
				Week:        w + 1,
				Day:         WorkoutDay(d + 1),
				DayOffset:   dayOffset,
				Date:        Date{date},
				Duration:    DefaultDuration,
				Workout:     workout,
				Tip:         tip,
				Description: description,
				Weather:     weather,
			})
		}
	}

	// Safety pass. The trigger is global to the user, so every workout
	// session in the plan is reduced, not just some.
	if p.Age >= 60 || p.Weight >= threshold {
		for i := range sessions {
			sessions[i].Duration = ReducedDuration
			sessions[i].Description += ReductionNotice
		}
	}

	// Rest-day pass: one entry per (week, selected weekday), offsets fixed
	// by the Mon..Sun vocabulary.
	restMarker := i18n.T(p.Lang, "rest_day")
	for w := 0; w < p.Weeks; w++ {
		for offset, name := range WeekdayNames {
			if !containsDay(p.RestDays, name) {
				continue
			}
			date := startDay.AddDate(0, 0, w*7+offset)
			sessions = append(sessions, Session{
				Week:      w + 1,
				Day:       RestDay(name),
				DayOffset: offset,
				Date:      Date{date},
				Duration:  0,
				Workout:   restMarker,
				Tip:       BeginnerTip(offset),
				Description: fmt.Sprintf(
					"Rest Day - Week %d %s. Rest and recover. Hydrate and stretch.",
					w+1, name,
				),
				Weather: "",
			})
		}
	}

	// Stable: workouts stay ahead of rest entries at equal offsets.
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Week != sessions[j].Week {
			return sessions[i].Week < sessions[j].Week
		}
		return sessions[i].DayOffset < sessions[j].DayOffset
	})

	return sessions
}

func containsDay(days []string, name string) bool {
	for _, d := range days {
		if d == name {
			return true
		}
	}
	return false
}
