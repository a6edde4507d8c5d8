package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/claude/couchplan/internal/plan"
)

type csvSerializer struct{}

func (csvSerializer) Filename() string    { return "c25k_plan.csv" }
func (csvSerializer) ContentType() string { return "text/csv" }

// Serialize renders every session, rest days included, one row each. The
// header row is always present, even for an empty plan.
func (csvSerializer) Serialize(sessions []plan.Session, _ plan.Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"week", "day", "date", "duration", "workout", "tip", "weather"}); err != nil {
		return nil, err
	}
	for _, s := range sessions {
		row := []string{
			strconv.Itoa(s.Week),
			s.Day.String(),
			s.Date.Format(plan.DateLayout),
			strconv.Itoa(s.Duration),
			s.Workout,
			s.Tip,
			s.Weather,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type appleHealthSerializer struct{}

func (appleHealthSerializer) Filename() string    { return "c25k_apple_health.csv" }
func (appleHealthSerializer) ContentType() string { return "text/csv" }

// Serialize renders workout sessions only, anchored at the fixed 07:00 slot
// Apple Health expects for planned activities. Distance and calories are
// estimates, not measurements.
func (appleHealthSerializer) Serialize(sessions []plan.Session, _ plan.Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Start Date", "End Date", "Workout Type", "Duration (minutes)", "Distance (miles)", "Calories"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if !s.IsWorkout() {
			continue
		}
		date := s.Date.Format(plan.DateLayout)
		row := []string{
			date + " 07:00:00",
			fmt.Sprintf("%s 07:%02d:00", date, s.Duration),
			"Running",
			strconv.Itoa(s.Duration),
			"0.5-3.0",
			strconv.Itoa(s.Duration * 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type stravaSerializer struct{}

func (stravaSerializer) Filename() string    { return "c25k_strava.csv" }
func (stravaSerializer) ContentType() string { return "text/csv" }

// Serialize renders workout sessions in Strava's planned-activity shape.
// Rest days are excluded, not zero-filled.
func (stravaSerializer) Serialize(sessions []plan.Session, _ plan.Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Activity Name", "Activity Type", "Date", "Time", "Duration", "Description"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if !s.IsWorkout() {
			continue
		}
		row := []string{
			fmt.Sprintf("C25K Week %d Day %s", s.Week, s.Day),
			"Run",
			s.Date.Format(plan.DateLayout),
			"07:00:00",
			fmt.Sprintf("%d:00", s.Duration),
			s.Workout,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type googleFitSerializer struct{}

func (googleFitSerializer) Filename() string    { return "c25k_google_fit.csv" }
func (googleFitSerializer) ContentType() string { return "text/csv" }

// Serialize renders workout sessions in the calendar-import CSV shape Google
// Fit accepts, with start/end times taken from the profile's session slot.
func (googleFitSerializer) Serialize(sessions []plan.Session, profile plan.Profile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Title", "Description", "Start Date", "Start Time", "End Date", "End Time", "All Day Event"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if !s.IsWorkout() {
			continue
		}
		date := s.Date.Format(plan.DateLayout)
		startMin := profile.Hour*60 + profile.Minute
		endMin := startMin + s.Duration
		row := []string{
			fmt.Sprintf("C25K Week %d Day %s", s.Week, s.Day),
			s.Workout,
			date,
			fmt.Sprintf("%02d:%02d:00", startMin/60, startMin%60),
			date,
			fmt.Sprintf("%02d:%02d:00", (endMin/60)%24, endMin%60),
			"False",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
