package plan

import (
	"strings"
	"testing"
	"time"
)

// TestWorkoutDetailsKnownEntries spot-checks the catalog against the NHS
// program structure at the start, the first continuous run, and graduation.
func TestWorkoutDetailsKnownEntries(t *testing.T) {
	cases := []struct {
		week, day int
		contains  string
	}{
		{1, 1, "Run 60 sec, walk 90 sec"},
		{5, 3, "Run 20 min (no walking breaks!)"},
		{9, 1, "Run 30 min"},
		{10, 3, "Graduation Day!"},
	}
	for _, tc := range cases {
		got := WorkoutDetails(tc.week, tc.day)
		if !strings.Contains(got, tc.contains) {
			t.Errorf("WorkoutDetails(%d,%d) = %q, want substring %q", tc.week, tc.day, got, tc.contains)
		}
	}
}

// TestWorkoutDetailsFallback verifies a catalog miss yields the generic
// placeholder naming the week and day, never an error or empty string.
func TestWorkoutDetailsFallback(t *testing.T) {
	got := WorkoutDetails(11, 1)
	if got != "Week 11, Day 1 C25K session - continue your training!" {
		t.Errorf("fallback = %q", got)
	}
	got = WorkoutDetails(3, 4)
	if !strings.Contains(got, "Week 3, Day 4") {
		t.Errorf("fallback = %q, want week/day named", got)
	}
}

// TestBeginnerTipRotation verifies the tip table wraps modulo its size.
func TestBeginnerTipRotation(t *testing.T) {
	size := len(Tips())
	if size == 0 {
		t.Fatal("empty tip table")
	}
	if BeginnerTip(0) != BeginnerTip(size) {
		t.Error("tip table did not wrap at its size")
	}
	if BeginnerTip(1) == "" {
		t.Error("empty tip")
	}
}

// TestWeatherAdvisoryDeterministic verifies the same date always yields the
// same advisory, the property a regenerated plan depends on.
func TestWeatherAdvisoryDeterministic(t *testing.T) {
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	a := WeatherAdvisory("Berlin", date)
	b := WeatherAdvisory("Berlin", date)
	if a != b {
		t.Errorf("advisory not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "Weather forecast for Berlin:") {
		t.Errorf("advisory = %q, want location prefix", a)
	}
}
