package platform

import (
	"testing"
	"time"

	"github.com/claude/couchplan/internal/plan"
)

func testSessions(t *testing.T) []plan.Session {
	t.Helper()
	sessions := plan.Build(plan.Profile{
		Age:         30,
		Weight:      70,
		WeightUnit:  plan.UnitMetric,
		Weeks:       2,
		DaysPerWeek: 3,
		RestDays:    []string{"Sun"},
		StartDay:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	if len(sessions) != 8 {
		t.Fatalf("test plan has %d sessions, want 8", len(sessions))
	}
	return sessions
}

// TestShapeEmptyPlan verifies every target rejects an empty plan.
func TestShapeEmptyPlan(t *testing.T) {
	for _, target := range append(Targets(), Target("unknown")) {
		if _, err := Shape(target, nil); err == nil {
			t.Errorf("Shape(%s, nil) accepted an empty plan", target)
		}
	}
}

// TestShapeStravaGrouping verifies workouts are grouped under one entry per
// week, in week order.
func TestShapeStravaGrouping(t *testing.T) {
	p := ShapeStrava(testSessions(t))

	if p.Name != "Couch to 5K Training Plan" {
		t.Errorf("plan name = %q", p.Name)
	}
	if len(p.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(p.Weeks))
	}
	for i, w := range p.Weeks {
		if w.WeekNumber != i+1 {
			t.Errorf("week[%d].WeekNumber = %d, want %d", i, w.WeekNumber, i+1)
		}
		if len(w.Workouts) != 4 {
			t.Errorf("week %d workouts = %d, want 4 (3 runs + 1 rest)", w.WeekNumber, len(w.Workouts))
		}
	}

	first := p.Weeks[0].Workouts[0]
	if first.Type != "running" {
		t.Errorf("first workout type = %q, want running", first.Type)
	}
	if first.Duration <= 0 {
		t.Errorf("first workout duration = %d", first.Duration)
	}
}

// TestShapeRunKeeperFlat verifies the flat activity list keeps every session
// with its scheduled date and the derived total week count.
func TestShapeRunKeeperFlat(t *testing.T) {
	sessions := testSessions(t)
	p := ShapeRunKeeper(sessions)

	if p.TotalWeeks != 2 {
		t.Errorf("TotalWeeks = %d, want 2", p.TotalWeeks)
	}
	if len(p.Activities) != len(sessions) {
		t.Fatalf("activities = %d, want %d", len(p.Activities), len(sessions))
	}
	if p.Activities[0].ScheduledDate != "2025-07-01" {
		t.Errorf("first scheduled date = %s", p.Activities[0].ScheduledDate)
	}
	for _, a := range p.Activities {
		if a.ActivityType != "running" && a.ActivityType != "rest" {
			t.Errorf("activity type = %q", a.ActivityType)
		}
	}
}

// TestShapeGarminExcludesRest verifies rest sessions are dropped and every
// workout carries parsed interval steps.
func TestShapeGarminExcludesRest(t *testing.T) {
	p := ShapeGarmin(testSessions(t))

	if p.DurationInWeeks != 2 {
		t.Errorf("DurationInWeeks = %d, want 2", p.DurationInWeeks)
	}
	if len(p.Workouts) != 6 {
		t.Fatalf("workouts = %d, want 6 (rest excluded)", len(p.Workouts))
	}
	for _, w := range p.Workouts {
		if w.Sport != "RUNNING" {
			t.Errorf("sport = %q", w.Sport)
		}
		if len(w.Steps) == 0 {
			t.Errorf("workout %q has no steps", w.WorkoutName)
		}
	}
}

// TestShapeGenericFallback verifies an unrecognized target gets the generic
// wrapper with the raw sessions.
func TestShapeGenericFallback(t *testing.T) {
	sessions := testSessions(t)
	got, err := Shape("fitbit", sessions)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := got.(GenericExport)
	if !ok {
		t.Fatalf("payload type = %T, want GenericExport", got)
	}
	if g.AppTarget != "fitbit" || g.TotalSessions != len(sessions) {
		t.Errorf("payload = %+v", g)
	}
}

// TestExtractDuration exercises the minute pattern and the activity-kind
// fallbacks.
func TestExtractDuration(t *testing.T) {
	cases := []struct {
		workout string
		want    int
	}{
		{"Run 20 min (no walking breaks!)", 20},
		{"Run 25 minutes", 25},
		{"Run 30 min!", 30},
		{"Walk it off", 30},
		{"Run 5K", 35},
		{"Stretch", 5},
	}
	for _, tc := range cases {
		if got := ExtractDuration(tc.workout); got != tc.want {
			t.Errorf("ExtractDuration(%q) = %d, want %d", tc.workout, got, tc.want)
		}
	}
}

// TestParseSteps verifies interval text splits into steps with pace targets
// derived from the walk/run wording.
func TestParseSteps(t *testing.T) {
	steps := ParseSteps("Warm up: 5-min brisk walk. Run 60 sec, walk 90 sec (repeat 8 times). Cool down: 5-min walk.")
	if len(steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(steps))
	}
	if steps[0].PaceTarget != "EASY" {
		t.Errorf("warm-up pace = %q, want EASY", steps[0].PaceTarget)
	}
	for i, s := range steps {
		if s.StepID != i+1 {
			t.Errorf("step %d id = %d", i, s.StepID)
		}
		if s.StepType != "INTERVAL" {
			t.Errorf("step %d type = %q", i, s.StepType)
		}
	}
}
