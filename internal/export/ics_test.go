package export

import (
	"strings"
	"testing"

	"github.com/claude/couchplan/internal/plan"
)

// TestICSEventCount verifies one VEVENT per session, rest days included,
// inside a single VCALENDAR envelope.
func TestICSEventCount(t *testing.T) {
	sessions := testPlan(t)
	data, err := icsSerializer{}.Serialize(sessions, testProfile())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\nVERSION:2.0\n") {
		t.Error("missing calendar header")
	}
	if !strings.HasSuffix(out, "END:VCALENDAR") {
		t.Error("missing calendar footer")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != len(sessions) {
		t.Errorf("VEVENT count = %d, want %d", got, len(sessions))
	}
}

// TestICSAlarms verifies reminders attach only to workout events, and only
// when the profile asks for them.
func TestICSAlarms(t *testing.T) {
	p := testProfile()
	p.AlertMinutes = 15
	sessions := plan.Build(p)

	data, err := icsSerializer{}.Serialize(sessions, p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	workouts := 0
	for _, s := range sessions {
		if s.IsWorkout() {
			workouts++
		}
	}
	if got := strings.Count(out, "BEGIN:VALARM"); got != workouts {
		t.Errorf("VALARM count = %d, want %d (workouts only)", got, workouts)
	}
	if !strings.Contains(out, "TRIGGER:-PT15M") {
		t.Error("missing 15-minute trigger")
	}

	p.AlertMinutes = 0
	data, err = icsSerializer{}.Serialize(plan.Build(p), p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "BEGIN:VALARM") {
		t.Error("alert disabled but VALARM present")
	}
}

// TestICSTitles verifies workout and rest events get their distinct summary
// forms.
func TestICSTitles(t *testing.T) {
	data, err := icsSerializer{}.Serialize(testPlan(t), testProfile())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "SUMMARY:C25K Week 1 - Day 1\n") {
		t.Error("missing workout summary for week 1 day 1")
	}
	if !strings.Contains(out, "SUMMARY:C25K Week 1 Sat (Rest)\n") {
		t.Error("missing rest summary for week 1 Sat")
	}
}

// TestICSTimestamps verifies DTSTART carries the profile's session slot and
// DTEND adds the duration.
func TestICSTimestamps(t *testing.T) {
	p := testProfile()
	p.Weeks = 1
	p.DaysPerWeek = 1
	p.RestDays = nil
	p.Hour = 6
	p.Minute = 30

	data, err := icsSerializer{}.Serialize(plan.Build(p), p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "DTSTART:20250701T063000\n") {
		t.Errorf("missing expected DTSTART:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20250701T070000\n") {
		t.Errorf("missing expected DTEND (start + 30 min):\n%s", out)
	}
}

// TestEventUIDStable verifies the identifier is a pure function of the
// (week, day) pair, so regenerating a plan reuses the same UIDs.
func TestEventUIDStable(t *testing.T) {
	a := EventUID(3, plan.WorkoutDay(2))
	b := EventUID(3, plan.WorkoutDay(2))
	if a != b {
		t.Errorf("UID not stable: %q vs %q", a, b)
	}
	if a == EventUID(3, plan.WorkoutDay(1)) {
		t.Error("distinct days share a UID")
	}
	if a == EventUID(4, plan.WorkoutDay(2)) {
		t.Error("distinct weeks share a UID")
	}
	if !strings.HasSuffix(a, "@couch-to-5k.local") {
		t.Errorf("UID = %q, want domain suffix", a)
	}
}
