package plan

import (
	"encoding/json"
	"fmt"
	"time"
)

// Unit selects the measurement system for weight display and the safety
// threshold.
type Unit string

const (
	UnitImperial Unit = "imperial"
	UnitMetric   Unit = "metric"
)

// WeekdayNames is the fixed weekday vocabulary, Mon first. Rest-day names and
// day_offset values 0-6 map onto it in this order.
var WeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsWeekdayName reports whether s is one of the seven canonical short names.
func IsWeekdayName(s string) bool {
	for _, n := range WeekdayNames {
		if n == s {
			return true
		}
	}
	return false
}

// Profile is the user input to plan generation. It is never mutated by the
// builder or the serializers.
type Profile struct {
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender,omitempty"`
	Weight     float64 `json:"weight"`
	WeightUnit Unit    `json:"weight_unit"`

	Weeks       int       `json:"weeks"`
	DaysPerWeek int       `json:"days_per_week"`
	RestDays    []string  `json:"rest_days"`
	StartDay    time.Time `json:"start_day"`
	Hour        int       `json:"hour"`
	Minute      int       `json:"minute"`

	Location     string `json:"location,omitempty"`
	AlertMinutes int    `json:"alert_minutes"`
	Lang         string `json:"lang,omitempty"`
	Anonymize    bool   `json:"anonymize,omitempty"`
}

// Sanitized returns a copy of the profile with identifying fields cleared
// when the anonymize flag is set. The receiver is left untouched.
func (p Profile) Sanitized() Profile {
	if p.Anonymize {
		p.Name = ""
		p.Email = ""
	}
	return p
}

// WeightString formats the weight with its unit suffix.
func (p Profile) WeightString() string {
	if p.WeightUnit == UnitMetric {
		return fmt.Sprintf("%.1f kg", p.Weight)
	}
	return fmt.Sprintf("%.1f lbs", p.Weight)
}

// weightThreshold is the safety-rule cutoff in the profile's own unit:
// 220 lbs ≈ 100 kg.
func (p Profile) weightThreshold() float64 {
	if p.WeightUnit == UnitMetric {
		return 100
	}
	return 220
}

// Day is the tagged session-slot variant: a 1-based workout index within the
// week, or a weekday short-name for rest entries. Exactly one side is set.
type Day struct {
	Index int    // workout index, 1-based; zero for rest entries
	Rest  string // weekday short-name; empty for workouts
}

// WorkoutDay returns the workout variant.
func WorkoutDay(index int) Day { return Day{Index: index} }

// RestDay returns the rest variant.
func RestDay(name string) Day { return Day{Rest: name} }

// IsRest reports whether the slot is a rest entry.
func (d Day) IsRest() bool { return d.Rest != "" }

// String renders the workout index as digits and the rest name as-is.
func (d Day) String() string {
	if d.IsRest() {
		return d.Rest
	}
	return fmt.Sprintf("%d", d.Index)
}

// MarshalJSON emits a number for workouts and a string for rest entries,
// matching the dual shape of the exported "day" field.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsRest() {
		return json.Marshal(d.Rest)
	}
	return json.Marshal(d.Index)
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Day{Index: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("day must be a workout index or weekday name: %w", err)
	}
	if !IsWeekdayName(s) {
		return fmt.Errorf("unknown weekday name %q", s)
	}
	*d = Day{Rest: s}
	return nil
}

// DateLayout is the calendar-date wire format used across all exports.
const DateLayout = "2006-01-02"

// Date wraps time.Time to serialize as a bare YYYY-MM-DD calendar date.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	d.Time = parsed
	return nil
}

// Session is one scheduled calendar entry, either a workout or a rest day.
// Duration zero signals a rest day.
type Session struct {
	Week        int    `json:"week"`
	Day         Day    `json:"day"`
	DayOffset   int    `json:"day_offset"`
	Date        Date   `json:"date"`
	Duration    int    `json:"duration"`
	Workout     string `json:"workout"`
	Tip         string `json:"tip"`
	Description string `json:"description"`
	Weather     string `json:"weather"`
}

// IsWorkout reports whether the session is a workout (nonzero duration).
func (s Session) IsWorkout() bool { return s.Duration > 0 }
