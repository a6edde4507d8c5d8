// Package platform shapes a generated plan into the payload structures the
// third-party fitness platforms would accept. The shapers validate and
// structure data only; no network call is made.
package platform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/couchplan/internal/plan"
)

// Target identifies one supported integration.
type Target string

const (
	TargetStrava    Target = "strava"
	TargetRunKeeper Target = "runkeeper"
	TargetGarmin    Target = "garmin"
)

// Targets lists the supported integrations in a fixed order.
func Targets() []Target {
	return []Target{TargetStrava, TargetRunKeeper, TargetGarmin}
}

// Shape builds the platform-specific payload for a plan. Unknown targets get
// the generic shape. An empty plan is rejected: there is nothing to push.
func Shape(target Target, sessions []plan.Session) (any, error) {
	if len(sessions) == 0 {
		return nil, fmt.Errorf("empty plan: nothing to export to %s", target)
	}
	switch target {
	case TargetStrava:
		return ShapeStrava(sessions), nil
	case TargetRunKeeper:
		return ShapeRunKeeper(sessions), nil
	case TargetGarmin:
		return ShapeGarmin(sessions), nil
	default:
		return ShapeGeneric(string(target), sessions), nil
	}
}

// StravaPlan groups workouts by week, the structure Strava's training
// calendar import expects.
type StravaPlan struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Weeks       []StravaWeek `json:"weeks"`
}

type StravaWeek struct {
	WeekNumber int             `json:"week_number"`
	Workouts   []StravaWorkout `json:"workouts"`
}

type StravaWorkout struct {
	Day         string `json:"day"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
}

// ShapeStrava groups the plan into per-week workout lists.
func ShapeStrava(sessions []plan.Session) StravaPlan {
	p := StravaPlan{
		Name:        "Couch to 5K Training Plan",
		Description: "A progressive 10-week running program",
	}

	currentWeek := 0
	for _, s := range sessions {
		if s.Week != currentWeek {
			currentWeek = s.Week
			p.Weeks = append(p.Weeks, StravaWeek{WeekNumber: currentWeek})
		}
		week := &p.Weeks[len(p.Weeks)-1]
		week.Workouts = append(week.Workouts, StravaWorkout{
			Day:         s.Day.String(),
			Type:        activityType(s.Workout),
			Description: s.Workout,
			Duration:    ExtractDuration(s.Workout),
			Notes:       s.Tip,
		})
	}
	return p
}

// RunKeeperPlan is a flat activity list keyed by scheduled date.
type RunKeeperPlan struct {
	PlanName   string              `json:"plan_name"`
	PlanType   string              `json:"plan_type"`
	TotalWeeks int                 `json:"total_weeks"`
	Activities []RunKeeperActivity `json:"activities"`
}

type RunKeeperActivity struct {
	Week          int    `json:"week"`
	Day           string `json:"day"`
	ActivityType  string `json:"activity_type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date"`
}

// ShapeRunKeeper flattens the plan into dated activities.
func ShapeRunKeeper(sessions []plan.Session) RunKeeperPlan {
	p := RunKeeperPlan{
		PlanName: "Couch to 5K",
		PlanType: "running",
	}
	for _, s := range sessions {
		if s.Week > p.TotalWeeks {
			p.TotalWeeks = s.Week
		}
		p.Activities = append(p.Activities, RunKeeperActivity{
			Week:          s.Week,
			Day:           s.Day.String(),
			ActivityType:  activityType(s.Workout),
			Title:         s.Workout,
			Description:   s.Tip,
			ScheduledDate: s.Date.Format(plan.DateLayout),
		})
	}
	return p
}

// GarminPlan carries structured interval steps per workout, Garmin Connect's
// native workout shape. Rest sessions are omitted entirely.
type GarminPlan struct {
	PlanName         string          `json:"planName"`
	PlanType         string          `json:"planType"`
	DurationInWeeks  int             `json:"estimatedDurationInWeeks"`
	Workouts         []GarminWorkout `json:"workouts"`
}

type GarminWorkout struct {
	WorkoutName   string       `json:"workoutName"`
	Sport         string       `json:"sport"`
	ScheduledDate string       `json:"scheduledDate"`
	Steps         []GarminStep `json:"steps"`
	Notes         string       `json:"notes"`
}

type GarminStep struct {
	StepID      int    `json:"stepId"`
	StepType    string `json:"stepType"`
	Description string `json:"description"`
	DurationMin int    `json:"durationMinutes"`
	PaceTarget  string `json:"paceTarget"`
}

// ShapeGarmin parses each workout's instruction text into interval steps.
func ShapeGarmin(sessions []plan.Session) GarminPlan {
	p := GarminPlan{
		PlanName: "Couch to 5K",
		PlanType: "RUNNING",
	}
	for _, s := range sessions {
		if s.Week > p.DurationInWeeks {
			p.DurationInWeeks = s.Week
		}
		if !s.IsWorkout() {
			continue
		}
		p.Workouts = append(p.Workouts, GarminWorkout{
			WorkoutName:   s.Workout,
			Sport:         "RUNNING",
			ScheduledDate: s.Date.Format(plan.DateLayout),
			Steps:         ParseSteps(s.Workout),
			Notes:         s.Tip,
		})
	}
	return p
}

// GenericExport is the fallback shape for targets without a dedicated format.
type GenericExport struct {
	AppTarget     string         `json:"app_target"`
	PlanName      string         `json:"plan_name"`
	TotalSessions int            `json:"total_sessions"`
	Sessions      []plan.Session `json:"sessions"`
}

// ShapeGeneric wraps the raw session list with target metadata.
func ShapeGeneric(target string, sessions []plan.Session) GenericExport {
	return GenericExport{
		AppTarget:     target,
		PlanName:      "Couch to 5K",
		TotalSessions: len(sessions),
		Sessions:      sessions,
	}
}

var minutePattern = regexp.MustCompile(`(?i)(\d+)\s*min(?:ute)?s?`)

// ExtractDuration pulls a minute figure out of workout instruction text,
// falling back to rough estimates by activity kind.
func ExtractDuration(workout string) int {
	if m := minutePattern.FindStringSubmatch(workout); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}
	switch {
	case strings.Contains(workout, "Walk"):
		return 30
	case strings.Contains(workout, "Run"):
		return 35
	default:
		return 5
	}
}

// ParseSteps splits instruction text into interval steps with pace targets.
func ParseSteps(workout string) []GarminStep {
	parts := strings.Split(strings.ReplaceAll(workout, " then ", " | "), " | ")
	if len(parts) == 1 {
		parts = strings.Split(workout, ". ")
	}

	steps := make([]GarminStep, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(strings.TrimSuffix(part, "."))
		if part == "" {
			continue
		}
		pace := "MODERATE"
		if strings.Contains(part, "Walk") || strings.Contains(part, "walk") {
			pace = "EASY"
		}
		steps = append(steps, GarminStep{
			StepID:      i + 1,
			StepType:    "INTERVAL",
			Description: part,
			DurationMin: ExtractDuration(part),
			PaceTarget:  pace,
		})
	}
	return steps
}

func activityType(workout string) string {
	if strings.Contains(workout, "Run") {
		return "running"
	}
	return "rest"
}
