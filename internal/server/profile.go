package server

import (
	"fmt"
	"time"

	"github.com/claude/couchplan/internal/plan"
)

// profileRequest is the wire shape of a user profile. The start day arrives
// as a string (YYYY-MM-DD or RFC 3339) and shadows the embedded time field.
type profileRequest struct {
	plan.Profile
	StartDay string `json:"start_day"`
}

// toProfile parses, defaults, and range-checks the raw input. The plan
// builder itself stays permissive; the service boundary is where invalid
// input is rejected.
func (r profileRequest) toProfile() (plan.Profile, error) {
	p := r.Profile

	if r.StartDay != "" {
		parsed, err := time.Parse(plan.DateLayout, r.StartDay)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, r.StartDay)
			if err != nil {
				return plan.Profile{}, fmt.Errorf("invalid start_day %q", r.StartDay)
			}
		}
		p.StartDay = parsed
	}

	if p.Weeks == 0 {
		p.Weeks = plan.DefaultWeeks
	}
	if p.DaysPerWeek == 0 {
		p.DaysPerWeek = plan.DefaultDaysPerWeek
	}
	if p.WeightUnit == "" {
		p.WeightUnit = plan.UnitImperial
	}

	if err := validateProfile(p); err != nil {
		return plan.Profile{}, err
	}
	return p, nil
}

func validateProfile(p plan.Profile) error {
	if p.Age < 5 || p.Age > 120 {
		return fmt.Errorf("age %d out of range (5-120)", p.Age)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if p.WeightUnit != plan.UnitImperial && p.WeightUnit != plan.UnitMetric {
		return fmt.Errorf("weight_unit must be %q or %q", plan.UnitImperial, plan.UnitMetric)
	}
	if p.Weeks < 0 {
		return fmt.Errorf("weeks must not be negative")
	}
	if p.DaysPerWeek < 1 || p.DaysPerWeek > 7 {
		return fmt.Errorf("days_per_week %d out of range (1-7)", p.DaysPerWeek)
	}
	for _, name := range p.RestDays {
		if !plan.IsWeekdayName(name) {
			return fmt.Errorf("unknown rest day %q", name)
		}
	}
	if p.Hour < 0 || p.Hour > 23 {
		return fmt.Errorf("hour %d out of range (0-23)", p.Hour)
	}
	if p.Minute < 0 || p.Minute > 59 {
		return fmt.Errorf("minute %d out of range (0-59)", p.Minute)
	}
	if p.AlertMinutes < 0 {
		return fmt.Errorf("alert_minutes must not be negative")
	}
	return nil
}
