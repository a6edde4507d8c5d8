package export

import (
	"fmt"
	"strings"

	"github.com/claude/couchplan/internal/i18n"
	"github.com/claude/couchplan/internal/plan"
)

type markdownSerializer struct{}

func (markdownSerializer) Filename() string    { return "c25k_checklist.md" }
func (markdownSerializer) ContentType() string { return "text/markdown" }

// Serialize renders a printable checklist grouped by week. A new week heading
// is emitted on the first occurrence of each week number, which relies on the
// plan already being week-sorted. Rest days appear as unchecked items
// distinguished from workouts.
func (markdownSerializer) Serialize(sessions []plan.Session, profile plan.Profile) ([]byte, error) {
	profile = profile.Sanitized()

	name := profile.Name
	if name == "" {
		name = "N/A"
	}
	startDay := "N/A"
	if !profile.StartDay.IsZero() {
		startDay = profile.StartDay.Format(plan.DateLayout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", i18n.T(profile.Lang, "plan_title"))
	fmt.Fprintf(&b, "**Name:** %s\n", name)
	fmt.Fprintf(&b, "**Age:** %d\n", profile.Age)
	fmt.Fprintf(&b, "**Weight:** %s\n", profile.WeightString())
	fmt.Fprintf(&b, "**Start Date:** %s\n\n", startDay)
	b.WriteString("## Workout Schedule\n\n")

	currentWeek := 0
	for _, s := range sessions {
		if s.Week != currentWeek {
			currentWeek = s.Week
			fmt.Fprintf(&b, "\n### %s %d\n\n", i18n.T(profile.Lang, "week"), currentWeek)
		}
		if s.IsWorkout() {
			fmt.Fprintf(&b, "- [ ] **%s %s** (%s): %s\n", i18n.T(profile.Lang, "day"), s.Day, s.Date.Format(plan.DateLayout), s.Workout)
			fmt.Fprintf(&b, "  - *Tip:* %s\n", s.Tip)
		} else {
			fmt.Fprintf(&b, "- [ ] **%s** (%s): %s\n", i18n.T(profile.Lang, "rest_day"), s.Date.Format(plan.DateLayout), s.Workout)
		}
	}

	return []byte(b.String()), nil
}
