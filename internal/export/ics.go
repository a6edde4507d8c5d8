package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/claude/couchplan/internal/i18n"
	"github.com/claude/couchplan/internal/plan"
	"github.com/google/uuid"
)

// icsTimeLayout is the fixed local timestamp pattern for DTSTART/DTEND.
const icsTimeLayout = "20060102T150405"

// uidDomain suffixes every event identifier.
const uidDomain = "couch-to-5k.local"

type icsSerializer struct{}

func (icsSerializer) Filename() string    { return "c25k_plan.ics" }
func (icsSerializer) ContentType() string { return "text/calendar" }

// Serialize renders one VEVENT per session. Workout events span the session
// duration from the profile's hour/minute; rest events are zero-length. A
// VALARM reminder block is attached when alert minutes are positive.
func (icsSerializer) Serialize(sessions []plan.Session, profile plan.Profile) ([]byte, error) {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//Couch to 5K//EN\n")

	for _, s := range sessions {
		d := s.Date.Time
		dtStart := time.Date(d.Year(), d.Month(), d.Day(), profile.Hour, profile.Minute, 0, 0, d.Location())
		dtEnd := dtStart.Add(time.Duration(s.Duration) * time.Minute)

		var title string
		if s.IsWorkout() {
			title = fmt.Sprintf("C25K Week %d - Day %s", s.Week, s.Day)
		} else {
			title = fmt.Sprintf("C25K Week %d %s (Rest)", s.Week, s.Day)
		}

		fmt.Fprintf(&b, "BEGIN:VEVENT\nDTSTART:%s\nDTEND:%s\nSUMMARY:%s\nDESCRIPTION:%s\nUID:%s\n",
			dtStart.Format(icsTimeLayout),
			dtEnd.Format(icsTimeLayout),
			title,
			s.Description,
			EventUID(s.Week, s.Day),
		)

		if s.IsWorkout() && profile.AlertMinutes > 0 {
			fmt.Fprintf(&b, "BEGIN:VALARM\nTRIGGER:-PT%dM\nACTION:DISPLAY\nDESCRIPTION:%s\nEND:VALARM\n",
				profile.AlertMinutes, i18n.T(profile.Lang, "reminder"))
		}

		b.WriteString("END:VEVENT\n")
	}

	b.WriteString("END:VCALENDAR")
	return []byte(b.String()), nil
}

// EventUID derives a stable event identifier from the (week, day) pair.
// The same session always gets the same UID, so re-importing a regenerated
// calendar replaces events instead of duplicating them.
func EventUID(week int, day plan.Day) string {
	name := fmt.Sprintf("c25k/%d-%s", week, day)
	return fmt.Sprintf("%s@%s", uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)), uidDomain)
}
