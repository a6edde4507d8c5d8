package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/claude/couchplan/internal/accessibility"
	"github.com/claude/couchplan/internal/export"
	"github.com/claude/couchplan/internal/plan"
)

func main() {
	name := flag.String("name", "", "user name for the checklist header")
	age := flag.Int("age", 0, "age in years (required)")
	gender := flag.String("gender", "unspecified", "gender tag for session descriptions")
	weight := flag.Float64("weight", 0, "body weight (required)")
	unit := flag.String("unit", "imperial", "weight unit: imperial or metric")
	weeks := flag.Int("weeks", plan.DefaultWeeks, "plan length in weeks")
	days := flag.Int("days", plan.DefaultDaysPerWeek, "workout days per week (1-7)")
	restDays := flag.String("rest", "Sat,Sun", "comma-separated rest day names (empty for none)")
	startDay := flag.String("start", "", "start date YYYY-MM-DD (defaults to today)")
	hour := flag.Int("hour", 7, "session start hour")
	minute := flag.Int("minute", 0, "session start minute")
	location := flag.String("location", "", "location for the weather advisory")
	alert := flag.Int("alert", 30, "calendar reminder lead time in minutes (0 disables)")
	lang := flag.String("lang", "en", "language tag for display strings")
	anonymize := flag.Bool("anonymize", false, "strip name/email from the output")
	formats := flag.String("formats", "ics", "comma-separated export formats")
	outDir := flag.String("out", ".", "output directory")
	highContrast := flag.Bool("high-contrast", false, "apply high-contrast styling to markup exports")
	largeFont := flag.Bool("large-font", false, "apply large-font styling to markup exports")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *age <= 0 || *weight <= 0 {
		fmt.Fprintf(os.Stderr, "Usage: couchplan-export -age 34 -weight 82 -unit metric -formats ics,csv [-out dir]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	profile := plan.Profile{
		Name:         *name,
		Age:          *age,
		Gender:       *gender,
		Weight:       *weight,
		WeightUnit:   plan.Unit(*unit),
		Weeks:        *weeks,
		DaysPerWeek:  *days,
		Hour:         *hour,
		Minute:       *minute,
		Location:     *location,
		AlertMinutes: *alert,
		Lang:         *lang,
		Anonymize:    *anonymize,
	}

	if *restDays != "" {
		for _, n := range strings.Split(*restDays, ",") {
			n = strings.TrimSpace(n)
			if !plan.IsWeekdayName(n) {
				log.Error("unknown rest day name", "name", n)
				os.Exit(1)
			}
			profile.RestDays = append(profile.RestDays, n)
		}
	}

	if *startDay != "" {
		parsed, err := time.Parse(plan.DateLayout, *startDay)
		if err != nil {
			log.Error("invalid start date", "value", *startDay, "error", err)
			os.Exit(1)
		}
		profile.StartDay = parsed
	}

	sessions := plan.Build(profile)
	log.Info("plan generated", "sessions", len(sessions), "weeks", profile.Weeks)

	failed := false
	for _, f := range strings.Split(*formats, ",") {
		format := export.Format(strings.TrimSpace(f))

		res, err := export.WriteFile(*outDir, format, sessions, profile)
		if err != nil {
			log.Error("export failed", "format", format, "error", err)
			failed = true
			continue
		}

		if res.Format == export.FormatMarkdown && (*highContrast || *largeFont) {
			data, err := os.ReadFile(res.Path)
			if err == nil {
				styled := accessibility.Apply(string(data), *highContrast, *largeFont)
				err = export.WriteRaw(res.Path, []byte(styled))
			}
			if err != nil {
				log.Error("accessibility post-processing failed", "path", res.Path, "error", err)
				failed = true
				continue
			}
		}

		if res.FellBack {
			log.Warn("spreadsheet engine unavailable, wrote CSV instead", "path", res.Path)
		} else {
			log.Info("export written", "format", res.Format, "path", res.Path)
		}
	}

	if failed {
		os.Exit(1)
	}
}
