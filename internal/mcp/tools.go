package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/couchplan/internal/export"
	"github.com/claude/couchplan/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a Couch-to-5K training plan from a user profile. Returns the ordered session list including rest days, safety-adjusted durations, and per-session tips."),
	mcp.WithNumber("age", mcp.Required(), mcp.Description("User age in years")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Body weight in the given unit")),
	mcp.WithString("weight_unit", mcp.Description("Measurement system for weight. Defaults to imperial."), mcp.Enum("imperial", "metric")),
	mcp.WithString("gender", mcp.Description("Free-form gender tag used in session descriptions")),
	mcp.WithNumber("weeks", mcp.Description("Plan length in weeks. Defaults to 10.")),
	mcp.WithNumber("days_per_week", mcp.Description("Workout days per week (1-7). Defaults to 3.")),
	mcp.WithString("rest_days", mcp.Description("Comma-separated weekday short names, e.g. 'Sat,Sun'")),
	mcp.WithString("start_day", mcp.Description("Start date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithNumber("hour", mcp.Description("Session start hour (0-23)")),
	mcp.WithNumber("minute", mcp.Description("Session start minute (0-59)")),
	mcp.WithString("location", mcp.Description("Location for the weather advisory")),
)

var toolExportPlan = mcp.NewTool("export_plan",
	mcp.WithDescription("Generate a plan and render it in one export format. Returns the serialized buffer as text."),
	mcp.WithString("format", mcp.Required(), mcp.Description("Export format identifier"), mcp.Enum("ics", "csv", "json", "markdown", "apple_health", "strava", "google_fit")),
	mcp.WithNumber("age", mcp.Required(), mcp.Description("User age in years")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Body weight in the given unit")),
	mcp.WithString("weight_unit", mcp.Description("Measurement system for weight. Defaults to imperial."), mcp.Enum("imperial", "metric")),
	mcp.WithNumber("weeks", mcp.Description("Plan length in weeks. Defaults to 10.")),
	mcp.WithNumber("days_per_week", mcp.Description("Workout days per week (1-7). Defaults to 3.")),
	mcp.WithString("rest_days", mcp.Description("Comma-separated weekday short names")),
	mcp.WithString("start_day", mcp.Description("Start date (YYYY-MM-DD). Defaults to today.")),
)

var toolListExportFormats = mcp.NewTool("list_export_formats",
	mcp.WithDescription("List the available export formats with human-readable descriptions."),
	mcp.WithString("lang", mcp.Description("Language tag for the descriptions. Defaults to English.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Look up the canonical workout instruction for a (week, day) pair of the 10-week program."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("1-based week number")),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("1-based workout day within the week")),
)

var toolGetTip = mcp.NewTool("get_tip",
	mcp.WithDescription("Get the rotating beginner tip for a given day of the plan."),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Day index; the tip table rotates modulo its size")),
)

// profileFromRequest assembles a plan profile from tool arguments.
func profileFromRequest(req mcp.CallToolRequest) (plan.Profile, error) {
	age, err := req.RequireInt("age")
	if err != nil {
		return plan.Profile{}, fmt.Errorf("age parameter is required")
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return plan.Profile{}, fmt.Errorf("weight parameter is required")
	}

	p := plan.Profile{
		Age:          age,
		Weight:       weight,
		WeightUnit:   plan.Unit(req.GetString("weight_unit", string(plan.UnitImperial))),
		Gender:       req.GetString("gender", "unspecified"),
		Weeks:        req.GetInt("weeks", plan.DefaultWeeks),
		DaysPerWeek:  req.GetInt("days_per_week", plan.DefaultDaysPerWeek),
		Hour:         req.GetInt("hour", 7),
		Minute:       req.GetInt("minute", 0),
		Location:     req.GetString("location", ""),
		AlertMinutes: 30,
	}

	if restDays := req.GetString("rest_days", ""); restDays != "" {
		for _, name := range strings.Split(restDays, ",") {
			name = strings.TrimSpace(name)
			if !plan.IsWeekdayName(name) {
				return plan.Profile{}, fmt.Errorf("unknown rest day %q", name)
			}
			p.RestDays = append(p.RestDays, name)
		}
	}

	if startDay := req.GetString("start_day", ""); startDay != "" {
		parsed, err := time.Parse(plan.DateLayout, startDay)
		if err != nil {
			return plan.Profile{}, fmt.Errorf("invalid start_day %q", startDay)
		}
		p.StartDay = parsed
	}

	return p, nil
}

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := profileFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sessions := plan.Build(p)
	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) exportPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formatStr, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError("format parameter is required"), nil
	}
	ser, ok := export.Get(export.Format(formatStr))
	if !ok {
		return mcp.NewToolResultError("unsupported export format: " + formatStr), nil
	}

	p, err := profileFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := ser.Serialize(plan.Build(p), p)
	if err != nil {
		h.log.Error("mcp export_plan", "format", formatStr, "error", err)
		return mcp.NewToolResultError("export failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) listExportFormats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang := req.GetString("lang", "")
	result, err := mcp.NewToolResultJSON(export.Descriptions(lang))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	day, err := req.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	return mcp.NewToolResultText(plan.WorkoutDetails(week, day)), nil
}

func (h *handlers) getTip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	if day < 0 {
		return mcp.NewToolResultError("day must not be negative"), nil
	}
	return mcp.NewToolResultText(plan.BeginnerTip(day)), nil
}
