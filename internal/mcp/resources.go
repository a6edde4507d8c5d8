package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/couchplan/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

var resWorkoutCatalog = mcp.NewResource(
	"couchplan://workout_catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("The canonical 10-week interval/continuous-run structure, one instruction per (week, day)"),
	mcp.WithMIMEType("application/json"),
)

var resTips = mcp.NewResource(
	"couchplan://tips",
	"Beginner Tips",
	mcp.WithResourceDescription("The rotating motivational and safety tip table"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) workoutCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := make(map[int]map[int]string, plan.CatalogWeeks())
	for week := 1; week <= plan.CatalogWeeks(); week++ {
		catalog[week] = make(map[int]string, plan.DefaultDaysPerWeek)
		for day := 1; day <= plan.DefaultDaysPerWeek; day++ {
			catalog[week][day] = plan.WorkoutDetails(week, day)
		}
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) tips(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(plan.Tips())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
