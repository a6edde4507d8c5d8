// Package mcp exposes plan generation and export over the Model Context
// Protocol so AI clients can build and render training schedules.
package mcp

import (
	"log/slog"

	"github.com/claude/couchplan/internal/prefs"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(store *prefs.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("CouchPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Couch-to-5K training plan server. Generate fixed-length running schedules from a user profile and export them as calendar, spreadsheet, structured, or checklist formats."),
	)

	h := &handlers{prefs: store, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolExportPlan, Handler: h.exportPlan},
		server.ServerTool{Tool: toolListExportFormats, Handler: h.listExportFormats},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetTip, Handler: h.getTip},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutCatalog, Handler: h.workoutCatalog},
		server.ServerResource{Resource: resTips, Handler: h.tips},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	prefs *prefs.Store
	log   *slog.Logger
}
