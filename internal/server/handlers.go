package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/claude/couchplan/internal/accessibility"
	"github.com/claude/couchplan/internal/export"
	"github.com/claude/couchplan/internal/plan"
	"github.com/claude/couchplan/internal/platform"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	profile, err := req.toProfile()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sessions := plan.Build(profile)
	writeJSON(w, http.StatusOK, map[string]any{
		"plan":    sessions,
		"profile": profile.Sanitized(),
	})
}

type exportRequest struct {
	profileRequest
	Format       string `json:"format"`
	HighContrast bool   `json:"high_contrast"`
	LargeFont    bool   `json:"large_font"`
}

// integrationFlags maps gated export formats to their preference flag.
var integrationFlags = map[export.Format]string{
	export.FormatStrava: "strava_enabled",
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	format := export.Format(req.Format)
	ser, ok := export.Get(format)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unsupported export format %q", req.Format)})
		return
	}

	if flag, gated := integrationFlags[format]; gated && !s.prefs.IsEnabled(flag) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": fmt.Sprintf("%s integration is disabled in preferences", format)})
		return
	}

	profile, err := req.toProfile()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sessions := plan.Build(profile)
	data, err := ser.Serialize(sessions, profile)
	if err != nil {
		// Spreadsheet engine failures degrade to the generic CSV format;
		// the fallback is reported in a response header.
		if format != export.FormatXLSX {
			s.log.Error("export error", "format", format, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		ser, _ = export.Get(export.FormatCSV)
		data, err = ser.Serialize(sessions, profile)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("X-Export-Fallback", string(export.FormatCSV))
	}

	if format == export.FormatMarkdown && (req.HighContrast || req.LargeFont) {
		data = []byte(accessibility.Apply(string(data), req.HighContrast, req.LargeFont))
	}

	w.Header().Set("Content-Type", ser.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ser.Filename()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	writeJSON(w, http.StatusOK, map[string]any{
		"formats": export.Descriptions(lang),
	})
}

func (s *Server) handleIntegration(w http.ResponseWriter, r *http.Request) {
	target := platform.Target(chi.URLParam(r, "target"))

	if !s.prefs.IsEnabled(string(target) + "_enabled") {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": fmt.Sprintf("%s integration is disabled in preferences", target)})
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	profile, err := req.toProfile()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	payload, err := platform.Shape(target, plan.Build(profile))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"target":  target,
		"payload": payload,
	})
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	all, err := s.prefs.All()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handlePutPrefs(w http.ResponseWriter, r *http.Request) {
	var entries map[string]string
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.prefs.SetAll(entries); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
