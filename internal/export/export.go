// Package export turns a generated plan into external file formats. Each
// serializer renders sessions strictly in input order and never mutates the
// plan or the profile.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/couchplan/internal/i18n"
	"github.com/claude/couchplan/internal/plan"
)

// Format identifies one export target. The set is closed; dispatch goes
// through the registry, not string matching at call sites.
type Format string

const (
	FormatICS         Format = "ics"
	FormatCSV         Format = "csv"
	FormatJSON        Format = "json"
	FormatMarkdown    Format = "markdown"
	FormatAppleHealth Format = "apple_health"
	FormatStrava      Format = "strava"
	FormatGoogleFit   Format = "google_fit"
	FormatXLSX        Format = "xlsx"
)

// Serializer converts a session sequence (plus the profile, where the format
// embeds user data) into a byte buffer.
type Serializer interface {
	Serialize(sessions []plan.Session, profile plan.Profile) ([]byte, error)
	Filename() string
	ContentType() string
}

var registry = map[Format]Serializer{
	FormatICS:         icsSerializer{},
	FormatCSV:         csvSerializer{},
	FormatJSON:        jsonSerializer{},
	FormatMarkdown:    markdownSerializer{},
	FormatAppleHealth: appleHealthSerializer{},
	FormatStrava:      stravaSerializer{},
	FormatGoogleFit:   googleFitSerializer{},
	FormatXLSX:        xlsxSerializer{},
}

// available fixes the order formats are reported in.
var available = []Format{
	FormatICS, FormatCSV, FormatJSON, FormatMarkdown,
	FormatAppleHealth, FormatStrava, FormatGoogleFit, FormatXLSX,
}

// Available reports which formats can be produced. The probe runs before
// dispatch so callers never have to recover from a missing serializer.
func Available() []Format {
	out := make([]Format, 0, len(available))
	for _, f := range available {
		if _, ok := registry[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Get returns the serializer for a format, if registered.
func Get(f Format) (Serializer, bool) {
	s, ok := registry[f]
	return s, ok
}

// Descriptions returns a human-readable description per available format in
// the requested language.
func Descriptions(lang string) map[Format]string {
	out := make(map[Format]string, len(available))
	for _, f := range Available() {
		out[f] = i18n.T(lang, "format_"+string(f))
	}
	return out
}

// Result describes a completed file export, including whether the spreadsheet
// engine degraded to the generic CSV format.
type Result struct {
	Format   Format `json:"format"`
	Path     string `json:"path"`
	FellBack bool   `json:"fell_back,omitempty"`
}

// WriteFile serializes the plan and writes it under dir. The buffer is
// rendered fully in memory and written via a temp file plus rename, so a
// failed export never leaves a truncated file behind. A spreadsheet engine
// failure falls back to the generic CSV format; the result reports which
// format was actually written.
func WriteFile(dir string, format Format, sessions []plan.Session, profile plan.Profile) (Result, error) {
	s, ok := registry[format]
	if !ok {
		return Result{}, fmt.Errorf("unsupported export format %q", format)
	}

	res := Result{Format: format}
	data, err := s.Serialize(sessions, profile)
	if err != nil {
		if format != FormatXLSX {
			return Result{}, fmt.Errorf("serializing %s: %w", format, err)
		}
		s = registry[FormatCSV]
		data, err = s.Serialize(sessions, profile)
		if err != nil {
			return Result{}, fmt.Errorf("csv fallback after xlsx failure: %w", err)
		}
		res.Format = FormatCSV
		res.FellBack = true
	}

	path := filepath.Join(dir, s.Filename())
	if err := writeAtomic(path, data); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// WriteRaw writes an already-rendered buffer (for example after accessibility
// post-processing) with the same temp-file-and-rename guarantee as WriteFile.
func WriteRaw(path string, data []byte) error {
	return writeAtomic(path, data)
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".couchplan-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
