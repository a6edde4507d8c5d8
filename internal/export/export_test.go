package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestAvailableOrder verifies the probe reports every registered format in
// the fixed presentation order.
func TestAvailableOrder(t *testing.T) {
	got := Available()
	want := []Format{
		FormatICS, FormatCSV, FormatJSON, FormatMarkdown,
		FormatAppleHealth, FormatStrava, FormatGoogleFit, FormatXLSX,
	}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	for _, f := range got {
		if _, ok := Get(f); !ok {
			t.Errorf("Get(%s) missing for an available format", f)
		}
	}
}

// TestGetUnknownFormat verifies dispatch is guarded: an unregistered name is
// reported, not panicked on.
func TestGetUnknownFormat(t *testing.T) {
	if _, ok := Get("pdf"); ok {
		t.Error("Get returned a serializer for an unregistered format")
	}
}

// TestDescriptionsCoverAvailable verifies every available format has a
// non-empty description, with English filling gaps in partial tables.
func TestDescriptionsCoverAvailable(t *testing.T) {
	for _, lang := range []string{"en", "es"} {
		desc := Descriptions(lang)
		for _, f := range Available() {
			d, ok := desc[f]
			if !ok || d == "" || strings.HasPrefix(d, "format_") {
				t.Errorf("lang %s: format %s description = %q", lang, f, d)
			}
		}
	}
}

// TestWriteFile verifies the file lands under the target directory with the
// serializer's fixed name and the serialized contents.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	sessions := testPlan(t)

	res, err := WriteFile(dir, FormatJSON, sessions, testProfile())
	if err != nil {
		t.Fatal(err)
	}
	if res.Format != FormatJSON || res.FellBack {
		t.Errorf("result = %+v", res)
	}
	if res.Path != filepath.Join(dir, "c25k_plan.json") {
		t.Errorf("path = %s", res.Path)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParsePlan(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(sessions) {
		t.Errorf("file holds %d sessions, want %d", len(back), len(sessions))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".couchplan-") {
			t.Errorf("stray temp file %s", e.Name())
		}
	}
}

// TestWriteFileUnsupportedFormat verifies the unknown-format error path.
func TestWriteFileUnsupportedFormat(t *testing.T) {
	_, err := WriteFile(t.TempDir(), "pdf", testPlan(t), testProfile())
	if err == nil || !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("err = %v, want unsupported format", err)
	}
}

// TestWriteFileBadDir verifies a write failure surfaces as an error with no
// partial file.
func TestWriteFileBadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := WriteFile(dir, FormatCSV, testPlan(t), testProfile()); err == nil {
		t.Error("expected error for missing directory")
	}
}

// TestWriteRaw verifies the post-processing write path replaces the file
// contents in place.
func TestWriteRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c25k_checklist.md")
	if err := WriteRaw(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteRaw(path, []byte("second")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("contents = %q, want %q", data, "second")
	}
}
