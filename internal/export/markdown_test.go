package export

import (
	"strings"
	"testing"
)

// TestMarkdownChecklist verifies the header block, the single heading per
// week, and the unchecked item shapes for workouts and rest days.
func TestMarkdownChecklist(t *testing.T) {
	data, err := markdownSerializer{}.Serialize(testPlan(t), testProfile())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"# C25K Training Plan",
		"**Name:** Test User",
		"**Age:** 30",
		"**Weight:** 70.0 kg",
		"**Start Date:** 2025-07-01",
		"## Workout Schedule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("checklist missing %q", want)
		}
	}

	if got := strings.Count(out, "### Week 1\n"); got != 1 {
		t.Errorf("week 1 heading appears %d times, want 1", got)
	}
	if got := strings.Count(out, "### Week 2\n"); got != 1 {
		t.Errorf("week 2 heading appears %d times, want 1", got)
	}

	if got := strings.Count(out, "- [ ] "); got != 10 {
		t.Errorf("checklist items = %d, want 10", got)
	}
	if !strings.Contains(out, "- [ ] **Day 1** (2025-07-01): ") {
		t.Error("missing first workout item")
	}
	if !strings.Contains(out, "- [ ] **Rest Day** (") {
		t.Error("missing rest day item")
	}
	if got := strings.Count(out, "  - *Tip:* "); got != 6 {
		t.Errorf("tip lines = %d, want one per workout", got)
	}
}

// TestMarkdownAnonymized verifies the anonymize flag masks the name with the
// placeholder rather than emitting an empty field.
func TestMarkdownAnonymized(t *testing.T) {
	p := testProfile()
	p.Anonymize = true

	data, err := markdownSerializer{}.Serialize(testPlan(t), p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if strings.Contains(out, "Test User") {
		t.Error("anonymized checklist leaks the name")
	}
	if !strings.Contains(out, "**Name:** N/A") {
		t.Error("missing N/A placeholder for the name")
	}
}

// TestMarkdownLocalized verifies the Spanish table drives the headings while
// untranslated content stays in English.
func TestMarkdownLocalized(t *testing.T) {
	p := testProfile()
	p.Lang = "es"

	data, err := markdownSerializer{}.Serialize(testPlan(t), p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "### Semana 1") {
		t.Errorf("missing localized week heading:\n%s", out[:min(len(out), 400)])
	}
	if !strings.Contains(out, "- [ ] **Día 1**") {
		t.Error("missing localized day label")
	}
}
