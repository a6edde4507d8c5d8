package export

import (
	"encoding/json"

	"github.com/claude/couchplan/internal/plan"
)

type jsonSerializer struct{}

func (jsonSerializer) Filename() string    { return "c25k_plan.json" }
func (jsonSerializer) ContentType() string { return "application/json" }

// Serialize emits the full session sequence as indented JSON. Every field is
// preserved, so parsing the output yields the identical session set.
func (jsonSerializer) Serialize(sessions []plan.Session, _ plan.Profile) ([]byte, error) {
	if sessions == nil {
		sessions = []plan.Session{}
	}
	return json.MarshalIndent(sessions, "", "  ")
}

// ParsePlan decodes a JSON export back into the session sequence. Round-trip
// fidelity is part of the structured format's contract.
func ParsePlan(data []byte) ([]plan.Session, error) {
	var sessions []plan.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
