package stats

import (
	"strings"

	"agent-dashboard/model"
)

// RefFunc extracts an owning-agent reference from a record.
type RefFunc func(model.Record) (string, bool)

// FilterByAgent retains records whose extracted agent reference matches the
// given identifier: exact match first, case-insensitive as a fallback. An
// empty identifier matches nothing, so a missing identity fails closed.
func FilterByAgent(records []model.Record, agentID string, ref RefFunc) []model.Record {
	if agentID == "" {
		return nil
	}
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		got, ok := ref(r)
		if !ok {
			continue
		}
		if got == agentID || strings.EqualFold(got, agentID) {
			out = append(out, r)
		}
	}
	return out
}
