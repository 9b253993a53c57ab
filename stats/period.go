package stats

import (
	"time"

	"agent-dashboard/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamp layouts accepted from the backend, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PeriodStart computes the inclusive lower boundary of the reporting window
// in local time: the first instant of the current month, or January 1 of the
// current year.
func PeriodStart(p model.Period, now time.Time) time.Time {
	if p == model.PeriodYear {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// FilterByPeriod retains records whose timestamp falls within [start, now]
// inclusive. The timestamp is read from the given fields in order; records
// with no parsable timestamp compare as the epoch and fall outside any
// non-historical window.
func FilterByPeriod(records []model.Record, p model.Period, now time.Time, fields ...string) []model.Record {
	start := PeriodStart(p, now)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		ts := recordTime(r, fields)
		if ts.Before(start) || ts.After(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// recordTime reads the first usable timestamp from the given fields.
// Unparsable or absent values yield the epoch.
func recordTime(r model.Record, fields []string) time.Time {
	for _, field := range fields {
		switch v := r[field].(type) {
		case time.Time:
			return v
		case primitive.DateTime:
			return v.Time()
		case string:
			for _, layout := range timeLayouts {
				if ts, err := time.ParseInLocation(layout, v, time.Local); err == nil {
					return ts
				}
			}
		}
	}
	return time.Unix(0, 0)
}
