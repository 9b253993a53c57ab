package stats

import (
	"fmt"
	"strconv"
	"strings"

	"agent-dashboard/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeID turns an arbitrary identifying value into a trimmed non-empty
// string. The second return value is false when no usable identifier can be
// produced. Structured values are stringified before trimming.
func NormalizeID(v any) (string, bool) {
	var s string
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		s = id
	case primitive.ObjectID:
		s = id.Hex()
	case float64:
		s = strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		s = strconv.Itoa(id)
	case int32:
		s = strconv.FormatInt(int64(id), 10)
	case int64:
		s = strconv.FormatInt(id, 10)
	default:
		s = fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// BookingAgentRef resolves the owning agent of a booking record, checking a
// direct agent-id field, then an embedded agent object, then a scalar agent
// field.
func BookingAgentRef(r model.Record) (string, bool) {
	if s, ok := NormalizeID(r["agentId"]); ok {
		return s, true
	}
	return refFrom(r["agent"])
}

// InquiryAgentRef resolves the capturing agent of an inquiry record. The
// priority order differs from bookings: capturing-user field first, then the
// agent field, then a direct agent-id field.
func InquiryAgentRef(r model.Record) (string, bool) {
	if s, ok := refFrom(r["capturedBy"]); ok {
		return s, true
	}
	if s, ok := refFrom(r["agent"]); ok {
		return s, true
	}
	return NormalizeID(r["agentId"])
}

// refFrom resolves an identifier from a value that may be either a scalar id
// or an embedded object carrying one under "_id" or "id". Objects without an
// identifier field yield nothing rather than a stringified map.
func refFrom(v any) (string, bool) {
	if m, ok := asMap(v); ok {
		if s, ok := NormalizeID(m["_id"]); ok {
			return s, true
		}
		return NormalizeID(m["id"])
	}
	return NormalizeID(v)
}

// asMap unifies the map shapes produced by JSON and BSON decoding.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	case model.Record:
		return m, true
	case bson.M:
		return m, true
	case bson.D:
		out := make(map[string]any, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}
