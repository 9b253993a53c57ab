package stats

import (
	"testing"

	"agent-dashboard/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeID(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{name: "plain string", input: "A1", expected: "A1", ok: true},
		{name: "padded string", input: "  A1  ", expected: "A1", ok: true},
		{name: "empty string", input: "", ok: false},
		{name: "whitespace only", input: "   ", ok: false},
		{name: "nil", input: nil, ok: false},
		{name: "object id", input: oid, expected: oid.Hex(), ok: true},
		{name: "float without fraction", input: float64(42), expected: "42", ok: true},
		{name: "int", input: 7, expected: "7", ok: true},
	}

	for _, test := range tests {
		got, ok := NormalizeID(test.input)
		assert.Equalf(t, test.ok, ok, test.name)
		if test.ok {
			assert.Equalf(t, test.expected, got, test.name)
		}
	}
}

func TestBookingAgentRef(t *testing.T) {
	tests := []struct {
		name     string
		record   model.Record
		expected string
		ok       bool
	}{
		{
			name:     "direct agentId field",
			record:   model.Record{"agentId": "A1"},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "embedded agent object with _id",
			record:   model.Record{"agent": map[string]any{"_id": "A1"}},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "embedded agent object with id alias",
			record:   model.Record{"agent": map[string]any{"id": "A1"}},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "scalar agent field",
			record:   model.Record{"agent": "A1"},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "agentId wins over embedded agent",
			record:   model.Record{"agentId": "A1", "agent": map[string]any{"_id": "A2"}},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "bson embedded document",
			record:   model.Record{"agent": bson.M{"_id": "A1"}},
			expected: "A1",
			ok:       true,
		},
		{
			name:   "agent object without identifier",
			record: model.Record{"agent": map[string]any{"name": "Ann"}},
			ok:     false,
		},
		{
			name:   "no agent reference at all",
			record: model.Record{"customerName": "Bob"},
			ok:     false,
		},
	}

	for _, test := range tests {
		got, ok := BookingAgentRef(test.record)
		assert.Equalf(t, test.ok, ok, test.name)
		if test.ok {
			assert.Equalf(t, test.expected, got, test.name)
		}
	}
}

func TestInquiryAgentRef(t *testing.T) {
	tests := []struct {
		name     string
		record   model.Record
		expected string
		ok       bool
	}{
		{
			name:     "capturedBy scalar",
			record:   model.Record{"capturedBy": "A1"},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "capturedBy wins over agent",
			record:   model.Record{"capturedBy": "A1", "agent": "A2", "agentId": "A3"},
			expected: "A1",
			ok:       true,
		},
		{
			name:     "agent object when capturedBy absent",
			record:   model.Record{"agent": map[string]any{"_id": "A2"}},
			expected: "A2",
			ok:       true,
		},
		{
			name:     "agentId as last resort",
			record:   model.Record{"agentId": "A3"},
			expected: "A3",
			ok:       true,
		},
		{
			name:   "nothing resolves",
			record: model.Record{"subject": "trip to Bali"},
			ok:     false,
		},
	}

	for _, test := range tests {
		got, ok := InquiryAgentRef(test.record)
		assert.Equalf(t, test.ok, ok, test.name)
		if test.ok {
			assert.Equalf(t, test.expected, got, test.name)
		}
	}
}
