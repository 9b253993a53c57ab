package stats

import (
	"fmt"
	"testing"
	"time"

	"agent-dashboard/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterByAgent(t *testing.T) {
	records := []model.Record{
		{"agentId": "A1", "customerName": "embedded id"},
		{"agent": map[string]any{"_id": "A1"}, "customerName": "agent object"},
		{"agent": "A1", "customerName": "scalar agent"},
		{"agentId": "B2", "customerName": "other agent"},
		{"customerName": "orphan"},
	}

	t.Run("matches across field shapes", func(t *testing.T) {
		got := FilterByAgent(records, "A1", BookingAgentRef)
		assert.Len(t, got, 3)
	})

	t.Run("case-insensitive fallback", func(t *testing.T) {
		got := FilterByAgent(records, "a1", BookingAgentRef)
		assert.Len(t, got, 3)
	})

	t.Run("records without a reference never match", func(t *testing.T) {
		for _, id := range []string{"A1", "orphan", ""} {
			for _, r := range FilterByAgent(records, id, BookingAgentRef) {
				assert.NotEqual(t, "orphan", r["customerName"])
			}
		}
	})

	t.Run("empty identifier fails closed", func(t *testing.T) {
		assert.Empty(t, FilterByAgent(records, "", BookingAgentRef))
	})
}

func TestPendingItems(t *testing.T) {
	bookings := []model.Record{
		{"approvalStatus": "pending", "customerName": "b1"},
		{"status": "pending", "customerName": "b2"},
		{"approvalStatus": "approved", "status": "pending", "customerName": "b3"},
		{"status": "confirmed", "customerName": "b4"},
	}
	inquiries := []model.Record{
		{"status": "Pending", "subject": "i1"},
		{"status": "NEW", "subject": "i2"},
		{"status": "closed", "subject": "i3"},
	}

	got := PendingItems(bookings, inquiries)

	assert.Len(t, got, 4)
	// Bookings precede inquiries, order preserved within each group.
	assert.Equal(t, "b1", got[0]["customerName"])
	assert.Equal(t, "b2", got[1]["customerName"])
	assert.Equal(t, "i1", got[2]["subject"])
	assert.Equal(t, "i2", got[3]["subject"])
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 45, 0, 0, time.Local)
	recent := now.Add(-48 * time.Hour).Format(time.RFC3339)

	bookings := []model.Record{
		{
			"agentId":   "A1",
			"createdAt": recent,
			"status":    "confirmed",
			"costing":   map[string]any{"totals": map[string]any{"profit": 120.0}},
		},
		{
			"agent":       map[string]any{"_id": "A1"},
			"createdAt":   recent,
			"status":      "pending",
			"totalAmount": "$1,250.00",
		},
		{
			"agentId":   "B2",
			"createdAt": recent,
			"costing":   map[string]any{"totals": map[string]any{"profit": 999.0}},
		},
		{
			// Owned but outside the month window.
			"agentId":   "A1",
			"createdAt": "2026-01-05T09:00:00Z",
			"costing":   map[string]any{"totals": map[string]any{"profit": 500.0}},
		},
	}
	inquiries := []model.Record{
		{"capturedBy": "A1", "createdAt": recent, "status": "Pending"},
		{"capturedBy": "A1", "createdAt": recent, "status": "closed"},
		{"capturedBy": "B2", "createdAt": recent, "status": "new"},
	}

	t.Run("month summary for current agent", func(t *testing.T) {
		// Case-insensitive identity match per the ownership policy.
		data := Aggregate(bookings, inquiries, "a1", model.PeriodMonth, now)

		assert.Equal(t, 2, data.Summary.TotalBookings)
		assert.Equal(t, 2, data.Summary.TotalInquiries)
		assert.Equal(t, 2, data.Summary.PendingApprovals) // one booking + one inquiry
		assert.Equal(t, 1370.0, data.Summary.TotalProfit) // 120 + 1250
		assert.Len(t, data.RecentBookings, 2)
		assert.Len(t, data.RecentInquiries, 2)
	})

	t.Run("year window includes january booking", func(t *testing.T) {
		data := Aggregate(bookings, inquiries, "A1", model.PeriodYear, now)

		assert.Equal(t, 3, data.Summary.TotalBookings)
		assert.Equal(t, 1870.0, data.Summary.TotalProfit)
	})

	t.Run("idempotent over an unmodified snapshot", func(t *testing.T) {
		first := Aggregate(bookings, inquiries, "A1", model.PeriodMonth, now)
		second := Aggregate(bookings, inquiries, "A1", model.PeriodMonth, now)
		assert.Equal(t, first, second)
	})

	t.Run("nil collections yield zero counts", func(t *testing.T) {
		data := Aggregate(nil, nil, "A1", model.PeriodMonth, now)

		assert.Equal(t, model.Summary{}, data.Summary)
		assert.Empty(t, data.RecentBookings)
		assert.Empty(t, data.RecentInquiries)
	})

	t.Run("absent identity matches nothing", func(t *testing.T) {
		data := Aggregate(bookings, inquiries, nil, model.PeriodMonth, now)
		assert.Equal(t, model.Summary{}, data.Summary)
	})

	t.Run("preview lists are capped", func(t *testing.T) {
		var many []model.Record
		for i := 0; i < 8; i++ {
			many = append(many, model.Record{
				"agentId":      "A1",
				"createdAt":    recent,
				"customerName": fmt.Sprintf("customer %d", i),
			})
		}

		data := Aggregate(many, nil, "A1", model.PeriodMonth, now)

		assert.Equal(t, 8, data.Summary.TotalBookings)
		assert.Len(t, data.RecentBookings, PreviewSize)
	})
}

func TestPending(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 45, 0, 0, time.Local)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	bookings := []model.Record{
		{"agentId": "A1", "createdAt": recent, "approvalStatus": "pending"},
		{"agentId": "B2", "createdAt": recent, "approvalStatus": "pending"},
	}
	inquiries := []model.Record{
		{"capturedBy": "A1", "createdAt": recent, "status": "new"},
	}

	got := Pending(bookings, inquiries, "A1", model.PeriodMonth, now)
	assert.Len(t, got, 2)

	assert.Empty(t, Pending(bookings, inquiries, nil, model.PeriodMonth, now))
}
