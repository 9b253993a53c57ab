// Package stats implements the dashboard aggregation pipeline: given raw
// booking and inquiry collections, the current agent's identity and a
// reporting period, it derives the summary counts, the profit total and the
// pending-approval selection. Every step tolerates missing or malformed
// fields and degrades to a safe default instead of returning an error.
package stats

import (
	"time"

	"agent-dashboard/model"
)

// PreviewSize bounds the recent-item lists in the dashboard response.
const PreviewSize = 5

// Timestamp fields per record kind. Bookings from older backend versions
// carry a bare date field instead of createdAt.
var (
	bookingTimeFields = []string{"createdAt", "date"}
	inquiryTimeFields = []string{"createdAt"}
)

// Aggregate runs the full dashboard computation for one agent. It is a pure
// function of its inputs: the caller supplies the clock, no record is
// mutated, and repeated runs over the same snapshot produce identical
// results.
func Aggregate(bookings, inquiries []model.Record, agentID any, period model.Period, now time.Time) model.DashboardData {
	id, hasAgent := NormalizeID(agentID)

	var ownedBookings, ownedInquiries []model.Record
	if hasAgent {
		ownedBookings = FilterByAgent(bookings, id, BookingAgentRef)
		ownedInquiries = FilterByAgent(inquiries, id, InquiryAgentRef)
	}

	periodBookings := FilterByPeriod(ownedBookings, period, now, bookingTimeFields...)
	periodInquiries := FilterByPeriod(ownedInquiries, period, now, inquiryTimeFields...)

	var profit float64
	for _, b := range periodBookings {
		profit += Profit(b)
	}

	return model.DashboardData{
		Agent:  id,
		Period: period,
		Summary: model.Summary{
			TotalBookings:    len(periodBookings),
			TotalInquiries:   len(periodInquiries),
			PendingApprovals: len(PendingItems(periodBookings, periodInquiries)),
			TotalProfit:      profit,
		},
		RecentBookings:  Preview(periodBookings, PreviewSize),
		RecentInquiries: Preview(periodInquiries, PreviewSize),
		GeneratedAt:     now,
	}
}

// Pending computes the pending-approval list for one agent over a period.
func Pending(bookings, inquiries []model.Record, agentID any, period model.Period, now time.Time) []model.Record {
	id, hasAgent := NormalizeID(agentID)
	if !hasAgent {
		return []model.Record{}
	}

	periodBookings := FilterByPeriod(FilterByAgent(bookings, id, BookingAgentRef), period, now, bookingTimeFields...)
	periodInquiries := FilterByPeriod(FilterByAgent(inquiries, id, InquiryAgentRef), period, now, inquiryTimeFields...)

	return PendingItems(periodBookings, periodInquiries)
}

// Preview returns at most n leading records without copying them.
func Preview(records []model.Record, n int) []model.Record {
	if len(records) <= n {
		return records
	}
	return records[:n]
}
