package stats

import (
	"strings"

	"agent-dashboard/model"
)

// IsBookingPending reports whether a booking awaits administrative sign-off.
// The approval-status field wins; the generic status field is the fallback.
func IsBookingPending(r model.Record) bool {
	status, ok := r["approvalStatus"].(string)
	if !ok || status == "" {
		status, _ = r["status"].(string)
	}
	return status == "pending"
}

// IsInquiryPending reports whether an inquiry still needs attention. Inquiry
// statuses come from a different backend module and vary in casing.
func IsInquiryPending(r model.Record) bool {
	status, _ := r["status"].(string)
	switch strings.ToLower(status) {
	case "new", "pending":
		return true
	}
	return false
}

// PendingItems concatenates pending bookings followed by pending inquiries,
// preserving order within each group.
func PendingItems(bookings, inquiries []model.Record) []model.Record {
	out := make([]model.Record, 0, len(bookings)+len(inquiries))
	for _, b := range bookings {
		if IsBookingPending(b) {
			out = append(out, b)
		}
	}
	for _, i := range inquiries {
		if IsInquiryPending(i) {
			out = append(out, i)
		}
	}
	return out
}
