package model

import (
	"fmt"
	"time"
)

// Period selects the reporting window for dashboard aggregation.
type Period string

const (
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a period selector. An empty value defaults
// to the current-month window.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodMonth, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	}
	return "", fmt.Errorf("unknown period %q, expected \"month\" or \"year\"", s)
}

// Summary holds the four derived values of the dashboard.
type Summary struct {
	TotalBookings    int     `json:"total_bookings"`
	TotalInquiries   int     `json:"total_inquiries"`
	PendingApprovals int     `json:"pending_approvals"`
	TotalProfit      float64 `json:"total_profit"`
}

// DashboardData is the complete response for one agent and period.
type DashboardData struct {
	Agent           string    `json:"agent"`
	Period          Period    `json:"period"`
	Summary         Summary   `json:"summary"`
	RecentBookings  []Record  `json:"recent_bookings"`
	RecentInquiries []Record  `json:"recent_inquiries"`
	GeneratedAt     time.Time `json:"generated_at"`
}
