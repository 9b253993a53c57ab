// Package provider fetches raw booking and inquiry collections from the
// travel-booking backend. Two sources exist: the backend's REST API and, for
// deployments colocated with the CRM database, a read-only MongoDB source.
package provider

import (
	"context"

	"agent-dashboard/model"
)

// Source supplies the two raw record collections the dashboard aggregates.
type Source interface {
	Bookings(ctx context.Context) ([]model.Record, error)
	Inquiries(ctx context.Context) ([]model.Record, error)
}
