package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agent-dashboard/logger"
	"agent-dashboard/metrics"
	"agent-dashboard/model"
)

// Snapshot holds the most recently fetched collections. Handlers read it on
// every request; Refresh swaps in fresh data atomically and keeps the
// previous snapshot when a fetch fails.
type Snapshot struct {
	source  Source
	log     logger.Logger
	metrics *metrics.Metrics

	mu        sync.RWMutex
	bookings  []model.Record
	inquiries []model.Record
	fetchedAt time.Time
}

func NewSnapshot(source Source, log logger.Logger, m *metrics.Metrics) *Snapshot {
	return &Snapshot{
		source:  source,
		log:     log,
		metrics: m,
	}
}

// Refresh fetches both collections from the source. On any error the
// previously held data stays in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	if s.metrics != nil {
		s.metrics.RefreshesTotal.Inc()
	}

	bookings, err := s.source.Bookings(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ProviderErrors.WithLabelValues("bookings").Inc()
		}
		return fmt.Errorf("refresh bookings: %w", err)
	}

	inquiries, err := s.source.Inquiries(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ProviderErrors.WithLabelValues("inquiries").Inc()
		}
		return fmt.Errorf("refresh inquiries: %w", err)
	}

	s.mu.Lock()
	s.bookings = bookings
	s.inquiries = inquiries
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.log.Info("snapshot refreshed", "bookings", len(bookings), "inquiries", len(inquiries))
	return nil
}

func (s *Snapshot) Bookings() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookings
}

func (s *Snapshot) Inquiries() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inquiries
}

// FetchedAt reports when the held data was last refreshed; the zero time
// means no refresh has succeeded yet.
func (s *Snapshot) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}
