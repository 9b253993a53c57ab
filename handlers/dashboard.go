package handlers

import (
	"fmt"
	"time"

	"agent-dashboard/errors"
	"agent-dashboard/logger"
	"agent-dashboard/metrics"
	"agent-dashboard/model"
	"agent-dashboard/provider"
	"agent-dashboard/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Dashboard serves the agent summary endpoints over the latest provider
// snapshot.
type Dashboard struct {
	Snapshot *provider.Snapshot
	Log      logger.Logger
	Metrics  *metrics.Metrics
}

func NewDashboard(snapshot *provider.Snapshot, log logger.Logger, m *metrics.Metrics) *Dashboard {
	return &Dashboard{Snapshot: snapshot, Log: log, Metrics: m}
}

// GetSummary computes the dashboard summary for the authenticated agent
// over the requested period (month by default).
func (h *Dashboard) GetSummary(c *fiber.Ctx) error {
	period, err := model.ParsePeriod(c.Query("period"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	started := time.Now()
	data := stats.Aggregate(
		h.Snapshot.Bookings(),
		h.Snapshot.Inquiries(),
		currentAgentID(c),
		period,
		time.Now())
	if h.Metrics != nil {
		h.Metrics.AggregationSeconds.Observe(time.Since(started).Seconds())
	}

	return c.JSON(data)
}

// GetPending returns the pending-approval list for the authenticated agent.
func (h *Dashboard) GetPending(c *fiber.Ctx) error {
	period, err := model.ParsePeriod(c.Query("period"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	items := stats.Pending(
		h.Snapshot.Bookings(),
		h.Snapshot.Inquiries(),
		currentAgentID(c),
		period,
		time.Now())

	return c.JSON(items)
}

// Refresh re-fetches both collections from the data provider.
func (h *Dashboard) Refresh(c *fiber.Ctx) error {
	if err := h.Snapshot.Refresh(c.Context()); err != nil {
		h.Log.Error("snapshot refresh failed", "error", err)
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "data refreshed",
		"data":    h.Snapshot.FetchedAt()})
}

// Health is a liveness probe.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "message": "healthy", "data": nil})
}

// currentAgentID reads the agent identity from the JWT claims. A missing
// claim yields nil, so downstream ownership filtering fails closed.
func currentAgentID(c *fiber.Ctx) any {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims["agentId"]
}
