package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/stats"
)

type StatsHandler struct {
	refresher  *snapshot.Refresher
	aggregator *stats.Aggregator
	logger     *slog.Logger
	now        func() time.Time
}

func NewStatsHandler(refresher *snapshot.Refresher, aggregator *stats.Aggregator, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		refresher:  refresher,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (h *StatsHandler) WithClock(now func() time.Time) *StatsHandler {
	h.now = now
	return h
}

// Summary handles GET /v1/stats/summary
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	accounts, stale, err := h.snapshotAccounts(c)
	if err != nil {
		return err
	}

	summary := h.aggregator.Summarize(accounts, h.now())
	return h.respond(c, summary, stale)
}

// Growth handles GET /v1/stats/growth
func (h *StatsHandler) Growth(c *fiber.Ctx) error {
	accounts, stale, err := h.snapshotAccounts(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year", h.now().Year())
	return h.respond(c, h.aggregator.GrowthSeries(accounts, year), stale)
}

// CreationYearly handles GET /v1/stats/yearly
func (h *StatsHandler) CreationYearly(c *fiber.Ctx) error {
	accounts, stale, err := h.snapshotAccounts(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year", h.now().Year())
	return h.respond(c, h.aggregator.MonthlyHistogram(accounts, year), stale)
}

// DailyRegistration handles GET /v1/stats/daily.
// The month parameter is 0-indexed, matching the chart wire format.
func (h *StatsHandler) DailyRegistration(c *fiber.Ctx) error {
	accounts, stale, err := h.snapshotAccounts(c)
	if err != nil {
		return err
	}

	now := h.now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month())-1)
	if month < 0 || month > 11 {
		return domain.ErrInvalidQuery.WithError(errors.New("month must be between 0 and 11"))
	}

	return h.respond(c, h.aggregator.DailyHistogram(accounts, year, month), stale)
}

// StatusDonut handles GET /v1/stats/status
func (h *StatsHandler) StatusDonut(c *fiber.Ctx) error {
	accounts, stale, err := h.snapshotAccounts(c)
	if err != nil {
		return err
	}

	return h.respond(c, h.aggregator.StatusCounts(accounts, h.now()), stale)
}

// snapshotAccounts fetches the full snapshot for aggregation.
// Aggregates always run over the whole account list, never a filtered
// view. Stale data is served when the provider is down.
func (h *StatsHandler) snapshotAccounts(c *fiber.Ctx) ([]domain.Account, bool, error) {
	snap, err := h.refresher.EnsureFresh(c.Context(), false)
	if err != nil {
		if snap == nil {
			return nil, false, err
		}
		h.logger.Warn("serving stale snapshot for stats", "error", err)
		return snap.Accounts, true, nil
	}
	return snap.Accounts, false, nil
}

func (h *StatsHandler) respond(c *fiber.Ctx, data interface{}, stale bool) error {
	resp := fiber.Map{"data": data}
	if stale {
		resp["stale"] = true
		resp["message"] = "Provider fetch failed; showing last-known data"
	}
	return c.JSON(resp)
}
