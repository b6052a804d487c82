package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/query"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
)

type AccountsHandler struct {
	refresher *snapshot.Refresher
	engine    *query.Engine
	auditLog  audit.Logger
	logger    *slog.Logger
}

func NewAccountsHandler(refresher *snapshot.Refresher, engine *query.Engine, auditLog audit.Logger, logger *slog.Logger) *AccountsHandler {
	return &AccountsHandler{
		refresher: refresher,
		engine:    engine,
		auditLog:  auditLog,
		logger:    logger,
	}
}

// List handles GET /v1/accounts. When the provider fetch fails but an
// earlier snapshot exists, the stale data is served with a marker so
// the dashboard shows a warning instead of a blank screen.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	params, err := parseQueryParams(c)
	if err != nil {
		return err
	}

	snap, fetchErr := h.refresher.EnsureFresh(c.Context(), false)
	if fetchErr != nil && snap == nil {
		return fetchErr
	}

	result, err := h.engine.Apply(snap, params)
	if err != nil {
		return err
	}

	resp := fiber.Map{
		"data":  result.Accounts,
		"total": result.Total,
	}
	if fetchErr != nil {
		h.logger.Warn("serving stale account data", "error", fetchErr)
		resp["stale"] = true
		resp["message"] = "Provider fetch failed; showing last-known data"
	}

	return c.JSON(resp)
}

// Sync handles POST /v1/accounts/sync, forcing a refresh regardless of
// snapshot age.
func (h *AccountsHandler) Sync(c *fiber.Ctx) error {
	staffID, _ := middleware.GetStaffID(c)

	snap, err := h.refresher.EnsureFresh(c.Context(), true)

	_ = h.auditLog.Log(c.Context(), audit.Event{
		EventType: audit.EventSnapshotSynced,
		ActorID:   staffID,
		Success:   err == nil,
		Error:     errString(err),
		IPAddress: c.IP(),
	})

	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"accounts":    len(snap.Accounts),
			"captured_at": snap.CapturedAt,
		},
	})
}

// parseQueryParams maps request query parameters onto the query layer's
// configuration bag, starting from the listing defaults.
func parseQueryParams(c *fiber.Ctx) (domain.QueryParams, error) {
	params := domain.DefaultQueryParams()

	params.Search = c.Query("search")
	params.Page = c.QueryInt("page", params.Page)
	params.PageSize = c.QueryInt("pageSize", params.PageSize)

	switch field := c.Query("dateField"); field {
	case string(domain.DateFieldNone):
	case string(domain.DateFieldCreated):
		params.DateField = domain.DateFieldCreated
	case string(domain.DateFieldEnd):
		params.DateField = domain.DateFieldEnd
	default:
		return params, domain.ErrInvalidQuery.WithError(errors.New("unknown dateField " + field))
	}

	if y := c.Query("year"); y != "" {
		params.Year = y
	}
	if m := c.Query("month"); m != "" {
		params.Month = m
	}
	if d := c.Query("day"); d != "" {
		params.Day = d
	}

	params.Expiring = c.QueryBool("expiring", false)
	if mode := c.Query("expiringMode"); mode != "" {
		switch mode {
		case string(domain.ExpiringModeExpired):
			params.ExpiringMode = domain.ExpiringModeExpired
		case string(domain.ExpiringModeThisMonth):
			params.ExpiringMode = domain.ExpiringModeThisMonth
		default:
			return params, domain.ErrInvalidQuery.WithError(errors.New("unknown expiringMode " + mode))
		}
	}

	if sortBy := c.Query("sortOption"); sortBy != "" {
		params.SortBy = domain.SortBy(sortBy)
	}
	if dir := c.Query("sortDirection"); dir != "" {
		params.SortDir = domain.SortDir(dir)
	}

	return params, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
