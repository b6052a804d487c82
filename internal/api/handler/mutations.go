package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
)

// MutationsHandler proxies account-management actions to the provider.
// Every successful mutation forces a synchronous snapshot refresh so
// the next read reflects it.
type MutationsHandler struct {
	provider  provider.AccountProvider
	refresher *snapshot.Refresher
	auditLog  audit.Logger
	logger    *slog.Logger
}

func NewMutationsHandler(p provider.AccountProvider, refresher *snapshot.Refresher, auditLog audit.Logger, logger *slog.Logger) *MutationsHandler {
	return &MutationsHandler{
		provider:  p,
		refresher: refresher,
		auditLog:  auditLog,
		logger:    logger,
	}
}

// Extend handles POST /v1/accounts/extend
func (h *MutationsHandler) Extend(c *fiber.Ctx) error {
	var req provider.MutationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.AccountID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing user_id")
	}
	if req.EndDate == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing end_date")
	}
	if _, err := domain.ParseISODate(req.EndDate); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	err := h.provider.ExtendSubscription(c.Context(), req)
	h.audit(c, audit.EventAccountExtended, req.AccountID, err, map[string]string{
		"end_date": req.EndDate,
	})
	if err != nil {
		return err
	}

	h.refreshAfterMutation(c.Context())
	return c.JSON(fiber.Map{"data": "success"})
}

// UpdateQuota handles POST /v1/accounts/quota. It mirrors the original
// dashboard's combined update: the end date plus all three quota fields
// are pushed in one request from the edit dialog.
func (h *MutationsHandler) UpdateQuota(c *fiber.Ctx) error {
	var req provider.MutationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.AccountID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing user_id")
	}

	ops := []struct {
		name string
		call func(context.Context, provider.MutationRequest) error
	}{
		{"extend", h.provider.ExtendSubscription},
		{"max-apps", h.provider.SetMaxApps},
		{"max-tokens", h.provider.SetMaxTokens},
		{"max-file-datasets", h.provider.SetMaxFileDatasets},
	}

	for _, op := range ops {
		if err := op.call(c.Context(), req); err != nil {
			h.audit(c, audit.EventAccountQuotaUpdated, req.AccountID, err, map[string]string{
				"failed_op": op.name,
			})
			return err
		}
	}

	h.audit(c, audit.EventAccountQuotaUpdated, req.AccountID, nil, map[string]string{
		"max_apps":          strconv.FormatInt(req.MaxApps, 10),
		"max_tokens":        strconv.FormatInt(req.MaxTokens, 10),
		"max_file_datasets": strconv.FormatInt(req.MaxFileDatasets, 10),
	})

	h.refreshAfterMutation(c.Context())
	return c.JSON(fiber.Map{"data": "success"})
}

// Remove handles POST /v1/accounts/remove. SuperAdmin only; the route
// is gated in the router.
func (h *MutationsHandler) Remove(c *fiber.Ctx) error {
	var req provider.MutationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.AccountID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing user_id")
	}

	err := h.provider.RemoveAccount(c.Context(), req.AccountID)
	h.audit(c, audit.EventAccountRemoved, req.AccountID, err, nil)
	if err != nil {
		return err
	}

	h.refreshAfterMutation(c.Context())
	return c.JSON(fiber.Map{"data": "success"})
}

// refreshAfterMutation forces a snapshot refresh so subsequent reads
// see the mutation. A refresh failure is not the mutation's failure:
// the provider already applied the change, so only a warning is logged
// and the TTL will catch up.
func (h *MutationsHandler) refreshAfterMutation(ctx context.Context) {
	if _, err := h.refresher.EnsureFresh(ctx, true); err != nil {
		h.logger.Warn("post-mutation snapshot refresh failed", "error", err)
	}
}

func (h *MutationsHandler) audit(c *fiber.Ctx, event audit.EventType, accountID string, err error, metadata map[string]string) {
	staffID, _ := middleware.GetStaffID(c)
	username, _ := middleware.GetStaffUsername(c)

	_ = h.auditLog.Log(c.Context(), audit.Event{
		EventType: event,
		ActorID:   staffID,
		Actor:     username,
		AccountID: accountID,
		Success:   err == nil,
		Error:     errString(err),
		Metadata:  metadata,
		IPAddress: c.IP(),
	})
}
