package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
)

// SettingsHandler exposes the provider token setting. SuperAdmin only.
type SettingsHandler struct {
	settings repository.SettingRepositoryInterface
	auditLog audit.Logger
	logger   *slog.Logger
}

func NewSettingsHandler(settings repository.SettingRepositoryInterface, auditLog audit.Logger, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		auditLog: auditLog,
		logger:   logger,
	}
}

type settingsResponse struct {
	// Only a prefix of the token is returned; the full value never
	// leaves the server once stored.
	ProviderTokenPrefix string `json:"provider_token_prefix"`
	UpdatedAt           string `json:"updated_at"`
}

// Get handles GET /v1/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	setting, err := h.settings.Get(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": settingsResponse{
			ProviderTokenPrefix: tokenPrefix(setting.ProviderToken),
			UpdatedAt:           setting.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	})
}

type updateSettingsRequest struct {
	ProviderToken string `json:"provider_token"`
}

// Update handles PUT /v1/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.ProviderToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing provider_token")
	}

	err := h.settings.UpdateProviderToken(c.Context(), req.ProviderToken)

	actorID, _ := middleware.GetStaffID(c)
	username, _ := middleware.GetStaffUsername(c)
	_ = h.auditLog.Log(c.Context(), audit.Event{
		EventType: audit.EventSettingsUpdated,
		ActorID:   actorID,
		Actor:     username,
		Success:   err == nil,
		Error:     errString(err),
		IPAddress: c.IP(),
	})

	if err != nil {
		h.logger.Error("failed to update settings", "error", err)
		return domain.ErrInternal.WithError(err)
	}

	return c.JSON(fiber.Map{"data": "Setting updated successfully"})
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
