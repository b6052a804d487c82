package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

type AuthHandler struct {
	authService  *auth.Service
	auditLog     audit.Logger
	logger       *slog.Logger
	secureCookie bool
}

func NewAuthHandler(authService *auth.Service, auditLog audit.Logger, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditLog:     auditLog,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing username or password")
	}

	token, user, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		_ = h.auditLog.Log(c.Context(), audit.Event{
			EventType: audit.EventStaffLoginFailed,
			Actor:     req.Username,
			Success:   false,
			Error:     err.Error(),
			IPAddress: c.IP(),
		})
		return err
	}

	_ = h.auditLog.Log(c.Context(), audit.Event{
		EventType: audit.EventStaffLogin,
		ActorID:   user.ID,
		Actor:     user.Username,
		Success:   true,
		IPAddress: c.IP(),
	})

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
		Expires:  time.Now().Add(h.authService.SessionTTL()),
	})

	return c.JSON(fiber.Map{
		"data": sessionResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Role:     user.Role,
		},
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})

	return c.JSON(fiber.Map{"data": "logged out"})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := middleware.GetStaffID(c)
	if err != nil {
		return err
	}
	username, err := middleware.GetStaffUsername(c)
	if err != nil {
		return err
	}
	role, err := middleware.GetStaffRole(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": sessionResponse{
			ID:       id.String(),
			Username: username,
			Role:     role,
		},
	})
}
