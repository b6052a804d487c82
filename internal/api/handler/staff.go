package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
)

// StaffHandler manages dashboard operator accounts. All routes are
// SuperAdmin-gated in the router.
type StaffHandler struct {
	users    repository.StaffUserRepositoryInterface
	auditLog audit.Logger
	logger   *slog.Logger
}

func NewStaffHandler(users repository.StaffUserRepositoryInterface, auditLog audit.Logger, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		users:    users,
		auditLog: auditLog,
		logger:   logger,
	}
}

type staffUserRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// List handles GET /v1/staff
func (h *StaffHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list staff users", "error", err)
		return domain.ErrInternal.WithError(err)
	}

	return c.JSON(fiber.Map{"data": users})
}

// Create handles POST /v1/staff
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req staffUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if !req.Role.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown role "+string(req.Role))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	user := &domain.StaffUser{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}

	err = h.users.Create(c.Context(), user)
	h.auditStaff(c, audit.EventStaffUserCreated, user.ID, err)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": user})
}

// Update handles PUT /v1/staff/:id. Password is optional; an empty
// value keeps the current hash.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid staff user ID format")
	}

	var req staffUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "unknown role "+string(req.Role))
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return domain.ErrInternal.WithError(err)
		}
		user.PasswordHash = hash
	}

	err = h.users.Update(c.Context(), user)
	h.auditStaff(c, audit.EventStaffUserUpdated, id, err)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": user})
}

// Delete handles DELETE /v1/staff/:id. A SuperAdmin cannot delete
// their own session's account, which would lock everyone out one
// removal at a time.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid staff user ID format")
	}

	if selfID, err := middleware.GetStaffID(c); err == nil && selfID == id {
		return fiber.NewError(fiber.StatusBadRequest, "cannot delete your own account")
	}

	err = h.users.Delete(c.Context(), id)
	h.auditStaff(c, audit.EventStaffUserDeleted, id, err)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": "deleted"})
}

func (h *StaffHandler) auditStaff(c *fiber.Ctx, event audit.EventType, targetID uuid.UUID, err error) {
	actorID, _ := middleware.GetStaffID(c)
	username, _ := middleware.GetStaffUsername(c)

	_ = h.auditLog.Log(c.Context(), audit.Event{
		EventType: event,
		ActorID:   actorID,
		Actor:     username,
		Success:   err == nil,
		Error:     errString(err),
		Metadata:  map[string]string{"staff_user_id": targetID.String()},
		IPAddress: c.IP(),
	})
}
