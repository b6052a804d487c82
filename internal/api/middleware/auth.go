package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

const (
	// SessionCookie is the cookie carrying the staff session token
	SessionCookie = "authToken"
	// LocalStaffID is the key to retrieve the staff user id from context
	LocalStaffID = "staff_id"
	// LocalStaffUsername is the key to retrieve the staff username from context
	LocalStaffUsername = "staff_username"
	// LocalStaffRole is the key to retrieve the staff role from context
	LocalStaffRole = "staff_role"
)

// AuthDependencies contains dependencies for session authentication
type AuthDependencies struct {
	JWTService *auth.JWTService
	Logger     *slog.Logger
}

// RequireRole creates an authentication middleware that admits only
// sessions at or above the given role. The token is read from the
// session cookie, falling back to an Authorization bearer header for
// non-browser clients. Rejection happens before any data access.
func RequireRole(min domain.Role, deps AuthDependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractSessionToken(c)
		if token == "" {
			deps.Logger.Debug("missing session token", "path", c.Path())
			return domain.ErrUnauthorized
		}

		claims, err := deps.JWTService.ValidateToken(token)
		if err != nil {
			deps.Logger.Warn("invalid session token", "error", err)
			return domain.ErrUnauthorized
		}

		if !claims.Role.AtLeast(min) {
			deps.Logger.Warn("insufficient privileges",
				"username", claims.Username,
				"role", claims.Role,
				"required", min,
			)
			return domain.ErrForbidden
		}

		c.Locals(LocalStaffID, claims.UserID)
		c.Locals(LocalStaffUsername, claims.Username)
		c.Locals(LocalStaffRole, claims.Role)

		return c.Next()
	}
}

// extractSessionToken reads the session token from the cookie or the
// Authorization header
func extractSessionToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}

	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// GetStaffID retrieves the authenticated staff user id from Fiber context
func GetStaffID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(LocalStaffID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// GetStaffUsername retrieves the authenticated staff username from Fiber context
func GetStaffUsername(c *fiber.Ctx) (string, error) {
	username, ok := c.Locals(LocalStaffUsername).(string)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return username, nil
}

// GetStaffRole retrieves the authenticated staff role from Fiber context
func GetStaffRole(c *fiber.Ctx) (domain.Role, error) {
	role, ok := c.Locals(LocalStaffRole).(domain.Role)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return role, nil
}

// IsSuperAdmin checks if the current request is from a SuperAdmin session
func IsSuperAdmin(c *fiber.Ctx) bool {
	role, ok := c.Locals(LocalStaffRole).(domain.Role)
	return ok && role == domain.RoleSuperAdmin
}
