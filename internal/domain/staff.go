package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a dashboard staff user.
type Role string

const (
	RoleViewer     Role = "Viewer"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Level maps roles onto a ladder so middleware can compare them.
// Unknown roles rank below Viewer.
func (r Role) Level() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the role is one of the three known levels.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// AtLeast reports whether the role meets the given minimum level.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// MaxFailedLogins is the number of consecutive bad passwords before a
// staff account is locked.
const MaxFailedLogins = 5

// LoginLockDuration is how long a staff account stays locked after too
// many failed attempts.
const LoginLockDuration = 30 * time.Minute

// StaffUser is an internal dashboard operator. Distinct from Account,
// which mirrors the provider's end users.
type StaffUser struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Locked reports whether the account is locked out at the given moment.
func (u *StaffUser) Locked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}
