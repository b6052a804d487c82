package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of auditable event
type EventType string

const (
	EventAccountExtended     EventType = "ACCOUNT_EXTENDED"
	EventAccountQuotaUpdated EventType = "ACCOUNT_QUOTA_UPDATED"
	EventAccountRemoved      EventType = "ACCOUNT_REMOVED"
	EventSettingsUpdated     EventType = "SETTINGS_UPDATED"
	EventStaffUserCreated    EventType = "STAFF_USER_CREATED"
	EventStaffUserUpdated    EventType = "STAFF_USER_UPDATED"
	EventStaffUserDeleted    EventType = "STAFF_USER_DELETED"
	EventSnapshotSynced      EventType = "SNAPSHOT_SYNCED"
	EventStaffLogin          EventType = "STAFF_LOGIN"
	EventStaffLoginFailed    EventType = "STAFF_LOGIN_FAILED"
)

// Event records one administrative action against the provider or the
// dashboard itself, for accountability over destructive operations.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	ActorID   uuid.UUID         `json:"actor_id"`
	Actor     string            `json:"actor,omitempty"`
	EventType EventType         `json:"event_type"`
	AccountID string            `json:"account_id,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	IPAddress string            `json:"ip_address,omitempty"`
}

// Logger defines the interface for audit logging
type Logger interface {
	Log(ctx context.Context, event Event) error
}

// SlogLogger implements Logger using slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a new audit logger using slog
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{
		logger: logger.With("component", "audit"),
	}
}

// Log records an audit event
func (l *SlogLogger) Log(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to marshal audit event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.EventType)),
		)
		return err
	}

	l.logger.InfoContext(ctx, "audit_event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.EventType)),
		slog.String("actor_id", event.ActorID.String()),
		slog.String("account_id", event.AccountID),
		slog.Bool("success", event.Success),
		slog.String("event_data", string(eventJSON)),
	)

	return nil
}

// NoOpLogger is a logger that does nothing (for testing or when audit is disabled)
type NoOpLogger struct{}

// Log does nothing and returns nil
func (l *NoOpLogger) Log(_ context.Context, _ Event) error {
	return nil
}
