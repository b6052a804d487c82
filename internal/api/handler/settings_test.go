package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// MockSettingRepo is a mock implementation of SettingRepositoryInterface
type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Get(ctx context.Context) (*domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepo) UpdateProviderToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type settingsFixture struct {
	app   *fiber.App
	repo  *MockSettingRepo
	audit *RecordingAudit
}

func newSettingsFixture() *settingsFixture {
	repo := &MockSettingRepo{}
	auditLog := &RecordingAudit{}
	h := NewSettingsHandler(repo, auditLog, testLogger())

	app := newTestApp(uuid.New(), "root", domain.RoleSuperAdmin)
	app.Get("/v1/settings", h.Get)
	app.Put("/v1/settings", h.Update)

	return &settingsFixture{app: app, repo: repo, audit: auditLog}
}

func TestSettingsHandler_Get(t *testing.T) {
	fx := newSettingsFixture()
	fx.repo.On("Get", mock.Anything).Return(&domain.Setting{
		ProviderToken: "ori-live-abcdef1234567890",
		UpdatedAt:     time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
	}, nil)

	resp, err := fx.app.Test(httptest.NewRequest("GET", "/v1/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data struct {
			ProviderTokenPrefix string `json:"provider_token_prefix"`
			UpdatedAt           string `json:"updated_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))

	// Only a masked prefix ever leaves the server
	assert.Equal(t, "ori-live...", parsed.Data.ProviderTokenPrefix)
	assert.Equal(t, "2025-05-01T09:30:00Z", parsed.Data.UpdatedAt)
}

func TestSettingsHandler_Get_NotConfigured(t *testing.T) {
	fx := newSettingsFixture()
	fx.repo.On("Get", mock.Anything).Return(nil, domain.ErrTokenNotConfigured)

	resp, err := fx.app.Test(httptest.NewRequest("GET", "/v1/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "PROVIDER_TOKEN_NOT_CONFIGURED", errorCode(t, body))
}

func TestSettingsHandler_Update(t *testing.T) {
	fx := newSettingsFixture()
	fx.repo.On("UpdateProviderToken", mock.Anything, "ori-live-rotated").Return(nil)

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/settings", fiber.Map{
		"provider_token": "ori-live-rotated",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	fx.repo.AssertExpectations(t)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventSettingsUpdated, events[0].EventType)
	assert.True(t, events[0].Success)
	assert.Equal(t, "root", events[0].Actor)
}

func TestSettingsHandler_Update_MissingToken(t *testing.T) {
	fx := newSettingsFixture()

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/settings", fiber.Map{}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	fx.repo.AssertNotCalled(t, "UpdateProviderToken", mock.Anything, mock.Anything)
}

func TestSettingsHandler_Update_RepoFailure(t *testing.T) {
	fx := newSettingsFixture()
	fx.repo.On("UpdateProviderToken", mock.Anything, "ori-live-rotated").Return(errors.New("connection refused"))

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/settings", fiber.Map{
		"provider_token": "ori-live-rotated",
	}))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.NotEmpty(t, events[0].Error)
}
