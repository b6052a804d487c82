package handler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider/mock"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
)

type mutationsFixture struct {
	app      *fiber.App
	provider *mock.Provider
	audit    *RecordingAudit
	staffID  uuid.UUID
}

func newMutationsFixture(accounts []domain.Account) *mutationsFixture {
	prov := mock.New(accounts)
	store := snapshot.NewStore()
	refresher := snapshot.NewRefresher(store, prov, nil, time.Hour, testLogger())
	auditLog := &RecordingAudit{}

	h := NewMutationsHandler(prov, refresher, auditLog, testLogger())

	staffID := uuid.New()
	app := newTestApp(staffID, "operator", domain.RoleSuperAdmin)
	app.Post("/v1/accounts/extend", h.Extend)
	app.Post("/v1/accounts/quota", h.UpdateQuota)
	app.Post("/v1/accounts/remove", h.Remove)

	return &mutationsFixture{app: app, provider: prov, audit: auditLog, staffID: staffID}
}

func currentAccount(t *testing.T, prov *mock.Provider, id string) domain.Account {
	t.Helper()
	accounts, err := prov.FetchAccounts(context.Background())
	require.NoError(t, err)
	for _, a := range accounts {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("account %s not found", id)
	return domain.Account{}
}

func TestMutationsHandler_Extend(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/extend", fiber.Map{
		"user_id":  "acct-002",
		"end_date": "2026-06-30",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	updated := currentAccount(t, fx.provider, "acct-002")
	assert.Equal(t, "2026-06-30", updated.EndDate)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventAccountExtended, events[0].EventType)
	assert.Equal(t, "acct-002", events[0].AccountID)
	assert.Equal(t, fx.staffID, events[0].ActorID)
	assert.True(t, events[0].Success)
	assert.Equal(t, "2026-06-30", events[0].Metadata["end_date"])

	// The mutation forces a snapshot refresh on top of the one
	// triggered by the mutation verification above.
	assert.GreaterOrEqual(t, fx.provider.FetchCalls(), 1)
}

func TestMutationsHandler_Extend_Validation(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	tests := []struct {
		name           string
		payload        fiber.Map
		expectedStatus int
	}{
		{"missing user_id", fiber.Map{"end_date": "2026-06-30"}, 400},
		{"missing end_date", fiber.Map{"user_id": "acct-002"}, 400},
		{"unparseable end_date", fiber.Map{"user_id": "acct-002", "end_date": "soon"}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/extend", tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	// Nothing reached the provider
	assert.Equal(t, 0, fx.provider.FetchCalls())
	assert.Empty(t, fx.audit.Events())
}

func TestMutationsHandler_Extend_UnknownAccount(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/extend", fiber.Map{
		"user_id":  "acct-999",
		"end_date": "2026-06-30",
	}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestMutationsHandler_UpdateQuota(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/quota", fiber.Map{
		"user_id":           "acct-001",
		"end_date":          "2027-01-31",
		"max_apps":          20,
		"max_tokens":        500000,
		"max_file_datasets": 8,
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	updated := currentAccount(t, fx.provider, "acct-001")
	assert.Equal(t, "2027-01-31", updated.EndDate)
	assert.Equal(t, int64(20), updated.MaxApps)
	assert.Equal(t, int64(500000), updated.MaxTokens)
	assert.Equal(t, int64(8), updated.MaxFileDatasets)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventAccountQuotaUpdated, events[0].EventType)
	assert.True(t, events[0].Success)
	assert.Equal(t, "20", events[0].Metadata["max_apps"])
}

func TestMutationsHandler_UpdateQuota_ProviderFailure(t *testing.T) {
	fx := newMutationsFixture(listFixture())
	fx.provider.MutateErr = domain.ErrUpstreamFetch

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/quota", fiber.Map{
		"user_id":  "acct-001",
		"end_date": "2027-01-31",
	}))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	// The first call of the fan-out is the one that failed
	assert.Equal(t, "extend", events[0].Metadata["failed_op"])
}

func TestMutationsHandler_UpdateQuota_MissingUserID(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/quota", fiber.Map{
		"end_date": "2027-01-31",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMutationsHandler_Remove(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/remove", fiber.Map{
		"user_id": "acct-003",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"data":"success"}`, string(body))

	accounts, err := fx.provider.FetchAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventAccountRemoved, events[0].EventType)
	assert.Equal(t, "acct-003", events[0].AccountID)
	assert.True(t, events[0].Success)
}

func TestMutationsHandler_Remove_UnknownAccount(t *testing.T) {
	fx := newMutationsFixture(listFixture())

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/accounts/remove", fiber.Map{
		"user_id": "acct-999",
	}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	accounts, err := fx.provider.FetchAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}
