package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

type staffFixture struct {
	app     *fiber.App
	repo    *MockStaffRepo
	audit   *RecordingAudit
	staffID uuid.UUID
}

func newStaffFixture() *staffFixture {
	repo := &MockStaffRepo{}
	auditLog := &RecordingAudit{}
	h := NewStaffHandler(repo, auditLog, testLogger())

	staffID := uuid.New()
	app := newTestApp(staffID, "root", domain.RoleSuperAdmin)
	app.Get("/v1/staff", h.List)
	app.Post("/v1/staff", h.Create)
	app.Put("/v1/staff/:id", h.Update)
	app.Delete("/v1/staff/:id", h.Delete)

	return &staffFixture{app: app, repo: repo, audit: auditLog, staffID: staffID}
}

func TestStaffHandler_List(t *testing.T) {
	fx := newStaffFixture()
	fx.repo.On("List", mock.Anything).Return([]domain.StaffUser{
		{ID: uuid.New(), Username: "ana", Role: domain.RoleAdmin},
		{ID: uuid.New(), Username: "bruno", Role: domain.RoleViewer},
	}, nil)

	resp, err := fx.app.Test(httptest.NewRequest("GET", "/v1/staff", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data []domain.StaffUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Data, 2)
	assert.Equal(t, "ana", parsed.Data[0].Username)
}

func TestStaffHandler_Create(t *testing.T) {
	fx := newStaffFixture()
	created := uuid.New()
	fx.repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.StaffUser) bool {
		return u.Username == "carla" && u.Role == domain.RoleAdmin && u.PasswordHash != "" && u.PasswordHash != "s3cret-pass"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.StaffUser).ID = created
	}).Return(nil)

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/staff", fiber.Map{
		"username": "carla",
		"password": "s3cret-pass",
		"role":     "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Data domain.StaffUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, created, parsed.Data.ID)
	assert.Equal(t, "carla", parsed.Data.Username)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventStaffUserCreated, events[0].EventType)
	assert.True(t, events[0].Success)
	assert.Equal(t, created.String(), events[0].Metadata["staff_user_id"])
}

func TestStaffHandler_Create_Validation(t *testing.T) {
	fx := newStaffFixture()

	tests := []struct {
		name    string
		payload fiber.Map
	}{
		{"missing username", fiber.Map{"password": "x", "role": "Admin"}},
		{"missing password", fiber.Map{"username": "carla", "role": "Admin"}},
		{"missing role", fiber.Map{"username": "carla", "password": "x"}},
		{"unknown role", fiber.Map{"username": "carla", "password": "x", "role": "Owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := fx.app.Test(jsonRequest("POST", "/v1/staff", tt.payload))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}

	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffHandler_Create_Duplicate(t *testing.T) {
	fx := newStaffFixture()
	fx.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrStaffUserExists)

	resp, err := fx.app.Test(jsonRequest("POST", "/v1/staff", fiber.Map{
		"username": "ana",
		"password": "s3cret-pass",
		"role":     "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "STAFF_USER_ALREADY_EXISTS", errorCode(t, body))

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestStaffHandler_Update(t *testing.T) {
	fx := newStaffFixture()
	id := uuid.New()
	existing := &domain.StaffUser{
		ID:           id,
		Username:     "ana",
		PasswordHash: "$2a$10$existinghash",
		Role:         domain.RoleViewer,
	}

	fx.repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	fx.repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.StaffUser) bool {
		return u.ID == id && u.Username == "ana" && u.Role == domain.RoleAdmin &&
			u.PasswordHash == "$2a$10$existinghash"
	})).Return(nil)

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/staff/"+id.String(), fiber.Map{
		"role": "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	fx.repo.AssertExpectations(t)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventStaffUserUpdated, events[0].EventType)
	assert.True(t, events[0].Success)
}

func TestStaffHandler_Update_RehashesPassword(t *testing.T) {
	fx := newStaffFixture()
	id := uuid.New()
	existing := &domain.StaffUser{
		ID:           id,
		Username:     "ana",
		PasswordHash: "$2a$10$existinghash",
		Role:         domain.RoleViewer,
	}

	fx.repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	fx.repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.StaffUser) bool {
		return u.PasswordHash != "$2a$10$existinghash" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-pass-123")) == nil
	})).Return(nil)

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/staff/"+id.String(), fiber.Map{
		"password": "new-pass-123",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	fx.repo.AssertExpectations(t)
}

func TestStaffHandler_Update_NotFound(t *testing.T) {
	fx := newStaffFixture()
	id := uuid.New()
	fx.repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrStaffUserNotFound)

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/staff/"+id.String(), fiber.Map{
		"role": "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestStaffHandler_Update_BadID(t *testing.T) {
	fx := newStaffFixture()

	resp, err := fx.app.Test(jsonRequest("PUT", "/v1/staff/not-a-uuid", fiber.Map{
		"role": "Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestStaffHandler_Delete(t *testing.T) {
	fx := newStaffFixture()
	id := uuid.New()
	fx.repo.On("Delete", mock.Anything, id).Return(nil)

	resp, err := fx.app.Test(httptest.NewRequest("DELETE", "/v1/staff/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	events := fx.audit.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventStaffUserDeleted, events[0].EventType)
	assert.True(t, events[0].Success)
}

func TestStaffHandler_Delete_Self(t *testing.T) {
	fx := newStaffFixture()

	resp, err := fx.app.Test(httptest.NewRequest("DELETE", "/v1/staff/"+fx.staffID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStaffHandler_Delete_NotFound(t *testing.T) {
	fx := newStaffFixture()
	id := uuid.New()
	fx.repo.On("Delete", mock.Anything, id).Return(domain.ErrStaffUserNotFound)

	resp, err := fx.app.Test(httptest.NewRequest("DELETE", "/v1/staff/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
