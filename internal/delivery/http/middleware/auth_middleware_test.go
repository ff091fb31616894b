package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/service"
	mocksservice "userregistry/internal/mocks/service"
)

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "")
	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "Basic dXNlcjpwYXNz")
	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_VerifyFails(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	mockTokenSvc.On("Verify", "bad-token").Return(nil, errors.New("token has expired"))
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "Bearer bad-token")
	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_SetsIdentityOnContext(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	mockTokenSvc.On("Verify", "good-token").Return(&service.Claims{
		Email: "alice@example.com",
		Role:  entity.RoleEditorAdmin,
	}, nil)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "Bearer good-token")
	err := m.Authenticate(func(c echo.Context) error {
		email, ok := EmailFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", email)

		role, ok := RoleFromContext(c)
		require.True(t, ok)
		assert.Equal(t, entity.RoleEditorAdmin, role)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_AllowsPermittedRole(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "")
	c.Set(ContextKeyRole, entity.RoleAdminMaster)

	err := m.Authorize(OpCreateAccount)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_DeniesForbiddenRole(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "")
	c.Set(ContextKeyRole, entity.RoleViewer)

	err := m.Authorize(OpCreateAccount)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestAuthorize_MissingRole(t *testing.T) {
	mockTokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	c, rec := newTestContext(t, "")

	err := m.Authorize(OpListAccounts)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPermissionTable(t *testing.T) {
	testCases := []struct {
		name    string
		op      Operation
		role    entity.Role
		allowed bool
	}{
		{"admin master creates accounts", OpCreateAccount, entity.RoleAdminMaster, true},
		{"editor cannot create accounts", OpCreateAccount, entity.RoleEditorAdmin, false},
		{"viewer lists accounts", OpListAccounts, entity.RoleViewer, true},
		{"editor updates accounts", OpUpdateAccount, entity.RoleEditorAdmin, true},
		{"creator cannot update accounts", OpUpdateAccount, entity.RoleCreatorAdmin, false},
		{"only admin master approves", OpApproveAccount, entity.RoleEditorAdmin, false},
		{"only admin master changes roles", OpChangeRole, entity.RoleCreatorAdmin, false},
		{"creator creates registrants", OpCreateRegistrant, entity.RoleCreatorAdmin, true},
		{"editor creates registrants", OpCreateRegistrant, entity.RoleEditorAdmin, true},
		{"viewer cannot create registrants", OpCreateRegistrant, entity.RoleViewer, false},
		{"viewer reads registrants", OpReadRegistrant, entity.RoleViewer, true},
		{"editor updates registrants", OpUpdateRegistrant, entity.RoleEditorAdmin, true},
		{"editor cannot delete registrants", OpDeleteRegistrant, entity.RoleEditorAdmin, false},
		{"only admin master loads reference data", OpLoadReferenceData, entity.RoleCreatorAdmin, false},
		{"viewer reads reference data", OpReadReferenceData, entity.RoleViewer, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, RolesAllowed(tc.op).Contains(tc.role))
		})
	}
}

func TestPermissionTable_UnknownOperationGrantsNothing(t *testing.T) {
	for _, role := range allRoles {
		assert.False(t, RolesAllowed(Operation("nonexistent:op")).Contains(role))
	}
}
