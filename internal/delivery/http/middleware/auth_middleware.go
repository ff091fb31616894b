package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"userregistry/internal/delivery/http/response"
	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/service"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyEmail = "authEmail"
	ContextKeyRole  = "authRole"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set identity on the context for handlers to use
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// Authorize is a middleware factory that checks the caller's role against
// the static permission table. It must be used AFTER Authenticate.
func (m *AuthMiddleware) Authorize(op Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := RoleFromContext(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !RolesAllowed(op).Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role '"+role.String()+"' may not perform this operation")
			}

			return next(c)
		}
	}
}

// RoleFromContext extracts the authenticated caller's role.
func RoleFromContext(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(entity.Role)

	return role, ok
}

// EmailFromContext extracts the authenticated caller's email.
func EmailFromContext(c echo.Context) (string, bool) {
	email, ok := c.Get(ContextKeyEmail).(string)

	return email, ok
}
