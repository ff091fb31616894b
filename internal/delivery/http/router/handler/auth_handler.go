// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"userregistry/internal/delivery/http/middleware"
	"userregistry/internal/delivery/http/response"
	"userregistry/internal/domain/entity"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/usecase"
)

// AccountResponse is the outward account representation.
// The password hash never leaves the server.
type AccountResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsGoogleAuth bool      `json:"isGoogleAuth"`
	IsAuthorized bool      `json:"isAuthorized"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Role:         account.Role.String(),
		IsGoogleAuth: account.IsGoogleAuth,
		IsAuthorized: account.IsAuthorized,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginRequest is the local login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the raw Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// CreateAccountRequest is the admin account creation payload.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// UpdateAccountRequest is the account update payload. An empty password
// keeps the stored one.
type UpdateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"required"`
}

// ChangeRoleRequest is the role change payload.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// AuthHandler holds dependencies for authentication and account handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles the local login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: output.Token}, "Login successful")
}

// GoogleLogin handles login through a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var input GoogleLoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid google login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.GoogleLogin(c.Request().Context(), usecase.GoogleLoginInput{IDToken: input.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: output.Token}, "Login successful")
}

// CreateAccount handles the admin-only account creation request.
func (h *AuthHandler) CreateAccount(c echo.Context) error {
	var input CreateAccountRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return response.BadRequest(c, "INVALID_ROLE", "Unknown role: "+input.Role)
	}

	output, err := h.uc.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(output.Account), "Account created")
}

// ListAccounts returns all accounts.
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, newAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateAccount handles the account update request.
func (h *AuthHandler) UpdateAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input UpdateAccountRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return response.BadRequest(c, "INVALID_ROLE", "Unknown role: "+input.Role)
	}

	actorRole, _ := middleware.RoleFromContext(c)
	output, err := h.uc.UpdateAccount(c.Request().Context(), id, usecase.UpdateAccountInput{
		ActorRole: actorRole,
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		Role:      role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(output.Account), "Account updated")
}

// DeleteAccount handles the account deletion request.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// ApproveAccount flips the authorization gate for a pending account.
// Both the authorize-login and approve-user routes land here, so both
// reject an already-authorized target with a 400 instead of treating
// the call as a no-op.
func (h *AuthHandler) ApproveAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ApproveAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(output.Account), "Account approved")
}

// ChangeRole assigns a new role to an account.
func (h *AuthHandler) ChangeRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input ChangeRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return response.BadRequest(c, "INVALID_ROLE", "Unknown role: "+input.Role)
	}

	output, err := h.uc.ChangeRole(c.Request().Context(), id, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(output.Account), "Role changed")
}

// parseIDParam reads the numeric :id path parameter. The returned error is
// rendered by the central HTTP error handler.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("path id must be a positive integer"))
	}

	return id, nil
}
