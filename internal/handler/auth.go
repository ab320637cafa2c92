package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/middleware"
	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/service"
)

// Accounts is the user lifecycle used by AuthHandler.
type Accounts interface {
	Register(ctx context.Context, in model.RegisterInput) (*model.User, error)
	Login(ctx context.Context, in model.LoginInput) (string, error)
	GetProfile(ctx context.Context, id string) (*model.User, error)
	Activate(ctx context.Context, in model.ActivationInput) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, in model.UpdateProfileInput) (*model.User, error)
	UpdatePassword(ctx context.Context, id string, in model.UpdatePasswordInput) (*model.User, error)
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	Accounts Accounts
}

func NewAuthHandler(a Accounts) *AuthHandler {
	return &AuthHandler{Accounts: a}
}

// Register creates an inactive account and mails its activation link.
func (h *AuthHandler) Register(c echo.Context) error {
	var in model.RegisterInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed registration")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	u, err := h.Accounts.Register(ctx, in)
	if err != nil {
		return response.Error(c, err, "failed registration")
	}
	return response.Success(c, u, "success registration")
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var in model.LoginInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "login failed")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	token, err := h.Accounts.Login(ctx, in)
	if errors.Is(err, service.ErrUserNotFound) {
		return response.Unauthorized(c, "user not found")
	}
	if err != nil {
		return response.Error(c, err, "login failed")
	}
	return response.Success(c, token, "login success")
}

// Me returns the profile of the signed-in user.  A token for a deleted
// account yields 200 with null data.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	u, err := h.Accounts.GetProfile(ctx, claims.ID)
	if err != nil {
		return response.Error(c, err, "failed get user profile")
	}
	return response.Success(c, u, "success get user profile")
}

// Activation activates the account holding the posted code.  An unknown
// code answers 200 with null data.
func (h *AuthHandler) Activation(c echo.Context) error {
	var in model.ActivationInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "user activation failed")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	u, err := h.Accounts.Activate(ctx, in)
	if err != nil {
		return response.Error(c, err, "user activation failed")
	}
	return response.Success(c, u, "user activated")
}

// UpdateProfile changes the signed-in user's name and picture.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	var in model.UpdateProfileInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to update profile")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	u, err := h.Accounts.UpdateProfile(ctx, claims.ID, in)
	if err != nil {
		return response.Error(c, err, "failed to update profile")
	}
	return response.Success(c, u, "success to update profile")
}

// UpdatePassword changes the signed-in user's password.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	var in model.UpdatePasswordInput
	if err := bind(c, &in); err != nil {
		return response.Error(c, err, "failed to update password")
	}
	ctx, cancel := requestCtx(c)
	defer cancel()

	u, err := h.Accounts.UpdatePassword(ctx, claims.ID, in)
	if errors.Is(err, service.ErrUserNotFound) {
		return response.Unauthorized(c, "user not found")
	}
	if err != nil {
		return response.Error(c, err, "failed to update password")
	}
	return response.Success(c, u, "success to update password")
}
