package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medera/medera_backend/internal/service/auth"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrInvalidPhone),
		errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrWrongPassword):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountInactive),
		errors.Is(err, auth.ErrAccountLocked):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func tokenPayload(tokens *auth.AuthTokens) fiber.Map {
	return fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	user, tokens, err := h.svc.Register(c.Context(), auth.RegisterRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Password:  body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{"user": user, "tokens": tokenPayload(tokens)})
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"user": user, "tokens": tokenPayload(tokens)})
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokenPayload(tokens))
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, authed := pasetotoken.ClaimsFromFiber(c)
	if !authed || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}

// POST /auth/change-password
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, authed := pasetotoken.ClaimsFromFiber(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, body.CurrentPassword, body.NewPassword); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}
