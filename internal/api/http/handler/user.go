package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/service/user"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, authed := pasetotoken.ClaimsFromFiber(c)
	if !authed {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, authed := pasetotoken.ClaimsFromFiber(c)
	if !authed {
		return unauthorized(c)
	}

	var body user.UpdateProfileRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.UserID, body)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Active  *bool  `query:"active"`
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		IsActive: q.Active,
	}
	if q.Role != "" {
		req.Role = &q.Role
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	return paginated(c, res.Data, res.Total, res.Page, res.PerPage, res.TotalPages)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/:id/role
func (h *UserHandler) SetRole(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Role == "" {
		return badRequest(c, "role is required")
	}

	u, err := h.svc.SetRole(c.Context(), id, body.Role)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/:id/active
func (h *UserHandler) SetActive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.SetActive(c.Context(), id, body.IsActive)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
