package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/service/content"
)

type ContentHandler struct {
	svc content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func mapContentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, content.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, content.ErrInvalidSlug),
		errors.Is(err, content.ErrInvalidKind):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *ContentHandler) list(c fiber.Ctx, publishedOnly bool) error {
	var q struct {
		Kind    string `query:"kind"`
		Tag     string `query:"tag"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := content.ListRequest{
		Page:          q.Page,
		PerPage:       q.PerPage,
		PublishedOnly: publishedOnly,
	}
	if q.Kind != "" {
		req.Kind = &q.Kind
	}
	if q.Tag != "" {
		req.Tag = &q.Tag
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapContentError(c, err)
	}

	return paginated(c, res.Data, res.Total, res.Page, res.PerPage, res.TotalPages)
}

// GET /content
func (h *ContentHandler) ListPublished(c fiber.Ctx) error {
	return h.list(c, true)
}

// GET /content/all (editors see drafts too)
func (h *ContentHandler) ListAll(c fiber.Ctx) error {
	return h.list(c, false)
}

// GET /content/:slug
func (h *ContentHandler) GetBySlug(c fiber.Ctx) error {
	entry, err := h.svc.GetBySlug(c.Context(), c.Params("slug"), true)
	if err != nil {
		return mapContentError(c, err)
	}

	return ok(c, entry)
}

// POST /content
func (h *ContentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Kind        string   `json:"kind"`
		Slug        string   `json:"slug"`
		Title       string   `json:"title"`
		Body        string   `json:"body"`
		Tags        []string `json:"tags"`
		IsPublished bool     `json:"is_published"`
		SortOrder   int      `json:"sort_order"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	entry, err := h.svc.Create(c.Context(), content.CreateRequest{
		Kind:        body.Kind,
		Slug:        body.Slug,
		Title:       body.Title,
		Body:        body.Body,
		Tags:        body.Tags,
		IsPublished: body.IsPublished,
		SortOrder:   body.SortOrder,
	})
	if err != nil {
		return mapContentError(c, err)
	}

	return created(c, entry)
}

// PATCH /content/:id
func (h *ContentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid content id")
	}

	var body content.UpdateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.svc.Update(c.Context(), id, body)
	if err != nil {
		return mapContentError(c, err)
	}

	return ok(c, entry)
}

// DELETE /content/:id
func (h *ContentHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid content id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}

	return noContent(c)
}
