package content

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/repo"
	entcontent "github.com/medera/medera_backend/internal/repo/content"
)

var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Kind          *string
	Tag           *string
	PublishedOnly bool // forced on for public listings
	Page          int
	PerPage       int
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	Kind        string
	Slug        string
	Title       string
	Body        string
	Tags        []string
	IsPublished bool
	SortOrder   int
}

type UpdateRequest struct {
	Title       *string
	Body        *string
	Tags        []string
	IsPublished *bool
	SortOrder   *int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Content], error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*repo.Content, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Content, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &contentService{db: db}
}

func (s *contentService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Content], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Content.Query().
		Where(entcontent.DeletedAtIsNil())

	if req.Kind != nil {
		q = q.Where(entcontent.KindEQ(entcontent.Kind(*req.Kind)))
	}
	if req.PublishedOnly {
		q = q.Where(entcontent.IsPublished(true))
	}
	if req.Tag != nil && *req.Tag != "" {
		// tags is a JSON array; ValueContains renders the right
		// containment predicate per dialect
		q = q.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(entcontent.FieldTags, *req.Tag))
		})
	}

	q = q.Order(
		entcontent.BySortOrder(sql.OrderAsc()),
		entcontent.ByCreatedAt(sql.OrderDesc()),
	)

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count content: %w", err)
	}

	items, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Content]{
		Data:       items,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *contentService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*repo.Content, error) {
	q := s.db.Content.Query().
		Where(entcontent.Slug(slug), entcontent.DeletedAtIsNil())
	if publishedOnly {
		q = q.Where(entcontent.IsPublished(true))
	}

	item, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return item, nil
}

func (s *contentService) Create(ctx context.Context, req CreateRequest) (*repo.Content, error) {
	if !reSlug.MatchString(req.Slug) {
		return nil, ErrInvalidSlug
	}
	switch entcontent.Kind(req.Kind) {
	case entcontent.KindFaq, entcontent.KindArticle, entcontent.KindFacility:
	default:
		return nil, ErrInvalidKind
	}

	c := s.db.Content.Create().
		SetKind(entcontent.Kind(req.Kind)).
		SetSlug(req.Slug).
		SetTitle(req.Title).
		SetBody(req.Body).
		SetIsPublished(req.IsPublished).
		SetSortOrder(req.SortOrder)

	if len(req.Tags) > 0 {
		c = c.SetTags(req.Tags)
	}

	item, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create content: %w", err)
	}
	return item, nil
}

func (s *contentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Content, error) {
	item, err := s.db.Content.Query().
		Where(entcontent.ID(id), entcontent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	u := s.db.Content.UpdateOne(item)

	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Body != nil {
		u = u.SetBody(*req.Body)
	}
	if req.Tags != nil {
		u = u.SetTags(req.Tags)
	}
	if req.IsPublished != nil {
		u = u.SetIsPublished(*req.IsPublished)
	}
	if req.SortOrder != nil {
		u = u.SetSortOrder(*req.SortOrder)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return updated, nil
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	updated, err := s.db.Content.Update().
		Where(entcontent.ID(id), entcontent.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}
