package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medera/medera_backend/internal/repo"
	entuser "github.com/medera/medera_backend/internal/repo/user"
	"github.com/medera/medera_backend/internal/service/auth"
	"github.com/medera/medera_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page     int
	PerPage  int
	Role     *string
	IsActive *bool
	Search   *string // matches name or email
}

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) (*repo.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*repo.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db    *repo.Client
	authz authorize.IAuthorization
}

func New(db *repo.Client, authz authorize.IAuthorization) Service {
	return &userService{db: db, authz: authz}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.DeletedAtIsNil())

	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.IsActive != nil {
		q = q.Where(entuser.IsActive(*req.IsActive))
	}
	if req.Search != nil && *req.Search != "" {
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(*req.Search),
			entuser.LastNameContainsFold(*req.Search),
			entuser.EmailContainsFold(*req.Search),
		))
	}

	q = q.Order(entuser.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.User]{
		Data:       users,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			e164, err := auth.NormalizePhone(*req.Phone)
			if err != nil {
				return nil, ErrInvalidPhone
			}
			upd = upd.SetPhone(e164)
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// SetRole changes the stored role and mirrors the change into the RBAC
// groupings so permission checks stay in sync with the users table.
func (s *userService) SetRole(ctx context.Context, id uuid.UUID, role string) (*repo.User, error) {
	if _, ok := authorize.UserRoleToRBACRole[role]; !ok {
		return nil, ErrInvalidRole
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldRole := string(u.Role)
	if oldRole == role {
		return u, nil
	}

	updated, err := s.db.User.UpdateOne(u).
		SetRole(entuser.Role(role)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	if err := authorize.RevokeHospitalRole(ctx, s.authz, id.String(), oldRole); err != nil {
		slog.Warn("revoke old role failed", "user_id", id, "role", oldRole, "err", err)
	}
	if err := authorize.AssignHospitalRole(ctx, s.authz, id.String(), role); err != nil {
		return nil, fmt.Errorf("assign new role: %w", err)
	}

	return updated, nil
}

// SetActive toggles login access. Deactivation does not touch existing
// appointments; it only blocks new sessions.
func (s *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.User.UpdateOne(u).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update is_active: %w", err)
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := authorize.RevokeHospitalRole(ctx, s.authz, id.String(), string(u.Role)); err != nil {
		slog.Warn("revoke role on delete failed", "user_id", id, "err", err)
	}
	return nil
}
