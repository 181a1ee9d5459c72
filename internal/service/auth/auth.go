package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/redis/go-redis/v9"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	entuser "github.com/medera/medera_backend/internal/repo/user"
	"github.com/medera/medera_backend/pkg/authorize"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
	"github.com/medera/medera_backend/pkg/util/password"
)

const (
	maxLoginAttempts   = 5
	accountLockMins    = 15
	defaultPhoneRegion = "IR"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyLoginAttempts returns the Redis key for the login failure counter.
func redisKeyLoginAttempts(email string) string { return "login:attempts:" + email }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string // optional; normalised to E.164
	Password  string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		authz:  authz,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if !reEmail.MatchString(req.Email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, nil, ErrPasswordTooShort
	}

	var e164 *string
	if req.Phone != "" {
		normalized, err := NormalizePhone(req.Phone)
		if err != nil {
			return nil, nil, ErrInvalidPhone
		}
		e164 = &normalized
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.RolePatient)

	if e164 != nil {
		c = c.SetPhone(*e164)
	}

	u, err := c.Save(ctx)
	if err != nil {
		// unique email: a concurrent registration won the race
		if repo.IsConstraintError(err) {
			return nil, nil, ErrEmailAlreadyExists
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	// Grant the RBAC roles matching the new account. Best-effort; the
	// account is usable and the grants can be repaired by an admin.
	if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
		slog.Warn("assign self role failed", "user_id", u.ID, "err", err)
	}
	if err := authorize.AssignHospitalRole(ctx, s.authz, u.ID.String(), string(u.Role)); err != nil {
		slog.Warn("assign hospital role failed", "user_id", u.ID, "err", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	attempts, _ := s.rdb.Get(ctx, redisKeyLoginAttempts(req.Email)).Int()
	if attempts >= maxLoginAttempts {
		return nil, nil, ErrAccountLocked
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, nil, ErrAccountInactive
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	s.rdb.Del(ctx, redisKeyLoginAttempts(req.Email))

	now := time.Now()
	u, err = s.db.User.UpdateOne(u).
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("update last_login_at: %w", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOne(u).SetPasswordHash(hash).Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// NormalizePhone parses a phone number and returns it in E.164 form.
// Numbers without a country prefix are interpreted as local.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("not a valid number: %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, email string) {
	key := redisKeyLoginAttempts(email)
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 || n >= maxLoginAttempts {
		s.rdb.Expire(ctx, key, accountLockMins*time.Minute)
	}
}
