package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medera/medera_backend/pkg/reqctx"
)

// ErrNoSubjectInContext means the auth middleware did not attach claims,
// or the claims carry no usable user ID.
var ErrNoSubjectInContext = errors.New("no subject found in context")

// SubjectFromContext reads the authenticated user from the request
// context and turns it into the enforcer's subject form.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id, err := UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return GroupSubject(id.String()), nil
}

// UserIDFromContext is SubjectFromContext without the string conversion,
// for callers that compare against entity owner columns.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil || claims.GetUserID() == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}
	return claims.GetUserID(), nil
}
