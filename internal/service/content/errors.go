package content

import "errors"

var (
	ErrNotFound      = errors.New("content not found")
	ErrSlugTaken     = errors.New("slug already in use")
	ErrInvalidSlug   = errors.New("slug may only contain lowercase letters, digits and hyphens")
	ErrInvalidKind   = errors.New("unknown content kind")
)
