package langtag

import "errors"

var (
	ErrInvalidTag = errors.New("langtag: invalid language tag")
	ErrEmptySet   = errors.New("langtag: application language set cannot be empty")
)
