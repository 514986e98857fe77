package catalog

import "errors"

var (
	ErrNilLanguageSet = errors.New("catalog: language set is required")
	ErrEmptyDir       = errors.New("catalog: locales directory is required")
	ErrBadString      = errors.New("catalog: malformed quoted string")
)
