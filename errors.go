package localize

import "errors"

var (
	ErrNoLanguages     = errors.New("localize: at least one application language is required")
	ErrNoCatalogSource = errors.New("localize: a locales directory or a catalog store is required")
	ErrInvalidConfig   = errors.New("localize: invalid configuration")
)
