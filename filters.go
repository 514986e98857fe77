package localize

import (
	"net/url"
	"path"
	"strings"
)

// Filter is a predicate over a request URL. Filters registered on the
// Localizer run in order; a URL is excluded from localization and redirects
// as soon as any filter returns false.
type Filter func(u *url.URL) bool

// localizable reports whether all filters pass for u.
func (l *Localizer) localizable(u *url.URL) bool {
	for _, f := range l.filters {
		if !f(u) {
			return false
		}
	}
	return true
}

// ExcludePathPrefix returns a Filter that rejects URLs whose path starts with
// any of the given prefixes. Useful for API and asset mounts:
//
//	localize.ExcludePathPrefix("/api/", "/static/")
func ExcludePathPrefix(prefixes ...string) Filter {
	return func(u *url.URL) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(u.Path, p) {
				return false
			}
		}
		return true
	}
}

// ExcludeExtensions returns a Filter that rejects URLs whose path ends with
// any of the given file extensions (compared case-insensitively, dot
// included):
//
//	localize.ExcludeExtensions(".css", ".js", ".png")
func ExcludeExtensions(exts ...string) Filter {
	lowered := make([]string, len(exts))
	for i, e := range exts {
		lowered[i] = strings.ToLower(e)
	}
	return func(u *url.URL) bool {
		ext := strings.ToLower(path.Ext(u.Path))
		if ext == "" {
			return true
		}
		for _, e := range lowered {
			if ext == e {
				return false
			}
		}
		return true
	}
}
