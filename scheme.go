package localize

import (
	"strings"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// Scheme decides how the language tag is embedded into a URL path. The
// extraction side is scheme-independent (the first path segment is always
// inspected); only the embedding differs.
type Scheme interface {
	// Localize returns path with the tag embedded according to the scheme.
	// path must be tag-free (as returned by splitPathTag). isDefault reports
	// whether tag is the application default.
	Localize(path string, tag langtag.Tag, isDefault bool) string

	// Name returns the scheme's configuration name.
	Name() string
}

var (
	// PrefixAlways embeds the language tag as the first path segment for
	// every language, including the default: /en/about, /fr/about.
	PrefixAlways Scheme = prefixAlways{}

	// PrefixExceptDefault embeds the tag for every language except the
	// default, which keeps the bare path: /about, /fr/about. A tag-free URL
	// therefore always denotes the default language.
	PrefixExceptDefault Scheme = prefixExceptDefault{}
)

type prefixAlways struct{}

func (prefixAlways) Localize(path string, tag langtag.Tag, _ bool) string {
	return prefixPath(path, tag)
}

func (prefixAlways) Name() string { return "prefix-always" }

type prefixExceptDefault struct{}

func (prefixExceptDefault) Localize(path string, tag langtag.Tag, isDefault bool) string {
	if isDefault {
		if path == "" {
			return "/"
		}
		return path
	}
	return prefixPath(path, tag)
}

func (prefixExceptDefault) Name() string { return "prefix-except-default" }

func prefixPath(path string, tag langtag.Tag) string {
	if path == "" || path == "/" {
		return "/" + tag.String()
	}
	return "/" + tag.String() + path
}

// splitPathTag splits a URL path into its first segment and the remainder.
// The remainder keeps its leading slash ("/fr/a/b" -> "fr", "/a/b"); empty
// segments directly after the tag are collapsed so the remainder is always a
// single-slash-rooted path.
func splitPathTag(path string) (segment, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "", "", false
	}
	segment, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return segment, "", true
	}
	return segment, sitePath(rest), true
}

// sitePath forces p to start with exactly one slash. A path opening with "//"
// reads as a protocol-relative URL in a Location header and would redirect
// off-site.
func sitePath(p string) string {
	if p == "" {
		return p
	}
	return "/" + strings.TrimLeft(p, "/")
}

// schemeByName resolves a configuration name to a Scheme.
func schemeByName(name string) (Scheme, bool) {
	switch name {
	case "", PrefixExceptDefault.Name():
		return PrefixExceptDefault, true
	case PrefixAlways.Name():
		return PrefixAlways, true
	default:
		return nil, false
	}
}
