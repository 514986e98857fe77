package localize

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/nugget"
)

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// WithLanguages sets the application languages: the default first, then any
// additional supported tags. An empty default is a fatal configuration error.
func WithLanguages(defaultTag string, additional ...string) Option {
	return func(l *Localizer) error {
		set, err := langtag.NewSet(defaultTag, additional...)
		if err != nil {
			return err
		}
		l.languages = set
		return nil
	}
}

// WithLanguageSet injects a pre-built application language set.
func WithLanguageSet(set *langtag.Set) Option {
	return func(l *Localizer) error {
		if set == nil {
			return ErrNoLanguages
		}
		l.languages = set
		return nil
	}
}

// WithLocalesDir sets the locale root directory holding one catalog file per
// language ({dir}/{tag}/messages.po).
func WithLocalesDir(dir string) Option {
	return func(l *Localizer) error {
		l.localesDir = dir
		return nil
	}
}

// WithStore injects a pre-built catalog store, overriding WithLocalesDir.
func WithStore(store *catalog.Store) Option {
	return func(l *Localizer) error {
		l.store = store
		return nil
	}
}

// WithTokens overrides the default nugget delimiter tokens.
func WithTokens(t nugget.Tokens) Option {
	return func(l *Localizer) error {
		l.tokens = t
		return nil
	}
}

// WithScheme selects how language tags are embedded in URL paths.
// Defaults to PrefixExceptDefault.
func WithScheme(s Scheme) Option {
	return func(l *Localizer) error {
		if s == nil {
			return fmt.Errorf("%w: nil URL scheme", ErrInvalidConfig)
		}
		l.scheme = s
		return nil
	}
}

// WithFilters registers URL exclusion filters, invoked in order; a URL is
// excluded from localization and redirects when any filter returns false.
func WithFilters(filters ...Filter) Option {
	return func(l *Localizer) error {
		l.filters = append(l.filters, filters...)
		return nil
	}
}

// WithCookieName overrides the language cookie name.
// Defaults to DefaultCookieName.
func WithCookieName(name string) Option {
	return func(l *Localizer) error {
		if name == "" {
			return fmt.Errorf("%w: empty cookie name", ErrInvalidConfig)
		}
		l.cookieName = name
		return nil
	}
}

// WithCookiePersistence makes the middleware re-issue the language cookie
// when the principal language was resolved from the URL path, keeping the
// user's visible choice sticky across tag-free links.
func WithCookiePersistence() Option {
	return func(l *Localizer) error {
		l.persistCookie = true
		return nil
	}
}

// WithPermanentRedirect switches URL canonicalization redirects from 302 to 301.
func WithPermanentRedirect() Option {
	return func(l *Localizer) error {
		l.redirectStatus = http.StatusMovedPermanently
		return nil
	}
}

// WithRewriteContentTypes replaces the Content-Type prefix allowlist deciding
// which response bodies are scanned for nuggets.
func WithRewriteContentTypes(prefixes ...string) Option {
	return func(l *Localizer) error {
		if len(prefixes) == 0 {
			return fmt.Errorf("%w: empty content-type allowlist", ErrInvalidConfig)
		}
		l.rewriteTypes = prefixes
		return nil
	}
}

// WithLogger sets the logger for scan warnings and catalog diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) error {
		if logger != nil {
			l.logger = logger
		}
		return nil
	}
}
