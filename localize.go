package localize

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/nugget"
)

// DefaultCookieName is the cookie carrying the user's language tag.
const DefaultCookieName = "i18n.langtag"

// defaultRewriteTypes are the Content-Type prefixes whose response bodies are
// scanned for nuggets. Everything else streams through untouched.
var defaultRewriteTypes = []string{
	"text/",
	"application/json",
	"application/xml",
	"application/javascript",
}

// Localizer is the request-time localization engine: it selects the principal
// language for each request, decides URL redirects, and rewrites response
// bodies by replacing nugget markup with translations.
//
// A Localizer is immutable after New and safe for concurrent use; the only
// mutable state behind it is the catalog store's atomic snapshots.
type Localizer struct {
	languages      *langtag.Set
	store          *catalog.Store
	scanner        *nugget.Scanner
	rewriter       *nugget.Rewriter
	scheme         Scheme
	filters        []Filter
	cookieName     string
	persistCookie  bool
	redirectStatus int
	rewriteTypes   []string
	tokens         nugget.Tokens
	localesDir     string
	logger         *slog.Logger
}

// New creates a Localizer. The application language set is mandatory; a
// process must not start without one. Catalogs come either from a locales
// directory (WithLocalesDir) or an injected store (WithStore).
func New(opts ...Option) (*Localizer, error) {
	l := &Localizer{
		scheme:         PrefixExceptDefault,
		cookieName:     DefaultCookieName,
		redirectStatus: http.StatusFound,
		rewriteTypes:   defaultRewriteTypes,
		tokens:         nugget.DefaultTokens(),
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if l.languages == nil {
		return nil, ErrNoLanguages
	}

	scanner, err := nugget.NewScanner(
		nugget.WithTokens(l.tokens),
		nugget.WithWarningHandler(func(msg string) {
			l.logger.Warn("nugget scan warning", slog.String("detail", msg))
		}),
	)
	if err != nil {
		return nil, err
	}
	l.scanner = scanner
	l.rewriter = nugget.NewRewriter(scanner)

	if l.store == nil {
		if l.localesDir == "" {
			return nil, ErrNoCatalogSource
		}
		store, err := catalog.NewStore(l.localesDir, l.languages, catalog.WithLogger(l.logger))
		if err != nil {
			return nil, err
		}
		l.store = store
	}

	return l, nil
}

// Languages returns the application language set.
func (l *Localizer) Languages() *langtag.Set {
	return l.languages
}

// Store returns the catalog store, e.g. for observability endpoints.
func (l *Localizer) Store() *catalog.Store {
	return l.store
}

// Watch starts live catalog reload on the locales directory; see
// catalog.Store.Watch.
func (l *Localizer) Watch(ctx context.Context) error {
	return l.store.Watch(ctx)
}

// Rewrite replaces nugget markup in text with translations for tag, falling
// back through related application languages and the default when a key is
// missing. Text outside nugget spans passes through byte-exact.
func (l *Localizer) Rewrite(text string, tag langtag.Tag) string {
	return l.rewriter.Rewrite(text, l.lookupFor(tag))
}

// lookupFor captures the catalog fallback chain once and returns a lookup
// closure over it. Every lookup through the closure observes the same catalog
// generation, so a single rewrite pass never mixes old and new entries.
func (l *Localizer) lookupFor(tag langtag.Tag) nugget.LookupFunc {
	chain := l.store.SnapshotChain(tag)
	return func(key string) (string, bool) {
		for _, cat := range chain {
			if text, ok := cat.Lookup(key); ok {
				return text, true
			}
		}
		return "", false
	}
}

// rewritable reports whether a response with the given Content-Type should be
// scanned for nuggets. An unset Content-Type is treated as rewritable, since
// handlers serving HTML frequently rely on sniffing.
func (l *Localizer) rewritable(contentType string) bool {
	if contentType == "" {
		return true
	}
	for _, prefix := range l.rewriteTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
