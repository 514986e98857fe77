package localize

import (
	"net/http"
	"net/url"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// RequestContext is the per-request localization decision: the principal
// language, how confidently it matched, and whether the URL must be
// canonicalized. It is computed once per request, owned by that request's
// flow, and reused for every nugget lookup within it.
type RequestContext struct {
	Language         langtag.Tag
	Confidence       langtag.Confidence
	RedirectRequired bool

	// fromPath records that the language came from the URL prefix, which
	// determines whether the redirect replaces or inserts the prefix and
	// whether the cookie is re-issued.
	fromPath bool
}

// Resolve selects the principal language for a request by trying, in order:
// the URL path prefix (exact, then loose), the language cookie, the
// Accept-Language header, and finally the application default.
//
// RedirectRequired is set when the match is loose and the URL passes all
// exclusion filters: the canonical URL carries the exact application tag, and
// minimizing loose URLs keeps language choice visible and SEO-stable.
func (l *Localizer) Resolve(r *http.Request) RequestContext {
	rc := l.resolve(r)
	rc.RedirectRequired = rc.Confidence == langtag.ConfidenceLoose && l.localizable(r.URL)
	return rc
}

func (l *Localizer) resolve(r *http.Request) RequestContext {
	// 1+2: URL path prefix, exact before loose via the matcher's pass order.
	if seg, _, ok := splitPathTag(r.URL.Path); ok {
		if tag, err := langtag.Parse(seg); err == nil {
			if app, conf, ok := langtag.MatchOne(tag, l.languages); ok {
				return RequestContext{Language: app, Confidence: conf, fromPath: true}
			}
		}
	}

	// 3: cookie, a single-element preference list.
	if c, err := r.Cookie(l.cookieName); err == nil && c.Value != "" {
		if tag, err := langtag.Parse(c.Value); err == nil {
			if app, conf, ok := langtag.MatchOne(tag, l.languages); ok {
				return RequestContext{Language: app, Confidence: conf}
			}
		}
	}

	// 4: Accept-Language header, full preference list.
	if prefs := langtag.ParseAcceptLanguage(r.Header.Get("Accept-Language")); len(prefs) > 0 {
		if app, conf, ok := langtag.Match(prefs, l.languages); ok {
			return RequestContext{Language: app, Confidence: conf}
		}
	}

	// 5: application default.
	return RequestContext{Language: l.languages.Default(), Confidence: langtag.ConfidenceDefault}
}

// CanonicalURL returns the redirect target for a loosely matched request: the
// same URL with the path prefix replaced (or inserted) per the URL scheme,
// query string preserved.
func (l *Localizer) CanonicalURL(r *http.Request, rc RequestContext) string {
	rest := sitePath(r.URL.Path)
	if rc.fromPath {
		if _, tail, ok := splitPathTag(r.URL.Path); ok {
			rest = tail
		}
	}

	isDefault := rc.Language.Equal(l.languages.Default())
	canonical := url.URL{
		Path:     l.scheme.Localize(rest, rc.Language, isDefault),
		RawQuery: r.URL.RawQuery,
	}
	return canonical.String()
}

// stripLanguagePrefix returns a shallow copy of r whose URL drops the leading
// language segment, so downstream routers match the tag-free path the handler
// was registered under.
func stripLanguagePrefix(r *http.Request) *http.Request {
	_, tail, ok := splitPathTag(r.URL.Path)
	if !ok {
		return r
	}
	if tail == "" {
		tail = "/"
	}

	r2 := new(http.Request)
	*r2 = *r
	u := *r.URL
	u.Path = tail
	if u.RawPath != "" {
		if _, rawTail, rawOK := splitPathTag(u.RawPath); rawOK {
			u.RawPath = rawTail
		} else {
			u.RawPath = ""
		}
	}
	r2.URL = &u
	return r2
}
