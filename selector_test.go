package localize_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/langtag"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	l := newTestLocalizer(t)

	get := func(target string, mod ...func(*http.Request)) *http.Request {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		for _, fn := range mod {
			fn(r)
		}
		return r
	}

	t.Run("exact URL prefix wins without redirect", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/fr/about"))
		assert.Equal(t, "fr", rc.Language.String())
		assert.Equal(t, langtag.ConfidenceExact, rc.Confidence)
		assert.False(t, rc.RedirectRequired)
	})

	t.Run("URL prefix match is case-insensitive", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/FR/about"))
		assert.Equal(t, langtag.ConfidenceExact, rc.Confidence)
		assert.Equal(t, "fr", rc.Language.Normalized())
	})

	t.Run("loose URL prefix requires redirect", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/fr-CA/about"))
		assert.Equal(t, "fr", rc.Language.Normalized())
		assert.Equal(t, langtag.ConfidenceLoose, rc.Confidence)
		assert.True(t, rc.RedirectRequired)
	})

	t.Run("legacy zh-CN prefix is exact against zh-Hans", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/zh-CN/about"))
		assert.Equal(t, "zh-Hans", rc.Language.Normalized())
		assert.Equal(t, langtag.ConfidenceExact, rc.Confidence)
		assert.False(t, rc.RedirectRequired)
	})

	t.Run("non-language first segment falls through", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about"))
		assert.Equal(t, langtag.ConfidenceDefault, rc.Confidence)
		assert.Equal(t, "en", rc.Language.String())
	})

	t.Run("cookie beats header", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: localize.DefaultCookieName, Value: "fr"})
			r.Header.Set("Accept-Language", "zh-Hans")
		}))
		assert.Equal(t, "fr", rc.Language.String())
		assert.Equal(t, langtag.ConfidenceExact, rc.Confidence)
	})

	t.Run("invalid cookie is ignored", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: localize.DefaultCookieName, Value: "!!"})
			r.Header.Set("Accept-Language", "fr")
		}))
		assert.Equal(t, "fr", rc.Language.String())
	})

	t.Run("header preference order respected", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about", func(r *http.Request) {
			r.Header.Set("Accept-Language", "ja,zh-Hans;q=0.8,fr;q=0.9")
		}))
		assert.Equal(t, "fr", rc.Language.String())
		assert.Equal(t, langtag.ConfidenceExact, rc.Confidence)
	})

	t.Run("loose header match requires redirect", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about", func(r *http.Request) {
			r.Header.Set("Accept-Language", "fr-CH")
		}))
		assert.Equal(t, "fr", rc.Language.Normalized())
		assert.Equal(t, langtag.ConfidenceLoose, rc.Confidence)
		assert.True(t, rc.RedirectRequired)
	})

	t.Run("nothing matches falls back to default", func(t *testing.T) {
		t.Parallel()
		rc := l.Resolve(get("/about", func(r *http.Request) {
			r.Header.Set("Accept-Language", "ja,ko")
		}))
		assert.Equal(t, "en", rc.Language.String())
		assert.Equal(t, langtag.ConfidenceDefault, rc.Confidence)
		assert.False(t, rc.RedirectRequired)
	})

	t.Run("filtered URL never redirects", func(t *testing.T) {
		t.Parallel()
		filtered := newTestLocalizer(t, localize.WithFilters(
			localize.ExcludePathPrefix("/api/"),
		))
		rc := filtered.Resolve(get("/api/fr-CA/data"))
		assert.False(t, rc.RedirectRequired)
	})
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	t.Run("replaces loose path prefix with exact tag", func(t *testing.T) {
		t.Parallel()
		l := newTestLocalizer(t)
		r := httptest.NewRequest(http.MethodGet, "/fr-CA/shop/items?page=2", nil)
		rc := l.Resolve(r)
		require.True(t, rc.RedirectRequired)
		assert.Equal(t, "/fr/shop/items?page=2", l.CanonicalURL(r, rc))
	})

	t.Run("inserts prefix for header-resolved loose match", func(t *testing.T) {
		t.Parallel()
		l := newTestLocalizer(t)
		r := httptest.NewRequest(http.MethodGet, "/shop", nil)
		r.Header.Set("Accept-Language", "fr-CH")
		rc := l.Resolve(r)
		require.True(t, rc.RedirectRequired)
		assert.Equal(t, "/fr/shop", l.CanonicalURL(r, rc))
	})

	t.Run("prefix-always embeds default tag too", func(t *testing.T) {
		t.Parallel()
		l := newTestLocalizer(t, localize.WithScheme(localize.PrefixAlways))
		r := httptest.NewRequest(http.MethodGet, "/en-GB/shop", nil)
		rc := l.Resolve(r)
		require.True(t, rc.RedirectRequired)
		assert.Equal(t, "/en/shop", l.CanonicalURL(r, rc))
	})

	t.Run("empty segment after the tag cannot leave the site", func(t *testing.T) {
		t.Parallel()
		l := newTestLocalizer(t)
		r := httptest.NewRequest(http.MethodGet, "/en-GB//evil.example/phish", nil)
		rc := l.Resolve(r)
		require.True(t, rc.RedirectRequired)
		assert.Equal(t, "/evil.example/phish", l.CanonicalURL(r, rc))
	})

	t.Run("prefix-except-default strips prefix for default language", func(t *testing.T) {
		t.Parallel()
		l := newTestLocalizer(t)
		r := httptest.NewRequest(http.MethodGet, "/en-GB/shop", nil)
		rc := l.Resolve(r)
		require.True(t, rc.RedirectRequired)
		assert.Equal(t, "/shop", l.CanonicalURL(r, rc))
	})
}
