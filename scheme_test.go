package localize_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/langtag"
)

func TestSchemes(t *testing.T) {
	t.Parallel()

	fr := langtag.MustParse("fr")
	en := langtag.MustParse("en")

	t.Run("prefix-always", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/fr/shop", localize.PrefixAlways.Localize("/shop", fr, false))
		assert.Equal(t, "/en/shop", localize.PrefixAlways.Localize("/shop", en, true))
		assert.Equal(t, "/fr", localize.PrefixAlways.Localize("/", fr, false))
		assert.Equal(t, "/fr", localize.PrefixAlways.Localize("", fr, false))
	})

	t.Run("prefix-except-default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/fr/shop", localize.PrefixExceptDefault.Localize("/shop", fr, false))
		assert.Equal(t, "/shop", localize.PrefixExceptDefault.Localize("/shop", en, true))
		assert.Equal(t, "/", localize.PrefixExceptDefault.Localize("", en, true))
		assert.Equal(t, "/fr", localize.PrefixExceptDefault.Localize("/", fr, false))
	})

	t.Run("scheme names", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "prefix-always", localize.PrefixAlways.Name())
		assert.Equal(t, "prefix-except-default", localize.PrefixExceptDefault.Name())
	})
}

func TestFilters(t *testing.T) {
	t.Parallel()

	pathURL := func(p string) *url.URL {
		return &url.URL{Path: p}
	}

	t.Run("exclude path prefix", func(t *testing.T) {
		t.Parallel()
		f := localize.ExcludePathPrefix("/api/", "/static/")
		assert.False(t, f(pathURL("/api/v1/users")))
		assert.False(t, f(pathURL("/static/app.css")))
		assert.True(t, f(pathURL("/shop")))
	})

	t.Run("exclude extensions case-insensitively", func(t *testing.T) {
		t.Parallel()
		f := localize.ExcludeExtensions(".css", ".js")
		assert.False(t, f(pathURL("/assets/app.CSS")))
		assert.False(t, f(pathURL("/app.js")))
		assert.True(t, f(pathURL("/shop")))
		assert.True(t, f(pathURL("/report.pdf")))
	})
}
