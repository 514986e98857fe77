package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

func prefs(tags ...string) []langtag.Tag {
	out := make([]langtag.Tag, len(tags))
	for i, s := range tags {
		out[i] = langtag.MustParse(s)
	}
	return out
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("second-choice exact beats first-choice loose", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("fr-CA", "fr", "en")
		require.NoError(t, err)

		tag, conf, ok := langtag.Match(prefs("fr-CH", "fr-CA"), set)
		require.True(t, ok)
		assert.Equal(t, langtag.ConfidenceExact, conf)
		assert.Equal(t, "fr-CA", tag.Normalized())
	})

	t.Run("loose pass runs only after exact pass exhausts all preferences", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("en", "fr")
		require.NoError(t, err)

		tag, conf, ok := langtag.Match(prefs("fr-CH", "de"), set)
		require.True(t, ok)
		assert.Equal(t, langtag.ConfidenceLoose, conf)
		assert.Equal(t, "fr", tag.Normalized())
	})

	t.Run("language-only pass ignores script", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("en", "zh-Hant")
		require.NoError(t, err)

		tag, conf, ok := langtag.Match(prefs("zh-Hans"), set)
		require.True(t, ok)
		assert.Equal(t, langtag.ConfidenceLoose, conf)
		assert.Equal(t, "zh-Hant", tag.Normalized())
	})

	t.Run("zh-CN matches zh-Hans exactly after normalization", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("en", "zh-Hans")
		require.NoError(t, err)

		for _, pref := range []string{"zh-CN", "zh-Hans"} {
			tag, conf, ok := langtag.Match(prefs(pref), set)
			require.True(t, ok, "pref %q", pref)
			assert.Equal(t, langtag.ConfidenceExact, conf, "pref %q", pref)
			assert.Equal(t, "zh-Hans", tag.Normalized())
		}
	})

	t.Run("no match returns ok=false", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("en", "fr")
		require.NoError(t, err)

		_, _, ok := langtag.Match(prefs("ja", "ko"), set)
		assert.False(t, ok)
	})

	t.Run("empty preferences return ok=false", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("en")
		require.NoError(t, err)

		_, _, ok := langtag.Match(nil, set)
		assert.False(t, ok)
	})

	t.Run("match one follows the same pass order", func(t *testing.T) {
		t.Parallel()
		set, err := langtag.NewSet("fr", "en")
		require.NoError(t, err)

		tag, conf, ok := langtag.MatchOne(langtag.MustParse("fr-CA"), set)
		require.True(t, ok)
		assert.Equal(t, langtag.ConfidenceLoose, conf)
		assert.Equal(t, "fr", tag.Normalized())
	})
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	t.Run("orders by descending quality", func(t *testing.T) {
		t.Parallel()
		tags := langtag.ParseAcceptLanguage("pl;q=0.8,en-US,en;q=0.9")
		require.Len(t, tags, 3)
		assert.Equal(t, "en-US", tags[0].String())
		assert.Equal(t, "en", tags[1].String())
		assert.Equal(t, "pl", tags[2].String())
	})

	t.Run("ties keep original header order", func(t *testing.T) {
		t.Parallel()
		tags := langtag.ParseAcceptLanguage("de;q=0.5,fr;q=0.5,it;q=0.5")
		require.Len(t, tags, 3)
		assert.Equal(t, "de", tags[0].String())
		assert.Equal(t, "fr", tags[1].String())
		assert.Equal(t, "it", tags[2].String())
	})

	t.Run("skips wildcards and invalid tags", func(t *testing.T) {
		t.Parallel()
		tags := langtag.ParseAcceptLanguage("*, 42, en;q=0.9")
		require.Len(t, tags, 1)
		assert.Equal(t, "en", tags[0].String())
	})

	t.Run("skips q=0 entries", func(t *testing.T) {
		t.Parallel()
		tags := langtag.ParseAcceptLanguage("fr;q=0,en")
		require.Len(t, tags, 1)
		assert.Equal(t, "en", tags[0].String())
	})

	t.Run("empty header yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, langtag.ParseAcceptLanguage(""))
	})

	t.Run("malformed quality defaults to 1", func(t *testing.T) {
		t.Parallel()
		tags := langtag.ParseAcceptLanguage("fr;q=abc,en;q=0.5")
		require.Len(t, tags, 2)
		assert.Equal(t, "fr", tags[0].String())
	})
}
