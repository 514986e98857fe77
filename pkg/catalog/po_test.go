package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/catalog"
)

func TestParsePO(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, src string) (map[string]string, []string) {
		t.Helper()
		var warnings []string
		entries, err := catalog.ParsePO(strings.NewReader(src), func(line int, msg string) {
			warnings = append(warnings, msg)
		})
		require.NoError(t, err)
		return entries, warnings
	}

	t.Run("basic entries", func(t *testing.T) {
		t.Parallel()
		entries, warnings := parse(t, `
msgid "hello world"
msgstr "bonjour le monde"

msgid "goodbye"
msgstr "au revoir"
`)
		assert.Empty(t, warnings)
		assert.Equal(t, map[string]string{
			"hello world": "bonjour le monde",
			"goodbye":     "au revoir",
		}, entries)
	})

	t.Run("header entry is skipped", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
msgid ""
msgstr ""
"Language: fr\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "yes"
msgstr "oui"
`)
		assert.Equal(t, map[string]string{"yes": "oui"}, entries)
	})

	t.Run("comments and metadata tolerated", func(t *testing.T) {
		t.Parallel()
		entries, warnings := parse(t, `
# translator comment
#. extracted: shown on the home page
#: handlers/home.go:42
msgid "welcome %0"
msgstr "bienvenue %0"
`)
		assert.Empty(t, warnings)
		assert.Equal(t, map[string]string{"welcome %0": "bienvenue %0"}, entries)
	})

	t.Run("multiline strings are concatenated", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
msgid "long "
"message"
msgstr "langes "
"Stück"
`)
		assert.Equal(t, map[string]string{"long message": "langes Stück"}, entries)
	})

	t.Run("escape sequences decoded", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
msgid "line\none \"two\" \t tab"
msgstr "ligne\nun \"deux\" \t tab"
`)
		require.Len(t, entries, 1)
		assert.Equal(t, "ligne\nun \"deux\" \t tab", entries["line\none \"two\" \t tab"])
	})

	t.Run("fuzzy entries are skipped", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
#, fuzzy
msgid "draft"
msgstr "brouillon"

msgid "final"
msgstr "finale"
`)
		assert.Equal(t, map[string]string{"final": "finale"}, entries)
	})

	t.Run("fuzzy flag without blank separator attaches to the next entry", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `msgid "kept"
msgstr "gardé"
#, fuzzy
msgid "draft"
msgstr "brouillon"
`)
		assert.Equal(t, map[string]string{"kept": "gardé"}, entries)
	})

	t.Run("empty msgstr is skipped", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
msgid "untranslated"
msgstr ""
`)
		assert.Empty(t, entries)
	})

	t.Run("malformed entry skipped with warning, rest parsed", func(t *testing.T) {
		t.Parallel()
		entries, warnings := parse(t, `
msgid "broken
msgstr "whatever"

msgid "ok"
msgstr "bien"
`)
		assert.NotEmpty(t, warnings)
		assert.Equal(t, map[string]string{"ok": "bien"}, entries)
	})

	t.Run("unrecognized line skips entry with warning", func(t *testing.T) {
		t.Parallel()
		entries, warnings := parse(t, `
msgid "first"
garbage here
msgstr "premier"

msgid "second"
msgstr "deuxième"
`)
		assert.NotEmpty(t, warnings)
		assert.NotContains(t, entries, "first")
		assert.Equal(t, "deuxième", entries["second"])
	})

	t.Run("plural entries use msgstr[0]", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `
msgid "%0 items"
msgid_plural "%0 items plural"
msgstr[0] "%0 Artikel"
msgstr[1] "%0 Artikel mehr"
`)
		assert.Equal(t, map[string]string{"%0 items": "%0 Artikel"}, entries)
	})

	t.Run("missing final newline still flushes last entry", func(t *testing.T) {
		t.Parallel()
		entries, _ := parse(t, `msgid "tail"
msgstr "queue"`)
		assert.Equal(t, map[string]string{"tail": "queue"}, entries)
	})
}
