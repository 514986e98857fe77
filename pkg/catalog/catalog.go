package catalog

import (
	"maps"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// Catalog is the immutable key-to-translation mapping for one language.
// Once built it is never mutated; reloads build a brand-new Catalog and swap
// it in atomically, so a Catalog reference captured at the start of a request
// stays internally consistent for the whole request.
type Catalog struct {
	lang    langtag.Tag
	entries map[string]string
}

// New builds a Catalog for lang from the given entries. The map is copied;
// the caller keeps ownership of its argument.
func New(lang langtag.Tag, entries map[string]string) *Catalog {
	c := &Catalog{lang: lang, entries: make(map[string]string, len(entries))}
	maps.Copy(c.entries, entries)
	return c
}

// Lookup returns the translation for key. A missing key is not an error; the
// caller renders the original text instead.
func (c *Catalog) Lookup(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Language returns the language this catalog serves.
func (c *Catalog) Language() langtag.Tag {
	return c.lang
}

// Len returns the number of translated entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
