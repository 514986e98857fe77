package langtag

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tag is a normalized language tag built from the language, script, and region
// subtags of BCP-47. Normalization happens once in Parse; comparisons operate
// on the normalized fields and never re-derive them.
//
// The zero Tag is invalid; use Parse or MustParse to construct one.
type Tag struct {
	// Language is the lowercase primary language subtag, e.g. "en", "zh".
	Language string

	// Script is the titlecase script subtag, e.g. "Hans". Empty when absent
	// and not inferable.
	Script string

	// Region is the uppercase region subtag, e.g. "CA", "419". Empty when absent.
	Region string

	raw string
}

// scriptCaser titlecases script subtags ("hans" -> "Hans") per BCP-47 convention.
var scriptCaser = cases.Title(language.Und)

// legacyScripts maps region subtags of script-less "zh" tags to their implied
// script, so zh-CN and zh-Hans compare as the same language variant.
var legacyScripts = map[string]string{
	"CN": "Hans",
	"TW": "Hant",
}

// Parse parses a language tag string into a normalized Tag.
// Subtags are split on "-" (or "_", common in cookies and locale names) and
// classified positionally: 4 alphabetic characters form a script, 2 alphabetic
// or 3 numeric characters form a region. Subtags beyond language, script, and
// region (variants, extensions) are ignored. The original string is retained
// for display via String.
//
// Legacy remaps are applied at parse time: zh-CN becomes zh-Hans and zh-TW
// becomes zh-Hant, so all downstream comparisons see the script form.
func Parse(s string) (Tag, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Tag{}, ErrInvalidTag
	}

	normalized := strings.ReplaceAll(trimmed, "_", "-")

	t := Tag{raw: trimmed}
	for i, sub := range strings.Split(normalized, "-") {
		if i == 0 {
			if !isAlpha(sub) || len(sub) < 2 || len(sub) > 8 {
				return Tag{}, ErrInvalidTag
			}
			t.Language = strings.ToLower(sub)
			continue
		}

		switch {
		case t.Script == "" && t.Region == "" && len(sub) == 4 && isAlpha(sub):
			t.Script = scriptCaser.String(strings.ToLower(sub))
		case t.Region == "" && (len(sub) == 2 && isAlpha(sub) || len(sub) == 3 && isDigit(sub)):
			t.Region = strings.ToUpper(sub)
		}
		// Anything else (variants, extensions, garbage) is ignored.
	}

	if t.Language == "zh" && t.Script == "" {
		if script, ok := legacyScripts[t.Region]; ok {
			t.Script = script
			t.Region = ""
		}
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for static tags in
// configuration and tests.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic("langtag: invalid tag " + strconv.Quote(s))
	}
	return t
}

// String returns the original string the tag was parsed from.
func (t Tag) String() string {
	return t.raw
}

// Normalized returns the canonical form of the tag, e.g. "zh-Hans" for a tag
// parsed from "zh-CN".
func (t Tag) Normalized() string {
	var b strings.Builder
	b.Grow(len(t.Language) + len(t.Script) + len(t.Region) + 2)
	b.WriteString(t.Language)
	if t.Script != "" {
		b.WriteByte('-')
		b.WriteString(t.Script)
	}
	if t.Region != "" {
		b.WriteByte('-')
		b.WriteString(t.Region)
	}
	return b.String()
}

// IsZero reports whether the tag is the invalid zero value.
func (t Tag) IsZero() bool {
	return t.Language == ""
}

// Equal reports exact equality: all present subtags match. Case differences
// were already erased by Parse, so this is a plain field comparison.
func (t Tag) Equal(o Tag) bool {
	return t.Language == o.Language && t.Script == o.Script && t.Region == o.Region
}

// LooselyEqual reports loose equality: the language subtags match and the
// scripts are compatible (equal, or one side has none). Region is ignored.
func (t Tag) LooselyEqual(o Tag) bool {
	if t.Language != o.Language {
		return false
	}
	return t.Script == o.Script || t.Script == "" || o.Script == ""
}

// SameLanguage reports whether only the language subtags match, ignoring
// script and region entirely.
func (t Tag) SameLanguage(o Tag) bool {
	return t.Language == o.Language
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
