// Package langtag provides normalized language tags, the immutable set of
// application-supported languages, and the preference matcher that picks the
// best available language for a user.
//
// Tags carry the language, script, and region subtags of BCP-47; everything
// else is ignored. Normalization (case folding, legacy zh script inference)
// happens once at parse time so the hot matching path is plain field
// comparison with no allocation.
//
// # Parsing
//
//	tag, err := langtag.Parse("zh-CN")
//	// tag.Language == "zh", tag.Script == "Hans", tag.Region == ""
//	// tag.String() == "zh-CN", tag.Normalized() == "zh-Hans"
//
// # Application languages
//
// Build the supported set once at startup; an empty set is a fatal
// configuration error:
//
//	set, err := langtag.NewSet("en", "fr-CA", "zh-Hans")
//
// # Matching
//
// Match runs three passes over the full preference list (exact, then loose,
// then language-only), so a lower-ranked exact preference wins over a
// higher-ranked loose one:
//
//	prefs := langtag.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
//	if tag, conf, ok := langtag.Match(prefs, set); ok {
//		// serve tag, redirect to canonical URL when conf is loose
//	}
//
// # Thread safety
//
// Tag is a value type, Set is immutable after construction, and Match is a
// pure function; everything here is safe for concurrent use.
package langtag
