// Package catalog loads per-language translation catalogs from gettext
// portable-object (PO) files and serves them through lock-free atomic
// snapshots with live reload.
//
// # File layout
//
// One catalog file per supported language under the locales root, in a
// directory named after the language tag:
//
//	locales/
//	  fr-CA/messages.po
//	  de/messages.po
//	  zh-Hans/messages.po
//
// # Concurrency model
//
// Each language's Catalog is immutable. The Store keeps one atomic pointer
// per language; a reload parses the file into a brand-new Catalog and swaps
// the pointer, so readers never take a lock and never observe a mixture of
// old and new entries. Concurrent reloads of the same language collapse into
// a single file read via singleflight. Capture a snapshot once per request
// and reuse it for every lookup within that request.
//
//	store, err := catalog.NewStore("locales", set)
//	if err != nil { ... }
//	if err := store.Watch(ctx); err != nil { ... }
//
//	cat := store.Snapshot(lang)         // once per request
//	text, ok := cat.Lookup("hello")     // many times per request
//
// # Failure policy
//
// Localization is additive: a missing catalog file means the language serves
// untranslated text, a malformed entry is skipped with a warning, and a
// failed reload keeps the last-known-good catalog and retries on the next
// change notification. None of these conditions fail a request.
package catalog
