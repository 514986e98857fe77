// Package localize is a request-time localization engine for HTTP
// applications: it recognizes inline translation markup ("nuggets") in
// response bodies, resolves translations from per-language gettext PO
// catalogs with live reload, and keeps language selection visible and
// SEO-stable in the URL.
//
// # Nuggets
//
// Handlers emit source-language text wrapped in markup instead of calling a
// translation API:
//
//	fmt.Fprint(w, "<h1>[[[Welcome back, %0|||Alice]]]</h1>")
//
// The middleware rewrites each nugget with the translation for the request's
// principal language, substituting %N placeholders with the nugget's
// arguments. Missing translations render the original text; localization is
// additive and never fails a request.
//
// # Language selection
//
// The principal language is resolved per request from the URL path prefix
// (exact, then loose), the i18n.langtag cookie, the Accept-Language header,
// and finally the application default. Loose matches (e.g. /fr-CA/ against a
// supported "fr") redirect to the canonical URL carrying the exact
// application tag, 302 by default.
//
// # Usage
//
//	l, err := localize.New(
//		localize.WithLanguages("en", "fr", "zh-Hans"),
//		localize.WithLocalesDir("locales"),
//		localize.WithFilters(localize.ExcludePathPrefix("/api/")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := l.Watch(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/", homeHandler)
//	http.ListenAndServe(":8080", l.Middleware(mux))
//
// The middleware is plain func(http.Handler) http.Handler and composes with
// any router, including chi.
//
// # Concurrency
//
// The Localizer and the application language set are immutable after New.
// Catalogs are immutable snapshots behind per-language atomic pointers;
// reloads swap whole catalogs, readers never lock, and each request's rewrite
// pass observes exactly one catalog generation.
package localize
