package localize

import (
	"log/slog"
	"net/http"
)

// Middleware returns plain net/http middleware that localizes every response
// passing through it:
//
//  1. resolve the principal language (URL prefix, cookie, Accept-Language,
//     default),
//  2. redirect loosely matched URLs to their canonical form,
//  3. strip the language prefix from the URL so downstream routing sees the
//     tag-free path,
//  4. set Content-Language, store the decision in the request context,
//  5. buffer the response body and replace nugget markup with translations.
//
// URLs rejected by an exclusion filter bypass all of it and are served
// untouched.
//
// The catalog snapshot is captured once before the handler runs, so every
// lookup in the rewrite pass observes one consistent catalog generation.
// Responses whose Content-Type is outside the rewrite allowlist, and hijacked
// connections, pass through byte-identical.
func (l *Localizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.localizable(r.URL) {
			next.ServeHTTP(w, r)
			return
		}

		rc := l.Resolve(r)

		if rc.RedirectRequired {
			http.Redirect(w, r, l.CanonicalURL(r, rc), l.redirectStatus)
			return
		}

		w.Header().Set("Content-Language", rc.Language.String())

		if l.persistCookie && rc.fromPath {
			http.SetCookie(w, &http.Cookie{
				Name:     l.cookieName,
				Value:    rc.Language.String(),
				Path:     "/",
				SameSite: http.SameSiteLaxMode,
			})
		}

		r = r.WithContext(withRequestContext(r.Context(), rc))
		if rc.fromPath {
			r = stripLanguagePrefix(r)
		}

		lookup := l.lookupFor(rc.Language)
		bw := newBufferedWriter(w)

		next.ServeHTTP(bw, r)

		err := bw.finish(func(body []byte) []byte {
			if !l.rewritable(bw.Header().Get("Content-Type")) {
				return body
			}
			return []byte(l.rewriter.Rewrite(string(body), lookup))
		})
		if err != nil {
			l.logger.Debug("writing localized response failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", err))
		}
	})
}
