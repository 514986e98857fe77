package localize

import (
	"context"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

type ctxKey struct{}

func withRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext extracts the localization decision stored by the middleware.
func FromContext(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(RequestContext)
	return rc, ok
}

// LanguageFromContext extracts the principal language stored by the
// middleware. Returns ok=false when the middleware is not installed.
func LanguageFromContext(ctx context.Context) (langtag.Tag, bool) {
	rc, ok := FromContext(ctx)
	if !ok {
		return langtag.Tag{}, false
	}
	return rc.Language, true
}
