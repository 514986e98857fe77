// Package logger provides slog factories with per-request context enrichment
// and an optional Sentry destination.
//
// The decorator extracts request-scoped attributes on every log call, which
// is how the resolved request language ends up on log records without any
// handler passing it explicitly:
//
//	log := logger.New(
//		logger.StringExtractor("language", func(ctx context.Context) (string, bool) {
//			tag, ok := localize.LanguageFromContext(ctx)
//			return tag.String(), ok
//		}),
//	)
//
// NewWithSentry adds a Sentry handler alongside stdout when a DSN is set and
// degrades to stdout-only otherwise.
package logger
