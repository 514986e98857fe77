// Package nugget scans text for inline translatable markup and rewrites it
// with translated messages.
//
// A nugget is a delimited span marking a translatable message, optionally
// carrying positional format arguments and a translator comment:
//
//	[[[welcome %0, today is %1|||Alice|||Monday///shown on the home page]]]
//
// The default delimiters are [[[ and ]]] around the span, ||| between the
// message key and each argument, and /// before the comment. All four are
// configurable per scanner.
//
// # Scanning
//
//	scanner, err := nugget.NewScanner()
//	for seg := range scanner.Segments(buf) {
//		if seg.Nugget != nil {
//			// seg.Nugget.Key, seg.Nugget.Args, seg.Nugget.Comment
//		}
//	}
//
// Scanning is strictly left to right with no nesting: a begin token inside a
// nugget body is body text. A begin token that is never terminated downgrades
// the remainder of the buffer to literal text and surfaces a warning through
// the optional warning handler; it never fails the scan.
//
// # Rewriting
//
//	rw := nugget.NewRewriter(scanner)
//	out := rw.Rewrite(buf, catalog.Lookup)
//
// Missing translations render the message key itself, so untranslated content
// degrades gracefully instead of erroring. Text outside nugget spans passes
// through byte-exact.
//
// Scanner and Rewriter are immutable and safe for concurrent use.
package nugget
