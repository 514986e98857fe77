package nugget

import (
	"strconv"
	"strings"
)

// LookupFunc resolves a message key to its translated text. Returning
// ok=false means no translation exists and the key itself is rendered.
type LookupFunc func(key string) (string, bool)

// Rewriter drives a Scanner over a text buffer and substitutes translations
// for nuggets. Outside of replaced nugget spans the output is byte-exact with
// the input.
type Rewriter struct {
	scanner *Scanner
}

// NewRewriter creates a Rewriter over the given scanner.
func NewRewriter(scanner *Scanner) *Rewriter {
	if scanner == nil {
		panic("nugget: scanner is not provided")
	}
	return &Rewriter{scanner: scanner}
}

// Rewrite replaces every nugget in text with its translation. Literal spans
// are copied unchanged. Missing translations fall back to the message key
// itself; localization never fails the buffer. In both the translated and the
// fallback text, %N placeholders are substituted with the nugget's format
// arguments by ordinal position; a placeholder with no corresponding argument
// stays literal.
func (r *Rewriter) Rewrite(text string, lookup LookupFunc) string {
	var b strings.Builder
	b.Grow(len(text))

	for seg := range r.scanner.Segments(text) {
		if seg.Nugget == nil {
			b.WriteString(seg.Literal)
			continue
		}

		n := seg.Nugget
		msg, ok := lookup(n.Key)
		if !ok {
			msg = n.Key
		}
		b.WriteString(substituteArgs(msg, n.Args))
	}

	return b.String()
}

// substituteArgs replaces %N tokens with args[N]. Indexes are decimal and may
// exceed one digit. Out-of-range indexes and bare % signs are left untouched.
func substituteArgs(msg string, args []string) string {
	if len(args) == 0 || !strings.ContainsRune(msg, '%') {
		return msg
	}

	var b strings.Builder
	b.Grow(len(msg))

	for i := 0; i < len(msg); {
		if msg[i] != '%' {
			b.WriteByte(msg[i])
			i++
			continue
		}

		j := i + 1
		for j < len(msg) && msg[j] >= '0' && msg[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte('%')
			i++
			continue
		}

		idx, err := strconv.Atoi(msg[i+1 : j])
		if err == nil && idx < len(args) {
			b.WriteString(args[idx])
		} else {
			b.WriteString(msg[i:j])
		}
		i = j
	}

	return b.String()
}
