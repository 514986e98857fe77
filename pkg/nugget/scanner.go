package nugget

import (
	"fmt"
	"iter"
	"strings"
)

// Nugget is a translatable span discovered during a scan. It exists only for
// the duration of the scan/replace pass and is never persisted.
type Nugget struct {
	// Key is the message key: the nugget payload before any argument
	// delimiter, with surrounding whitespace trimmed.
	Key string

	// Args are the positional format arguments following the key; %0, %1, ...
	// in the translated text map to them by ordinal position.
	Args []string

	// Comment is the extracted translator comment, empty when absent.
	// Comments never appear in rendered output.
	Comment string
}

// Segment is one element of the alternating literal/nugget sequence a scan
// produces. Exactly one of Literal and Nugget is meaningful: Nugget is nil
// for literal segments.
type Segment struct {
	Literal string
	Nugget  *Nugget
}

// Scanner tokenizes text into literal spans and nuggets. It is independent of
// any language or catalog and immutable after construction, so a single
// Scanner may serve all requests concurrently.
type Scanner struct {
	tokens Tokens
	warn   func(msg string)
}

// Option configures the Scanner during construction.
type Option func(*Scanner)

// WithTokens overrides the default delimiter tokens.
func WithTokens(t Tokens) Option {
	return func(s *Scanner) {
		s.tokens = t
	}
}

// WithWarningHandler sets a handler for non-fatal scan warnings, such as an
// unterminated begin token. Useful for surfacing markup mistakes during
// development without failing the scan.
func WithWarningHandler(fn func(msg string)) Option {
	return func(s *Scanner) {
		s.warn = fn
	}
}

// NewScanner creates a Scanner with the given options. Returns an error when
// the delimiter tokens are empty, duplicated, or overlapping.
func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{tokens: DefaultTokens()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.tokens.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tokens returns the scanner's delimiter configuration.
func (s *Scanner) Tokens() Tokens {
	return s.tokens
}

// Segments returns a lazy, restartable sequence of alternating literal spans
// and nuggets covering text with no character loss or duplication.
//
// Nugget bodies are not scanned recursively: a begin token inside a body is
// body text, not a nested nugget. A begin token with no matching end token is
// not a nugget; the remainder of the buffer is emitted as literal text and a
// warning is surfaced through the warning handler.
func (s *Scanner) Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		rest := text
		offset := 0

		for {
			begin := strings.Index(rest, s.tokens.Begin)
			if begin < 0 {
				if rest != "" {
					yield(Segment{Literal: rest})
				}
				return
			}

			bodyStart := begin + len(s.tokens.Begin)
			bodyLen := strings.Index(rest[bodyStart:], s.tokens.End)
			if bodyLen < 0 {
				s.warnf("unterminated begin token at offset %d, treating remainder as literal", offset+begin)
				yield(Segment{Literal: rest})
				return
			}

			if begin > 0 {
				if !yield(Segment{Literal: rest[:begin]}) {
					return
				}
			}

			n := s.parseBody(rest[bodyStart : bodyStart+bodyLen])
			if !yield(Segment{Nugget: &n}) {
				return
			}

			consumed := bodyStart + bodyLen + len(s.tokens.End)
			rest = rest[consumed:]
			offset += consumed
		}
	}
}

// parseBody splits a nugget body into key, format arguments, and comment.
func (s *Scanner) parseBody(body string) Nugget {
	var n Nugget

	payload, comment, hasComment := strings.Cut(body, s.tokens.CommentDelimiter)
	if hasComment {
		n.Comment = strings.TrimSpace(comment)
	}

	if !strings.Contains(payload, s.tokens.ArgDelimiter) {
		n.Key = strings.TrimSpace(payload)
		return n
	}

	parts := strings.Split(payload, s.tokens.ArgDelimiter)
	n.Key = strings.TrimSpace(parts[0])
	n.Args = parts[1:]
	return n
}

func (s *Scanner) warnf(format string, args ...any) {
	if s.warn != nil {
		s.warn(fmt.Sprintf(format, args...))
	}
}
