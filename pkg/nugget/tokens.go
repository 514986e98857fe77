package nugget

import "strings"

// Default delimiter tokens.
const (
	DefaultBegin            = "[[["
	DefaultEnd              = "]]]"
	DefaultArgDelimiter     = "|||"
	DefaultCommentDelimiter = "///"
)

// Tokens holds the four delimiter strings that mark up translatable spans.
// All four must be non-empty, pairwise distinct, and non-overlapping (no
// token may contain another).
type Tokens struct {
	Begin            string
	End              string
	ArgDelimiter     string
	CommentDelimiter string
}

// DefaultTokens returns the standard delimiter set: [[[, ]]], |||, ///.
func DefaultTokens() Tokens {
	return Tokens{
		Begin:            DefaultBegin,
		End:              DefaultEnd,
		ArgDelimiter:     DefaultArgDelimiter,
		CommentDelimiter: DefaultCommentDelimiter,
	}
}

func (t Tokens) validate() error {
	all := []string{t.Begin, t.End, t.ArgDelimiter, t.CommentDelimiter}
	for _, tok := range all {
		if tok == "" {
			return ErrEmptyToken
		}
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			if strings.Contains(a, b) {
				return ErrOverlappingTokens
			}
		}
	}
	return nil
}
