package nugget

import "errors"

var (
	ErrEmptyToken        = errors.New("nugget: delimiter token cannot be empty")
	ErrOverlappingTokens = errors.New("nugget: delimiter tokens must be distinct and non-overlapping")
)
