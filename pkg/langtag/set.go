package langtag

// Set is the ordered, immutable collection of languages an application
// supports. The first element is the designated default. Build one Set at
// startup and share it freely; it is never mutated afterwards.
type Set struct {
	tags []Tag
}

// NewSet builds a Set from the default language tag followed by any additional
// supported tags. Duplicate tags (exact equality after normalization) are
// dropped, keeping first occurrence order. Returns ErrEmptySet when no default
// is given and ErrInvalidTag when any tag fails to parse; both are fatal
// startup conditions for the caller.
func NewSet(defaultTag string, additional ...string) (*Set, error) {
	if defaultTag == "" {
		return nil, ErrEmptySet
	}

	tags := make([]Tag, 0, len(additional)+1)

	def, err := Parse(defaultTag)
	if err != nil {
		return nil, err
	}
	tags = append(tags, def)

	for _, s := range additional {
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		dup := false
		for _, existing := range tags {
			if existing.Equal(t) {
				dup = true
				break
			}
		}
		if !dup {
			tags = append(tags, t)
		}
	}

	return &Set{tags: tags}, nil
}

// Default returns the designated default language.
func (s *Set) Default() Tag {
	return s.tags[0]
}

// Tags returns a copy of the supported tags in order, default first.
func (s *Set) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Len returns the number of supported languages.
func (s *Set) Len() int {
	return len(s.tags)
}

// Contains reports whether the set holds an exactly equal tag.
func (s *Set) Contains(t Tag) bool {
	for _, app := range s.tags {
		if app.Equal(t) {
			return true
		}
	}
	return false
}

// all exposes the backing slice to the matcher without copying.
// Callers must not mutate the result.
func (s *Set) all() []Tag {
	return s.tags
}
