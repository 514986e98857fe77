package langtag

// Confidence describes how closely the selected application language matches
// the user's preference.
type Confidence int

const (
	// ConfidenceExact means all present subtags matched.
	ConfidenceExact Confidence = iota + 1

	// ConfidenceLoose means the language (and possibly script) matched but
	// the tags are not identical; callers typically canonicalize the URL
	// toward the exact application tag.
	ConfidenceLoose

	// ConfidenceDefault means nothing matched and the application default
	// was applied.
	ConfidenceDefault
)

// String returns the confidence name for logging.
func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceLoose:
		return "loose"
	case ConfidenceDefault:
		return "default"
	default:
		return "none"
	}
}

// Match selects the best application language for an ordered user preference
// list. It runs up to three full passes over the preferences, stopping at the
// first hit:
//
//  1. exact equality,
//  2. loose equality (language + compatible script, region ignored),
//  3. language subtag alone.
//
// Each pass exhausts the whole preference list before the next, weaker pass
// starts: a second-choice exact match beats a first-choice loose match, since
// exact matches never force a URL redirect while loose ones do.
//
// Returns the matched application tag with its confidence, or ok=false when
// no pass produced a hit (the caller falls back to the set's default). Match
// is pure and performs no heap allocation; both inputs are pre-normalized.
func Match(prefs []Tag, set *Set) (Tag, Confidence, bool) {
	if len(prefs) == 0 || set == nil {
		return Tag{}, 0, false
	}

	app := set.all()

	for _, pref := range prefs {
		for _, candidate := range app {
			if candidate.Equal(pref) {
				return candidate, ConfidenceExact, true
			}
		}
	}

	for _, pref := range prefs {
		for _, candidate := range app {
			if candidate.LooselyEqual(pref) {
				return candidate, ConfidenceLoose, true
			}
		}
	}

	for _, pref := range prefs {
		for _, candidate := range app {
			if candidate.SameLanguage(pref) {
				return candidate, ConfidenceLoose, true
			}
		}
	}

	return Tag{}, 0, false
}

// MatchOne is a convenience wrapper for matching a single tag, used for
// cookie values and URL path prefixes.
func MatchOne(pref Tag, set *Set) (Tag, Confidence, bool) {
	return Match([]Tag{pref}, set)
}
