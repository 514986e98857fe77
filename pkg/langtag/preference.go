package langtag

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag     Tag
	quality float64
	order   int
}

// ParseAcceptLanguage parses an Accept-Language header into an ordered user
// preference list: descending quality, ties broken by original header order.
// Entries with q=0, wildcards, and unparseable tags are skipped rather than
// failing the whole header. The result is ephemeral and rebuilt per request.
//
// Example: "en-US,en;q=0.9,pl;q=0.8" yields [en-US en pl].
func ParseAcceptLanguage(header string) []Tag {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var weighted []weightedTag
	order := 0

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart == "" || langPart == "*" || quality == 0 {
			continue
		}

		tag, err := Parse(langPart)
		if err != nil {
			continue
		}

		weighted = append(weighted, weightedTag{tag: tag, quality: quality, order: order})
		order++
	}

	slices.SortFunc(weighted, func(a, b weightedTag) int {
		if c := cmp.Compare(b.quality, a.quality); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	tags := make([]Tag, len(weighted))
	for i, w := range weighted {
		tags[i] = w.tag
	}
	return tags
}
