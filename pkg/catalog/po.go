package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WarnFunc receives non-fatal parse warnings with the 1-based line number
// they were raised at.
type WarnFunc func(line int, msg string)

// poEntry accumulates one msgid/msgstr pair while scanning.
type poEntry struct {
	msgid     strings.Builder
	msgstr    strings.Builder
	fuzzy     bool
	malformed bool
	hasMsgid  bool
	hasMsgstr bool
}

func (e *poEntry) reset() {
	e.msgid.Reset()
	e.msgstr.Reset()
	e.fuzzy = false
	e.malformed = false
	e.hasMsgid = false
	e.hasMsgstr = false
}

// ParsePO reads a gettext portable-object stream into a key-to-translation
// map. Translator comments (#), extracted comments (#.), references (#:) and
// flags (#,) are tolerated; multiline strings are concatenated; standard
// escape sequences are decoded. The empty-msgid header entry, fuzzy-flagged
// entries, and entries with an empty msgstr are skipped. Plural forms beyond
// msgstr[0] are ignored.
//
// Malformed entries are skipped with a warning through warn (which may be
// nil) and parsing continues; only a read error fails the whole stream.
func ParsePO(r io.Reader, warn WarnFunc) (map[string]string, error) {
	entries := make(map[string]string)

	warnf := func(line int, format string, args ...any) {
		if warn != nil {
			warn(line, fmt.Sprintf(format, args...))
		}
	}

	var cur poEntry
	mode := modeNone

	flush := func() {
		defer cur.reset()
		if !cur.hasMsgid || cur.malformed || cur.fuzzy {
			return
		}
		key := cur.msgid.String()
		if key == "" {
			return // header entry
		}
		if tr := cur.msgstr.String(); cur.hasMsgstr && tr != "" {
			entries[key] = tr
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			flush()
			mode = modeNone

		case strings.HasPrefix(line, "#,"):
			// A flag between entries starts a new one; the flag must not
			// attach to the completed entry above it.
			if cur.hasMsgstr {
				flush()
				mode = modeNone
			}
			if strings.Contains(line, "fuzzy") {
				cur.fuzzy = true
			}

		case strings.HasPrefix(line, "#"):
			// Comment between entries starts a new one.
			if cur.hasMsgstr {
				flush()
				mode = modeNone
			}

		case strings.HasPrefix(line, "msgid_plural"):
			mode = modeIgnore

		case strings.HasPrefix(line, "msgid"):
			if cur.hasMsgstr {
				flush()
			}
			s, err := poUnquote(strings.TrimSpace(strings.TrimPrefix(line, "msgid")))
			if err != nil {
				warnf(lineNo, "skipping entry: %v", err)
				cur.malformed = true
				mode = modeNone
				continue
			}
			cur.hasMsgid = true
			cur.msgid.WriteString(s)
			mode = modeMsgid

		case strings.HasPrefix(line, "msgstr"):
			rest := strings.TrimPrefix(line, "msgstr")
			if idx, ok := strings.CutPrefix(rest, "["); ok {
				// Plural form: only msgstr[0] counts as the translation.
				if !strings.HasPrefix(idx, "0]") {
					mode = modeIgnore
					continue
				}
				rest = strings.TrimPrefix(idx, "0]")
			}
			s, err := poUnquote(strings.TrimSpace(rest))
			if err != nil {
				warnf(lineNo, "skipping entry: %v", err)
				cur.malformed = true
				mode = modeNone
				continue
			}
			cur.hasMsgstr = true
			cur.msgstr.WriteString(s)
			mode = modeMsgstr

		case strings.HasPrefix(line, `"`):
			s, err := poUnquote(line)
			if err != nil {
				warnf(lineNo, "skipping entry: %v", err)
				cur.malformed = true
				mode = modeNone
				continue
			}
			switch mode {
			case modeMsgid:
				cur.msgid.WriteString(s)
			case modeMsgstr:
				cur.msgstr.WriteString(s)
			case modeIgnore:
			default:
				warnf(lineNo, "skipping entry: continuation line outside msgid/msgstr")
				cur.malformed = true
			}

		default:
			warnf(lineNo, "skipping entry: unrecognized line %q", line)
			cur.malformed = true
			mode = modeNone
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: reading po stream: %w", err)
	}

	flush()
	return entries, nil
}

type parseMode int

const (
	modeNone parseMode = iota
	modeMsgid
	modeMsgstr
	modeIgnore
)

// poUnquote decodes a double-quoted PO string with its escape sequences.
func poUnquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", ErrBadString
	}
	body := s[1 : len(s)-1]
	if !strings.ContainsRune(body, '\\') {
		if strings.ContainsRune(body, '"') {
			return "", ErrBadString
		}
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			if c == '"' {
				return "", ErrBadString
			}
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", ErrBadString
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String(), nil
}
