package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// UnparseableTagError explains why a raw concept_tags value fell back to a synthetic tag.
// It never escapes ParseConceptTags; callers read it from TagParseResult.Err.
type UnparseableTagError struct {
	Raw   string
	Cause error
}

func (e *UnparseableTagError) Error() string {
	return fmt.Sprintf("unparseable concept tags %q: %v", e.Raw, e.Cause)
}

func (e *UnparseableTagError) Unwrap() error {
	return e.Cause
}

// TagParseResult is either Ok (Fallback false) or a single synthetic tag (Fallback true).
type TagParseResult struct {
	Tags     []string
	Fallback bool
	Err      *UnparseableTagError
}

var (
	errNotAList         = errors.New("value is not a list literal")
	errUnterminated     = errors.New("unterminated string literal")
	errUnexpectedToken  = errors.New("unexpected token in list literal")
	errNonStringElement = errors.New("list element is not a string")
	errBadEscape        = errors.New("unsupported escape sequence")
)

// ParseConceptTags normalises a serialized concept_tags value.
//
// Accepted forms are a JSON array of strings, a Python-style list literal such as
// ['fractions', "division"], or a single quoted string. A blank value means no tags.
// Everything else yields a one-element list holding the raw value unchanged.
func ParseConceptTags(raw string) TagParseResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TagParseResult{Tags: []string{}}
	}

	var tags []string
	var err error
	switch s[0] {
	case '[':
		var elems []*string
		if jsonErr := json.Unmarshal([]byte(s), &elems); jsonErr == nil {
			tags, err = derefTags(elems)
		} else {
			tags, err = parseListLiteral(s)
		}
	case '\'', '"':
		var str string
		var rest string
		str, rest, err = readQuoted(s)
		if err == nil && strings.TrimSpace(rest) != "" {
			err = errUnexpectedToken
		}
		tags = []string{str}
	default:
		err = errNotAList
	}

	if err != nil {
		return TagParseResult{
			Tags:     []string{raw},
			Fallback: true,
			Err:      &UnparseableTagError{Raw: raw, Cause: err},
		}
	}
	return TagParseResult{Tags: uniqueTags(tags)}
}

// derefTags rejects JSON null elements, which decode to nil.
func derefTags(elems []*string) ([]string, error) {
	tags := make([]string, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			return nil, errNonStringElement
		}
		tags = append(tags, *e)
	}
	return tags, nil
}

// parseListLiteral handles single- or double-quoted string lists with an optional trailing comma.
func parseListLiteral(s string) ([]string, error) {
	if !strings.HasSuffix(s, "]") {
		return nil, errUnexpectedToken
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	tags := []string{}
	for body != "" {
		if body[0] != '\'' && body[0] != '"' {
			return nil, errNonStringElement
		}
		tag, rest, err := readQuoted(body)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)

		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, errUnexpectedToken
		}
		body = strings.TrimSpace(rest[1:])
	}
	return tags, nil
}

// readQuoted reads one quoted literal from the start of s and returns the remainder.
// Escapes follow Python string literals; \N{...} is rejected.
func readQuoted(s string) (string, string, error) {
	quote := s[0]
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			n, err := decodeEscape(&b, s[i+1:])
			if err != nil {
				return "", "", err
			}
			i += n
		case c == quote:
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", errUnterminated
}

// decodeEscape writes the character for the escape at the start of s (just after the
// backslash) and returns how many bytes of s it consumed.
func decodeEscape(b *strings.Builder, s string) (int, error) {
	switch c := s[0]; c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '\n':
		// line continuation
	case 'x':
		return hexEscape(b, s, 2)
	case 'u':
		return hexEscape(b, s, 4)
	case 'U':
		return hexEscape(b, s, 8)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := 1
		for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
			n++
		}
		v, _ := strconv.ParseUint(s[:n], 8, 32)
		b.WriteRune(rune(v))
		return n, nil
	case 'N':
		return 0, errBadEscape
	default:
		// Python keeps unknown escapes verbatim.
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return 1, nil
}

func hexEscape(b *strings.Builder, s string, digits int) (int, error) {
	if len(s) < 1+digits {
		return 0, errBadEscape
	}
	v, err := strconv.ParseUint(s[1:1+digits], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, errBadEscape
	}
	b.WriteRune(rune(v))
	return 1 + digits, nil
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
