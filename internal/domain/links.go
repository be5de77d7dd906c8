package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidLinks = errors.New("links must be an array or a newline/comma separated string")

var linkSeparator = regexp.MustCompile(`\r?\n|,`)

// LinkList is the raw bulk input. It decodes from either a JSON array or a
// single delimited string; both end up as one entry per raw link.
//
// null and "" decode to a nil list, which callers treat as missing. An empty
// array or a string of separators decodes to an empty non-nil list.
//
// Array elements that are not strings are kept as their JSON text. No JSON
// literal is a valid hostname, so they are rejected during canonicalization
// and reported back as invalid input.
type LinkList []string

func (l *LinkList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
			return nil
		}
		*l = SplitLinks(s)
		return nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		out := make(LinkList, 0, len(elems))
		for _, e := range elems {
			var s string
			if err := json.Unmarshal(e, &s); err != nil {
				out = append(out, string(e))
				continue
			}
			out = append(out, s)
		}
		*l = out
		return nil
	default:
		return ErrInvalidLinks
	}
}

// SplitLinks splits on newlines and commas, trims each piece and drops empties.
func SplitLinks(s string) []string {
	parts := linkSeparator.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
