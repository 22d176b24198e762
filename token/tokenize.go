package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/toml-query/debug"
)

var indexPattern = regexp.MustCompile(`^\[\d+\]$`)

// Tokenize splits query on sep and classifies each segment. An empty
// query yields zero tokens; resolving zero tokens is defined to yield the
// document root. A segment starting with '[' must match [<digits>]
// exactly, anything else there is ErrBadIndex. Empty segments (leading,
// trailing, or doubled separators) become empty Identifier tokens; they
// resolve like any other absent key.
func Tokenize(query string, sep rune) ([]Token, error) {
	if query == "" {
		return nil, nil
	}
	var (
		res   []Token
		ss    = string(sep)
		start = 0
	)
	for {
		rel := strings.Index(query[start:], ss)
		end := len(query)
		if rel != -1 {
			end = start + rel
		}
		tok, err := classify(query[start:end], start, end)
		if err != nil {
			return nil, err
		}
		if debug.Tokenize() {
			debug.Logf("tokenize %q: %s %s at %d..%d\n", query, tok.Kind, tok, tok.Start, tok.End)
		}
		res = append(res, tok)
		if rel == -1 {
			return res, nil
		}
		start = end + len(ss)
	}
}

func classify(seg string, start, end int) (Token, error) {
	if !strings.HasPrefix(seg, "[") {
		return Token{Kind: Identifier, Ident: seg, Start: start, End: end}, nil
	}
	if !indexPattern.MatchString(seg) {
		return Token{}, &SegmentError{Segment: seg, Offset: start, Err: ErrBadIndex}
	}
	idx, err := strconv.Atoi(seg[1 : len(seg)-1])
	if err != nil {
		// out of range for int
		return Token{}, &SegmentError{Segment: seg, Offset: start, Err: ErrBadIndex}
	}
	return Token{Kind: Index, Idx: idx, Start: start, End: end}, nil
}
