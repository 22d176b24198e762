// Package token turns a path query string into the token sequence the
// resolvers walk. A query is a list of segments separated by a separator
// rune; a segment of the form [n] selects an array index, any other
// segment selects a table entry by key, verbatim. There is no escaping:
// a separator rune cannot occur inside a key.
package token

import "strconv"

type Kind int

const (
	Identifier Kind = iota
	Index
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Index:
		return "Index"
	default:
		return "<unknown kind>"
	}
}

// DefaultSeparator is the separator used by the convenience entry points.
const DefaultSeparator = '.'

// Token is one parsed path segment. Start and End are the byte offsets of
// the segment in the original query string, kept for diagnostics only.
type Token struct {
	Kind  Kind
	Ident string
	Idx   int
	Start int
	End   int
}

func (t Token) String() string {
	if t.Kind == Index {
		return "[" + strconv.Itoa(t.Idx) + "]"
	}
	return t.Ident
}
