package tomlq

import (
	"time"

	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/resolve"
	"github.com/signadot/toml-query/token"
)

// Read resolves query against doc and returns the target node, or nil if
// the path is well-typed but the target does not exist. The result is a
// reference into doc and must be treated as read-only.
func Read(doc *ir.Node, query string) (*ir.Node, error) {
	return ReadWithSeparator(doc, query, token.DefaultSeparator)
}

func ReadWithSeparator(doc *ir.Node, query string, sep rune) (*ir.Node, error) {
	toks, err := token.Tokenize(query, sep)
	if err != nil {
		return nil, err
	}
	return resolve.Read(doc, toks)
}

// ReadMut resolves query for in-place mutation. Identical traversal and
// error behavior to Read; it never creates missing structure.
func ReadMut(doc *ir.Node, query string) (*ir.Node, error) {
	return ReadMutWithSeparator(doc, query, token.DefaultSeparator)
}

func ReadMutWithSeparator(doc *ir.Node, query string, sep rune) (*ir.Node, error) {
	toks, err := token.Tokenize(query, sep)
	if err != nil {
		return nil, err
	}
	return resolve.Mut(doc, toks)
}

// ReadOrCreate resolves query, creating missing table entries on the way,
// and always yields a node on success. Array elements are never created.
func ReadOrCreate(doc *ir.Node, query string) (*ir.Node, error) {
	return ReadOrCreateWithSeparator(doc, query, token.DefaultSeparator)
}

func ReadOrCreateWithSeparator(doc *ir.Node, query string, sep rune) (*ir.Node, error) {
	toks, err := token.Tokenize(query, sep)
	if err != nil {
		return nil, err
	}
	return resolve.OrCreate(doc, toks)
}

func readTyped(doc *ir.Node, query string, want ir.Type) (*ir.Node, error) {
	node, err := Read(doc, query)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, &NotAvailableError{Query: query}
	}
	if node.Type != want {
		return nil, &TypeError{Expected: want.String(), Actual: node.Type.String()}
	}
	return node, nil
}

// The typed accessors narrow the node at query to one scalar shape. A
// present node of the wrong shape is a *TypeError, an absent one a
// *NotAvailableError.

func ReadString(doc *ir.Node, query string) (string, error) {
	node, err := readTyped(doc, query, ir.StringType)
	if err != nil {
		return "", err
	}
	return node.String, nil
}

func ReadInt(doc *ir.Node, query string) (int64, error) {
	node, err := readTyped(doc, query, ir.IntegerType)
	if err != nil {
		return 0, err
	}
	return node.Int, nil
}

func ReadFloat(doc *ir.Node, query string) (float64, error) {
	node, err := readTyped(doc, query, ir.FloatType)
	if err != nil {
		return 0, err
	}
	return node.Float, nil
}

func ReadBool(doc *ir.Node, query string) (bool, error) {
	node, err := readTyped(doc, query, ir.BoolType)
	if err != nil {
		return false, err
	}
	return node.Bool, nil
}

func ReadTime(doc *ir.Node, query string) (time.Time, error) {
	node, err := readTyped(doc, query, ir.DatetimeType)
	if err != nil {
		return time.Time{}, err
	}
	return node.Time, nil
}
