// Package resolve walks a document tree following a token sequence. The
// three entry points share one traversal and one error taxonomy; they
// differ only in whether missing table entries are created along the way.
//
// Go has no static borrow checking, so the shared/exclusive access rules
// the entry points state are a call-site discipline: results of Read must
// not be mutated, and no other access to the document may be live while a
// result of Mut or OrCreate is in use.
package resolve

import (
	"fmt"

	"github.com/signadot/toml-query/debug"
	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/token"
)

// Read locates the node at toks for read-only inspection. It returns
// (nil, nil) when the path is well-typed but the target does not exist.
// Resolving zero tokens yields doc itself.
func Read(doc *ir.Node, toks []token.Token) (*ir.Node, error) {
	return walk(doc, toks, false)
}

// Mut locates the node at toks for in-place mutation. Traversal, result
// and error behavior are identical to Read; it never creates missing
// structure.
func Mut(doc *ir.Node, toks []token.Token) (*ir.Node, error) {
	return walk(doc, toks, false)
}

// OrCreate locates the node at toks, inserting an empty table for every
// missing table entry on the way, final token included. Success always
// yields a node. Arrays are never extended: an index at or past the end
// fails with ErrIndexOutOfBounds.
func OrCreate(doc *ir.Node, toks []token.Token) (*ir.Node, error) {
	return walk(doc, toks, true)
}

func walk(node *ir.Node, toks []token.Token, create bool) (*ir.Node, error) {
	if len(toks) == 0 {
		return node, nil
	}
	t := &toks[0]
	rest := toks[1:]
	if debug.Resolve() {
		debug.Logf("resolve %s in %s (create=%v)\n", t, node.Type, create)
	}
	switch node.Type {
	case ir.TableType:
		if t.Kind == token.Index {
			return nil, fmt.Errorf("%w: [%d] at offset %d", ErrNoIndexInTable, t.Idx, t.Start)
		}
		child, ok := node.Table[t.Ident]
		if !ok {
			if !create {
				return nil, nil
			}
			child = ir.NewTable()
			node.Table[t.Ident] = child
		}
		return walk(child, rest, create)
	case ir.ArrayType:
		if t.Kind == token.Identifier {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNoIdentifierInArray, t.Ident, t.Start)
		}
		if t.Idx >= len(node.Values) {
			if create {
				return nil, fmt.Errorf("%w: [%d] in array of length %d", ErrIndexOutOfBounds, t.Idx, len(node.Values))
			}
			return nil, nil
		}
		return walk(node.Values[t.Idx], rest, create)
	default:
		if t.Kind == token.Identifier {
			return nil, fmt.Errorf("%w: %q applied to %s", ErrQueryingValueAsTable, t.Ident, node.Type)
		}
		return nil, fmt.Errorf("%w: [%d] applied to %s", ErrQueryingValueAsArray, t.Idx, node.Type)
	}
}
