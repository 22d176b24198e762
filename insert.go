package tomlq

import (
	"fmt"

	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/resolve"
	"github.com/signadot/toml-query/token"
)

// Insert places val at query, creating missing intermediate tables along
// the way. If the final location already held a node, that node is
// replaced and returned; otherwise the result is nil. For a final array
// index, an index below the length replaces, an index equal to the
// length appends, anything past that is resolve.ErrIndexOutOfBounds.
func Insert(doc *ir.Node, query string, val *ir.Node) (*ir.Node, error) {
	return InsertWithSeparator(doc, query, token.DefaultSeparator, val)
}

func InsertWithSeparator(doc *ir.Node, query string, sep rune, val *ir.Node) (*ir.Node, error) {
	toks, err := token.Tokenize(query, sep)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyQuery
	}
	parentToks, last := splitLast(toks)
	parent, err := resolve.OrCreate(doc, parentToks)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.TableType:
		if last.Kind == token.Index {
			return nil, fmt.Errorf("%w: [%d]", resolve.ErrNoIndexInTable, last.Idx)
		}
		old := parent.Table[last.Ident]
		parent.Table[last.Ident] = val
		return old, nil
	case ir.ArrayType:
		if last.Kind == token.Identifier {
			return nil, fmt.Errorf("%w: %q", resolve.ErrNoIdentifierInArray, last.Ident)
		}
		switch {
		case last.Idx < len(parent.Values):
			old := parent.Values[last.Idx]
			parent.Values[last.Idx] = val
			return old, nil
		case last.Idx == len(parent.Values):
			parent.Values = append(parent.Values, val)
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: [%d] in array of length %d",
				resolve.ErrIndexOutOfBounds, last.Idx, len(parent.Values))
		}
	default:
		return nil, valueDescentErr(parent, last)
	}
}

func splitLast(toks []token.Token) ([]token.Token, *token.Token) {
	return toks[:len(toks)-1], &toks[len(toks)-1]
}

func valueDescentErr(node *ir.Node, t *token.Token) error {
	if t.Kind == token.Identifier {
		return fmt.Errorf("%w: %q applied to %s", resolve.ErrQueryingValueAsTable, t.Ident, node.Type)
	}
	return fmt.Errorf("%w: [%d] applied to %s", resolve.ErrQueryingValueAsArray, t.Idx, node.Type)
}
