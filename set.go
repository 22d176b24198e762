package tomlq

import (
	"fmt"

	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/resolve"
	"github.com/signadot/toml-query/token"
)

// Set replaces the existing node at query with val and returns the node
// it replaced. Unlike Insert it never creates structure: an absent
// parent, key or index is a *NotAvailableError.
func Set(doc *ir.Node, query string, val *ir.Node) (*ir.Node, error) {
	return SetWithSeparator(doc, query, token.DefaultSeparator, val)
}

func SetWithSeparator(doc *ir.Node, query string, sep rune, val *ir.Node) (*ir.Node, error) {
	toks, err := token.Tokenize(query, sep)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyQuery
	}
	parentToks, last := splitLast(toks)
	parent, err := resolve.Mut(doc, parentToks)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, &NotAvailableError{Query: query}
	}
	switch parent.Type {
	case ir.TableType:
		if last.Kind == token.Index {
			return nil, fmt.Errorf("%w: [%d]", resolve.ErrNoIndexInTable, last.Idx)
		}
		old, ok := parent.Table[last.Ident]
		if !ok {
			return nil, &NotAvailableError{Query: query}
		}
		parent.Table[last.Ident] = val
		return old, nil
	case ir.ArrayType:
		if last.Kind == token.Identifier {
			return nil, fmt.Errorf("%w: %q", resolve.ErrNoIdentifierInArray, last.Ident)
		}
		if last.Idx >= len(parent.Values) {
			return nil, &NotAvailableError{Query: query}
		}
		old := parent.Values[last.Idx]
		parent.Values[last.Idx] = val
		return old, nil
	default:
		return nil, valueDescentErr(parent, last)
	}
}
