package tomlq

import (
	"fmt"
	"slices"

	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/resolve"
	"github.com/signadot/toml-query/token"
)

// Delete removes the node at query from its parent container and returns
// it. A table or array still holding entries is not deleted
// (ErrNonEmptyTable / ErrNonEmptyArray); an absent target is a
// *NotAvailableError.
func Delete(doc *ir.Node, query string) (*ir.Node, error) {
	return DeleteWithSeparator(doc, query, token.DefaultSeparator)
}

func DeleteWithSeparator(doc *ir.Node, query string, sep rune) (*ir.Node, error) {
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
		if err := deletable(old); err != nil {
			return nil, err
		}
		delete(parent.Table, last.Ident)
		return old, nil
	case ir.ArrayType:
		if last.Kind == token.Identifier {
			return nil, fmt.Errorf("%w: %q", resolve.ErrNoIdentifierInArray, last.Ident)
		}
		if last.Idx >= len(parent.Values) {
			return nil, &NotAvailableError{Query: query}
		}
		old := parent.Values[last.Idx]
		if err := deletable(old); err != nil {
			return nil, err
		}
		parent.Values = slices.Delete(parent.Values, last.Idx, last.Idx+1)
		return old, nil
	default:
		return nil, valueDescentErr(parent, last)
	}
}

func deletable(y *ir.Node) error {
	switch y.Type {
	case ir.TableType:
		if len(y.Table) > 0 {
			return fmt.Errorf("%w: %d entries", ErrNonEmptyTable, len(y.Table))
		}
	case ir.ArrayType:
		if len(y.Values) > 0 {
			return fmt.Errorf("%w: %d elements", ErrNonEmptyArray, len(y.Values))
		}
	}
	return nil
}
