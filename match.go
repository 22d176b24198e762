package tomlq

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/toml-query/gomap"
	"github.com/signadot/toml-query/ir"
)

// Match evaluates an expr program against the node at query and reports
// whether it holds. A table's entries become the evaluation environment;
// any other node is bound to the variable "value". The program must
// produce a bool.
func Match(doc *ir.Node, query, program string) (bool, error) {
	node, err := Read(doc, query)
	if err != nil {
		return false, err
	}
	if node == nil {
		return false, &NotAvailableError{Query: query}
	}
	return matchNode(node, program)
}

// Filter returns the elements of the array at query for which program
// holds. The result aliases the document; it is a read-only view.
func Filter(doc *ir.Node, query, program string) ([]*ir.Node, error) {
	node, err := Read(doc, query)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, &NotAvailableError{Query: query}
	}
	if node.Type != ir.ArrayType {
		return nil, &TypeError{Expected: ir.ArrayType.String(), Actual: node.Type.String()}
	}
	var res []*ir.Node
	for i, el := range node.Values {
		ok, err := matchNode(el, program)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if ok {
			res = append(res, el)
		}
	}
	return res, nil
}

func matchNode(y *ir.Node, program string) (bool, error) {
	out, err := expr.Eval(program, exprEnv(y))
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", program, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q: expected bool result, got %T", program, out)
	}
	return b, nil
}

func exprEnv(y *ir.Node) any {
	v := gomap.ToGo(y)
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"value": v}
}
