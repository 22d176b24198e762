package tomlq

import (
	"fmt"

	"github.com/signadot/toml-query/debug"
	"github.com/signadot/toml-query/ir"
)

// Step pairs a path with a handler run on the node the path resolves to.
// The path of a step is resolved relative to the previous step's target,
// so a chain descends through the document.
type Step struct {
	Path string
	Run  func(*ir.Node) error
}

// Execute drives a chain of steps against doc. The first step resolves
// against doc itself; each later one against the node the previous step
// landed on. A step whose target is absent aborts the chain with a
// *NotAvailableError, as does any resolve or handler error.
func Execute(doc *ir.Node, steps ...Step) error {
	cur := doc
	for i, step := range steps {
		if debug.Query() {
			debug.Logf("query step %d: %q\n", i, step.Path)
		}
		node, err := ReadMut(cur, step.Path)
		if err != nil {
			return fmt.Errorf("step %d (%q): %w", i, step.Path, err)
		}
		if node == nil {
			return &NotAvailableError{Query: step.Path}
		}
		if step.Run != nil {
			if err := step.Run(node); err != nil {
				return fmt.Errorf("step %d (%q): %w", i, step.Path, err)
			}
		}
		cur = node
	}
	return nil
}
