package tomlq

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/signadot/toml-query/gomap"
	"github.com/signadot/toml-query/ir"
)

// Patch applies an RFC 6902 JSON patch to the subtree at query, in
// place. The subtree is marshaled to JSON, patched, and rebuilt; the
// rest of the document is untouched.
func Patch(doc *ir.Node, query string, patch []byte) error {
	node, err := ReadMut(doc, query)
	if err != nil {
		return err
	}
	if node == nil {
		return &NotAvailableError{Query: query}
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	d, err := json.Marshal(gomap.ToGo(node))
	if err != nil {
		return fmt.Errorf("marshaling subtree at %q: %w", query, err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("applying patch at %q: %w", query, err)
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding patched subtree: %w", err)
	}
	repl, err := gomap.FromGo(v)
	if err != nil {
		return fmt.Errorf("rebuilding subtree at %q: %w", query, err)
	}
	*node = *repl
	return nil
}
