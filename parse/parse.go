// Package parse decodes document text into the ir node model. Input is
// YAML (JSON being valid YAML, both work); parsing TOML text is out of
// scope here, the query engine only consumes the already-built tree.
package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/toml-query/gomap"
	"github.com/signadot/toml-query/ir"
)

// Parse decodes d into a document node. Empty input yields an empty
// table, matching a document with nothing in it.
func Parse(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.NewTable(), nil
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	node, err := gomap.FromGo(v)
	if err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}
	return node, nil
}

func ParseReader(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(d)
}
