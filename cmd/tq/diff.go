package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/toml-query"
	"github.com/signadot/toml-query/encode"
	"github.com/signadot/toml-query/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: diff requires two files and an optional path", cli.ErrUsage)
	}
	sep, err := cfg.sepRune()
	if err != nil {
		return err
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return err
	}
	if len(args) == 3 {
		path := args[2]
		if a, err = diffTarget(a, path, args[0], sep); err != nil {
			return err
		}
		if b, err = diffTarget(b, path, args[1], sep); err != nil {
			return err
		}
	}
	aText, err := render(a)
	if err != nil {
		return err
	}
	bText, err := render(b)
	if err != nil {
		return err
	}
	w, closeW, err := cfg.output(cc)
	if err != nil {
		return err
	}
	defer closeW()
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(aText, bText, true)
	if cfg.useColor(w) {
		_, err = io.WriteString(w, dmp.DiffPrettyText(diffs))
		return err
	}
	_, err = io.WriteString(w, dmp.PatchToText(dmp.PatchMake(aText, diffs)))
	return err
}

func diffTarget(doc *ir.Node, path, file string, sep rune) (*ir.Node, error) {
	node, err := tomlq.ReadWithSeparator(doc, path, sep)
	if err != nil {
		return nil, fmt.Errorf("error querying %s with %q: %w", file, path, err)
	}
	if node == nil {
		return nil, fmt.Errorf("no element at %q in %s", path, file)
	}
	return node, nil
}

func render(y *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
