package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-query"
	"github.com/signadot/toml-query/encode"
	"github.com/signadot/toml-query/parse"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	sep, err := cfg.sepRune()
	if err != nil {
		return err
	}
	path := args[0]
	val, err := parse.Parse([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("bad value %q: %w", args[1], err)
	}
	files := args[2:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	w, closeW, err := cfg.output(cc)
	if err != nil {
		return err
	}
	defer closeW()
	for _, file := range files {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		if _, err := tomlq.SetWithSeparator(doc, path, sep, val.Clone()); err != nil {
			return fmt.Errorf("error setting %q in %s: %w", path, file, err)
		}
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	return nil
}
