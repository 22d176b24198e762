package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-query"
	"github.com/signadot/toml-query/encode"
)

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires one argument, an element path", cli.ErrUsage)
	}
	sep, err := cfg.sepRune()
	if err != nil {
		return err
	}
	path := args[0]
	files := args[1:]
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
		if _, err := tomlq.DeleteWithSeparator(doc, path, sep); err != nil {
			return fmt.Errorf("error deleting %q in %s: %w", path, file, err)
		}
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	return nil
}
