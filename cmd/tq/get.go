package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-query"
	"github.com/signadot/toml-query/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
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
		node, err := tomlq.ReadWithSeparator(doc, path, sep)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, path, err)
		}
		if node == nil {
			return fmt.Errorf("no element at %q in %s", path, file)
		}
		if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	return nil
}
