package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/toml-query/encode"
	"github.com/signadot/toml-query/token"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='colorize output'"`
	Compact bool   `cli:"name=c aliases=compact desc='compact single-line output'"`
	Sep     string `cli:"name=sep desc='path separator, one rune'"`

	Out string

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	cfg.Out = v
	return v, nil
}

func (cfg *MainConfig) sepRune() (rune, error) {
	if cfg.Sep == "" {
		return token.DefaultSeparator, nil
	}
	rs := []rune(cfg.Sep)
	if len(rs) != 1 {
		return 0, fmt.Errorf("%w: separator must be one rune, got %q", cli.ErrUsage, cfg.Sep)
	}
	return rs[0], nil
}

func (cfg *MainConfig) output(cc *cli.Context) (io.Writer, func() error, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return cc.Out, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create %q: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeColor(cfg.useColor(w)),
		encode.EncodeCompact(cfg.Compact),
	}
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

type InsertConfig struct {
	*MainConfig
	Insert *cli.Command
}

type DeleteConfig struct {
	*MainConfig
	Delete *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
