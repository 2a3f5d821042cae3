package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/encode"
	"github.com/xtracto/jsonc-format/go-jsonc/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// loadDoc reads and parses one document argument, "-" meaning stdin.
func loadDoc(arg string) ([]byte, *cst.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	root, err := parse.Parse(d)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, root, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	DryRun bool `cli:"name=n desc='print a diff of the edit instead of writing'"`
	String bool `cli:"name=s desc='treat the value argument as a raw string'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	YAML bool `cli:"name=y aliases=yaml desc='emit yaml'"`
	JSON bool `cli:"name=j aliases=json desc='emit indented json'"`

	Convert *cli.Command
}

type MergeConfig struct {
	*MainConfig

	DryRun bool `cli:"name=n desc='print a diff of the merge instead of writing'"`
	File   bool `cli:"name=f desc='read the patch argument from a file'"`

	Merge *cli.Command
}
