package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	jsonc "github.com/xtracto/jsonc-format/go-jsonc"
	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/encode"
	"github.com/xtracto/jsonc-format/go-jsonc/path"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a path, a value and a file", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	var v any
	if cfg.String {
		v = args[1]
	} else {
		v, err = jsonc.DecodeNative([]byte(args[1]))
		if err != nil {
			return fmt.Errorf("%w: value %q is not JSON (use -s for raw strings): %v",
				cli.ErrUsage, args[1], err)
		}
	}
	return rewrite(cfg.MainConfig, cc, args[2], cfg.DryRun, func(root *cst.Node) error {
		return jsonc.Set(root, p, v)
	})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: del requires a path and a file", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return rewrite(cfg.MainConfig, cc, args[1], false, func(root *cst.Node) error {
		return jsonc.Delete(root, p)
	})
}

// rewrite runs an edit against the file's tree and writes the result
// back (or to -o / stdout), printing a character diff instead when
// dryRun is set.
func rewrite(cfg *MainConfig, cc *cli.Context, arg string, dryRun bool, edit func(*cst.Node) error) error {
	orig, root, err := loadDoc(arg)
	if err != nil {
		return err
	}
	if err := edit(root); err != nil {
		return err
	}
	out, err := encode.String(root)
	if err != nil {
		return err
	}
	if dryRun {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(orig), out, false)
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	if arg == "-" || cfg.Out != "" {
		_, err = fmt.Fprint(cc.Out, out)
		return err
	}
	st, err := os.Stat(arg)
	if err != nil {
		return err
	}
	return os.WriteFile(arg, []byte(out), st.Mode().Perm())
}
