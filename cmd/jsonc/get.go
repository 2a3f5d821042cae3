package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	jsonc "github.com/xtracto/jsonc-format/go-jsonc"
	"github.com/xtracto/jsonc-format/go-jsonc/encode"
	"github.com/xtracto/jsonc-format/go-jsonc/path"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an object path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		_, root, err := loadDoc(arg)
		if err != nil {
			return err
		}
		node, err := jsonc.Get(root, p)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", p.String(), arg, err)
		}
		if node == nil {
			// absent paths print nothing and don't yell either
			continue
		}
		s, err := encode.String(node, cfg.encOpts(cc.Out)...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, strings.TrimSpace(s))
	}
	return nil
}
