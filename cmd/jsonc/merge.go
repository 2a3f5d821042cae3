package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	jsonc "github.com/xtracto/jsonc-format/go-jsonc"
	"github.com/xtracto/jsonc-format/go-jsonc/cst"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a patch and a file", cli.ErrUsage)
	}
	patch := []byte(args[0])
	if cfg.File {
		patch, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	return rewrite(cfg.MainConfig, cc, args[1], cfg.DryRun, func(root *cst.Node) error {
		return jsonc.ApplyMergePatch(root, patch)
	})
}
