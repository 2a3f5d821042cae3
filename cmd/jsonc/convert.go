package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.YAML && cfg.JSON {
		return fmt.Errorf("%w: at most one of -y -j", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		_, root, err := loadDoc(arg)
		if err != nil {
			return err
		}
		v := cst.ToNative(root)
		if cfg.JSON {
			buf := bytes.NewBuffer(nil)
			enc := json.NewEncoder(buf)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return err
			}
			fmt.Fprint(cc.Out, buf.String())
			continue
		}
		// ordered maps marshal through their JSON marshaler, which
		// keeps document key order in the YAML output
		d, err := yaml.MarshalWithOptions(v, yaml.UseJSONMarshaler())
		if err != nil {
			return err
		}
		fmt.Fprint(cc.Out, string(d))
	}
	return nil
}
