package main

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/iancoleman/orderedmap"
	"github.com/scott-cotton/cli"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		_, root, err := loadDoc(arg)
		if err != nil {
			return err
		}
		env := map[string]any{"doc": plain(cst.ToNative(root))}
		out, err := expr.Eval(src, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		d, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, string(d))
	}
	return nil
}

// plain lowers ordered maps to map[string]any so expression field
// access works on document objects.
func plain(v any) any {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		m := make(map[string]any, len(x.Keys()))
		for _, k := range x.Keys() {
			kv, _ := x.Get(k)
			m[k] = plain(kv)
		}
		return m
	case orderedmap.OrderedMap:
		return plain(&x)
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = plain(x[i])
		}
		return res
	default:
		return v
	}
}
