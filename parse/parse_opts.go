package parse

import (
	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

type parseOpts struct {
	positions map[*cst.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// Positions records the source position of each significant node's
// first token into m as the tree is built. Useful for callers that
// report diagnostics against the original text.
func Positions(m map[*cst.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
