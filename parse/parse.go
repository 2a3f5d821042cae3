// Package parse builds JSONC concrete syntax trees.
//
// Parsing is all or nothing: either the whole document is well formed
// and one root node comes back, or a position-tagged error does and no
// partial tree is returned.
package parse

import (
	"errors"
	"math"
	"strconv"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/debug"
	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

func Parse(d []byte, opts ...ParseOption) (*cst.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes, %d tokens\n", len(d), len(toks))
	}
	pi := 0
	lead := trivia(toks, &pi)
	if toks[pi].Type == token.TEOF {
		return nil, unexpected(&toks[pi], "a value")
	}
	root, err := parseValue(toks, &pi, pOpts)
	if err != nil {
		return nil, err
	}
	root.Leading = append(lead, root.Leading...)
	root.Trailing = append(root.Trailing, trivia(toks, &pi)...)
	if toks[pi].Type != token.TEOF {
		return nil, unexpected(&toks[pi], "end of input")
	}
	return root, nil
}

// ParseString is Parse on a string input.
func ParseString(s string, opts ...ParseOption) (*cst.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *cst.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// trivia consumes the run of whitespace and comment tokens at the
// cursor. The result is capacity-clipped so that later appends to a
// node's trivia never scribble over the shared token backing array.
func trivia(toks []token.Token, pi *int) []token.Token {
	start := *pi
	for toks[*pi].Type.Trivia() {
		*pi++
	}
	if *pi == start {
		return nil
	}
	return toks[start:*pi:*pi]
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*cst.Node, error) {
	lead := trivia(toks, pi)
	t := &toks[*pi]
	var node *cst.Node
	var err error
	switch t.Type {
	case token.TLCurl:
		*pi++
		node, err = parseObject(toks, pi, opts)
	case token.TLSquare:
		*pi++
		node, err = parseArray(toks, pi, opts)
	case token.TString:
		s, uerr := token.Unquote(t.Bytes)
		if uerr != nil {
			return nil, &ParseError{Pos: *t.Pos, Expected: "a valid string literal", Got: describe(t)}
		}
		node = cst.Scalar(s, t.Bytes)
		*pi++
	case token.TNumber:
		v, derr := decodeNumber(t.Bytes)
		if derr != nil {
			return nil, &ParseError{Pos: *t.Pos, Expected: "a representable number", Got: describe(t)}
		}
		node = cst.Scalar(v, t.Bytes)
		*pi++
	case token.TTrue:
		node = cst.Scalar(true, t.Bytes)
		*pi++
	case token.TFalse:
		node = cst.Scalar(false, t.Bytes)
		*pi++
	case token.TNull:
		node = cst.Scalar(nil, t.Bytes)
		*pi++
	default:
		return nil, unexpected(t, "a value")
	}
	if err != nil {
		return nil, err
	}
	node.Leading = append(lead, node.Leading...)
	trackPos(node, t.Pos, opts)
	return node, nil
}

// parseObject is entered with the '{' already consumed. Trivia between
// a key and its ':' stays on the key's trailing list; trivia between a
// trailing separator and '}' lands in the object's Close slot. Both
// placements keep print order identical to source order.
func parseObject(toks []token.Token, pi *int, opts *parseOpts) (*cst.Node, error) {
	obj := cst.Object()
	for {
		triv := trivia(toks, pi)
		t := &toks[*pi]
		switch t.Type {
		case token.TRCurl:
			*pi++
			obj.Close = triv
			return obj, nil
		case token.TEOF:
			return nil, unexpected(t, "'}'")
		case token.TString:
		default:
			return nil, unexpected(t, "an object key")
		}
		kstr, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, &ParseError{Pos: *t.Pos, Expected: "a valid object key", Got: describe(t)}
		}
		key := cst.Key(kstr, t.Bytes)
		key.Leading = triv
		trackPos(key, t.Pos, opts)
		*pi++
		key.Trailing = trivia(toks, pi)
		if toks[*pi].Type != token.TColon {
			return nil, unexpected(&toks[*pi], "':'")
		}
		*pi++
		val, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		val.Trailing = trivia(toks, pi)
		var comma *token.Token
		if toks[*pi].Type == token.TComma {
			comma = &toks[*pi]
			*pi++
		}
		obj.Members = append(obj.Members, cst.Member{Key: key, Value: val, Comma: comma})
	}
}

// parseArray is entered with the '[' already consumed.
func parseArray(toks []token.Token, pi *int, opts *parseOpts) (*cst.Node, error) {
	arr := cst.Array()
	for {
		triv := trivia(toks, pi)
		t := &toks[*pi]
		switch t.Type {
		case token.TRSquare:
			*pi++
			arr.Close = triv
			return arr, nil
		case token.TEOF:
			return nil, unexpected(t, "']'")
		}
		val, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		val.Leading = append(triv, val.Leading...)
		val.Trailing = trivia(toks, pi)
		var comma *token.Token
		if toks[*pi].Type == token.TComma {
			comma = &toks[*pi]
			*pi++
		}
		arr.Elems = append(arr.Elems, cst.Element{Value: val, Comma: comma})
	}
}

// decodeNumber rejects literals that only exist as infinities in
// float64, since those cannot survive the native bridge. Underflow
// clamps to zero, which can.
func decodeNumber(raw []byte) (any, error) {
	if i, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	if math.IsInf(f, 0) {
		return nil, errors.New("number out of range")
	}
	return f, nil
}
