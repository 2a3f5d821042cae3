// Package encode prints JSONC concrete syntax trees.
//
// Encoding an unmodified tree reproduces the parsed input byte for
// byte; there is no normalization and no re-indentation. The only
// failure mode is a structurally inconsistent tree, which indicates a
// bug in whoever built it rather than a caller error.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

var errInternal = errors.New("inconsistent syntax tree")

func Encode(n *cst.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w}
	for _, o := range opts {
		o(es)
	}
	return es.encode(n)
}

// String encodes to a string. With no options the result is the exact
// source text the tree was parsed from, plus any localized edits.
func String(n *cst.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(n *cst.Node, opts ...EncodeOption) string {
	s, err := String(n, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type EncState struct {
	w     io.Writer
	Color *Colors
	err   error
}

func (es *EncState) encode(n *cst.Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", errInternal)
	}
	es.trivia(n.Leading)
	switch n.Kind {
	case cst.ScalarKind:
		if len(n.Raw) == 0 {
			return fmt.Errorf("%w: scalar without raw text", errInternal)
		}
		es.paint(scalarAttr(n.Value), n.Raw)
	case cst.KeyKind:
		if len(n.Raw) == 0 {
			return fmt.Errorf("%w: key without raw text", errInternal)
		}
		es.paint(FieldColor, n.Raw)
	case cst.ObjectKind:
		es.punct("{")
		for i := range n.Members {
			m := &n.Members[i]
			if err := es.encode(m.Key); err != nil {
				return err
			}
			es.punct(":")
			if err := es.encode(m.Value); err != nil {
				return err
			}
			if m.Comma != nil {
				es.punct(",")
			}
		}
		es.trivia(n.Close)
		es.punct("}")
	case cst.ArrayKind:
		es.punct("[")
		for i := range n.Elems {
			e := &n.Elems[i]
			if err := es.encode(e.Value); err != nil {
				return err
			}
			if e.Comma != nil {
				es.punct(",")
			}
		}
		es.trivia(n.Close)
		es.punct("]")
	default:
		return fmt.Errorf("%w: unknown kind %d", errInternal, n.Kind)
	}
	es.trivia(n.Trailing)
	return es.err
}

func (es *EncState) trivia(toks []token.Token) {
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TLineComment, token.TBlockComment:
			es.paint(CommentColor, t.Bytes)
		default:
			es.write(t.Bytes)
		}
	}
}

func (es *EncState) punct(s string) {
	es.paint(PunctColor, []byte(s))
}

func (es *EncState) paint(attr ColorAttr, d []byte) {
	if es.Color == nil {
		es.write(d)
		return
	}
	es.writeString(es.Color.Paint(attr, string(d)))
}

func (es *EncState) write(d []byte) {
	if es.err != nil {
		return
	}
	_, es.err = es.w.Write(d)
}

func (es *EncState) writeString(s string) {
	es.write([]byte(s))
}

func scalarAttr(v any) ColorAttr {
	switch v.(type) {
	case string:
		return StringColor
	case int64, float64:
		return NumberColor
	default:
		return LiteralColor
	}
}
