// Package cst provides the concrete syntax tree for JSONC documents.
//
// Unlike a conventional parse tree, a cst.Node retains every whitespace
// and comment token of the source document as trivia attached to the
// node it precedes or follows. Printing an unmodified tree reproduces
// the input byte for byte; mutating one node perturbs only the bytes of
// that node and its synthesized separators.
package cst

import (
	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

type Kind int

const (
	ScalarKind Kind = iota
	ObjectKind
	ArrayKind
	KeyKind
)

func (k Kind) String() string {
	return map[Kind]string{
		ScalarKind: "scalar",
		ObjectKind: "object",
		ArrayKind:  "array",
		KeyKind:    "key",
	}[k]
}

// Node is one node of the concrete syntax tree. The kind set is closed;
// the printer and the mutator switch exhaustively over it.
//
// Every node owns exactly two trivia sequences: Leading holds the
// non-significant tokens since the previous significant token, Trailing
// the ones up to the next significant token. Trivia never crosses a
// container boundary; what sits between a trailing separator (or an
// empty container's opening bracket) and the closing bracket lives in
// the container's Close slot.
type Node struct {
	Kind     Kind
	Leading  []token.Token
	Trailing []token.Token

	// ScalarKind, KeyKind. Raw is the exact source literal (or the
	// canonical encoding for synthesized nodes); Value is the decoded
	// native value: string, int64, float64, bool or nil.
	Raw   []byte
	Value any

	// ObjectKind
	Members []Member
	// ArrayKind
	Elems []Element

	// ObjectKind, ArrayKind: trivia between the last separator (or the
	// opening bracket, for empty containers) and the closing bracket.
	Close []token.Token
}

// Member is one (key, value, separator) triple of an object. Comma is
// nil iff the member was not followed by a separator in the source.
// Member order is source order and is never rearranged by edits.
type Member struct {
	Key   *Node
	Value *Node
	Comma *token.Token
}

// Element is one (value, separator) pair of an array.
type Element struct {
	Value *Node
	Comma *token.Token
}

// Scalar builds a scalar node from a decoded value and its raw literal.
func Scalar(v any, raw []byte) *Node {
	return &Node{Kind: ScalarKind, Value: v, Raw: raw}
}

// Key builds a key node from a decoded key and its raw literal.
func Key(v string, raw []byte) *Node {
	return &Node{Kind: KeyKind, Value: v, Raw: raw}
}

func Object() *Node {
	return &Node{Kind: ObjectKind}
}

func Array() *Node {
	return &Node{Kind: ArrayKind}
}

// Field returns the value node for field and its member index, or
// (nil, -1) when the object has no such field.
func (n *Node) Field(field string) (*Node, int) {
	if n.Kind != ObjectKind {
		return nil, -1
	}
	for i := range n.Members {
		if n.Members[i].Key.Value == field {
			return n.Members[i].Value, i
		}
	}
	return nil, -1
}

// Visit walks the tree in document order, calling f once per node
// before descending and once after (isPost). Returning dive=false on
// the pre visit skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch n.Kind {
		case ObjectKind:
			for i := range n.Members {
				if err := n.Members[i].Key.Visit(f); err != nil {
					return err
				}
				if err := n.Members[i].Value.Visit(f); err != nil {
					return err
				}
			}
		case ArrayKind:
			for i := range n.Elems {
				if err := n.Elems[i].Value.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Ws builds a synthesized whitespace trivia token.
func Ws(s string) token.Token {
	return token.Token{Type: token.TWhitespace, Bytes: []byte(s)}
}

// CommaToken builds a synthesized separator token.
func CommaToken() *token.Token {
	t := token.Token{Type: token.TComma, Bytes: []byte{','}}
	return &t
}
