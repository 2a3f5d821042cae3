package cst

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

// ToNative strips trivia and raw-text metadata, returning plain data:
// *orderedmap.OrderedMap for objects (key order is part of the
// document's meaning), []any for arrays, and the decoded Go scalar
// otherwise.
func ToNative(n *Node) any {
	switch n.Kind {
	case ObjectKind:
		om := orderedmap.New()
		for i := range n.Members {
			m := &n.Members[i]
			om.Set(m.Key.Value.(string), ToNative(m.Value))
		}
		return om
	case ArrayKind:
		res := make([]any, len(n.Elems))
		for i := range n.Elems {
			res[i] = ToNative(n.Elems[i].Value)
		}
		return res
	default:
		return n.Value
	}
}

// FromNative synthesizes a subtree for a native value, building fresh
// indentation trivia as if the value had been written at the given
// nesting depth with the given indent unit. Supported values: nil,
// bool, string, Go integer and float types, json.Number,
// []any, map[string]any (keys sorted), and orderedmap.OrderedMap
// (insertion order kept). Anything else is a construction error.
func FromNative(v any, indent string, depth int) (*Node, error) {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		return objectFromPairs(x.Keys(), func(k string) any {
			val, _ := x.Get(k)
			return val
		}, indent, depth)
	case orderedmap.OrderedMap:
		return FromNative(&x, indent, depth)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return objectFromPairs(keys, func(k string) any { return x[k] }, indent, depth)
	case []any:
		arr := Array()
		for i, ev := range x {
			en, err := FromNative(ev, indent, depth+1)
			if err != nil {
				return nil, err
			}
			en.Leading = append([]token.Token{Ws("\n" + strings.Repeat(indent, depth+1))}, en.Leading...)
			var comma *token.Token
			if i < len(x)-1 {
				comma = CommaToken()
			}
			arr.Elems = append(arr.Elems, Element{Value: en, Comma: comma})
		}
		closeAlign(arr, indent, depth)
		return arr, nil
	default:
		raw, dec, err := scalarRaw(v)
		if err != nil {
			return nil, err
		}
		return Scalar(dec, raw), nil
	}
}

func objectFromPairs(keys []string, get func(string) any, indent string, depth int) (*Node, error) {
	obj := Object()
	for i, k := range keys {
		raw, _, err := scalarRaw(k)
		if err != nil {
			return nil, err
		}
		key := Key(k, raw)
		key.Leading = []token.Token{Ws("\n" + strings.Repeat(indent, depth+1))}
		val, err := FromNative(get(k), indent, depth+1)
		if err != nil {
			return nil, err
		}
		val.Leading = append([]token.Token{Ws(" ")}, val.Leading...)
		var comma *token.Token
		if i < len(keys)-1 {
			comma = CommaToken()
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: val, Comma: comma})
	}
	closeAlign(obj, indent, depth)
	return obj, nil
}

// closeAlign puts the closing bracket of a freshly built container on
// its own line, aligned with the container's depth.
func closeAlign(n *Node, indent string, depth int) {
	nl := Ws("\n" + strings.Repeat(indent, depth))
	switch n.Kind {
	case ObjectKind:
		if len(n.Members) == 0 {
			return
		}
		last := n.Members[len(n.Members)-1].Value
		last.Trailing = append(last.Trailing, nl)
	case ArrayKind:
		if len(n.Elems) == 0 {
			return
		}
		last := n.Elems[len(n.Elems)-1].Value
		last.Trailing = append(last.Trailing, nl)
	}
}

// NativeKey synthesizes a key node with a canonically quoted literal.
func NativeKey(name string) (*Node, error) {
	raw, _, err := scalarRaw(name)
	if err != nil {
		return nil, err
	}
	return Key(name, raw), nil
}

// scalarRaw canonically encodes a native scalar, returning both the
// raw literal and the normalized decoded value stored on the node.
func scalarRaw(v any) ([]byte, any, error) {
	var dec any
	switch x := v.(type) {
	case nil, bool, string, json.Number:
		dec = x
	case int:
		dec = int64(x)
	case int8:
		dec = int64(x)
	case int16:
		dec = int64(x)
	case int32:
		dec = int64(x)
	case int64:
		dec = x
	case uint:
		dec = int64(x)
	case uint8:
		dec = int64(x)
	case uint16:
		dec = int64(x)
	case uint32:
		dec = int64(x)
	case uint64:
		dec = int64(x)
	case float32:
		dec = float64(x)
	case float64:
		if x == float64(int64(x)) {
			dec = int64(x)
		} else {
			dec = x
		}
	default:
		return nil, nil, fmt.Errorf("cannot build a node from %T", v)
	}
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dec); err != nil {
		return nil, nil, err
	}
	raw := bytes.TrimRight(buf.Bytes(), "\n")
	return raw, dec, nil
}
