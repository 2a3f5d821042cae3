package jsonc

import (
	"strings"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/debug"
	"github.com/xtracto/jsonc-format/go-jsonc/path"
	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

// Set replaces or inserts the value at p, leaving every byte outside
// the edited span untouched when the tree is printed again.
//
// Replacing an existing value keeps the old node's leading and
// trailing trivia, so surrounding comments and spacing survive. A
// missing object key is appended after the last member, with a
// separator inserted on the former last member when it lacked one and
// fresh indentation built from the document's inferred indent unit.
// Missing intermediate steps synthesize empty objects. Array indexes
// must be in bounds: the mutator never pads arrays, so an index step
// can never land in freshly synthesized structure. The empty path
// replaces the root value in place. A failing call leaves the
// document untouched.
func Set(root *cst.Node, p path.Path, value any) error {
	if debug.Set() {
		debug.Logf("set %q\n", p.String())
	}
	indent := cst.InferIndent(root)
	if len(p) == 0 {
		n, err := cst.FromNative(value, indent, 0)
		if err != nil {
			return err
		}
		n.Leading, n.Trailing = root.Leading, root.Trailing
		*root = *n
		return nil
	}
	cur := root
	for i := range p {
		step := p[i]
		last := i == len(p)-1
		switch cur.Kind {
		case cst.ObjectKind:
			if step.Field == nil {
				return pathTypeErr(p, i, "object step requires a key")
			}
			val, idx := cur.Field(*step.Field)
			if idx < 0 {
				return insertAt(cur, p, i, value, indent)
			}
			if !last {
				cur = val
				continue
			}
			n, err := cst.FromNative(value, indent, i+1)
			if err != nil {
				return err
			}
			n.Leading, n.Trailing = val.Leading, val.Trailing
			cur.Members[idx].Value = n
			return nil

		case cst.ArrayKind:
			if step.Index == nil {
				return pathTypeErr(p, i, "array step requires an index")
			}
			idx := *step.Index
			if idx < 0 || idx >= len(cur.Elems) {
				return indexErr(p, i, idx, len(cur.Elems))
			}
			val := cur.Elems[idx].Value
			if !last {
				cur = val
				continue
			}
			n, err := cst.FromNative(value, indent, i+1)
			if err != nil {
				return err
			}
			n.Leading, n.Trailing = val.Leading, val.Trailing
			cur.Elems[idx].Value = n
			return nil

		default:
			return pathTypeErr(p, i, "cannot descend into a scalar")
		}
	}
	return nil
}

// insertAt builds the members for p[i:] under obj, whose object lacks
// the key at step i. Everything that can fail is checked before the
// first structural change, so an error never leaves synthesized
// residue in the tree.
func insertAt(obj *cst.Node, p path.Path, i int, value any, indent string) error {
	for j := i; j < len(p); j++ {
		if p[j].Field == nil {
			// a fresh container is empty and indexes are never padded
			return indexErr(p, j, *p[j].Index, 0)
		}
	}
	leaf, err := cst.FromNative(value, indent, len(p))
	if err != nil {
		return err
	}
	cur := obj
	for j := i; j < len(p)-1; j++ {
		n := cst.Object()
		if err := appendMember(cur, *p[j].Field, n, indent, j); err != nil {
			return err
		}
		cur = n
	}
	return appendMember(cur, *p[len(p)-1].Field, leaf, indent, len(p)-1)
}

// appendMember appends a synthesized (key, value) member at nesting
// depth. The closing-bracket alignment whitespace migrates from the
// former last member (or the Close slot) onto the new value so the
// bracket stays put.
func appendMember(obj *cst.Node, name string, val *cst.Node, indent string, depth int) error {
	key, err := cst.NativeKey(name)
	if err != nil {
		return err
	}
	childWs := cst.Ws("\n" + strings.Repeat(indent, depth+1))
	val.Leading = append([]token.Token{cst.Ws(" ")}, val.Leading...)
	if len(obj.Members) == 0 {
		// interior trivia of a formerly empty container becomes the
		// first key's leading trivia
		key.Leading = append(obj.Close, childWs)
		obj.Close = nil
		val.Trailing = append(val.Trailing, cst.Ws("\n"+strings.Repeat(indent, depth)))
		obj.Members = append(obj.Members, cst.Member{Key: key, Value: val})
		return nil
	}
	lastM := &obj.Members[len(obj.Members)-1]
	if lastM.Comma == nil {
		lastM.Comma = cst.CommaToken()
	}
	if len(obj.Close) > 0 {
		val.Trailing = append(val.Trailing, obj.Close...)
		obj.Close = nil
	} else {
		val.Trailing = append(val.Trailing, lastM.Value.Trailing...)
		lastM.Value.Trailing = nil
	}
	key.Leading = []token.Token{childWs}
	obj.Members = append(obj.Members, cst.Member{Key: key, Value: val})
	return nil
}

// Get returns the node at p, nil when an object key along the way does
// not exist, and an error when the path is incompatible with the tree.
func Get(root *cst.Node, p path.Path) (*cst.Node, error) {
	cur := root
	for i := range p {
		step := p[i]
		switch cur.Kind {
		case cst.ObjectKind:
			if step.Field == nil {
				return nil, pathTypeErr(p, i, "object step requires a key")
			}
			val, idx := cur.Field(*step.Field)
			if idx < 0 {
				return nil, nil
			}
			cur = val
		case cst.ArrayKind:
			if step.Index == nil {
				return nil, pathTypeErr(p, i, "array step requires an index")
			}
			idx := *step.Index
			if idx < 0 || idx >= len(cur.Elems) {
				return nil, indexErr(p, i, idx, len(cur.Elems))
			}
			cur = cur.Elems[idx].Value
		default:
			return nil, pathTypeErr(p, i, "cannot descend into a scalar")
		}
	}
	return cur, nil
}

// Delete removes the member or element at p. Deleting an object key
// that does not exist is a no-op; this is what RFC 7386 null handling
// needs. The separator invariant is repaired: removing the last member
// also removes the separator of the member before it.
func Delete(root *cst.Node, p path.Path) error {
	if len(p) == 0 {
		return pathTypeErr(p, 0, "cannot delete the root")
	}
	parent, err := Get(root, p[:len(p)-1])
	if err != nil {
		return err
	}
	if parent == nil {
		return nil
	}
	step := p[len(p)-1]
	si := len(p) - 1
	switch parent.Kind {
	case cst.ObjectKind:
		if step.Field == nil {
			return pathTypeErr(p, si, "object step requires a key")
		}
		_, idx := parent.Field(*step.Field)
		if idx < 0 {
			return nil
		}
		removed := parent.Members[idx]
		parent.Members = append(parent.Members[:idx], parent.Members[idx+1:]...)
		if idx == len(parent.Members) {
			// removed the last member: repair the separator and keep
			// the closing bracket aligned
			if idx > 0 {
				newLast := &parent.Members[idx-1]
				newLast.Comma = nil
				newLast.Value.Trailing = append(newLast.Value.Trailing, removed.Value.Trailing...)
			} else {
				parent.Close = append(parent.Close, removed.Value.Trailing...)
			}
		}
		return nil
	case cst.ArrayKind:
		if step.Index == nil {
			return pathTypeErr(p, si, "array step requires an index")
		}
		idx := *step.Index
		if idx < 0 || idx >= len(parent.Elems) {
			return indexErr(p, si, idx, len(parent.Elems))
		}
		removed := parent.Elems[idx]
		parent.Elems = append(parent.Elems[:idx], parent.Elems[idx+1:]...)
		if idx == len(parent.Elems) {
			if idx > 0 {
				newLast := &parent.Elems[idx-1]
				newLast.Comma = nil
				newLast.Value.Trailing = append(newLast.Value.Trailing, removed.Value.Trailing...)
			} else {
				parent.Close = append(parent.Close, removed.Value.Trailing...)
			}
		}
		return nil
	default:
		return pathTypeErr(p, si, "cannot delete from a scalar")
	}
}
