package jsonc

import (
	"encoding/json"
	"slices"

	"github.com/iancoleman/orderedmap"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/debug"
	"github.com/xtracto/jsonc-format/go-jsonc/path"
)

// DecodeNative decodes JSON text into the bridge's native value types:
// *orderedmap.OrderedMap for objects, []any for arrays, Go scalars
// otherwise. Key order in the input is preserved at every nesting
// level.
func DecodeNative(d []byte) (any, error) {
	// wrapping keeps ordered decoding for every top-level value kind
	wrapped := append(append([]byte(`{"v":`), d...), '}')
	om := orderedmap.New()
	if err := json.Unmarshal(wrapped, om); err != nil {
		return nil, err
	}
	v, _ := om.Get("v")
	return v, nil
}

// ApplyMergePatch applies an RFC 7386 JSON merge patch to the tree
// through the path mutator, so regions the patch does not mention keep
// their bytes. A null patch member deletes the key; object members
// merge recursively; everything else replaces.
func ApplyMergePatch(root *cst.Node, patch []byte) error {
	v, err := DecodeNative(patch)
	if err != nil {
		return err
	}
	return mergeNative(root, nil, v)
}

func mergeNative(root *cst.Node, at path.Path, v any) error {
	om, ok := asOrderedMap(v)
	if !ok {
		return Set(root, at, v)
	}
	target, err := Get(root, at)
	if err != nil {
		return err
	}
	if target == nil || target.Kind != cst.ObjectKind {
		return Set(root, at, pruneNulls(om))
	}
	for _, k := range om.Keys() {
		pv, _ := om.Get(k)
		kp := append(slices.Clone(at), path.Key(k))
		if pv == nil {
			if debug.Merge() {
				debug.Logf("merge delete %q\n", kp.String())
			}
			if err := Delete(root, kp); err != nil {
				return err
			}
			continue
		}
		if err := mergeNative(root, kp, pv); err != nil {
			return err
		}
	}
	return nil
}

func asOrderedMap(v any) (*orderedmap.OrderedMap, bool) {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		return x, true
	case orderedmap.OrderedMap:
		return &x, true
	}
	return nil, false
}

// pruneNulls deep-copies a patch object, dropping null members: per
// RFC 7386 a null never survives into the result document.
func pruneNulls(om *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	res := orderedmap.New()
	for _, k := range om.Keys() {
		v, _ := om.Get(k)
		if v == nil {
			continue
		}
		if sub, ok := asOrderedMap(v); ok {
			res.Set(k, pruneNulls(sub))
			continue
		}
		res.Set(k, v)
	}
	return res
}
