package jsonc

import (
	"errors"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/encode"
	"github.com/xtracto/jsonc-format/go-jsonc/parse"
	"github.com/xtracto/jsonc-format/go-jsonc/path"
)

func mustParse(t *testing.T, in string) *cst.Node {
	t.Helper()
	n, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	return n
}

func mustPath(t *testing.T, s string) path.Path {
	t.Helper()
	p, err := path.Parse(s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return p
}

type setTest struct {
	in   string
	path string
	v    any
	out  string
}

func TestSet(t *testing.T) {
	tts := []setTest{
		{
			// replace keeps surrounding spacing and comments
			in:   `{"a": 1, "b": 2 /* keep */}`,
			path: "a",
			v:    9,
			out:  `{"a": 9, "b": 2 /* keep */}`,
		},
		{
			in:   `{"a": 1, "b": 2 /* keep */}`,
			path: "b",
			v:    "x",
			out:  `{"a": 1, "b": "x" /* keep */}`,
		},
		{
			// deep set on an empty document synthesizes containers
			in:   `{}`,
			path: "x.y",
			v:    5,
			out:  "{\n    \"x\": {\n        \"y\": 5\n    }\n}",
		},
		{
			// new key appends after the last member
			in:   "{\n  \"a\": 1\n}",
			path: "b",
			v:    2,
			out:  "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			// a tolerated trailing comma is reused as the separator
			in:   "{\n  \"a\": 1,\n}",
			path: "b",
			v:    2,
			out:  "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			// appending into an empty object keeps its interior comment
			in:   "{ /* empty */ }",
			path: "a",
			v:    1,
			out:  "{ /* empty */ \n    \"a\": 1\n}",
		},
		{
			in:   `[1, 2 /* x */, 3]`,
			path: "[1]",
			v:    9,
			out:  `[1, 9 /* x */, 3]`,
		},
		{
			// nested replacement uses the document's own indent unit
			in:   "{\n\t\"a\": {\n\t\t\"b\": 1\n\t}\n}",
			path: "a.c",
			v:    2,
			out:  "{\n\t\"a\": {\n\t\t\"b\": 1,\n\t\t\"c\": 2\n\t}\n}",
		},
		{
			// replacing a scalar with a container synthesizes at depth
			in:   "{\n  \"a\": 1\n}",
			path: "a",
			v:    map[string]any{"b": 2},
			out:  "{\n  \"a\": {\n    \"b\": 2\n  }\n}",
		},
	}
	for _, tt := range tts {
		root := mustParse(t, tt.in)
		err := Set(root, mustPath(t, tt.path), tt.v)
		if err != nil {
			t.Errorf("set %s on %q: %v", tt.path, tt.in, err)
			continue
		}
		if got := encode.MustString(root); got != tt.out {
			t.Errorf("set %s on %q:\ngot  %q\nwant %q", tt.path, tt.in, got, tt.out)
		}
	}
}

func TestSetRoot(t *testing.T) {
	root := mustParse(t, "// hdr\n{\"a\": 1} \n")
	if err := Set(root, nil, []any{1}); err != nil {
		t.Fatal(err)
	}
	want := "// hdr\n[\n    1\n] \n"
	if got := encode.MustString(root); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetErrs(t *testing.T) {
	root := mustParse(t, `{"a": 1, "l": [1, 2, 3]}`)
	before := encode.MustString(root)

	err := Set(root, mustPath(t, "l[5]"), 9)
	if !errors.Is(err, ErrIndex) {
		t.Errorf("got %v, want ErrIndex", err)
	}
	err = Set(root, mustPath(t, "a.b"), 2)
	if !errors.Is(err, ErrPathType) {
		t.Errorf("got %v, want ErrPathType", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) || pe.Step != 1 {
		t.Errorf("bad step in %v", err)
	}
	err = Set(root, mustPath(t, "l.k"), 2)
	if !errors.Is(err, ErrPathType) {
		t.Errorf("got %v, want ErrPathType", err)
	}

	// indexes are never padded, even under a missing key where the
	// container would be freshly synthesized
	err = Set(root, mustPath(t, "missing[0]"), true)
	if !errors.Is(err, ErrIndex) {
		t.Errorf("got %v, want ErrIndex", err)
	}
	err = Set(root, mustPath(t, "missing.deep[2].x"), true)
	if !errors.Is(err, ErrIndex) {
		t.Errorf("got %v, want ErrIndex", err)
	}

	// every failed mutation above must leave the document untouched
	if got := encode.MustString(root); got != before {
		t.Errorf("document changed by failed set:\n%q\n%q", got, before)
	}
}

func TestSetUnsupportedValue(t *testing.T) {
	root := mustParse(t, `{"a": 1}`)
	before := encode.MustString(root)
	if err := Set(root, mustPath(t, "a"), make(chan int)); err == nil {
		t.Error("expected construction error")
	}
	// a bad value under a missing path must not leave the synthesized
	// containers behind
	if err := Set(root, mustPath(t, "x.y"), make(chan int)); err == nil {
		t.Error("expected construction error")
	}
	if got := encode.MustString(root); got != before {
		t.Errorf("document changed by failed set:\n%q\n%q", got, before)
	}
}

// every byte outside the edited span must survive a set untouched
func TestSetLocalized(t *testing.T) {
	in := "{\n" +
		"  // appearance\n" +
		"  \"theme\": \"dark\", /* inline */\n" +
		"  \"font\": {\n" +
		"    \"family\": \"monospace\",\n" +
		"    \"size\": 12\n" +
		"  },\n" +
		"  \"bars\": [1, 2, 3] // trailing\n" +
		"}\n"
	root := mustParse(t, in)
	if err := Set(root, mustPath(t, "font.size"), 14); err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(root)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(in, out, false)
	first, last := -1, -1
	for i, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		t.Fatal("set changed nothing")
	}
	for i := first; i <= last; i++ {
		if diffs[i].Type == diffmatchpatch.DiffEqual && len(diffs[i].Text) > 1 {
			t.Fatalf("edit is not contiguous:\n%s", dmp.DiffPrettyText(diffs))
		}
	}
}

func TestGet(t *testing.T) {
	root := mustParse(t, `{"a": {"b": [10, 20]}}`)

	n, err := Get(root, mustPath(t, "a.b[1]"))
	if err != nil || n == nil || n.Value != int64(20) {
		t.Errorf("got %v, %v", n, err)
	}
	n, err = Get(root, nil)
	if err != nil || n != root {
		t.Errorf("empty path: got %v, %v", n, err)
	}
	n, err = Get(root, mustPath(t, "a.nope.x"))
	if err != nil || n != nil {
		t.Errorf("absent key: got %v, %v", n, err)
	}
	_, err = Get(root, mustPath(t, "a.b[9]"))
	if !errors.Is(err, ErrIndex) {
		t.Errorf("got %v, want ErrIndex", err)
	}
	_, err = Get(root, mustPath(t, "a.b.k"))
	if !errors.Is(err, ErrPathType) {
		t.Errorf("got %v, want ErrPathType", err)
	}
}

type deleteTest struct {
	in   string
	path string
	out  string
}

func TestDelete(t *testing.T) {
	tts := []deleteTest{
		{
			// removing the last member repairs the separator
			in:   "{\n  \"a\": 1,\n  \"b\": 2\n}",
			path: "b",
			out:  "{\n  \"a\": 1\n}",
		},
		{
			in:   "{\n  \"a\": 1,\n  \"b\": 2\n}",
			path: "a",
			out:  "{\n  \"b\": 2\n}",
		},
		{
			in:   "{\n  \"a\": 1\n}",
			path: "a",
			out:  "{\n}",
		},
		{
			// deleting an absent key is a no-op
			in:   `{"a": 1}`,
			path: "b",
			out:  `{"a": 1}`,
		},
		{
			in:   `[1, 2]`,
			path: "[1]",
			out:  `[1]`,
		},
		{
			in:   `[1, 2, 3]`,
			path: "[0]",
			out:  `[ 2, 3]`,
		},
	}
	for _, tt := range tts {
		root := mustParse(t, tt.in)
		if err := Delete(root, mustPath(t, tt.path)); err != nil {
			t.Errorf("del %s on %q: %v", tt.path, tt.in, err)
			continue
		}
		if got := encode.MustString(root); got != tt.out {
			t.Errorf("del %s on %q:\ngot  %q\nwant %q", tt.path, tt.in, got, tt.out)
		}
	}
}

func TestDeleteErrs(t *testing.T) {
	root := mustParse(t, `{"a": [1]}`)
	if err := Delete(root, nil); !errors.Is(err, ErrPathType) {
		t.Errorf("root delete: got %v", err)
	}
	if err := Delete(root, mustPath(t, "a[4]")); !errors.Is(err, ErrIndex) {
		t.Errorf("got %v, want ErrIndex", err)
	}
}
