package cst_test

import (
	"testing"

	"github.com/xtracto/jsonc-format/go-jsonc/cst"
	"github.com/xtracto/jsonc-format/go-jsonc/parse"
)

type indentTest struct {
	in   string
	unit string
}

func TestInferIndent(t *testing.T) {
	tts := []indentTest{
		{
			in:   "{\n  \"a\": 1\n}",
			unit: "  ",
		},
		{
			in:   "{\n\t\"a\": {\n\t\t\"b\": 1\n\t},\n\t\"c\": 2\n}",
			unit: "\t",
		},
		{
			// deeper levels repeat the unit; the unit itself still wins
			in:   "{\n    \"a\": {\n        \"b\": 1,\n        \"c\": 2\n    }\n}",
			unit: "    ",
		},
		{
			// single line, nothing to infer
			in:   `{"a": 1}`,
			unit: cst.DefaultIndent,
		},
		{
			in:   `[1, 2, 3]`,
			unit: cst.DefaultIndent,
		},
		{
			// tie resolves to the candidate seen first
			in:   "{\n   \"a\": 1,\n \"b\": 2\n}",
			unit: "   ",
		},
	}
	for _, tt := range tts {
		root, err := parse.ParseString(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got := cst.InferIndent(root); got != tt.unit {
			t.Errorf("%q: inferred %q, want %q", tt.in, got, tt.unit)
		}
	}
}
