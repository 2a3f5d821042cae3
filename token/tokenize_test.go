package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	in    string
	types []TokenType
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:    ``,
			types: []TokenType{TEOF},
		},
		{
			in:    `null`,
			types: []TokenType{TNull, TEOF},
		},
		{
			in:    `true`,
			types: []TokenType{TTrue, TEOF},
		},
		{
			in:    `false`,
			types: []TokenType{TFalse, TEOF},
		},
		{
			in:    `42`,
			types: []TokenType{TNumber, TEOF},
		},
		{
			in:    `-0.5e+10`,
			types: []TokenType{TNumber, TEOF},
		},
		{
			in:    `"hi\n"`,
			types: []TokenType{TString, TEOF},
		},
		{
			in:    `{}`,
			types: []TokenType{TLCurl, TRCurl, TEOF},
		},
		{
			in:    `[1, 2]`,
			types: []TokenType{TLSquare, TNumber, TComma, TWhitespace, TNumber, TRSquare, TEOF},
		},
		{
			in:    "// note\n{}",
			types: []TokenType{TLineComment, TWhitespace, TLCurl, TRCurl, TEOF},
		},
		{
			in:    "{/* a\nb */}",
			types: []TokenType{TLCurl, TBlockComment, TRCurl, TEOF},
		},
		{
			in:    "\t {\"k\" : 7}\n",
			types: []TokenType{TWhitespace, TLCurl, TString, TWhitespace, TColon, TWhitespace, TNumber, TRCurl, TWhitespace, TEOF},
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.types[i] {
				t.Errorf("%q: token %d is %s, want %s", tt.in, i, toks[i].Type, tt.types[i])
			}
		}
	}
}

// every byte of the input must land in exactly one token
func TestTokenizeCoversInput(t *testing.T) {
	for _, in := range []string{
		"",
		"null",
		`{"a": 1, // x` + "\n" + ` "b": [true, null]} `,
		"/* c */ [1.5e2, -7]\r\n",
	} {
		toks, err := Tokenize(nil, []byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		off := 0
		for _, tok := range toks {
			if tok.Type == TEOF {
				continue
			}
			if tok.Pos.I != off {
				t.Errorf("%q: token %s starts at %d, want %d", in, tok.Type, tok.Pos.I, off)
			}
			off += len(tok.Bytes)
		}
		if off != len(in) {
			t.Errorf("%q: tokens cover %d bytes, want %d", in, off, len(in))
		}
		last := toks[len(toks)-1]
		if last.Type != TEOF || last.Pos.I != len(in) {
			t.Errorf("%q: missing TEOF marker at end", in)
		}
	}
}

type tokenizeErrTest struct {
	in  string
	off int
}

func TestTokenizeErrs(t *testing.T) {
	tts := []tokenizeErrTest{
		{in: `@`, off: 0},
		{in: `{"a": #}`, off: 6},
		{in: `"unterminated`, off: 0},
		{in: `/* open`, off: 0},
		{in: `[1, -]`, off: 4},
		{in: `truthy`, off: 4},
	}
	for _, tt := range tts {
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("%q: error %v is not a LexError", tt.in, err)
			continue
		}
		if le.Pos.I != tt.off {
			t.Errorf("%q: error at offset %d, want %d", tt.in, le.Pos.I, tt.off)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	in := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var b *Token
	for i := range toks {
		if toks[i].Type == TString && string(toks[i].Bytes) == `"b"` {
			b = &toks[i]
		}
	}
	if b == nil {
		t.Fatal("no \"b\" token")
	}
	line, col := b.Pos.LineCol()
	if line != 2 || col != 2 {
		t.Errorf("\"b\" at line=%d col=%d, want line=2 col=2", line, col)
	}
}
