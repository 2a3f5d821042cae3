package token

import (
	"fmt"
)

type TokenType int

const (
	TWhitespace TokenType = iota
	TLineComment
	TBlockComment
	TString
	TNumber
	TTrue
	TFalse
	TNull
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWhitespace:   "TWhitespace",
		TLineComment:  "TLineComment",
		TBlockComment: "TBlockComment",
		TString:       "TString",
		TNumber:       "TNumber",
		TTrue:         "TTrue",
		TFalse:        "TFalse",
		TNull:         "TNull",
		TLCurl:        "TLCurl",
		TRCurl:        "TRCurl",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TColon:        "TColon",
		TComma:        "TComma",
		TEOF:          "TEOF",
	}[t]
}

// Trivia reports whether tokens of this type carry no semantic content
// and exist only so documents re-print byte-identical.
func (t TokenType) Trivia() bool {
	switch t {
	case TWhitespace, TLineComment, TBlockComment:
		return true
	}
	return false
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(t.Bytes)
		if err != nil {
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}

type LexError struct {
	Err error
	Pos Pos
}

func NewLexError(e error, p *Pos) *LexError {
	return &LexError{Err: e, Pos: *p}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewLexError(fmt.Errorf("unexpected %s", what), p)
}

func UnterminatedErr(what string, p *Pos) error {
	return NewLexError(fmt.Errorf("unterminated %s", what), p)
}
