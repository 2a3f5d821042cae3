package parse

import (
	"errors"
	"fmt"

	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

var ErrParse = errors.New("parse error")

// ParseError reports a structural violation at a source position.
type ParseError struct {
	Pos      token.Pos
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s %s", ErrParse, e.Expected, e.Got, e.Pos.String())
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func unexpected(t *token.Token, expected string) error {
	return &ParseError{Pos: *t.Pos, Expected: expected, Got: describe(t)}
}

func describe(t *token.Token) string {
	if t.Type == token.TEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(t.Bytes))
}
