package token

import (
	"bytes"
	"fmt"
)

// Tokenize appends the token sequence of src to dst and returns it. The
// sequence covers every byte of src exactly once, in order, and is
// terminated by a TEOF marker positioned one past the last byte. On an
// unrecognized character it returns a *LexError and no tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		start := i
		c := src[i]
		switch {
		case isSpace(c):
			for i < n && isSpace(src[i]) {
				if src[i] == '\n' {
					doc.nl(i)
				}
				i++
			}
			dst = append(dst, Token{Type: TWhitespace, Pos: doc.Pos(start), Bytes: src[start:i]})

		case c == '/':
			tok, end, err := scanComment(doc, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = end

		case c == '"':
			end, err := scanString(doc, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(start), Bytes: src[start:end]})
			i = end

		case c == '-' || isDigit(c):
			end, err := scanNumber(doc, src, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TNumber, Pos: doc.Pos(start), Bytes: src[start:end]})
			i = end

		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ':':
			dst = append(dst, Token{Type: TColon, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++

		default:
			var kw TokenType
			var lit []byte
			switch {
			case bytes.HasPrefix(src[i:], []byte("true")):
				kw, lit = TTrue, src[i:i+4]
			case bytes.HasPrefix(src[i:], []byte("false")):
				kw, lit = TFalse, src[i:i+5]
			case bytes.HasPrefix(src[i:], []byte("null")):
				kw, lit = TNull, src[i:i+4]
			default:
				return nil, UnexpectedErr(fmt.Sprintf("character %q", c), doc.Pos(i))
			}
			dst = append(dst, Token{Type: kw, Pos: doc.Pos(i), Bytes: lit})
			i += len(lit)
		}
	}
	dst = append(dst, Token{Type: TEOF, Pos: doc.Pos(n)})
	return dst, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func scanComment(doc *PosDoc, src []byte, i int) (Token, int, error) {
	start := i
	n := len(src)
	if i+1 >= n {
		return Token{}, 0, UnexpectedErr("character '/'", doc.Pos(i))
	}
	switch src[i+1] {
	case '/':
		i += 2
		for i < n && src[i] != '\n' {
			i++
		}
		return Token{Type: TLineComment, Pos: doc.Pos(start), Bytes: src[start:i]}, i, nil
	case '*':
		i += 2
		for i+1 < n {
			if src[i] == '\n' {
				doc.nl(i)
			}
			if src[i] == '*' && src[i+1] == '/' {
				i += 2
				return Token{Type: TBlockComment, Pos: doc.Pos(start), Bytes: src[start:i]}, i, nil
			}
			i++
		}
		return Token{}, 0, UnterminatedErr("block comment", doc.Pos(start))
	default:
		return Token{}, 0, UnexpectedErr("character '/'", doc.Pos(i))
	}
}

// scanString consumes a quoted string starting at src[i] == '"' and
// returns the offset one past the closing quote. Escaped characters are
// not validated here; decoding happens in Unquote.
func scanString(doc *PosDoc, src []byte, i int) (int, error) {
	start := i
	n := len(src)
	i++
	for i < n {
		switch src[i] {
		case '\\':
			if i+1 >= n {
				return 0, UnterminatedErr("string", doc.Pos(start))
			}
			i += 2
		case '"':
			return i + 1, nil
		case '\n':
			doc.nl(i)
			i++
		default:
			i++
		}
	}
	return 0, UnterminatedErr("string", doc.Pos(start))
}

// scanNumber consumes -?(0|[1-9][0-9]*)(.[0-9]+)?([eE][+-]?[0-9]+)?
// starting at src[i] and returns the offset one past the literal.
func scanNumber(doc *PosDoc, src []byte, i int) (int, error) {
	n := len(src)
	if src[i] == '-' {
		i++
		if i >= n || !isDigit(src[i]) {
			return 0, UnexpectedErr("character '-'", doc.Pos(i-1))
		}
	}
	if src[i] == '0' {
		i++
	} else {
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i+1 < n && src[i] == '.' && isDigit(src[i+1]) {
		i++
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < n && isDigit(src[j]) {
			i = j
			for i < n && isDigit(src[i]) {
				i++
			}
		}
	}
	return i, nil
}
