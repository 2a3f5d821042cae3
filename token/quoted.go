package token

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var errQuoted = errors.New("invalid string literal")

// Unquote decodes a raw JSON string literal, including the surrounding
// quotes, into its value. Unlike strconv.Unquote it handles \/ and
// surrogate pairs, and tolerates raw control characters so that
// hand-edited config files keep working.
func Unquote(raw []byte) (string, error) {
	n := len(raw)
	if n < 2 || raw[0] != '"' || raw[n-1] != '"' {
		return "", fmt.Errorf("%w: %q", errQuoted, string(raw))
	}
	buf := make([]byte, 0, n-2)
	i := 1
	for i < n-1 {
		c := raw[i]
		if c != '\\' {
			buf = append(buf, c)
			i++
			continue
		}
		if i+1 >= n-1 {
			return "", fmt.Errorf("%w: dangling escape in %q", errQuoted, string(raw))
		}
		i++
		switch raw[i] {
		case '"':
			buf = append(buf, '"')
		case '\\':
			buf = append(buf, '\\')
		case '/':
			buf = append(buf, '/')
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, adv, err := unquoteRune(raw[i-1 : n-1])
			if err != nil {
				return "", err
			}
			buf = utf8.AppendRune(buf, r)
			i += adv - 2
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c", errQuoted, raw[i])
		}
		i++
	}
	return string(buf), nil
}

// unquoteRune decodes \uXXXX at the start of esc, joining a trailing
// low surrogate when present. It returns the rune and the number of
// bytes consumed from esc.
func unquoteRune(esc []byte) (rune, int, error) {
	r, err := hex4(esc)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if len(esc) >= 12 && esc[6] == '\\' && esc[7] == 'u' {
		r2, err := hex4(esc[6:])
		if err != nil {
			return 0, 0, err
		}
		if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
			return dec, 12, nil
		}
	}
	return utf8.RuneError, 6, nil
}

func hex4(esc []byte) (rune, error) {
	if len(esc) < 6 {
		return 0, fmt.Errorf("%w: short \\u escape", errQuoted)
	}
	v, err := strconv.ParseUint(string(esc[2:6]), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad \\u escape (%v)", errQuoted, err)
	}
	return rune(v), nil
}
