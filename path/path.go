// Package path addresses locations inside a JSONC document as a
// sequence of object-key and array-index steps.
//
// The textual syntax is dotted fields with bracketed indexes, e.g.
// "a.b[0].c". Fields containing '.', '[', ']', '"' or whitespace are
// written as JSON string literals: "outputs.\"eDP-1\".scale".
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

var ErrPath = errors.New("bad path")

// Step is one navigation step: exactly one of Field and Index is set.
type Step struct {
	Field *string
	Index *int
}

func Key(s string) Step {
	return Step{Field: &s}
}

func Index(i int) Step {
	return Step{Index: &i}
}

type Path []Step

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		if s.Index != nil {
			fmt.Fprintf(&b, "[%d]", *s.Index)
			continue
		}
		f := ""
		if s.Field != nil {
			f = *s.Field
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		if quoteField(f) {
			b.WriteString(strconv.Quote(f))
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}

func quoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, ".[]\" \t\n")
}

// Parse parses the textual path syntax. The empty string is the empty
// path, which addresses the document root.
func Parse(s string) (Path, error) {
	var res Path
	i, n := 0, len(s)
	for i < n {
		switch s[i] {
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unclosed '[' in %q", ErrPath, s)
			}
			v, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrPath, s[i+1:i+j], s)
			}
			res = append(res, Index(v))
			i += j + 1
		case '.':
			if i == 0 || i == n-1 {
				return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, s)
			}
			i++
		default:
			f, adv, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, s)
			}
			res = append(res, Key(f))
			i += adv
		}
	}
	return res, nil
}

func parseField(s string) (string, int, error) {
	if s[0] == '"' {
		end := 1
		for end < len(s) {
			if s[end] == '\\' {
				end += 2
				continue
			}
			if s[end] == '"' {
				f, err := token.Unquote([]byte(s[:end+1]))
				if err != nil {
					return "", 0, fmt.Errorf("%w: %v", ErrPath, err)
				}
				return f, end + 1, nil
			}
			end++
		}
		return "", 0, fmt.Errorf("%w: unclosed quoted field", ErrPath)
	}
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", 0, fmt.Errorf("%w: empty segment", ErrPath)
	}
	return s[:end], end, nil
}
