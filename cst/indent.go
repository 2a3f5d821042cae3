package cst

import (
	"strings"

	"github.com/xtracto/jsonc-format/go-jsonc/token"
)

// DefaultIndent is used when a document carries no multi-line
// whitespace to infer from.
const DefaultIndent = "    "

// InferIndent scans every whitespace trivia token in the tree and
// returns the most frequent substring following a newline, falling
// back to DefaultIndent for single-line documents. Ties resolve to the
// candidate seen first in document order. The heuristic is global, not
// per nesting level; synthesized structure multiplies the unit by
// depth.
func InferIndent(root *Node) string {
	counts := map[string]int{}
	var order []string
	tally := func(toks []token.Token) {
		for i := range toks {
			t := &toks[i]
			if t.Type != token.TWhitespace {
				continue
			}
			s := string(t.Bytes)
			j := strings.LastIndexByte(s, '\n')
			if j < 0 {
				continue
			}
			indent := s[j+1:]
			if indent == "" {
				continue
			}
			if _, seen := counts[indent]; !seen {
				order = append(order, indent)
			}
			counts[indent]++
		}
	}
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		tally(n.Leading)
		tally(n.Trailing)
		tally(n.Close)
		return true, nil
	})
	best, bestCount := DefaultIndent, 0
	for _, indent := range order {
		if counts[indent] > bestCount {
			best, bestCount = indent, counts[indent]
		}
	}
	return best
}
