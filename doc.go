// Package jsonc edits JSON-with-comments documents without disturbing
// their formatting.
//
// The parse package turns source text into a concrete syntax tree that
// keeps every comment, blank line and whitespace choice as trivia; the
// encode package prints that tree back byte-identical. This package
// hosts the operations on top: Set replaces or inserts one value at a
// path, Delete removes one, ApplyMergePatch applies an RFC 7386 merge
// patch, and the cst bridge converts subtrees to plain data for callers
// that only want values.
//
//	root, err := parse.Parse(src)
//	if err != nil { ... }
//	if err := jsonc.Set(root, path.Path{path.Key("layer"), path.Key("height")}, 30); err != nil { ... }
//	out := encode.MustString(root) // src with only the edited span changed
package jsonc
