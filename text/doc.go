// Package text flattens a converted document into plain text.
//
// [Flatten] writes one line per paragraph. Each line is the concatenation
// of the paragraph's span values, and lines are joined with a single
// newline:
//
//	plain := text.Flatten(doc)
//
// No newline follows the last paragraph. An empty document yields an empty
// string, and an empty paragraph yields an empty line.
package text
