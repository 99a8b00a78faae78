// Package recipe defines the extracted recipe document and renders it
// to Markdown or PDF.
package recipe

// Document is the normalized output of extraction: a title plus ordered
// ingredient and instruction lines. It is built once per extraction and
// never mutated afterwards; source order is preserved.
type Document struct {
	Title        string
	Ingredients  []string
	Instructions []string
}

// Empty reports whether extraction produced no ingredient lines.
func (d Document) Empty() bool {
	return len(d.Ingredients) == 0
}
