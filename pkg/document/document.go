// Package document provides the immutable line view of a Markdown file that
// the checker scans. A Document is loaded once, split with universal newline
// handling, and never modified afterwards.
package document

// Document is an immutable, line-oriented view of a Markdown file.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// lines holds the line texts without their terminators.
	lines []string
}

// New creates a Document from raw content.
func New(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		lines:   SplitLines(string(content)),
	}
}

// FromLines creates a Document from already split lines.
// The slice is copied so later changes by the caller are not observed.
func FromLines(path string, lines []string) *Document {
	owned := make([]string, len(lines))
	copy(owned, lines)
	return &Document{
		Path:  path,
		lines: owned,
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of a 1-based line number, excluding the terminator.
// Returns "" if the line number is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// Lines returns a copy of all line texts in order.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}
