package document

// SplitLines splits text into lines using universal newline handling.
// "\n", "\r\n" and a lone "\r" all end a line. A terminator at the very end
// of the text does not start an extra empty line, and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	var lines []string
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		switch text[idx] {
		case '\n':
			lines = append(lines, text[lineStart:idx])
			lineStart = idx + 1
		case '\r':
			lines = append(lines, text[lineStart:idx])
			// Treat CRLF as a single terminator.
			if idx+1 < len(text) && text[idx+1] == '\n' {
				idx++
			}
			lineStart = idx + 1
		}
	}

	// Last line without a trailing terminator.
	if lineStart < len(text) {
		lines = append(lines, text[lineStart:])
	}

	return lines
}
