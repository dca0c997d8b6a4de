package lint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line classification primitives shared by the rules.
// They look only at the shape of a single line.

// fenceMarker opens and closes a fenced code block.
const fenceMarker = "```"

// IsBlank reports whether the line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsListItem reports whether the line starts a bullet item ("-", "*" or "+"
// followed by whitespace) or an ordered item (digits, then "." or ")", then
// whitespace). Leading indentation is allowed.
func IsListItem(line string) bool {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest == "" {
		return false
	}

	switch rest[0] {
	case '-', '*', '+':
		return startsWithSpace(rest[1:])
	}

	afterDigits := strings.TrimLeftFunc(rest, unicode.IsDigit)
	if len(afterDigits) == len(rest) || afterDigits == "" {
		return false
	}
	if afterDigits[0] != '.' && afterDigits[0] != ')' {
		return false
	}
	return startsWithSpace(afterDigits[1:])
}

// StartsListLike reports whether the first non-whitespace character is a list
// marker character or a digit. It is deliberately looser than IsListItem and
// is used to accept list continuations.
func StartsListLike(line string) bool {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '-' || r == '*' || r == '+' || unicode.IsDigit(r)
}

// HasContinuation reports whether the line ends with a backslash, ignoring
// trailing whitespace.
func HasContinuation(line string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), `\`)
}

// IsTableRow reports whether the line, ignoring leading whitespace, starts with a pipe.
func IsTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "|")
}

// IsFence reports whether the trimmed line starts with three backticks.
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}

// FenceLanguage returns the language tag of a fence line: the run of word
// characters directly after the backticks. Returns "" when there is none or
// the line is not a fence.
func FenceLanguage(line string) string {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), fenceMarker)
	if !ok {
		return ""
	}
	end := strings.IndexFunc(rest, func(r rune) bool {
		return !isWordRune(r)
	})
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// IsBoldOnly reports whether the trimmed line consists solely of bold text:
// "**", one or more characters other than "*", "**", and an optional colon.
func IsBoldOnly(line string) bool {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), "**")
	if !ok {
		return false
	}
	end := strings.IndexByte(body, '*')
	if end <= 0 {
		return false
	}
	rest := body[end:]
	return rest == "**" || rest == "**:"
}

// Excerpt returns at most n characters (runes) of line.
func Excerpt(line string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for idx := range line {
		if count == n {
			return line[:idx]
		}
		count++
	}
	return line
}

func startsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
