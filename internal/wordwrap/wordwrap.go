// Package wordwrap implements the greedy line-packing primitive shared by
// the usage line and the row tables of a help page.
package wordwrap

import "github.com/ef-ds/deque"

// Lines produces the wrapped lines of a token sequence one at a time.
// Tokens are packed greedily: a token is appended to the current line with a
// single space separator as long as the line stays within the width; the
// first token past the width starts a new line. A token longer than the
// width on its own is emitted unmodified - overflow is tolerated, never
// truncated or hyphenated.
//
// A Lines is single-pass; create a new one to wrap again.
type Lines struct {
	pending *deque.Deque
	width   int
}

// New returns a Lines over tokens bounded by width.
func New(tokens []string, width int) *Lines {
	pending := deque.New()
	for _, token := range tokens {
		pending.PushBack(token)
	}

	return &Lines{pending: pending, width: width}
}

// Next returns the next rendered line. The second return value is false when
// every token has been consumed.
func (l *Lines) Next() (string, bool) {
	front, ok := l.pending.PopFront()
	if !ok {
		return "", false
	}

	line := front.(string)
	for {
		next, ok := l.pending.Front()
		if !ok {
			break
		}
		token := next.(string)
		if len(line)+1+len(token) > l.width {
			break
		}
		l.pending.PopFront()
		line += " " + token
	}

	return line, true
}

// Wrap materializes every line produced by New(tokens, width). An empty
// token sequence yields nil.
func Wrap(tokens []string, width int) []string {
	var lines []string
	sequence := New(tokens, width)
	for {
		line, ok := sequence.Next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}
