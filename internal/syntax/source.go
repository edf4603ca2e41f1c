package syntax

import "unicode/utf8"

// source is a character reader with byte-offset tracking.
type source struct {
	buf string // source text

	ch    rune // current character, -1 at end of input
	offs  int  // byte offset of ch
	width int  // byte width of ch
}

// newSource creates a source positioned at the first character of text.
func newSource(text string) *source {
	s := &source{buf: text}
	s.read()
	return s
}

// read decodes the character at s.offs into s.ch.
func (s *source) read() {
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.width = 0
		return
	}
	r, w := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.width = w
}

// nextch advances past the current character.
func (s *source) nextch() {
	s.offs += s.width
	s.read()
}

// pos returns the byte offset of the current character.
func (s *source) pos() int {
	return s.offs
}

// segment returns the text between start and the current character.
func (s *source) segment(start int) string {
	return s.buf[start:s.offs]
}

// Character classification helpers

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is a space, tab, carriage return or newline.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
