package kotlin

import "unicode/utf8"

// ByteSource is a slice-backed ports.CharSource: UTF-8 aware reads over an
// in-memory buffer, single-character pushback, 1-based line tracking, and
// byte offsets. The whole-file buffer is the natural shape here: files are
// read in one call by the indexer and capped at 1MB.
type ByteSource struct {
	data []byte
	pos  int
	line int
}

// NewByteSource wraps data in a character source positioned at line 1, offset 0.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data, line: 1}
}

// ReadChar returns the next character, or ok=false at end of input.
func (s *ByteSource) ReadChar() (rune, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	r, size := utf8.DecodeRune(s.data[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
	}
	return r, true
}

// UnreadChar pushes ch back. Capacity is one character; the caller must pass
// the character it just read so line and offset rewind consistently.
func (s *ByteSource) UnreadChar(ch rune) {
	size := utf8.RuneLen(ch)
	if ch == utf8.RuneError {
		// A RuneError from ReadChar was a single invalid byte, not an
		// encoded U+FFFD.
		size = 1
	}
	if size <= 0 || size > s.pos {
		return
	}
	s.pos -= size
	if ch == '\n' {
		s.line--
	}
}

// Line returns the 1-based line number of the next unread character.
func (s *ByteSource) Line() int { return s.line }

// Offset returns the byte offset of the next unread character.
func (s *ByteSource) Offset() int64 { return int64(s.pos) }
