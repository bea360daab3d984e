package ports

// CharSource feeds characters to the tokenizer one at a time, with a single
// character of pushback. Line is 1-based and Offset is the byte offset of
// the next unread character; UnreadChar restores both, so a position read
// after pushback refers to the pushed-back character.
type CharSource interface {
	// ReadChar returns the next character, or ok=false at end of input.
	ReadChar() (ch rune, ok bool)

	// UnreadChar pushes ch back onto the source. Capacity is one character:
	// calling it twice without an intervening ReadChar is a caller bug.
	UnreadChar(ch rune)

	// Line returns the 1-based line number of the next unread character.
	Line() int

	// Offset returns the byte offset of the next unread character.
	Offset() int64
}
