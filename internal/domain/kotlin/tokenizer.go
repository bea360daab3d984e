package kotlin

import (
	"strings"

	"github.com/corey/ktags/internal/ports"
)

// Tokenizer produces one classified token at a time from a character source.
// It owns no state beyond the source and the keyword table: every Next call
// starts fresh, and at most one character is ever pushed back.
type Tokenizer struct {
	src      ports.CharSource
	keywords *KeywordTable
}

// NewTokenizer returns a tokenizer reading from src.
func NewTokenizer(src ports.CharSource, keywords *KeywordTable) *Tokenizer {
	return &Tokenizer{src: src, keywords: keywords}
}

// isBlank reports whitespace skipped between tokens.
func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

// isIdentDelimiter reports the characters that terminate an identifier or
// keyword scan. The terminator itself is pushed back, never consumed.
func isIdentDelimiter(ch rune) bool {
	switch ch {
	case ' ', '\r', '\n', '\t', ';', ',', '(', ')', '{', '}', '<', '>', '.':
		return true
	}
	return false
}

// Next returns the next token. Position is that of the token's first
// character, captured before anything past it is consumed.
func (t *Tokenizer) Next() Token {
	var first rune
	for {
		ch, ok := t.src.ReadChar()
		if !ok {
			return Token{Kind: TokenEOF, Line: t.src.Line(), Offset: t.src.Offset()}
		}
		if isBlank(ch) {
			continue
		}
		first = ch
		break
	}

	// The first character is already consumed; rewind so the recorded
	// position points at it, then take it back.
	t.src.UnreadChar(first)
	tok := Token{Kind: TokenOther, Line: t.src.Line(), Offset: t.src.Offset()}
	t.src.ReadChar()

	switch first {
	case '(':
		tok.Kind = TokenParOpen
		return tok
	case ')':
		tok.Kind = TokenParClose
		return tok
	case '{':
		tok.Kind = TokenCurlyOpen
		return tok
	case '}':
		tok.Kind = TokenCurlyClose
		return tok
	case '[':
		tok.Kind = TokenSquareOpen
		return tok
	case ']':
		tok.Kind = TokenSquareClose
		return tok
	case '<':
		tok.Kind = TokenAngleOpen
		return tok
	case '>':
		tok.Kind = TokenAngleClose
		return tok
	case ';':
		tok.Kind = TokenSemicolon
		return tok
	case ',':
		tok.Kind = TokenComma
		return tok
	case '.':
		tok.Kind = TokenDot
		return tok
	case ':':
		tok.Kind = TokenColon
		return tok
	case '$':
		tok.Kind = TokenDollar
		return tok
	case '/':
		next, ok := t.src.ReadChar()
		if ok {
			switch next {
			case '/':
				tok.Kind = TokenLineComment
				return tok
			case '*':
				tok.Kind = TokenCommentOpen
				return tok
			}
			t.src.UnreadChar(next)
		}
		// A bare slash carries no meaning for declaration headers.
		return tok
	}

	if first >= '0' && first <= '9' {
		tok.Kind = TokenNumber
		tok.Text = t.scanNumber(first)
		return tok
	}

	var b strings.Builder
	b.WriteRune(first)
	for {
		ch, ok := t.src.ReadChar()
		if !ok {
			break
		}
		if isIdentDelimiter(ch) {
			t.src.UnreadChar(ch)
			break
		}
		b.WriteRune(ch)
	}
	tok.Text = b.String()
	if kw := t.keywords.Lookup(tok.Text); kw != KeywordNone {
		tok.Kind = TokenKeyword
		tok.Keyword = kw
	} else {
		tok.Kind = TokenIdentifier
	}
	return tok
}

// scanNumber consumes a numeric literal starting with first: digits and
// underscores, an optional fractional part after a dot, and an optional
// trailing f suffix on the fraction. Any terminating character is pushed back.
func (t *Tokenizer) scanNumber(first rune) string {
	var b strings.Builder
	b.WriteRune(first)
	fractional := false
	for {
		ch, ok := t.src.ReadChar()
		if !ok {
			return b.String()
		}
		switch {
		case (ch >= '0' && ch <= '9') || ch == '_':
			b.WriteRune(ch)
		case ch == '.' && !fractional:
			b.WriteRune(ch)
			fractional = true
		case ch == 'f' && fractional:
			b.WriteRune(ch)
			return b.String()
		default:
			t.src.UnreadChar(ch)
			return b.String()
		}
	}
}
