package kotlin

import (
	"github.com/corey/ktags/internal/ports"
)

// Scanner drives the tokenizer and recognizes declaration headers, emitting
// one tag per match to a sink. It is a best-effort extractor: no input is
// fatal. Any token sequence that does not match an expected shape is
// discarded to the end of the current line and scanning resumes, so a
// misparse costs at most one declaration.
type Scanner struct {
	src    ports.CharSource
	tokens *Tokenizer
}

// NewScanner returns a scanner over src using the given keyword table.
func NewScanner(src ports.CharSource, keywords *KeywordTable) *Scanner {
	return &Scanner{src: src, tokens: NewTokenizer(src, keywords)}
}

// ScanBytes scans a whole source buffer and returns its tags in source order.
func ScanBytes(source []byte) []ports.Tag {
	var tags []ports.Tag
	src := NewByteSource(source)
	NewScanner(src, DefaultKeywords).Scan(ports.SinkFunc(func(tag ports.Tag) {
		tags = append(tags, tag)
	}))
	return tags
}

// Scan runs to end of input, calling sink once per recognized declaration.
func (s *Scanner) Scan(sink ports.TagSink) {
	for {
		tok := s.tokens.Next()
		switch tok.Kind {
		case TokenEOF:
			return
		case TokenCommentOpen:
			s.skipBlockComment()
		case TokenLineComment:
			s.skipToEOL()
		case TokenKeyword:
			s.keyword(tok, sink)
		default:
			// Stray identifiers, literals and punctuation at top level are
			// expression fragments or skipped-body residue; ignore them.
		}
	}
}

// keyword dispatches on a recognized keyword token.
func (s *Scanner) keyword(tok Token, sink ports.TagSink) {
	switch tok.Keyword {
	case ModifierPrivate, ModifierProtected, ModifierPublic, ModifierInternal,
		ModifierAbstract, ModifierOpen, ModifierFinal, ModifierOverride,
		ModifierSealed, ModifierSuspend:
		// Modifiers precede the declaration keyword; the next loop
		// iteration reads on.

	case KeywordClass, KeywordInterface, KeywordObject:
		next := s.tokens.Next()
		if next.Kind == TokenIdentifier {
			emit(sink, next, ports.KindClass)
		}
		// Generic parameters and supertype clauses are not parsed.
		s.skipToEOL()

	case KeywordTypealias:
		next := s.tokens.Next()
		if next.Kind == TokenIdentifier {
			emit(sink, next, ports.KindTypealias)
		}
		// No discard here: the aliased type stays in the stream for the
		// top-level loop to reinterpret. See DESIGN.md.

	case KeywordConst:
		next := s.tokens.Next()
		if next.Kind == TokenKeyword && next.Keyword == KeywordVal {
			name := s.tokens.Next()
			if name.Kind == TokenIdentifier {
				emit(sink, name, ports.KindConst)
			}
		}
		s.skipToEOL()

	case KeywordFun:
		s.function(sink)

	default:
		// package, import, val, var, enum and other unmodeled keywords:
		// nothing to tag on this line.
		s.skipToEOL()
	}
}

// function recognizes a function header after the fun keyword:
//
//	fun name(...)
//	fun Receiver.name(...)
//	fun <T : Comparable<T>> name(...)
//
// The extension form tags the trailing member name, not the receiver.
func (s *Scanner) function(sink ports.TagSink) {
	tok := s.tokens.Next()
	if tok.Kind == TokenAngleOpen {
		s.skipBalanced('>')
		tok = s.tokens.Next()
	}
	if tok.Kind != TokenIdentifier {
		s.skipToEOL()
		return
	}
	next := s.tokens.Next()
	switch next.Kind {
	case TokenDot:
		name := s.tokens.Next()
		if name.Kind == TokenIdentifier {
			emit(sink, name, ports.KindFunction)
		} else {
			s.skipToEOL()
		}
	case TokenParOpen:
		emit(sink, tok, ports.KindFunction)
	default:
		s.skipToEOL()
	}
}

func emit(sink ports.TagSink, tok Token, kind ports.TagKind) {
	sink.Emit(ports.Tag{Name: tok.Text, Kind: kind, Line: tok.Line, Offset: tok.Offset})
}

// skipToEOL consumes characters up to and including the next newline.
func (s *Scanner) skipToEOL() {
	for {
		ch, ok := s.src.ReadChar()
		if !ok || ch == '\n' {
			return
		}
	}
}

// skipBlockComment consumes characters until the closing */ is read.
// An unterminated comment consumes to end of input; the remainder of the
// file is silently truncated rather than misread as code.
func (s *Scanner) skipBlockComment() {
	var prev rune
	for {
		ch, ok := s.src.ReadChar()
		if !ok {
			return
		}
		if prev == '*' && ch == '/' {
			return
		}
		prev = ch
	}
}

// skipBalanced consumes characters until the delimiter family of closing
// returns to depth zero on a matching close character. Comments encountered
// mid-skip are skipped inline so their contents cannot terminate the skip.
//
// Known limitations, accepted: string literal contents are not exempt, so a
// bracket character inside a string still counts; and angle brackets double
// as comparison operators in Kotlin, so a stray < or > in an expression can
// unbalance the count. Both are inherent to skipping without a grammar.
func (s *Scanner) skipBalanced(closing rune) {
	var par, curly, square, angle int
	switch closing {
	case ')':
		par = 1
	case '}':
		curly = 1
	case ']':
		square = 1
	case '>':
		angle = 1
	}
	for {
		ch, ok := s.src.ReadChar()
		if !ok {
			return
		}
		switch ch {
		case '(':
			par++
		case ')':
			par--
		case '{':
			curly++
		case '}':
			curly--
		case '[':
			square++
		case ']':
			square--
		case '<':
			angle++
		case '>':
			angle--
		case '/':
			next, ok := s.src.ReadChar()
			if !ok {
				return
			}
			switch next {
			case '/':
				s.skipToEOL()
			case '*':
				s.skipBlockComment()
			default:
				s.src.UnreadChar(next)
			}
			continue
		}
		if ch == closing {
			switch closing {
			case ')':
				if par == 0 {
					return
				}
			case '}':
				if curly == 0 {
					return
				}
			case ']':
				if square == 0 {
					return
				}
			case '>':
				if angle == 0 {
					return
				}
			}
		}
	}
}
