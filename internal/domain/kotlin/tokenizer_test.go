package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenizeAll drains the tokenizer, including the trailing EOF token.
func tokenizeAll(src string) []Token {
	tz := NewTokenizer(NewByteSource([]byte(src)), DefaultKeywords)
	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

// kinds projects the token kinds, dropping the trailing EOF.
func kinds(toks []Token) []TokenKind {
	var ks []TokenKind
	for _, tok := range toks {
		if tok.Kind == TokenEOF {
			break
		}
		ks = append(ks, tok.Kind)
	}
	return ks
}

func TestNext_Punctuation(t *testing.T) {
	toks := tokenizeAll("( ) { } [ ] < > ; , . : $")
	assert.Equal(t, []TokenKind{
		TokenParOpen, TokenParClose, TokenCurlyOpen, TokenCurlyClose,
		TokenSquareOpen, TokenSquareClose, TokenAngleOpen, TokenAngleClose,
		TokenSemicolon, TokenComma, TokenDot, TokenColon, TokenDollar,
	}, kinds(toks))
}

func TestNext_KeywordVsIdentifier(t *testing.T) {
	toks := tokenizeAll("fun greet")
	require.Len(t, toks, 3)

	assert.Equal(t, TokenKeyword, toks[0].Kind)
	assert.Equal(t, KeywordFun, toks[0].Keyword)
	assert.Equal(t, "fun", toks[0].Text)

	assert.Equal(t, TokenIdentifier, toks[1].Kind)
	assert.Equal(t, KeywordNone, toks[1].Keyword)
	assert.Equal(t, "greet", toks[1].Text)
}

func TestNext_KeywordLookupIgnoresCase(t *testing.T) {
	toks := tokenizeAll("FUN Class")
	assert.Equal(t, TokenKeyword, toks[0].Kind)
	assert.Equal(t, KeywordFun, toks[0].Keyword)
	assert.Equal(t, TokenKeyword, toks[1].Kind)
	assert.Equal(t, KeywordClass, toks[1].Keyword)
}

func TestNext_CommentMarkers(t *testing.T) {
	assert.Equal(t, TokenLineComment, tokenizeAll("// rest")[0].Kind)
	assert.Equal(t, TokenCommentOpen, tokenizeAll("/* rest")[0].Kind)

	// A bare slash is "other"; the lookahead character is pushed back.
	toks := tokenizeAll("/ x")
	assert.Equal(t, TokenOther, toks[0].Kind)
	assert.Equal(t, TokenIdentifier, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Text)
}

func TestNext_SlashAtEndOfInput(t *testing.T) {
	toks := tokenizeAll("/")
	assert.Equal(t, TokenOther, toks[0].Kind)
	assert.Equal(t, TokenEOF, toks[1].Kind)
}

func TestNext_Numbers(t *testing.T) {
	// Each literal is one token; no spurious identifier fragments.
	toks := tokenizeAll("3.14f 42 1_000")
	require.Len(t, toks, 4)
	assert.Equal(t, TokenNumber, toks[0].Kind)
	assert.Equal(t, "3.14f", toks[0].Text)
	assert.Equal(t, "42", toks[1].Text)
	assert.Equal(t, "1_000", toks[2].Text)
}

func TestNext_NumberStopsBeforeDelimiter(t *testing.T) {
	toks := tokenizeAll("42)")
	assert.Equal(t, TokenNumber, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, TokenParClose, toks[1].Kind)
}

func TestNext_FractionSuffixOnlyAfterDot(t *testing.T) {
	// The f suffix belongs to the fractional part; an integer stops before it.
	toks := tokenizeAll("2.5f")
	assert.Equal(t, "2.5f", toks[0].Text)

	toks = tokenizeAll("7f")
	assert.Equal(t, "7", toks[0].Text)
	assert.Equal(t, TokenIdentifier, toks[1].Kind)
	assert.Equal(t, "f", toks[1].Text)
}

func TestNext_IdentifierStopsAtDelimiters(t *testing.T) {
	toks := tokenizeAll("foo.bar(baz)")
	assert.Equal(t, []TokenKind{
		TokenIdentifier, TokenDot, TokenIdentifier,
		TokenParOpen, TokenIdentifier, TokenParClose,
	}, kinds(toks))
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, "bar", toks[2].Text)
	assert.Equal(t, "baz", toks[4].Text)
}

func TestNext_PositionCapturedBeforeConsumption(t *testing.T) {
	toks := tokenizeAll("  fun\n  greet")

	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, int64(2), toks[0].Offset)

	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, int64(8), toks[1].Offset)
}

func TestNext_EOFOnly(t *testing.T) {
	toks := tokenizeAll("   \t\r\n  ")
	require.Len(t, toks, 1)
	assert.Equal(t, TokenEOF, toks[0].Kind)
}

// Re-tokenizing the exact span attributed to a token reproduces the same
// lexeme: positions and consumption stay in lockstep.
func TestNext_Idempotence(t *testing.T) {
	src := "fun greet(name: String) = 42\nval max = 1_000\nclass Foo\n"
	toks := tokenizeAll(src)

	for i := 0; i < len(toks)-1; i++ {
		tok := toks[i]
		if tok.Text == "" {
			continue
		}
		span := src[tok.Offset:toks[i+1].Offset]
		again := NewTokenizer(NewByteSource([]byte(span)), DefaultKeywords).Next()
		assert.Equal(t, tok.Kind, again.Kind, "span %q", span)
		assert.Equal(t, tok.Text, again.Text, "span %q", span)
	}
}

func TestByteSource_UnreadRestoresPosition(t *testing.T) {
	src := NewByteSource([]byte("a\nb"))

	ch, ok := src.ReadChar()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)

	nl, _ := src.ReadChar()
	assert.Equal(t, '\n', nl)
	assert.Equal(t, 2, src.Line())

	src.UnreadChar(nl)
	assert.Equal(t, 1, src.Line())
	assert.Equal(t, int64(1), src.Offset())

	again, _ := src.ReadChar()
	assert.Equal(t, '\n', again)
	assert.Equal(t, 2, src.Line())
}

func TestByteSource_MultibyteIdentifiers(t *testing.T) {
	// Non-ASCII identifier characters survive the round trip through runes.
	toks := tokenizeAll("fun grüße()")
	assert.Equal(t, "grüße", toks[1].Text)
	assert.Equal(t, TokenParOpen, toks[2].Kind)
}
