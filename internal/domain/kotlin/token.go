package kotlin

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenOther TokenKind = iota
	TokenKeyword
	TokenIdentifier
	TokenString // declared for completeness; string literals are not lexed specially
	TokenNumber
	TokenParOpen
	TokenParClose
	TokenCurlyOpen
	TokenCurlyClose
	TokenSquareOpen
	TokenSquareClose
	TokenAngleOpen
	TokenAngleClose
	TokenSemicolon
	TokenComma
	TokenDot
	TokenColon
	TokenDollar
	TokenCommentOpen  // the two characters /*
	TokenCommentClose // declared for completeness; block comments are skipped char-wise
	TokenLineComment  // the two characters //
	TokenEOF
)

// Token is one classified lexical token. Line and Offset locate the token's
// first character. Text is only meaningful for keyword, identifier, and
// number tokens. Tokens are constructed fresh per Next call and not retained
// once the scanner advances.
type Token struct {
	Kind    TokenKind
	Keyword Keyword
	Text    string
	Line    int
	Offset  int64
}
