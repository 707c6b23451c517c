package lexer

import "github.com/plotforge/numexpr/internal/ast"

// TokenType classifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent

	TokenPlus     // +
	TokenMinus    // -
	TokenStar     // *
	TokenSlash    // /
	TokenPercent  // %
	TokenPower    // **
	TokenBang     // !
	TokenTilde    // ~
	TokenAmp      // &
	TokenPipe     // |
	TokenCaret    // ^
	TokenAndAnd   // &&
	TokenOrOr     // ||
	TokenEq       // ==
	TokenNe       // !=
	TokenLt       // <
	TokenLe       // <=
	TokenGt       // >
	TokenGe       // >=
	TokenAssign   // =
	TokenQuestion // ?
	TokenColon    // :
	TokenComma    // ,
	TokenLParen   // (
	TokenRParen   // )
)

var tokenNames = map[TokenType]string{
	TokenEOF:      "end of input",
	TokenNumber:   "number",
	TokenIdent:    "identifier",
	TokenPlus:     "'+'",
	TokenMinus:    "'-'",
	TokenStar:     "'*'",
	TokenSlash:    "'/'",
	TokenPercent:  "'%'",
	TokenPower:    "'**'",
	TokenBang:     "'!'",
	TokenTilde:    "'~'",
	TokenAmp:      "'&'",
	TokenPipe:     "'|'",
	TokenCaret:    "'^'",
	TokenAndAnd:   "'&&'",
	TokenOrOr:     "'||'",
	TokenEq:       "'=='",
	TokenNe:       "'!='",
	TokenLt:       "'<'",
	TokenLe:       "'<='",
	TokenGt:       "'>'",
	TokenGe:       "'>='",
	TokenAssign:   "'='",
	TokenQuestion: "'?'",
	TokenColon:    "':'",
	TokenComma:    "','",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
}

// String returns a human-readable name for the token type, suitable for
// error messages.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown token"
}

// Token is a single lexical token with its source position.
type Token struct {
	Type TokenType
	Text string
	Pos  ast.Position
}
