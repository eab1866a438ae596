package translator

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, never stored in a token slice

	// Keywords
	START // "Start"
	END   // "End"
	ARRAY // "Array"

	// Arithmetic operators
	POWER // **
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Punctuation
	LBRACKET // [
	RBRACKET // ]
	EQUALS   // =
	COMMA    // ,
	DOT      // .

	// Bracket kinds the language rejects; kept as tokens so the parser can name them.
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Literals
	IDENTIFIER // AB123, or any other word
	NUMBER     // digit run, octal range checked by the parser

	UNKNOWN // unrecognised run; reported as a lexical error, never stored
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	START:      "START",
	END:        "END",
	ARRAY:      "ARRAY",
	POWER:      "POWER",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	EQUALS:     "EQUALS",
	COMMA:      "COMMA",
	DOT:        "DOT",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	UNKNOWN:    "UNKNOWN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// isOperator reports whether tt is one of the binary arithmetic operators.
func (tt TokenType) isOperator() bool {
	switch tt {
	case PLUS, MINUS, STAR, SLASH, POWER:
		return true
	}
	return false
}

// Token is a single lexical unit produced by Tokenize.
// Start and End are 0-based, end-exclusive character offsets into the source.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Start  int
	End    int
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-10q  %d-%d", t.Type, t.Lexeme, t.Start, t.End)
}
