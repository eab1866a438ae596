package translator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// rule pairs a token type with the pattern that recognises it.
type rule struct {
	tt      TokenType
	pattern *regexp.Regexp
	skip    bool // matched text is discarded (whitespace)
}

// whitespace is the character class body for Unicode white space and the
// ASCII separators 0x1c to 0x1f.
const whitespace = `\p{Z}\t\n\v\f\r\x1c-\x1f\x85`

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

// rules are tried in order at every position; the first match wins.
// Order matters: keywords before words, "**" before "*", the five-character
// identifier shape before the generic word, UNKNOWN last.
var rules = []rule{
	{tt: START, pattern: anchored(`Start`)},
	{tt: END, pattern: anchored(`End`)},
	{tt: ARRAY, pattern: anchored(`Array`)},

	{tt: POWER, pattern: anchored(`\*\*`)},
	{tt: PLUS, pattern: anchored(`\+`)},
	{tt: MINUS, pattern: anchored(`-`)},
	{tt: STAR, pattern: anchored(`\*`)},
	{tt: SLASH, pattern: anchored(`/`)},

	{tt: LBRACKET, pattern: anchored(`\[`)},
	{tt: RBRACKET, pattern: anchored(`\]`)},
	{tt: EQUALS, pattern: anchored(`=`)},
	{tt: COMMA, pattern: anchored(`,`)},
	{tt: DOT, pattern: anchored(`\.`)},

	{tt: LPAREN, pattern: anchored(`\(`)},
	{tt: RPAREN, pattern: anchored(`\)`)},
	{tt: LBRACE, pattern: anchored(`\{`)},
	{tt: RBRACE, pattern: anchored(`\}`)},

	{tt: IDENTIFIER, pattern: anchored(`[A-Za-z]{2}[0-9]{3}`)},
	{tt: IDENTIFIER, pattern: anchored(`[A-Za-z]+`)},
	{tt: NUMBER, pattern: anchored(`[0-9]+`)},

	{pattern: anchored(`[` + whitespace + `]+`), skip: true},

	{tt: UNKNOWN, pattern: anchored(`[^` + whitespace + `+\-*/\[\]=,.(){}]+`)},
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    string
	pos    int // byte index of the next unread byte
	offset int // character index matching pos
	errors Diagnostics
}

func newLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// next matches one rule at the current position and advances past it.
// ok is false at end of input.
func (l *Lexer) next() (r rule, lexeme string, ok bool) {
	if l.pos >= len(l.src) {
		return rule{}, "", false
	}
	rest := l.src[l.pos:]
	for _, candidate := range rules {
		if loc := candidate.pattern.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return candidate, rest[:loc[1]], true
		}
	}
	// Every character is covered by some rule; this keeps the loop finite regardless.
	_, size := utf8.DecodeRuneInString(rest)
	return rule{tt: UNKNOWN}, rest[:size], true
}

// run scans the whole source. Whitespace is dropped, UNKNOWN runs become
// diagnostics and scanning continues after them.
func (l *Lexer) run() []Token {
	var tokens []Token
	for {
		r, lexeme, ok := l.next()
		if !ok {
			return tokens
		}
		start := l.offset
		l.pos += len(lexeme)
		l.offset += utf8.RuneCountInString(lexeme)

		switch {
		case r.skip:
		case r.tt == UNKNOWN:
			l.errors.add(fmt.Sprintf("unknown word or symbol '%s'", lexeme), start, l.offset)
		default:
			tokens = append(tokens, Token{Type: r.tt, Lexeme: lexeme, Start: start, End: l.offset})
		}
	}
}

// Tokenize splits src into tokens. Unrecognised character runs are returned
// as lexical diagnostics; they never stop the scan.
func Tokenize(src string) ([]Token, Diagnostics) {
	l := newLexer(src)
	tokens := l.run()
	return tokens, l.errors
}
