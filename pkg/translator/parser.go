package translator

import (
	"errors"
	"fmt"
	"regexp"
)

// maxBracketDepth is the deepest "[" nesting an expression may use.
const maxBracketDepth = 2

// variableName is the only shape accepted for the assignment target.
var variableName = regexp.MustCompile(`^[A-Za-z]{2}[0-7]{3}$`)

// errStop unwinds the descent once a fatal diagnostic has been recorded.
var errStop = errors.New("parse stopped")

// Diagnostic messages produced by the parser.
const (
	msgStartExpected      = `program must begin with "Start"`
	msgStartFound         = `program must begin with "Start", found "%s"`
	msgArrayExpected      = `no Array block found: the block must begin with "Array"`
	msgArrayFound         = `no Array block found: the block must begin with "Array", found "%s"`
	msgArrayEmpty         = `"Array" must be followed by at least one number`
	msgAssignmentExpected = `expected the assignment block (starting with a variable), found end of input`
	msgAssignmentFound    = `expected the assignment block (starting with a variable), found "%s"`
	msgDuplicateAssign    = `the assignment block may appear only once`
	msgEndExpected        = `program must end with "End"`
	msgEndFound           = `program must end with "End", found "%s"`
	msgTrailing           = `unexpected input after "End", found "%s"`
	msgBadOctal           = `invalid number "%s" (octal digits 0 to 7 expected)`
	msgOctalRange         = `number "%s" is out of range`
	msgFractionExpected   = `invalid real number: integer expected after "."`
	msgIntegerExpected    = `invalid real number: integer expected before "."`
	msgBadComplex         = `invalid complex number: a real number is expected after ","`
	msgBadVariable        = `variable must be named "letter letter digit digit digit" (digits 0 to 7)`
	msgEqualsExpected     = `missing "=" after variable "%s"`
	msgMissingOperand     = `no real number after arithmetic operator "%s"`
	msgTwoOperators       = `two operators cannot follow each other ("%s" and "%s")`
	msgMissingOperator    = `missing arithmetic operator`
	msgUnmatchedBracket   = `closing bracket "]" has no matching "["`
	msgInvalidBracket     = `brackets "%s" are not allowed, use "[]"`
	msgUndeclared         = `variable "%s" is not declared`
	msgIntegerInExpr      = `only real numbers are allowed in expressions (for example 7.0)`
	msgNestingTooDeep     = `bracket nesting depth cannot exceed 2`
	msgBracketExpected    = `missing closing bracket "]"`
	msgUnexpectedEOF      = `unexpected end of input in expression`
	msgUnexpectedToken    = `unexpected token "%s" in expression`
)

// Parser consumes the flat token slice produced by Tokenize and evaluates the
// program while it descends; no syntax tree is retained.
//
// Grammar:
//
//	program    = "Start" arrayBlock+ assignment "End"
//	arrayBlock = "Array" number+
//	number     = real ("," real)? | integer
//	assignment = IDENTIFIER "=" expression
//	expression = term (("+" | "-") term)*
//	term       = power (("*" | "/") power)*
//	power      = atom ("**" atom)*
//	atom       = ("+" | "-")? (IDENTIFIER | real | "[" expression "]")   depth <= 2
//	real       = NUMBER "." NUMBER
//
// Only the first diagnostic of a run is kept; every fatal one stops the descent.
type Parser struct {
	tokens    []Token
	pos       int
	symbols   SymbolTable
	declared  map[string]bool
	constants []Value
	errors    Diagnostics
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:   tokens,
		symbols:  make(SymbolTable),
		declared: make(map[string]bool),
	}
}

// Parse runs the parser over tokens and returns the symbol table together
// with at most one syntax diagnostic.
func Parse(tokens []Token) (SymbolTable, Diagnostics) {
	return NewParser(tokens).Parse()
}

// Parse evaluates the program. A Parser is single use.
func (p *Parser) Parse() (SymbolTable, Diagnostics) {
	_ = p.parseProgram() // the reason is already in p.errors
	return p.symbols, p.errors
}

// Constants returns the values declared in the Array blocks, in source order.
func (p *Parser) Constants() []Value {
	return p.constants
}

// report records a diagnostic unless an earlier one already exists.
func (p *Parser) report(message string, start, end int) {
	if len(p.errors) == 0 {
		p.errors.add(message, start, end)
	}
}

// fail records a fatal diagnostic and returns the error that unwinds the parse.
func (p *Parser) fail(message string, start, end int) error {
	p.report(message, start, end)
	return errStop
}

// eof is the sentinel returned past the last token. Its span is the character
// following the last token, or 0-1 for empty input.
func (p *Parser) eof() Token {
	if len(p.tokens) == 0 {
		return Token{Type: EOF, Start: 0, End: 1}
	}
	end := p.tokens[len(p.tokens)-1].End
	return Token{Type: EOF, Start: end, End: end + 1}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

// peekAt returns the token at the given offset from the current position.
func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos+offset]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// last returns the most recently consumed token.
func (p *Parser) last() Token {
	if p.pos == 0 {
		return p.eof()
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) parseProgram() error {
	start := p.peek()
	if start.Type != START {
		if start.Type == EOF {
			return p.fail(msgStartExpected, 0, 1)
		}
		return p.fail(fmt.Sprintf(msgStartFound, start.Lexeme), start.Start, start.End)
	}
	p.advance()

	if next := p.peek(); next.Type != ARRAY {
		if next.Type == EOF {
			return p.fail(msgArrayExpected, next.Start, next.End)
		}
		return p.fail(fmt.Sprintf(msgArrayFound, next.Lexeme), next.Start, next.End)
	}
	for p.peek().Type == ARRAY {
		if err := p.parseArrayBlock(); err != nil {
			return err
		}
	}

	if next := p.peek(); next.Type != IDENTIFIER {
		if next.Type == EOF {
			return p.fail(msgAssignmentExpected, next.Start, next.End)
		}
		return p.fail(fmt.Sprintf(msgAssignmentFound, next.Lexeme), next.Start, next.End)
	}
	if err := p.parseAssignment(); err != nil {
		return err
	}

	if next := p.peek(); next.Type == IDENTIFIER {
		return p.fail(msgDuplicateAssign, next.Start, next.End)
	}

	end := p.peek()
	if end.Type != END {
		if end.Type == EOF {
			return p.fail(msgEndExpected, end.Start, end.End)
		}
		return p.fail(fmt.Sprintf(msgEndFound, end.Lexeme), end.Start, end.End)
	}
	p.advance()

	if trailing := p.peek(); trailing.Type != EOF {
		return p.fail(fmt.Sprintf(msgTrailing, trailing.Lexeme), trailing.Start, trailing.End)
	}
	return nil
}

// parseArrayBlock handles "Array" number+.
func (p *Parser) parseArrayBlock() error {
	array := p.advance()
	if p.peek().Type != NUMBER {
		return p.fail(msgArrayEmpty, array.End, array.End+1)
	}
	for p.peek().Type == NUMBER {
		if err := p.parseNumber(); err != nil {
			return err
		}
	}
	return nil
}

// parseNumber handles one Array entry: a real, a complex pair of reals, or
// a bare octal integer.
func (p *Parser) parseNumber() error {
	if p.peekAt(1).Type == DOT {
		re, err := p.parseReal()
		if err != nil {
			return err
		}
		if p.peek().Type != COMMA {
			p.constants = append(p.constants, re)
			return nil
		}
		p.advance() // ,
		if p.peek().Type != NUMBER || p.peekAt(1).Type != DOT {
			tok := p.peek()
			return p.fail(msgBadComplex, tok.Start, tok.End)
		}
		im, err := p.parseReal()
		if err != nil {
			return err
		}
		p.constants = append(p.constants, ComplexValue(re.Re, im.Re))
		return nil
	}

	tok := p.advance()
	n, err := parseOctalInt(tok.Lexeme)
	if err != nil {
		return p.failNumber(err, tok.Lexeme, tok.Start, tok.End)
	}
	p.constants = append(p.constants, IntegerValue(n))
	return nil
}

// parseReal handles NUMBER "." NUMBER. The caller has checked the first two tokens.
func (p *Parser) parseReal() (Value, error) {
	whole := p.advance()
	dot := p.advance()
	if p.peek().Type != NUMBER {
		return Value{}, p.fail(msgFractionExpected, dot.End, dot.End+1)
	}
	frac := p.advance()

	text := whole.Lexeme + "." + frac.Lexeme
	f, err := ParseOctal(text)
	if err != nil {
		return Value{}, p.failNumber(err, text, whole.Start, frac.End)
	}
	return RealValue(f), nil
}

func (p *Parser) failNumber(err error, text string, start, end int) error {
	if errors.Is(err, ErrOctalRange) {
		return p.fail(fmt.Sprintf(msgOctalRange, text), start, end)
	}
	return p.fail(fmt.Sprintf(msgBadOctal, text), start, end)
}

// parseAssignment handles IDENTIFIER "=" expression and stores the result.
func (p *Parser) parseAssignment() error {
	name := p.advance()

	// Register before validating so later references resolve to the placeholder.
	p.declared[name.Lexeme] = true
	p.symbols[name.Lexeme] = RealValue(0)
	if !variableName.MatchString(name.Lexeme) {
		return p.fail(msgBadVariable, name.Start, name.End)
	}

	if p.peek().Type != EQUALS {
		return p.fail(fmt.Sprintf(msgEqualsExpected, name.Lexeme), name.End, name.End+1)
	}
	p.advance()

	value, err := p.parseExpression(0)
	if err != nil {
		return err
	}
	p.symbols[name.Lexeme] = value
	return nil
}

// checkOperand verifies that something usable follows the operator op.
func (p *Parser) checkOperand(op Token) error {
	next := p.peek()
	switch {
	case next.Type == EOF || next.Type == END || next.Type == RBRACKET:
		return p.fail(fmt.Sprintf(msgMissingOperand, op.Lexeme), op.Start, op.End)
	case next.Type.isOperator():
		return p.fail(fmt.Sprintf(msgTwoOperators, op.Lexeme, next.Lexeme), op.Start, next.End)
	}
	return nil
}

// apply folds left op right, turning arithmetic failures into a diagnostic
// that spans the operator and its right operand.
func (p *Parser) apply(op Token, left, right Value) (Value, error) {
	v, err := arith(op.Type, left, right)
	if err != nil {
		return Value{}, p.fail(err.Error(), op.Start, p.last().End)
	}
	return v, nil
}

// parseExpression handles + and -
func (p *Parser) parseExpression(depth int) (Value, error) {
	result, err := p.parseTerm(depth)
	if err != nil {
		return Value{}, err
	}
	for {
		tt := p.peek().Type
		if tt != PLUS && tt != MINUS {
			return result, nil
		}
		op := p.advance()
		if err := p.checkOperand(op); err != nil {
			return Value{}, err
		}
		right, err := p.parseTerm(depth)
		if err != nil {
			return Value{}, err
		}
		if result, err = p.apply(op, result, right); err != nil {
			return Value{}, err
		}
	}
}

// parseTerm handles * and /
func (p *Parser) parseTerm(depth int) (Value, error) {
	result, err := p.parsePower(depth)
	if err != nil {
		return Value{}, err
	}
	for {
		tt := p.peek().Type
		if tt != STAR && tt != SLASH {
			return result, nil
		}
		op := p.advance()
		if err := p.checkOperand(op); err != nil {
			return Value{}, err
		}
		right, err := p.parsePower(depth)
		if err != nil {
			return Value{}, err
		}
		if result, err = p.apply(op, result, right); err != nil {
			return Value{}, err
		}
	}
}

// parsePower handles **, folding left to right.
func (p *Parser) parsePower(depth int) (Value, error) {
	result, err := p.parseAtom(depth)
	if err != nil {
		return Value{}, err
	}
	for p.peek().Type == POWER {
		op := p.advance()
		if err := p.checkOperand(op); err != nil {
			return Value{}, err
		}
		right, err := p.parseAtom(depth)
		if err != nil {
			return Value{}, err
		}
		if result, err = p.apply(op, result, right); err != nil {
			return Value{}, err
		}
	}
	return result, nil
}

// checkAdjacent rejects an operand that directly follows a real literal.
func (p *Parser) checkAdjacent(literal Token) error {
	next := p.peek()
	if next.Type != IDENTIFIER && next.Type != NUMBER && next.Type != LBRACKET {
		return nil
	}
	start, end := literal.End, next.Start
	if end <= start {
		start, end = next.Start, next.End
	}
	return p.fail(msgMissingOperator, start, end)
}

// parseAtom handles a signed variable, real literal or bracketed expression.
func (p *Parser) parseAtom(depth int) (Value, error) {
	tok := p.peek()
	switch tok.Type {
	case RBRACKET:
		return Value{}, p.fail(msgUnmatchedBracket, tok.Start, tok.End)
	case LPAREN, RPAREN, LBRACE, RBRACE:
		return Value{}, p.fail(fmt.Sprintf(msgInvalidBracket, tok.Lexeme), tok.Start, tok.End)
	}

	sign := 1.0
	if tok.Type == PLUS || tok.Type == MINUS {
		if p.advance().Type == MINUS {
			sign = -1
		}
		tok = p.peek()
	}

	switch {
	case tok.Type == IDENTIFIER:
		p.advance()
		if !p.declared[tok.Lexeme] {
			// Substitute zero so evaluation can finish; the run has already failed.
			p.report(fmt.Sprintf(msgUndeclared, tok.Lexeme), tok.Start, tok.End)
			return RealValue(0), nil
		}
		return p.symbols[tok.Lexeme].scale(sign), nil

	case tok.Type == NUMBER && p.peekAt(1).Type == DOT:
		v, err := p.parseReal()
		if err != nil {
			return Value{}, err
		}
		if err := p.checkAdjacent(p.last()); err != nil {
			return Value{}, err
		}
		return v.scale(sign), nil

	case tok.Type == NUMBER:
		return Value{}, p.fail(msgIntegerInExpr, tok.Start, tok.End)

	case tok.Type == LBRACKET:
		if depth >= maxBracketDepth {
			return Value{}, p.fail(msgNestingTooDeep, tok.Start, tok.End)
		}
		p.advance()
		v, err := p.parseExpression(depth + 1)
		if err != nil {
			return Value{}, err
		}
		if closing := p.peek(); closing.Type != RBRACKET {
			return Value{}, p.fail(msgBracketExpected, closing.Start, closing.End)
		}
		p.advance()
		return v.scale(sign), nil

	case tok.Type == DOT:
		return Value{}, p.fail(msgIntegerExpected, tok.Start, tok.End)

	case tok.Type == EOF:
		return Value{}, p.fail(msgUnexpectedEOF, tok.Start, tok.End)
	}
	return Value{}, p.fail(fmt.Sprintf(msgUnexpectedToken, tok.Lexeme), tok.Start, tok.End)
}
