package internal

import (
	"fmt"
)

type lexer struct {
	state *compileState

	source  string
	start   int
	current int
	line    int
	column  int

	startLine   int
	startColumn int
}

var keywords = map[string]tokenType{
	"int":   tkKwInt,
	"print": tkKwPrint,
}

func newLexer(state *compileState) *lexer {
	return &lexer{
		state:  state,
		source: state.source,
		line:   1,
		column: 1,
	}
}

func (l *lexer) scan() {
	for {
		l.skipWhitespaceAndComments()
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column
		if l.isAtEnd() {
			l.state.tokens = append(l.state.tokens, token{
				token:  tkEOF,
				lexeme: "EOF",
				line:   l.startLine,
				column: l.startColumn,
			})
			return
		}
		l.scanToken()
	}
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '+':
		l.emit(tkPlus)
	case '-':
		l.emit(tkMinus)
	case '*':
		l.emit(tkStar)
	case '/':
		l.emit(tkSlash)
	case '=':
		l.emit(tkAssign)
	case ';':
		l.emit(tkSemicolon)
	case '(':
		l.emit(tkLeftParen)
	case ')':
		l.emit(tkRightParen)
	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.fatalError(compileError{
				kind:   errKindLexical,
				err:    fmt.Errorf("Unexpected character '%c'", c),
				line:   l.startLine,
				column: l.startColumn,
			})
		}
	}
}

// skipWhitespaceAndComments consumes any interleaving of whitespace and
// //-to-end-of-line comments before the next token
func (l *lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		switch c := l.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && l.peekNext() == '/':
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// number consumes a maximal digit run. The lexeme stays an opaque string,
// it is never parsed to a numeric value.
func (l *lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(tkNumber)
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	if keyword, ok := keywords[l.source[l.start:l.current]]; ok {
		l.emit(keyword)
		return
	}
	l.emit(tkIdentifier)
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *lexer) peek() byte {
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk tokenType) {
	l.state.tokens = append(l.state.tokens, token{
		token:  tk,
		lexeme: l.source[l.start:l.current],
		line:   l.startLine,
		column: l.startColumn,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
