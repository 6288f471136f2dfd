package internal

// parser builds the statement list from the token sequence with one token of
// lookahead. It performs no semantic checks, the first failed expectation is
// fatal and there is no recovery.
type parser struct {
	current int

	state *compileState
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		p.state.stmts = append(p.state.stmts, p.declaration())
	}
}

// declaration dispatches on the statement's first token: 'int' starts a
// declaration, an identifier or 'print' starts a statement
func (p *parser) declaration() stmt {
	if p.match(tkKwInt) {
		return p.varDeclaration()
	}
	if p.check(tkIdentifier) {
		return p.assignment()
	}
	if p.match(tkKwPrint) {
		return p.printStatement()
	}
	p.syntaxError(p.peek(), errExpectedDeclOrStmt)
	return nil
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentAfterInt)
	p.consume(tkSemicolon, errExpectedSemiAfterDecl)
	return &declarationStmt{name: name}
}

func (p *parser) assignment() stmt {
	name := p.advance()
	p.consume(tkAssign, errExpectedAssign)
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemiAfterAssign)
	return &assignStmt{name: name, value: value}
}

func (p *parser) printStatement() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemiAfterPrint)
	return &printStmt{keyword: keyword, value: value}
}

func (p *parser) expression() expr {
	return p.addition()
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkStar, tkSlash) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

// primary parses a number, a variable reference or a parenthesized
// expression. Groups build no node of their own, the inner expression is
// returned directly.
func (p *parser) primary() expr {
	if p.match(tkNumber) {
		return &numberExpr{value: p.previous()}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return expr
	}
	p.syntaxError(p.peek(), errExpectedPrimary)
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.syntaxError(p.peek(), err)
	return nil
}

func (p *parser) syntaxError(at *token, err error) {
	p.state.fatalError(compileError{
		kind:   errKindSyntax,
		err:    err,
		lexeme: at.lexeme,
		line:   at.line,
		column: at.column,
	})
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.check(tk) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}
