package internal

import (
	"strconv"
)

// tacGen walks a validated program and emits three-address instructions.
// Expression visits return the operand holding the subexpression's value:
// a literal's text, a variable name, or a freshly minted temporary.
// Generation assumes a prior successful semantic pass and consults no table,
// an unknown variable would be emitted verbatim as a bare name.
type tacGen struct {
	state *compileState

	code        []string
	tempCounter int
}

func (g *tacGen) generate() {
	g.code = make([]string, 0)
	g.tempCounter = 0
	for _, s := range g.state.stmts {
		s.accept(g)
	}
	g.state.code = g.code
}

func (g *tacGen) newTemp() string {
	g.tempCounter++
	return "t" + strconv.Itoa(g.tempCounter)
}

func (g *tacGen) operand(e expr) string {
	return e.accept(g).(string)
}

func (g *tacGen) visitDeclarationStmt(stmt *declarationStmt) R {
	// declarations carry no runtime effect
	return nil
}

func (g *tacGen) visitAssignStmt(stmt *assignStmt) R {
	v := g.operand(stmt.value)
	g.code = append(g.code, stmt.name.lexeme+" = "+v)
	return nil
}

func (g *tacGen) visitPrintStmt(stmt *printStmt) R {
	v := g.operand(stmt.value)
	g.code = append(g.code, "print "+v)
	return nil
}

func (g *tacGen) visitNumberExpr(expr *numberExpr) R {
	return expr.value.lexeme
}

func (g *tacGen) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

// visitUnaryExpr canonicalizes unary minus as a subtraction from zero, even
// when the operand is a literal. Unary plus returns its operand untouched and
// consumes no temporary.
func (g *tacGen) visitUnaryExpr(expr *unaryExpr) R {
	r := g.operand(expr.right)
	if expr.operator.token == tkMinus {
		t := g.newTemp()
		g.code = append(g.code, t+" = 0 - "+r)
		return t
	}
	return r
}

func (g *tacGen) visitBinaryExpr(expr *binaryExpr) R {
	l := g.operand(expr.left)
	r := g.operand(expr.right)
	t := g.newTemp()
	g.code = append(g.code, t+" = "+l+" "+expr.operator.lexeme+" "+r)
	return t
}
