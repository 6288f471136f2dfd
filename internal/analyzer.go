package internal

import (
	"fmt"
)

type symbol struct {
	name         string
	declaredType string
}

// symbolTable maps declared variable names to their entries, flat for the
// whole program. order records declaration order for the report, the map
// itself carries no order guarantee.
type symbolTable struct {
	entries map[string]symbol
	order   []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{entries: make(map[string]symbol)}
}

func (t *symbolTable) define(name string) {
	t.entries[name] = symbol{name: name, declaredType: "int"}
	t.order = append(t.order, name)
}

func (t *symbolTable) declared(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// analyzer validates the program in a single left-to-right pass over the
// statement list, populating the symbol table as declarations appear. The
// AST is never rewritten.
type analyzer struct {
	state *compileState

	table *symbolTable
}

func (a *analyzer) analyze() {
	a.table = newSymbolTable()
	for _, s := range a.state.stmts {
		s.accept(a)
	}
	a.state.table = a.table
}

func (a *analyzer) visitDeclarationStmt(stmt *declarationStmt) R {
	name := stmt.name.lexeme
	if a.table.declared(name) {
		a.semanticError(errKindDuplicateDeclaration, stmt.name,
			fmt.Errorf("Duplicate declaration of '%s'.", name))
	}
	a.table.define(name)
	return nil
}

func (a *analyzer) visitAssignStmt(stmt *assignStmt) R {
	if !a.table.declared(stmt.name.lexeme) {
		a.semanticError(errKindUndeclaredVariable, stmt.name,
			fmt.Errorf("Assignment to undeclared variable '%s'.", stmt.name.lexeme))
	}
	return stmt.value.accept(a)
}

func (a *analyzer) visitPrintStmt(stmt *printStmt) R {
	return stmt.value.accept(a)
}

func (a *analyzer) visitNumberExpr(expr *numberExpr) R {
	return nil
}

func (a *analyzer) visitVariableExpr(expr *variableExpr) R {
	if !a.table.declared(expr.name.lexeme) {
		a.semanticError(errKindUndeclaredVariable, expr.name,
			fmt.Errorf("Variable '%s' used before declaration.", expr.name.lexeme))
	}
	return nil
}

func (a *analyzer) visitUnaryExpr(expr *unaryExpr) R {
	return expr.right.accept(a)
}

func (a *analyzer) visitBinaryExpr(expr *binaryExpr) R {
	expr.left.accept(a)
	return expr.right.accept(a)
}

func (a *analyzer) semanticError(kind errorKind, at *token, err error) {
	a.state.fatalError(compileError{
		kind:   kind,
		err:    err,
		lexeme: at.lexeme,
		line:   at.line,
		column: at.column,
	})
}
