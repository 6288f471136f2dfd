package internal

import (
	"errors"
	"fmt"
)

// errorKind classifies a fatal diagnostic, one kind per rule that can fail
type errorKind int

const (
	errKindLexical errorKind = iota
	errKindSyntax
	errKindDuplicateDeclaration
	errKindUndeclaredVariable
)

func (k errorKind) String() string {
	switch k {
	case errKindLexical:
		return "Lexical error"
	case errKindSyntax:
		return "Syntax error"
	case errKindDuplicateDeclaration, errKindUndeclaredVariable:
		return "Semantic error"
	}
	return "Internal error"
}

// compileError is the single diagnostic that aborts a run. Every phase fails
// on its first violation, so a state never carries more than one.
type compileError struct {
	kind   errorKind
	err    error
	lexeme string
	line   int
	column int
}

func (e compileError) Error() string {
	if e.lexeme == "" {
		return fmt.Sprintf("%s at %d:%d -> %s", e.kind, e.line, e.column, e.err)
	}
	return fmt.Sprintf("%s at %d:%d near '%s': %s", e.kind, e.line, e.column, e.lexeme, e.err)
}

// compileState stores the artifacts handed from one phase to the next
type compileState struct {
	source string
	tokens []token
	stmts  []stmt

	table *symbolTable
	code  []string

	err *compileError
}

func newCompileState(source string) *compileState {
	return &compileState{source: source}
}

// fatalError records the diagnostic and unwinds to the pipeline boundary
func (s *compileState) fatalError(e compileError) {
	s.err = &e
	panic(e)
}

// Parser errors
var errExpectedDeclOrStmt = errors.New("Expected 'int' declaration or a statement (assignment/print).")
var errExpectedIdentAfterInt = errors.New("Expected identifier after 'int'.")
var errExpectedSemiAfterDecl = errors.New("Expected ';' after declaration.")
var errExpectedSemiAfterAssign = errors.New("Expected ';' after assignment.")
var errExpectedSemiAfterPrint = errors.New("Expected ';' after print.")
var errExpectedAssign = errors.New("Expected '=' in assignment.")
var errUnclosedParen = errors.New("Expected ')' to close '('.")
var errExpectedPrimary = errors.New("Expected NUMBER, IDENTIFIER, or '(' expression ')'.")
