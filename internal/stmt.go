package internal

type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitDeclarationStmt(stmt *declarationStmt) R
	visitAssignStmt(stmt *assignStmt) R
	visitPrintStmt(stmt *printStmt) R
}

type declarationStmt struct {
	name *token
}

func (s *declarationStmt) accept(visitor stmtVisitor) R {
	return visitor.visitDeclarationStmt(s)
}

type assignStmt struct {
	name  *token
	value expr
}

func (s *assignStmt) accept(visitor stmtVisitor) R {
	return visitor.visitAssignStmt(s)
}

type printStmt struct {
	keyword *token
	value   expr
}

func (s *printStmt) accept(visitor stmtVisitor) R {
	return visitor.visitPrintStmt(s)
}
