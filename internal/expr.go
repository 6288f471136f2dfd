package internal

type R interface{}

type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitNumberExpr(expr *numberExpr) R
	visitVariableExpr(expr *variableExpr) R
	visitUnaryExpr(expr *unaryExpr) R
	visitBinaryExpr(expr *binaryExpr) R
}

type numberExpr struct {
	value *token
}

func (s *numberExpr) accept(visitor exprVisitor) R {
	return visitor.visitNumberExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) R {
	return visitor.visitVariableExpr(s)
}

type unaryExpr struct {
	operator *token
	right    expr
}

func (s *unaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitUnaryExpr(s)
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitBinaryExpr(s)
}
