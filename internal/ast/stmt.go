package ast

import "github.com/akashmaji946/golox/internal/token"

// Stmt is the common interface for every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor dispatches over every statement node kind. Unlike ExprVisitor,
// statements never produce a value for the caller — side effects (output,
// environment mutation) are carried by the interpreter's own state, and a
// taken `return` travels up through the error result as the interpreter's
// returnSignal sentinel.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its rendered value as a line
// of output.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, with an optional initializer. Initializer is
// nil when the declaration has none (`var x;`), in which case the variable
// is bound to Nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` sequence of statements, which run together in
// one fresh child environment of whatever environment was current when
// the block was entered.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is a conditional; Else is nil when there is no else-branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is a condition-guarded loop. The parser also builds WhileStmt
// as the desugaring target for `for` loops (wrapped in a BlockStmt when the
// loop has an initializer) — see parser.forStatement.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function: `fun name(params) { body }`.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call. Value is nil
// when the statement is a bare `return;`, in which case the call evaluates
// to Nil.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }
