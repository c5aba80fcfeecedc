package resolver

import "github.com/akashmaji946/golox/internal/ast"

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name.Lexeme)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	// A function's own name is declared and defined eagerly (unlike a var's
	// initializer) so the body can recurse into it by name.
	r.declare(s.Name.Lexeme)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s, functionKindFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if r.currentFunc == functionKindNone {
		r.errorAt(s.Keyword.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}
