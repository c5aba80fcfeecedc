package resolver

import "github.com/akashmaji946/golox/internal/ast"

func (r *Resolver) VisitLiteral(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnary(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinary(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogical(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGrouping(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

// VisitVariable resolves a name read. Referencing a name that is declared
// but not yet defined in the *innermost* scope (e.g. `var a = a;`) is a
// ResolutionError: the name exists as a key but its own initializer is
// still being evaluated.
func (r *Resolver) VisitVariable(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
			r.errorAt(e.Name.Line, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssign(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID(), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitCall(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}
