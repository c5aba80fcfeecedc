package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/object"
)

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := i.evaluate(s.Expression)
	return err
}

// VisitPrintStmt renders the value per spec.md §4.5 (nil/bool/number with
// trailing .0 stripped/string verbatim/function as "fn <name>") and writes
// a single line of output.
func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, v.String())
	return nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value object.Value = object.Nil{}
	if s.Initializer != nil {
		v, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.env.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return i.executeBlock(s.Statements, environment.New(i.env))
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if object.IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := NewFunction(s, i.env)
	i.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value object.Value = object.Nil{}
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}
