package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/object"
	"github.com/akashmaji946/golox/internal/token"
)

func (i *Interpreter) VisitLiteral(e *ast.Literal) (interface{}, error) {
	return literalToValue(e.Value), nil
}

func literalToValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.Nil{}
	case bool:
		return object.Bool{Value: val}
	case float64:
		return object.Number{Value: val}
	case string:
		return object.String{Value: val}
	default:
		return object.Nil{}
	}
}

func (i *Interpreter) VisitGrouping(e *ast.Grouping) (interface{}, error) {
	return i.evaluate(e.Expression)
}

func (i *Interpreter) VisitUnary(e *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(object.Number)
		if !ok {
			return nil, runtimeErrorAtLine(e.Operator.Line, "Operand must be a number.")
		}
		return object.Number{Value: -n.Value}, nil
	case token.Bang:
		return object.Bool{Value: !object.IsTruthy(right)}, nil
	}
	return nil, runtimeErrorAtLine(e.Operator.Line, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) VisitBinary(e *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus, token.Slash, token.Star:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, runtimeErrorAtLine(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Minus:
			return object.Number{Value: ln.Value - rn.Value}, nil
		case token.Slash:
			return object.Number{Value: ln.Value / rn.Value}, nil
		case token.Star:
			return object.Number{Value: ln.Value * rn.Value}, nil
		}
	case token.Plus:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtimeErrorAtLine(e.Operator.Line, "Operands must be two numbers or two strings.")
	case token.Greater, token.GreaterEq, token.Less, token.LessEqual:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, runtimeErrorAtLine(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Greater:
			return object.Bool{Value: ln.Value > rn.Value}, nil
		case token.GreaterEq:
			return object.Bool{Value: ln.Value >= rn.Value}, nil
		case token.Less:
			return object.Bool{Value: ln.Value < rn.Value}, nil
		case token.LessEqual:
			return object.Bool{Value: ln.Value <= rn.Value}, nil
		}
	case token.EqualEqual:
		return object.Bool{Value: object.Equal(left, right)}, nil
	case token.BangEqual:
		return object.Bool{Value: !object.Equal(left, right)}, nil
	}
	return nil, runtimeErrorAtLine(e.Operator.Line, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

// VisitLogical evaluates Left first and short-circuits without evaluating
// Right whenever the operator already determines the result; the value
// returned is whichever operand decided the outcome, not a coerced bool.
func (i *Interpreter) VisitLogical(e *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == token.Or {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitVariable(e *ast.Variable) (interface{}, error) {
	return i.lookUpVariable(e.Name.Lexeme, e.ID(), e.Name.Line)
}

func (i *Interpreter) VisitAssign(e *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.distances[e.ID()]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if !i.globals.Assign(e.Name.Lexeme, value) {
		return nil, runtimeErrorAtLine(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) VisitCall(e *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorAtLine(e.Paren.Line, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorAtLine(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}
