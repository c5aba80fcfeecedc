package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/object"
)

// Callable is any object.Value that can appear as the callee of a Call
// expression.
type Callable interface {
	object.Value
	Arity() int
	Call(interp *Interpreter, args []object.Value) (object.Value, error)
}

// Function is a Lox function value: the declaration plus the environment
// that was current when the `fun` statement executed (its closure), per
// spec.md §4.5's closure contract.
type Function struct {
	declaration *ast.FunctionStmt
	closure     *environment.Environment
}

// NewFunction captures closure as the function's enclosing environment. A
// fresh Function is allocated every time a FunctionStmt executes; equality
// between Function values is decided by EqualTo (same declaration and same
// closure), not by which allocation they are.
func NewFunction(declaration *ast.FunctionStmt, closure *environment.Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

func (f *Function) Type() object.Type { return object.TypeFunction }

func (f *Function) String() string {
	return fmt.Sprintf("fn <%s>", f.declaration.Name.Lexeme)
}

func (f *Function) Inspect() string {
	return fmt.Sprintf("<func(%s)>", f.declaration.Name.Lexeme)
}

// EqualTo implements the reference-equality choice SPEC_FULL.md §9 records:
// two function values are equal iff they share both the same declaration
// node and the same captured closure, not merely the same Go allocation.
func (f *Function) EqualTo(other object.Value) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	return f.declaration == o.declaration && f.closure == o.closure
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call binds args to the declaration's parameters in a fresh environment
// enclosed by the function's captured closure — NOT the caller's current
// environment — then executes the body as a block in that frame. A
// returnSignal produced by the body supplies the call's result; falling
// off the end of the body evaluates to Nil.
func (f *Function) Call(interp *Interpreter, args []object.Value) (object.Value, error) {
	callEnv := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return object.Nil{}, nil
}
