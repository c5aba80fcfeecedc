// Package interpreter implements the tree-walking evaluator spec.md §4.5
// describes: given a resolved statement tree (see internal/resolver), it
// executes each statement in program order against a chain of
// internal/environment frames, producing output and, on error, a single
// *loxerr.RuntimeError.
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/loxerr"
	"github.com/akashmaji946/golox/internal/object"
)

// Interpreter walks a statement tree once per Interpret call, but is
// designed to be reused across calls (the REPL does this) so that
// top-level `var` and `fun` declarations persist across separate inputs.
type Interpreter struct {
	globals   *environment.Environment
	env       *environment.Environment
	distances map[int]int
	out       io.Writer
}

// New returns an Interpreter with an empty global environment, writing
// `print` output to out.
func New(out io.Writer, distances map[int]int) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{globals: globals, env: globals, distances: distances, out: out}
}

// SetDistances merges a resolver distance table into the one the
// Interpreter already holds, used by the REPL when each line is
// scanned/parsed/resolved independently but interpreted against one
// long-lived Interpreter. Entries from earlier lines are kept, so a
// function declared on one line still finds its locals when called on a
// later one; expression IDs are unique across parses, so entries never
// collide.
func (i *Interpreter) SetDistances(distances map[int]int) {
	if i.distances == nil {
		i.distances = make(map[int]int, len(distances))
	}
	for id, d := range distances {
		i.distances[id] = d
	}
}

// Interpret executes every statement in order, stopping at the first
// runtime error.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(i)
}

func (i *Interpreter) evaluate(e ast.Expr) (object.Value, error) {
	v, err := e.Accept(i)
	if err != nil {
		return nil, err
	}
	return v.(object.Value), nil
}

// executeBlock installs env as current, runs stmts, and restores the
// previous environment on every exit path — normal completion, an
// propagated returnSignal, or any other runtime error — so a closure's
// captured frame is never left wired to the wrong scope after a call
// unwinds partway through a block.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) lookUpVariable(name string, id int, line int) (object.Value, error) {
	if distance, ok := i.distances[id]; ok {
		return i.env.GetAt(distance, name), nil
	}
	v, ok := i.globals.Get(name)
	if !ok {
		return nil, runtimeErrorAtLine(line, "Undefined variable '%s'.", name)
	}
	return v, nil
}

func runtimeErrorAtLine(line int, format string, args ...interface{}) error {
	return &loxerr.RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
