// Package runner wires the four pipeline stages (scan, parse, resolve,
// interpret) into the single entrypoint spec.md §6 specifies:
// run(source) -> Result<(), Error>.
package runner

import (
	"io"

	"github.com/akashmaji946/golox/internal/interpreter"
	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
)

// Run scans, parses, resolves, and interprets source against a freshly
// constructed Interpreter, writing Print output to out. It stops at the
// first stage that reports an error: a scanner/parser error is returned
// without ever reaching resolution or interpretation.
func Run(source string, out io.Writer) error {
	return New(out).Run(source)
}

// Runner preserves an Interpreter across repeated Run calls, the
// convenience spec.md §6 notes a driver "may reasonably" choose over
// the reference's per-line fresh interpreter — the REPL uses this so
// `var`/`fun` declarations persist across separate lines of input.
type Runner struct {
	interp *interpreter.Interpreter
}

// New returns a Runner with an empty global environment.
func New(out io.Writer) *Runner {
	return &Runner{interp: interpreter.New(out, nil)}
}

// Run executes one chunk of source against the Runner's persistent
// Interpreter state.
func (r *Runner) Run(source string) error {
	tokens, err := lexer.ScanTokens(source)
	if err != nil {
		return err
	}

	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}

	distances, err := resolver.Resolve(stmts)
	if err != nil {
		return err
	}
	r.interp.SetDistances(distances)

	return r.interp.Interpret(stmts)
}
