package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/internal/lexer"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
)

// run scans, parses, resolves, and interprets src against a fresh
// Interpreter, returning everything `print` wrote as newline-joined lines.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, err := lexer.ScanTokens(src)
	require.NoError(t, err)

	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	distances, err := resolver.Resolve(stmts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	interp := New(&buf, distances)
	if err := interp.Interpret(stmts); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestInterpret_Arithmetic(t *testing.T) {
	out, err := run(t, "print 1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestInterpret_BlockScopeDoesNotLeak(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, lines(out))
}

func TestInterpret_ClosureCapturesAndMutatesOwnState(t *testing.T) {
	src := `
fun make() {
  var c = 0;
  fun inc() {
    c = c + 1;
    return c;
  }
  return inc;
}
var f = make();
print f();
print f();
print f();
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestInterpret_WhileLoop(t *testing.T) {
	src := `var i = 0; while (i < 3) { print i; i = i + 1; }`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpret_RecursiveFibonacci(t *testing.T) {
	src := `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"55"}, lines(out))
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `var a = "hi"; print a + " there";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi there"}, lines(out))
}

func TestInterpret_ForWhileDesugarEquivalence(t *testing.T) {
	forOut, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)

	whileOut, err := run(t, `{ var i = 0; while (i < 3) { print i; i = i + 1; } }`)
	require.NoError(t, err)

	assert.Equal(t, lines(whileOut), lines(forOut))
}

func TestInterpret_ShortCircuitOr(t *testing.T) {
	src := `
fun sideEffect() { print "called"; return true; }
if (true or sideEffect()) { print "ok"; }
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, lines(out), "sideEffect must not run once `or`'s left side is truthy")
}

func TestInterpret_ShortCircuitAnd(t *testing.T) {
	src := `
fun sideEffect() { print "called"; return true; }
if (false and sideEffect()) { print "unreachable"; }
print "after";
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"after"}, lines(out), "sideEffect must not run once `and`'s left side is falsy")
}

func TestInterpret_FunctionPrintsAsFnName(t *testing.T) {
	out, err := run(t, `fun greet() { print "hi"; } print greet;`)
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 1)
	assert.Equal(t, "fn <greet>", ls[0])
}

func TestInterpret_NumberPrintsWithoutTrailingZero(t *testing.T) {
	out, err := run(t, `print 4 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines(out))
}

func TestInterpret_ReadingOwnInitializerIsResolutionError(t *testing.T) {
	src := `
var a = "outer";
{
  var a = a;
}
`
	_, err := run(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestInterpret_TypeMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `1 + "x";`)
	require.Error(t, err)
}

func TestInterpret_CallingUndefinedNameIsError(t *testing.T) {
	_, err := run(t, `foo();`)
	require.Error(t, err)
}

func TestInterpret_CallingNonFunctionIsError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions.")
}

func TestInterpret_ArityMismatchIsError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}
