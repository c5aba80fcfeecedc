package interpreter

import "github.com/akashmaji946/golox/internal/object"

// returnSignal is the sentinel spec.md §4.5 allows for unwinding a `return`
// to its nearest enclosing function call: it satisfies the error interface
// so it can propagate through the same (error) return channel every
// statement execution method already uses, without a second control-flow
// path through the interpreter. Function.Call is the only place that
// inspects and consumes it; everywhere else it just propagates upward like
// any other error, which is exactly what gives executeBlock's deferred
// restore its "correct on every exit path, including return" guarantee.
type returnSignal struct {
	value object.Value
}

func (r *returnSignal) Error() string {
	return "return outside of a function call"
}
