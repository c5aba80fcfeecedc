// Package environment implements the lexical environment chain spec.md §3
// and §4.3 describe: a linked chain of name-to-value frames supporting
// scoped define/get/assign and the resolver-driven, distance-indexed
// get-at/assign-at fast path.
//
// Environments form a DAG, not a stack: a closure can keep an ancestor
// frame alive after the block that created it has exited, by holding a
// reference to it from a Function value (see interpreter/function.go). Go's
// garbage collector reclaims the resulting cycles (a frame's bindings can
// hold a function that in turn points back at the frame) once nothing roots
// them — spec.md §9's cyclic-reference note is resolved by leaning on the
// host runtime exactly as the note's strategy (c) suggests.
package environment

import "github.com/akashmaji946/golox/internal/object"

// Environment is one frame in the lexical scope chain.
type Environment struct {
	enclosing *Environment
	values    map[string]object.Value
}

// New creates a fresh frame enclosed by parent. Pass nil to create the
// outermost (global) frame.
func New(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: make(map[string]object.Value)}
}

// Enclosing returns the parent frame, or nil for the global frame.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define unconditionally inserts or overwrites a binding in this frame.
// Redeclaring a name in the same scope is allowed (the REPL relies on this
// to let a user redefine a variable across lines without restarting).
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get resolves name dynamically: check this frame, then recurse outward.
// Reaching the outermost frame without finding the name returns
// (nil, false) rather than Nil; the interpreter turns that into an
// "Undefined variable" RuntimeError.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding, searching outward from this frame.
// Returns false if the name is unbound anywhere in the chain; the caller
// translates that into a RuntimeError carrying the offending token's line.
func (e *Environment) Assign(name string, value object.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// Ancestor walks distance frames outward from this one. It never falls
// back past the target frame; callers (GetAt/AssignAt) own the assumption,
// guaranteed by the resolver, that the frame at that distance exists and
// owns the binding.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the frame distance steps outward, with no
// further fallback. Used by the interpreter once the resolver has attached
// a distance to a Variable expression.
func (e *Environment) GetAt(distance int, name string) object.Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt writes name directly into the frame distance steps outward.
func (e *Environment) AssignAt(distance int, name string, value object.Value) {
	e.Ancestor(distance).values[name] = value
}
