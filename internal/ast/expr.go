// Package ast defines the two parallel node hierarchies spec.md §3 and §4
// describe: expressions and statements. Both use the visitor pattern (as
// the teacher corpus's parser/node.go does for its own AST) so that the
// resolver and interpreter can each walk the tree without the tree knowing
// about either of them.
//
// Every Expr carries a stable ID, assigned once at construction by a
// package-level counter, distinct from its structural content. The resolver
// uses this ID — not the expression's value or a recomputed hash — as the
// key into its scope-distance table, matching spec.md §3's invariant that
// node identity and node content are separate concepts.
package ast

import "github.com/akashmaji946/golox/internal/token"

var nextID int

func newID() int {
	nextID++
	return nextID
}

// Expr is the common interface for every expression node.
type Expr interface {
	ID() int
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches over every expression node kind. Both the resolver
// and the interpreter implement it; the resolver never returns a real
// value (it returns nil, error) while the interpreter returns the evaluated
// object.Value.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (interface{}, error)
	VisitUnary(e *Unary) (interface{}, error)
	VisitBinary(e *Binary) (interface{}, error)
	VisitLogical(e *Logical) (interface{}, error)
	VisitGrouping(e *Grouping) (interface{}, error)
	VisitVariable(e *Variable) (interface{}, error)
	VisitAssign(e *Assign) (interface{}, error)
	VisitCall(e *Call) (interface{}, error)
}

// exprID is embedded into every concrete expression to give it a stable
// identity without repeating the ID()/newID() boilerplate on each type.
type exprID struct{ id int }

func (e exprID) ID() int { return e.id }

// Literal is a literal value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	exprID
	Value interface{} // float64, string, bool, or nil
}

// NewLiteral constructs a Literal with a fresh stable ID.
func NewLiteral(value interface{}) *Literal {
	return &Literal{exprID: exprID{newID()}, Value: value}
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// Unary is a prefix operator expression: `-x` or `!x`.
type Unary struct {
	exprID
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{exprID: exprID{newID()}, Operator: operator, Right: right}
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	exprID
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{exprID: exprID{newID()}, Left: left, Operator: operator, Right: right}
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// Logical is `and`/`or`, kept separate from Binary because both
// short-circuit and return the operand itself rather than a coerced bool.
type Logical struct {
	exprID
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{exprID: exprID{newID()}, Left: left, Operator: operator, Right: right}
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogical(e) }

// Grouping is a parenthesized expression: `(expr)`.
type Grouping struct {
	exprID
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{exprID: exprID{newID()}, Expression: expression}
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGrouping(e) }

// Variable is a reference to a named binding: `x`.
type Variable struct {
	exprID
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprID: exprID{newID()}, Name: name}
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// Assign is `name = value`, an expression (it evaluates to the assigned
// value) rather than a statement.
type Assign struct {
	exprID
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprID: exprID{newID()}, Name: name, Value: value}
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssign(e) }

// Call is a function invocation: `callee(args...)`. Paren is the closing
// `)` token, kept so runtime arity/callability errors can report the call
// site's line.
type Call struct {
	exprID
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprID: exprID{newID()}, Callee: callee, Paren: paren, Args: args}
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCall(e) }
