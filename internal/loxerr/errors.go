// Package loxerr defines the error variants produced by each stage of the
// pipeline (scanner, parser, resolver, interpreter). Every variant renders
// to the single-line user-visible format spec.md §7 requires:
//
//	[line N] Error<where>: message
//
// where "where" is optional context (" at end", " at '<lexeme>'").
package loxerr

import "fmt"

// SyntaxError is produced by the scanner when it encounters a character it
// cannot tokenize, or an unterminated string literal.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is produced by the parser when a required token is missing or
// a construct is otherwise malformed. Where, when non-empty, is rendered
// immediately after "Error" (e.g. " at end", " at 'foo'").
type ParseError struct {
	Line    int
	Where   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// AtToken builds the " at '<lexeme>'" / " at end" context string for a
// ParseError, matching the EOF-vs-lexeme distinction spec.md §7 calls out.
func AtToken(lexeme string, isEOF bool) string {
	if isEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", lexeme)
}

// ResolutionError is produced by the static resolver pre-pass: reading a
// local variable from its own initializer, or a top-level `return`.
type ResolutionError struct {
	Line    int
	Message string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError is produced during tree-walking evaluation: type mismatches,
// undefined variables, arity mismatches, and calls to non-callables.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Errors is a collection of errors gathered across a pass that tolerates
// multiple failures before surfacing them together (the scanner and parser
// both do this, per spec.md §4.2's "does not abort the run" tolerance).
type Errors []error

func (es Errors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	msg := ""
	for i, e := range es {
		if i > 0 {
			msg += "\n"
		}
		msg += e.Error()
	}
	return msg
}
