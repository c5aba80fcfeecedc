package parser

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/token"
)

// Precedence (lowest to highest), per spec.md §4.2:
// assignment -> or -> and -> equality -> comparison -> term -> factor -> unary -> call -> primary

func (p *Parser) expression() (ast.Expr, bool) {
	return p.assignment()
}

// assignment parses a right-associative `target = value` expression. If
// the parsed left-hand side isn't a Variable, this is a ParseError
// ("Invalid assignment target.") — the fix spec.md §9 recommends over the
// latent bug of silently dropping the assignment.
func (p *Parser) assignment() (ast.Expr, bool) {
	expr, ok := p.or()
	if !ok {
		return nil, false
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, ok := p.assignment()
		if !ok {
			return nil, false
		}

		if variable, isVar := expr.(*ast.Variable); isVar {
			return ast.NewAssign(variable.Name, value), true
		}
		p.errorAt(equals, "Invalid assignment target.")
		return nil, false
	}
	return expr, true
}

func (p *Parser) or() (ast.Expr, bool) {
	expr, ok := p.and()
	if !ok {
		return nil, false
	}
	for p.match(token.Or) {
		operator := p.previous()
		right, ok := p.and()
		if !ok {
			return nil, false
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) and() (ast.Expr, bool) {
	expr, ok := p.equality()
	if !ok {
		return nil, false
	}
	for p.match(token.And) {
		operator := p.previous()
		right, ok := p.equality()
		if !ok {
			return nil, false
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) equality() (ast.Expr, bool) {
	expr, ok := p.comparison()
	if !ok {
		return nil, false
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right, ok := p.comparison()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) comparison() (ast.Expr, bool) {
	expr, ok := p.term()
	if !ok {
		return nil, false
	}
	for p.match(token.Greater, token.GreaterEq, token.Less, token.LessEqual) {
		operator := p.previous()
		right, ok := p.term()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) term() (ast.Expr, bool) {
	expr, ok := p.factor()
	if !ok {
		return nil, false
	}
	for p.match(token.Minus, token.Plus) {
		operator := p.previous()
		right, ok := p.factor()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) factor() (ast.Expr, bool) {
	expr, ok := p.unary()
	if !ok {
		return nil, false
	}
	for p.match(token.Slash, token.Star) {
		operator := p.previous()
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, true
}

func (p *Parser) unary() (ast.Expr, bool) {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		return ast.NewUnary(operator, right), true
	}
	return p.call()
}

// call parses a primary expression followed by zero or more `(args)`
// call suffixes, e.g. `f()()` for a function returning a function.
func (p *Parser) call() (ast.Expr, bool) {
	expr, ok := p.primary()
	if !ok {
		return nil, false
	}
	for {
		if p.match(token.LeftParen) {
			expr, ok = p.finishCall(expr)
			if !ok {
				return nil, false
			}
		} else {
			break
		}
	}
	return expr, true
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, bool) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			arg, ok := p.expression()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, ok := p.consume(token.RightParen, "Expect ')' after arguments.")
	if !ok {
		return nil, false
	}
	return ast.NewCall(callee, paren, args), true
}

func (p *Parser) primary() (ast.Expr, bool) {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(false), true
	case p.match(token.True):
		return ast.NewLiteral(true), true
	case p.match(token.Nil):
		return ast.NewLiteral(nil), true
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal), true
	case p.match(token.Identifier):
		return ast.NewVariable(p.previous()), true
	case p.match(token.LeftParen):
		expr, ok := p.expression()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(token.RightParen, "Expect ')' after expression."); !ok {
			return nil, false
		}
		return ast.NewGrouping(expr), true
	}

	p.errorAt(p.peek(), "Expect expression.")
	return nil, false
}
