package parser

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/token"
)

// declaration = funDecl | varDecl | statement
//
// On a parse error inside a declaration or statement, the parser
// synchronizes to the next likely statement boundary and returns nil for
// this declaration so that Parse can keep going and surface every error in
// one pass.
func (p *Parser) declaration() ast.Stmt {
	stmt, ok := p.declarationOrError()
	if !ok {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, bool) {
	switch {
	case p.match(token.Fun):
		return p.functionDeclaration("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// functionDeclaration parses `fun name(p1, ..., pN) { body }`. kind is used
// only in error messages ("function"); spec.md's grammar has no other
// function-like construct, but keeping the parameter mirrors how the
// teacher corpus names shared helpers after their error-message role.
func (p *Parser) functionDeclaration(kind string) (ast.Stmt, bool) {
	name, ok := p.consume(token.Identifier, "Expect "+kind+" name.")
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LeftParen, "Expect '(' after "+kind+" name."); !ok {
		return nil, false
	}

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), "Can't have more than 10 parameters.")
				return nil, false
			}
			param, ok := p.consume(token.Identifier, "Expect parameter name.")
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RightParen, "Expect ')' after parameters."); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LeftBrace, "Expect '{' before "+kind+" body."); !ok {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, true
}

func (p *Parser) varDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.Identifier, "Expect variable name.")
	if !ok {
		return nil, false
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.Semicolon, "Expect ';' after variable declaration."); !ok {
		return nil, false
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, true
}

// statement = forStmt | ifStmt | printStmt | returnStmt | whileStmt | block | exprStmt
func (p *Parser) statement() (ast.Stmt, bool) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		stmts, ok := p.block()
		if !ok {
			return nil, false
		}
		return &ast.BlockStmt{Statements: stmts}, true
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` at parse time into
// `{ init; while (cond) { body; incr; } }`, per spec.md §4.2. An omitted
// condition becomes the literal `true`; an omitted init or incr is simply
// elided from the desugared block.
func (p *Parser) forStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'for'."); !ok {
		return nil, false
	}

	var initializer ast.Stmt
	var ok bool
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer, ok = p.varDeclaration()
		if !ok {
			return nil, false
		}
	default:
		initializer, ok = p.expressionStatement()
		if !ok {
			return nil, false
		}
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.Semicolon, "Expect ';' after loop condition."); !ok {
		return nil, false
	}

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RightParen, "Expect ')' after for clauses."); !ok {
		return nil, false
	}

	body, ok := p.statement()
	if !ok {
		return nil, false
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body, true
}

func (p *Parser) ifStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'if'."); !ok {
		return nil, false
	}
	condition, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RightParen, "Expect ')' after if condition."); !ok {
		return nil, false
	}

	thenBranch, ok := p.statement()
	if !ok {
		return nil, false
	}
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, ok = p.statement()
		if !ok {
			return nil, false
		}
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, true
}

func (p *Parser) printStatement() (ast.Stmt, bool) {
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.Semicolon, "Expect ';' after value."); !ok {
		return nil, false
	}
	return &ast.PrintStmt{Expression: value}, true
}

func (p *Parser) returnStatement() (ast.Stmt, bool) {
	keyword := p.previous()
	var value ast.Expr
	var ok bool
	if !p.check(token.Semicolon) {
		value, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.Semicolon, "Expect ';' after return value."); !ok {
		return nil, false
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, true
}

func (p *Parser) whileStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LeftParen, "Expect '(' after 'while'."); !ok {
		return nil, false
	}
	condition, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RightParen, "Expect ')' after condition."); !ok {
		return nil, false
	}
	body, ok := p.statement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, true
}

func (p *Parser) block() ([]ast.Stmt, bool) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, ok := p.consume(token.RightBrace, "Expect '}' after block."); !ok {
		return nil, false
	}
	return stmts, true
}

func (p *Parser) expressionStatement() (ast.Stmt, bool) {
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.Semicolon, "Expect ';' after expression."); !ok {
		return nil, false
	}
	return &ast.ExpressionStmt{Expression: expr}, true
}
