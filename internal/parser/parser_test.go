package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, error) {
	t.Helper()
	tokens, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	return New(tokens).Parse()
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts, err := parse(t, "1 + 2 * 3;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	binary := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, "+", string(binary.Operator.Kind))

	_, leftIsLiteral := binary.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral, "left of + should be the literal 1")

	right := binary.Right.(*ast.Binary)
	assert.Equal(t, "*", string(right.Operator.Kind))
}

func TestParse_ComparisonAndEquality(t *testing.T) {
	stmts, err := parse(t, "1 < 2 == true;")
	require.NoError(t, err)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	eq := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, "==", string(eq.Operator.Kind))
	_, leftIsComparison := eq.Left.(*ast.Binary)
	assert.True(t, leftIsComparison)
}

func TestParse_LogicalShortCircuitNodes(t *testing.T) {
	stmts, err := parse(t, "true and false or true;")
	require.NoError(t, err)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	or := exprStmt.Expression.(*ast.Logical)
	assert.Equal(t, "or", string(or.Operator.Kind))
	and := or.Left.(*ast.Logical)
	assert.Equal(t, "and", string(and.Operator.Kind))
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, err := parse(t, "a = b = 3;")
	require.NoError(t, err)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expression.(*ast.Assign)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner := assign.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsParseError(t *testing.T) {
	_, err := parse(t, "1 + 2 = 3;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParse_CallExpression(t *testing.T) {
	stmts, err := parse(t, "add(1, 2);")
	require.NoError(t, err)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.Call)
	assert.Len(t, call.Args, 2)
	callee := call.Callee.(*ast.Variable)
	assert.Equal(t, "add", callee.Name.Lexeme)
}

func TestParse_ChainedCalls(t *testing.T) {
	stmts, err := parse(t, "makeAdder(1)(2);")
	require.NoError(t, err)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer := exprStmt.Expression.(*ast.Call)
	assert.Len(t, outer.Args, 1)
	_, inner := outer.Callee.(*ast.Call)
	assert.True(t, inner, "makeAdder(1) should itself be a Call expression")
}

func TestParse_FunctionDeclarationParamCap(t *testing.T) {
	src := "fun f(a, b, c, d, e, f, g, h, i, j, k) { print a; }"
	_, err := parse(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't have more than 10 parameters.")
}

func TestParse_FunctionDeclarationAtParamCap(t *testing.T) {
	src := "fun f(a, b, c, d, e, f, g, h, i, j) { print a; }"
	stmts, err := parse(t, src)
	require.NoError(t, err)
	fn := stmts[0].(*ast.FunctionStmt)
	assert.Len(t, fn.Params, 10)
}

func TestParse_ForLoopDesugarsToWhileInBlock(t *testing.T) {
	stmts, err := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer := stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Statements, 2)

	_, isVarDecl := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVarDecl, "first statement should be the desugared initializer")

	while := outer.Statements[1].(*ast.WhileStmt)
	_, conditionIsComparison := while.Condition.(*ast.Binary)
	assert.True(t, conditionIsComparison)

	body := while.Body.(*ast.BlockStmt)
	require.Len(t, body.Statements, 2)
	_, bodyIsPrint := body.Statements[0].(*ast.PrintStmt)
	assert.True(t, bodyIsPrint)
	_, incrementIsExprStmt := body.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, incrementIsExprStmt)
}

func TestParse_ForLoopOmittedConditionDefaultsToTrue(t *testing.T) {
	stmts, err := parse(t, "for (;;) print 1;")
	require.NoError(t, err)
	while := stmts[0].(*ast.WhileStmt)
	lit := while.Condition.(*ast.Literal)
	assert.Equal(t, true, lit.Value)
}

func TestParse_IfElse(t *testing.T) {
	stmts, err := parse(t, "if (true) print 1; else print 2;")
	require.NoError(t, err)
	ifStmt := stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifStmt.Else)
}

func TestParse_ReturnWithoutValue(t *testing.T) {
	stmts, err := parse(t, "fun f() { return; }")
	require.NoError(t, err)
	fn := stmts[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParse_MissingSemicolonRecoversAndReportsError(t *testing.T) {
	stmts, err := parse(t, "var a = 1\nvar b = 2;")
	require.Error(t, err)
	require.Len(t, stmts, 1, "parser should still recover and parse the second declaration")
	varB := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "b", varB.Name.Lexeme)
}

func TestParse_UnmatchedParenIsParseError(t *testing.T) {
	_, err := parse(t, "print (1 + 2;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expect ')' after expression.")
}
