/*
File    : step/parser/parser_test.go
Project : Step interpreter
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne parses a source string expected to hold exactly one statement.
func parseOne(t *testing.T, src string) StatementNode {
	t.Helper()
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.Lex.HasErrors(), "lex errors for %q: %v", src, p.Lex.Errors)
	require.False(t, p.HasErrors(), "parse errors for %q: %v", src, p.Errors)
	require.Len(t, root.Statements, 1, "source: %s", src)
	return root.Statements[0]
}

// TestParser_Precedence verifies the precedence cascade through the
// Literal() re-rendering of parsed expressions
func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "1 + 2 * 3"},
		{"(1 + 2) * 3;", "(1 + 2) * 3"},
		{"1 * 2 + 3;", "1 * 2 + 3"},
		{"-a * b;", "-a * b"},
		{"a + b - c;", "a + b - c"},
		{"a * b / c % d;", "a * b / c % d"},
		{"a < b + 1;", "a < b + 1"},
		{"a == b and c != d;", "a == b and c != d"},
		{"a and b or c;", "a and b or c"},
		{"x = y = 1;", "x = y = 1"},
		{"a[0] = a[1] + 1;", "a[0] = a[1] + 1"},
		{"f(1, 2 + 3);", "f(1, 2 + 3)"},
		{"m[i][j];", "m[i][j]"},
		{"f(x)(y);", "f(x)(y)"},
		{"-a[0];", "-a[0]"},
	}

	for _, tt := range tests {
		stmt := parseOne(t, tt.input)
		assert.Equal(t, tt.expected, stmt.Literal(), "input: %s", tt.input)
	}
}

// TestParser_AssociativityShapes verifies associativity through node shapes
func TestParser_AssociativityShapes(t *testing.T) {
	// a - b - c parses as (a - b) - c
	stmt := parseOne(t, "a - b - c;")
	sub, ok := stmt.(*BinaryExpressionNode)
	require.True(t, ok)
	_, leftIsSub := sub.Left.(*BinaryExpressionNode)
	assert.True(t, leftIsSub, "subtraction should associate left")

	// x = y = 1 parses as x = (y = 1)
	stmt = parseOne(t, "x = y = 1;")
	assign, ok := stmt.(*AssignmentExpressionNode)
	require.True(t, ok)
	_, rightIsAssign := assign.Right.(*AssignmentExpressionNode)
	assert.True(t, rightIsAssign, "assignment should associate right")

	// a and b or c parses as (a and b) or c: one shared precedence level
	stmt = parseOne(t, "a and b or c;")
	or, ok := stmt.(*BooleanExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "or", or.Operation.Literal)
	left, ok := or.Left.(*BooleanExpressionNode)
	require.True(t, ok)
	assert.Equal(t, "and", left.Operation.Literal)
}

// TestParser_Statements verifies the statement forms parse into the right
// node types
func TestParser_Statements(t *testing.T) {
	stmt := parseOne(t, ";")
	assert.IsType(t, &EmptyStatementNode{}, stmt)

	stmt = parseOne(t, "if (x) { y = 1; } else { y = 2; }")
	ifNode, ok := stmt.(*IfStatementNode)
	require.True(t, ok)
	assert.Len(t, ifNode.ThenBlock.Statements, 1)
	assert.Len(t, ifNode.ElseBlock.Statements, 1)

	stmt = parseOne(t, "if (x) { }")
	ifNode, ok = stmt.(*IfStatementNode)
	require.True(t, ok)
	assert.Empty(t, ifNode.ThenBlock.Statements)
	assert.Empty(t, ifNode.ElseBlock.Statements)

	stmt = parseOne(t, "while (i < 10) { i = i + 1; break; continue; }")
	whileNode, ok := stmt.(*WhileStatementNode)
	require.True(t, ok)
	require.Len(t, whileNode.Body.Statements, 3)
	assert.IsType(t, &BreakStatementNode{}, whileNode.Body.Statements[1])
	assert.IsType(t, &ContinueStatementNode{}, whileNode.Body.Statements[2])

	stmt = parseOne(t, "return;")
	ret, ok := stmt.(*ReturnStatementNode)
	require.True(t, ok)
	assert.Nil(t, ret.Expr)

	stmt = parseOne(t, "return a + b;")
	ret, ok = stmt.(*ReturnStatementNode)
	require.True(t, ok)
	require.NotNil(t, ret.Expr)

	stmt = parseOne(t, "def add(a, b) { return a + b; }")
	def, ok := stmt.(*FunctionStatementNode)
	require.True(t, ok)
	assert.Equal(t, "add", def.FuncName.Name)
	require.Len(t, def.FuncParams, 2)
	assert.Equal(t, "a", def.FuncParams[0].Name)
	assert.Equal(t, "b", def.FuncParams[1].Name)
	assert.Len(t, def.FuncBody.Statements, 1)

	stmt = parseOne(t, "def nop() { }")
	def, ok = stmt.(*FunctionStatementNode)
	require.True(t, ok)
	assert.Empty(t, def.FuncParams)
	assert.Empty(t, def.FuncBody.Statements)
}

// TestParser_ListLiterals verifies list literal parsing
func TestParser_ListLiterals(t *testing.T) {
	stmt := parseOne(t, "[];")
	list, ok := stmt.(*ListLiteralExpressionNode)
	require.True(t, ok)
	assert.Empty(t, list.Elements)

	stmt = parseOne(t, "[1, 2.5, \"three\", [4], None];")
	list, ok = stmt.(*ListLiteralExpressionNode)
	require.True(t, ok)
	require.Len(t, list.Elements, 5)
	assert.IsType(t, &IntegerLiteralExpressionNode{}, list.Elements[0])
	assert.IsType(t, &FloatLiteralExpressionNode{}, list.Elements[1])
	assert.IsType(t, &StringLiteralExpressionNode{}, list.Elements[2])
	assert.IsType(t, &ListLiteralExpressionNode{}, list.Elements[3])
	assert.IsType(t, &NoneLiteralExpressionNode{}, list.Elements[4])
}

// TestParser_Errors verifies that malformed programs are rejected with
// collected errors rather than panics
func TestParser_Errors(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"a < b < c;"},        // chained comparison
		{"a == b == c;"},      // chained equality
		{"1 + 2"},             // missing semicolon
		{"if x { }"},          // missing parentheses
		{"if (x) y = 1;"},     // missing braces
		{"while (x) { "},      // unterminated block
		{"def f(a, a) { }"},   // duplicate parameter
		{"def f(1) { }"},      // non-identifier parameter
		{"1 = 2;"},            // invalid assignment target
		{"f(x) = 1;"},         // invalid assignment target
		{"[1, 2;"},            // unterminated list literal
		{"x = ;"},             // missing right-hand side
		{"else { }"},          // stray else
	}

	for _, tt := range tests {
		p := NewParser(tt.input)
		p.Parse()
		assert.True(t, p.HasErrors(), "expected parse errors for %q", tt.input)
	}
}

// TestParser_ParenthesizedComparisonAllowed verifies that parenthesizing
// a comparison allows it as a comparison operand
func TestParser_ParenthesizedComparisonAllowed(t *testing.T) {
	p := NewParser("(a < b) == c;")
	p.Parse()
	assert.False(t, p.HasErrors(), "errors: %v", p.Errors)
}
