/*
File    : step/parser/node.go
Project : Step interpreter
*/
package parser

import (
	"strings"

	"github.com/step-lang/step/lexer"
)

// Node: base interface for all nodes of the AST
// Literal(): returns the source-shaped string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Every expression is also a statement (an expression statement).
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
type RootNode struct {
	Statements []StatementNode // every top-level statement of the program
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var b strings.Builder
	for _, stmt := range root.Statements {
		b.WriteString(stmt.Literal())
		b.WriteString("\n")
	}
	return b.String()
}

// IntegerLiteralExpressionNode: represents an integer number literal
// Example: 42, 0, 007
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The parsed integer value
}

func (node *IntegerLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *IntegerLiteralExpressionNode) Statement()      {}
func (node *IntegerLiteralExpressionNode) Expression()     {}

// FloatLiteralExpressionNode: represents a floating-point number literal
// Example: 3.14, 2., 0.5
type FloatLiteralExpressionNode struct {
	Token lexer.Token // The float token with its literal text
	Value float64     // The parsed float value
}

func (node *FloatLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *FloatLiteralExpressionNode) Statement()      {}
func (node *FloatLiteralExpressionNode) Expression()     {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token; Literal holds the raw contents
	Value string      // The string contents (no quotes, no escapes)
}

func (node *StringLiteralExpressionNode) Literal() string { return "\"" + node.Token.Literal + "\"" }
func (node *StringLiteralExpressionNode) Statement()      {}
func (node *StringLiteralExpressionNode) Expression()     {}

// NoneLiteralExpressionNode: represents the None literal
type NoneLiteralExpressionNode struct {
	Token lexer.Token // The None keyword token
}

func (node *NoneLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *NoneLiteralExpressionNode) Statement()      {}
func (node *NoneLiteralExpressionNode) Expression()     {}

// IdentifierExpressionNode: represents a variable or function identifier
// Example: x, count, matmul
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier name
}

func (node *IdentifierExpressionNode) Literal() string { return node.Name }
func (node *IdentifierExpressionNode) Statement()      {}
func (node *IdentifierExpressionNode) Expression()     {}

// ListLiteralExpressionNode: represents a list literal expression
// Example: [1, 2, 3] or []
type ListLiteralExpressionNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // List of element expressions
}

func (node *ListLiteralExpressionNode) Literal() string {
	res := "["
	for i, elem := range node.Elements {
		if i > 0 {
			res += ", "
		}
		res += elem.Literal()
	}
	return res + "]"
}
func (node *ListLiteralExpressionNode) Statement()  {}
func (node *ListLiteralExpressionNode) Expression() {}

// ParenthesizedExpressionNode: represents an expression wrapped in
// parentheses for precedence control
// Example: (2 + 3) * 4
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (node *ParenthesizedExpressionNode) Literal() string { return "(" + node.Expr.Literal() + ")" }
func (node *ParenthesizedExpressionNode) Statement()      {}
func (node *ParenthesizedExpressionNode) Expression()     {}

// UnaryExpressionNode: represents prefix negation
// Example: -x, -5
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (-)
	Right     ExpressionNode // The operand expression
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}
func (node *UnaryExpressionNode) Statement()  {}
func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents an arithmetic operation with two operands
// Example: 2 + 3, x * y, a % b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+ - * / %)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}
func (node *BinaryExpressionNode) Statement()  {}
func (node *BinaryExpressionNode) Expression() {}

// BooleanExpressionNode: represents a logical operation (and, or).
// Both operators sit at a single precedence level with left-to-right
// associativity.
type BooleanExpressionNode struct {
	Operation lexer.Token    // The logical operator token (and/or)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *BooleanExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}
func (node *BooleanExpressionNode) Statement()  {}
func (node *BooleanExpressionNode) Expression() {}

// ComparisonExpressionNode: represents a single comparison
// (< > <= >= == !=). Comparisons do not chain; `a < b < c` is a parse
// error.
type ComparisonExpressionNode struct {
	Operation lexer.Token    // The comparison operator token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *ComparisonExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}
func (node *ComparisonExpressionNode) Statement()  {}
func (node *ComparisonExpressionNode) Expression() {}

// AssignmentExpressionNode: represents an assignment expression.
// The target is an identifier or a subscripted primary; the value of the
// whole expression is the assigned value.
// Example: x = 10, a[0] = a[1] + 1, x = y = 0
type AssignmentExpressionNode struct {
	Operation lexer.Token    // The assignment operator token (=)
	Left      ExpressionNode // The target (identifier or index expression)
	Right     ExpressionNode // The expression being assigned
}

func (node *AssignmentExpressionNode) Literal() string {
	return node.Left.Literal() + " = " + node.Right.Literal()
}
func (node *AssignmentExpressionNode) Statement()  {}
func (node *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: represents a call of any callable-valued expression
// Example: print("hi"), f(2, 3), table[0](x)
type CallExpressionNode struct {
	Token     lexer.Token      // The '(' token of the call
	Callee    ExpressionNode   // The expression being called
	Arguments []ExpressionNode // List of argument expressions
}

func (node *CallExpressionNode) Literal() string {
	args := ""
	for i, arg := range node.Arguments {
		if i > 0 {
			args += ", "
		}
		args += arg.Literal()
	}
	return node.Callee.Literal() + "(" + args + ")"
}
func (node *CallExpressionNode) Statement()  {}
func (node *CallExpressionNode) Expression() {}

// IndexExpressionNode: represents a subscript read or a subscript
// assignment target
// Example: a[0], s[i + 1]
type IndexExpressionNode struct {
	Token lexer.Token    // The '[' token of the subscript
	Left  ExpressionNode // The list or string expression
	Index ExpressionNode // The index expression
}

func (node *IndexExpressionNode) Literal() string {
	return node.Left.Literal() + "[" + node.Index.Literal() + "]"
}
func (node *IndexExpressionNode) Statement()  {}
func (node *IndexExpressionNode) Expression() {}

// EmptyStatementNode: represents a lone `;`, which is a no-op
type EmptyStatementNode struct {
	Token lexer.Token // The ';' token
}

func (node *EmptyStatementNode) Literal() string { return ";" }
func (node *EmptyStatementNode) Statement()      {}

// BlockStatementNode: represents a block of statements enclosed in braces
// Example: { i = i + 1; print(i); }
type BlockStatementNode struct {
	Statements []StatementNode // List of statements in the block
}

func (node *BlockStatementNode) Literal() string {
	str := "{ "
	for _, stmt := range node.Statements {
		str += stmt.Literal()
		str += " "
	}
	return str + "}"
}
func (node *BlockStatementNode) Statement() {}

// EMPTY_BLOCK: a reusable empty block statement node, used as the default
// else branch of an if statement without an else clause.
var EMPTY_BLOCK = &BlockStatementNode{
	Statements: []StatementNode{},
}

// IfStatementNode: represents an if statement with an optional else block
// Example: if (x > 0) { ... } else { ... }
type IfStatementNode struct {
	IfToken   lexer.Token        // The 'if' keyword token
	Condition ExpressionNode     // The condition expression
	ThenBlock BlockStatementNode // Block executed when the condition is truthy
	ElseBlock BlockStatementNode // Block executed otherwise (may be empty)
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBlock.Literal()
	if len(node.ElseBlock.Statements) > 0 {
		res += " else " + node.ElseBlock.Literal()
	}
	return res
}
func (node *IfStatementNode) Statement() {}

// WhileStatementNode: represents a while loop
// Example: while (i < 10) { i = i + 1; }
type WhileStatementNode struct {
	WhileToken lexer.Token        // The 'while' keyword token
	Condition  ExpressionNode     // The loop condition
	Body       BlockStatementNode // The loop body
}

func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}
func (node *WhileStatementNode) Statement() {}

// BreakStatementNode: represents a break statement inside a loop
type BreakStatementNode struct {
	Token lexer.Token // The 'break' keyword token
}

func (node *BreakStatementNode) Literal() string { return "break;" }
func (node *BreakStatementNode) Statement()      {}

// ContinueStatementNode: represents a continue statement inside a loop
type ContinueStatementNode struct {
	Token lexer.Token // The 'continue' keyword token
}

func (node *ContinueStatementNode) Literal() string { return "continue;" }
func (node *ContinueStatementNode) Statement()      {}

// ReturnStatementNode: represents a return statement in a function body.
// Expr is nil for a bare `return;`, which yields None.
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The expression to return, or nil
}

func (node *ReturnStatementNode) Literal() string {
	if node.Expr == nil {
		return "return;"
	}
	return "return " + node.Expr.Literal() + ";"
}
func (node *ReturnStatementNode) Statement() {}

// FunctionStatementNode: represents a function definition.
// `def` binds the name to a fresh callable in the global environment.
// Example: def add(a, b) { return a + b; }
type FunctionStatementNode struct {
	DefToken   lexer.Token                 // The 'def' keyword token
	FuncName   IdentifierExpressionNode    // The function name identifier
	FuncParams []*IdentifierExpressionNode // List of parameter identifiers
	FuncBody   BlockStatementNode          // The function body block
}

func (node *FunctionStatementNode) Literal() string {
	params := ""
	for i, param := range node.FuncParams {
		if i > 0 {
			params += ", "
		}
		params += param.Literal()
	}
	return "def " + node.FuncName.Literal() + "(" + params + ") " + node.FuncBody.Literal()
}
func (node *FunctionStatementNode) Statement() {}
