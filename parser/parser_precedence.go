/*
File    : step/parser/parser_precedence.go
Project : Step interpreter
*/
package parser

import "github.com/step-lang/step/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Assignment (right-to-left associativity)
//  2. Logical and / or (a single shared level, left-to-right)
//  3. Comparison (non-associative: at most one comparator per chain)
//  4. Additive operators
//  5. Multiplicative operators
//  6. Unary prefix minus
//  7. Postfix subscript and call (left-to-right)
//
// Note that `and` and `or` share one level — `a or b and c` parses
// left-to-right as `(a or b) and c`.
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment: = (right-to-left; a = b = 5 is a = (b = 5))
	ASSIGN_PRIORITY = 10

	// Logical and / or (one level, left-to-right)
	LOGIC_PRIORITY = 20

	// Comparison: < > <= >= == != (non-associative)
	COMPARE_PRIORITY = 30

	// Additive: + -
	PLUS_PRIORITY = 40

	// Multiplicative: * / %
	MUL_PRIORITY = 50

	// Unary prefix: -
	PREFIX_PRIORITY = 60

	// Postfix subscript a[i] and call f(args)
	POSTFIX_PRIORITY = 70
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands. Returns -1 for tokens
// that are not infix or postfix operators.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Postfix subscript and call
	case lexer.LEFT_BRACKET, lexer.LEFT_PAREN:
		return POSTFIX_PRIORITY

	// Multiplicative: * / %
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Comparison: < > <= >= == !=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP:
		return COMPARE_PRIORITY

	// Logical and / or (single level)
	case lexer.AND_KEY, lexer.OR_KEY:
		return LOGIC_PRIORITY

	// Assignment (lowest)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing infix and postfix
// expressions. The already-parsed left operand is passed in; the function
// consumes the operator and its right-hand side (if any) and returns the
// complete expression node.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions and
// atoms (literals, identifiers, list literals, parenthesized expressions).
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
