/*
File    : step/parser/parser_expressions.go
Project : Step interpreter
*/
package parser

import (
	"strconv"

	"github.com/step-lang/step/lexer"
)

// parseExpression is the heart of the Pratt parser. It parses an expression
// whose operators all bind tighter than the given priority, starting from
// the current token.
//
// The algorithm:
//  1. Parse a prefix expression or atom with the registered unary function
//  2. While the next token is an infix/postfix operator binding tighter
//     than `priority`, hand the parsed left side to its binary function
//
// Associativity falls out of the priority each infix handler passes back
// in: left-associative operators reparse at their own level, the
// right-associative assignment reparses one below its level.
func (par *Parser) parseExpression(priority int) ExpressionNode {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addErrorAt(par.CurrToken, "unexpected token %q in expression", par.CurrToken.Literal)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for priority < getPrecedence(&par.NextToken) {
		binary, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			break
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseIntegerLiteral parses an integer literal token into an AST node.
// Leading zeros are accepted (007 is 7).
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addErrorAt(par.CurrToken, "integer literal out of range: %s", par.CurrToken.Literal)
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseFloatLiteral parses a float literal token into an AST node.
// A trailing dot is allowed (2. is 2.0).
func (par *Parser) parseFloatLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.addErrorAt(par.CurrToken, "malformed float literal: %s", par.CurrToken.Literal)
		return nil
	}
	return &FloatLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseStringLiteral parses a string literal token into an AST node.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseNoneLiteral parses the None keyword into an AST node.
func (par *Parser) parseNoneLiteral() ExpressionNode {
	return &NoneLiteralExpressionNode{Token: par.CurrToken}
}

// parseIdentifierExpression parses an identifier into an AST node.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseListLiteral parses a list literal: [e, e, ...] or [].
func (par *Parser) parseListLiteral() ExpressionNode {
	node := &ListLiteralExpressionNode{Token: par.CurrToken}
	elements, ok := par.parseExpressionList(lexer.RIGHT_BRACKET)
	if !ok {
		return nil
	}
	node.Elements = elements
	return node
}

// parseParenthesizedExpression parses (expr).
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance() // past '('
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return &ParenthesizedExpressionNode{Expr: expr}
}

// parseUnaryExpression parses prefix negation: -expr.
// Unary minus is right-associative, so --x parses as -(-x).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY - 1)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{Operation: operation, Right: right}
}

// parseBinaryExpression parses a left-associative arithmetic operation.
// The left operand has already been parsed; the current token is the
// operator.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	priority := getPrecedence(&operation)
	par.advance()
	right := par.parseExpression(priority)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseBooleanExpression parses `and`/`or`. Both share one precedence
// level and associate left-to-right.
func (par *Parser) parseBooleanExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(LOGIC_PRIORITY)
	if right == nil {
		return nil
	}
	return &BooleanExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseComparisonExpression parses a single comparison. Comparisons are
// non-associative: a second comparator applied to an unparenthesized
// comparison is a parse error, so `a < b < c` is rejected while
// `(a < b) < c` is allowed.
func (par *Parser) parseComparisonExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	if _, chained := left.(*ComparisonExpressionNode); chained {
		par.addErrorAt(operation, "comparisons do not chain (use parentheses)")
		return nil
	}
	par.advance()
	right := par.parseExpression(COMPARE_PRIORITY)
	if right == nil {
		return nil
	}
	return &ComparisonExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseAssignmentExpression parses a right-associative assignment.
// The target must be an identifier or a subscripted primary.
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken

	switch left.(type) {
	case *IdentifierExpressionNode, *IndexExpressionNode:
		// valid assignment target
	default:
		par.addErrorAt(operation, "invalid assignment target: %s", left.Literal())
		return nil
	}

	par.advance()
	right := par.parseExpression(ASSIGN_PRIORITY - 1)
	if right == nil {
		return nil
	}
	return &AssignmentExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseCallExpression parses a postfix call: callee(args). The callee is
// any already-parsed primary, so f(1)(2) and table[0](x) work.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{Token: par.CurrToken, Callee: callee}
	arguments, ok := par.parseExpressionList(lexer.RIGHT_PAREN)
	if !ok {
		return nil
	}
	node.Arguments = arguments
	return node
}

// parseIndexExpression parses a postfix subscript: left[index].
func (par *Parser) parseIndexExpression(left ExpressionNode) ExpressionNode {
	node := &IndexExpressionNode{Token: par.CurrToken, Left: left}
	par.advance() // past '['
	index := par.parseExpression(MINIMUM_PRIORITY)
	if index == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	node.Index = index
	return node
}

// parseExpressionList parses a comma-separated expression list terminated
// by `end`. The current token is the opening delimiter; on success the
// current token is `end`.
func (par *Parser) parseExpressionList(end lexer.TokenType) ([]ExpressionNode, bool) {
	list := make([]ExpressionNode, 0)

	if par.NextToken.Type == end {
		par.advance()
		return list, true
	}

	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance() // onto ','
		par.advance() // onto the next expression
		expr := par.parseExpression(MINIMUM_PRIORITY)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !par.expectAdvance(end) {
		return nil, false
	}
	return list, true
}
