/*
File    : step/parser/parser.go
Project : Step interpreter
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Step programming language.

The parser converts the token stream from the lexer into an Abstract Syntax
Tree (AST). It handles:
  - Expressions (assignment, logical, comparison, arithmetic, unary,
    subscript, call, literals)
  - Statements (empty, expression, if/else, while, break, continue,
    return, def)
  - Operator precedence and associativity per the Step grammar

Errors are collected rather than aborting on the first failure, so a single
parse can report every problem it finds. The parser drives the lexer
incrementally; lexical errors accumulate on the embedded lexer and are
reported separately as LexError diagnostics.
*/
package parser

import (
	"fmt"

	"github.com/step-lang/step/lexer"
)

// Parser represents the parser state and configuration.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and atoms
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix/postfix operators

	// Collect parsing errors instead of panicking
	Errors []string
}

// NewParser creates and initializes a new Parser for the given source code.
// The parser is ready to use immediately; call Parse() to build the AST.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Atoms: literals, identifiers, list literals, parenthesized expressions
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseFloatLiteral, lexer.FLOAT_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseNoneLiteral, lexer.NONE_KEY)
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseListLiteral, lexer.LEFT_BRACKET)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Prefix minus
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP)

	// Arithmetic operators: + - * / %
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP)

	// Logical operators: and or (one precedence level)
	par.registerBinaryFuncs(par.parseBooleanExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Comparison operators: < > <= >= == != (non-associative)
	par.registerBinaryFuncs(par.parseComparisonExpression,
		lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP)

	// Assignment: = (right-associative, target-checked)
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Postfix subscript and call
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token:
// CurrToken becomes NextToken, and NextToken is fetched from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser onto it. On mismatch it records a parse
// error and leaves the parser where it was.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addErrorAt(par.NextToken, "expected %q, got %q", string(expected), par.NextToken.Literal)
		return false
	}
	return true
}

// addErrorAt records a parse error at the given token's position.
func (par *Parser) addErrorAt(tok lexer.Token, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	par.Errors = append(par.Errors, fmt.Sprintf("[%d:%d] ParseError: %s", tok.Line, tok.Column, msg))
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing, before evaluation.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the file,
// building up a RootNode that contains all the parsed statements.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}
