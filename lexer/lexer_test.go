/*
File    : step/lexer/lexer_test.go
Project : Step interpreter
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <= >= == != < > = `,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
			},
		},
		{
			Input: `x = 1; while (x < 10) { x = x + 1; }`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(tokens), "input: %s", test.Input)
		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %s", test.Input)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "input: %s", test.Input)
		}
		assert.False(t, lex.HasErrors(), "input: %s", test.Input)
	}
}

// TestNewLexer_Keywords verifies that every keyword lexes as its own token
// type and never as an identifier
func TestNewLexer_Keywords(t *testing.T) {
	lex := NewLexer(`and or if else while return break continue def None`)
	tokens := lex.ConsumeTokens()

	expected := []TokenType{
		AND_KEY, OR_KEY, IF_KEY, ELSE_KEY, WHILE_KEY,
		RETURN_KEY, BREAK_KEY, CONTINUE_KEY, DEF_KEY, NONE_KEY,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, typ := range expected {
		assert.Equal(t, typ, tokens[i].Type)
	}
}

// TestNewLexer_Numbers verifies integer and float literal classification
func TestNewLexer_Numbers(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
		literal  string
	}{
		{"0", INT_LIT, "0"},
		{"007", INT_LIT, "007"},
		{"12345", INT_LIT, "12345"},
		{"1.5", FLOAT_LIT, "1.5"},
		{"2.", FLOAT_LIT, "2."},
		{"0.25", FLOAT_LIT, "0.25"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		tok := lex.NextToken()
		assert.Equal(t, tt.expected, tok.Type, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tok.Literal, "input: %s", tt.input)
	}
}

// TestNewLexer_Comments verifies that '#' comments run to end of line and
// are excluded from the token stream
func TestNewLexer_Comments(t *testing.T) {
	lex := NewLexer("x = 1; # a comment with tokens: while ) \"\ny = 2;")
	tokens := lex.ConsumeTokens()

	expected := []Token{
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(ASSIGN_OP, "="),
		NewToken(INT_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(IDENTIFIER_ID, "y"),
		NewToken(ASSIGN_OP, "="),
		NewToken(INT_LIT, "2"),
		NewToken(SEMICOLON_DELIM, ";"),
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, exp := range expected {
		assert.Equal(t, exp.Type, tokens[i].Type)
		assert.Equal(t, exp.Literal, tokens[i].Literal)
	}
	assert.False(t, lex.HasErrors())
}

// TestNewLexer_StringWithNewline verifies that string literals may contain
// literal newlines and that line tracking stays correct afterwards
func TestNewLexer_StringWithNewline(t *testing.T) {
	lex := NewLexer("\"ab\ncd\" x")
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "ab\ncd", tok.Literal)
	assert.Equal(t, 1, tok.Line)

	ident := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, ident.Type)
	assert.Equal(t, 2, ident.Line)
}

// TestNewLexer_Errors verifies lexical error collection
func TestNewLexer_Errors(t *testing.T) {
	tests := []struct {
		input string
	}{
		{`"unterminated`},
		{`a ! b`}, // lone '!' is not an operator
		{`a $ b`}, // stray character
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		lex.ConsumeTokens()
		assert.True(t, lex.HasErrors(), "input: %s", tt.input)
	}
}

// TestNewLexer_Positions verifies line and column metadata
func TestNewLexer_Positions(t *testing.T) {
	lex := NewLexer("x = 1;\n  y = 2;")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)

	// 'y' starts at line 2, column 3
	assert.Equal(t, "y", tokens[4].Literal)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 3, tokens[4].Column)
}
