/*
File    : step/lexer/lexer_utils.go
Project : Step interpreter
*/
package lexer

import "strings"

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace checks if the given byte is a whitespace character.
// Step sources are ASCII, so space, tab, newline, and carriage return cover
// everything between tokens.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\n' || curr == '\r'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isNumeric checks if the given byte is a numeric digit (0-9).
func isNumeric(curr byte) bool {
	return isDigitASCII(curr)
}

// isAlphanumeric checks if the given byte is an ASCII letter or digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isDigitASCII(curr)
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes (") and may contain any
// ASCII character except the double quote itself, including literal
// newlines. There are no escape sequences.
//
// An unterminated string (EOF before the closing quote) is a lexical error.
//
// Example:
//
//	Source: "hello\nworld"   (with a real newline in the source)
//	Returns: Token{Type: STRING_LIT, Literal: "hello\nworld"}
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote
	for lex.Current != '"' {
		// Unterminated string: ran off the end of the source
		if lex.Current == 0 {
			lex.addError(line, column, "unterminated string literal")
			return NewTokenWithMetadata(INVALID_TYPE, builder.String(), line, column)
		}

		// Literal newlines are allowed inside strings; keep line tracking sane
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), line, column)
}

// readNumber reads and tokenizes a numeric literal from the source.
// Step numbers are `digit+ ('.' digit*)?`:
//   - Integers: 0, 10, 007
//   - Floats: 10.5, 3.14, 2. (a trailing dot is a float with no fraction)
//
// `.5` is not a number (the scanner is only entered on a digit), and there
// is no exponent or hexadecimal notation.
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isDigitASCII(lex.Current) {
		lex.Advance()
	}

	hasDot := false
	if lex.Current == '.' {
		hasDot = true
		lex.Advance()
		for isDigitASCII(lex.Current) {
			lex.Advance()
		}
	}

	tokenType := INT_LIT
	if hasDot {
		tokenType = FLOAT_LIT
	}
	return NewTokenWithMetadata(tokenType, lex.Src[start:lex.Position], line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers match [_A-Za-z][_A-Za-z0-9]*. Keywords (and, or, if, else,
// while, return, break, continue, def, None) are identified through
// lookupIdent and lex as their own token types, never as identifiers.
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	// First character is a letter or underscore (checked by the caller)
	lex.Advance()

	// Continue reading alphanumeric characters and underscores
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
