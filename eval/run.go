/*
File    : step/eval/run.go
Project : Step interpreter
*/
package eval

import (
	"io"

	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
)

// FailFunc is the fatal-exit hook. It receives the error kind (LexError,
// ParseError, RuntimeError) and the single diagnostic line. The CLI driver
// prints the diagnostic; tests capture it.
type FailFunc func(kind objects.ErrorKind, msg string)

// Run executes a Step program from source text. Program output (print,
// assert messages) goes to out; any fatal error is reported through fail.
//
// Returns the process exit status: 0 on clean completion, 1 on any lex,
// parse, or runtime failure (assertion failures included).
func Run(src string, out io.Writer, fail FailFunc) int {
	p := parser.NewParser(src)
	root := p.Parse()

	// Lexical errors surface first: the parser drives the lexer, so by now
	// the whole source has been scanned.
	if p.Lex.HasErrors() {
		fail(objects.LexErrorKind, p.Lex.Errors[0])
		return 1
	}
	if p.HasErrors() {
		fail(objects.ParseErrorKind, p.Errors[0])
		return 1
	}

	ev := NewEvaluator()
	ev.SetWriter(out)

	result := ev.Eval(root)
	if err, isErr := result.(*objects.Error); isErr {
		fail(err.Kind, err.ToString())
		return 1
	}
	return 0
}
