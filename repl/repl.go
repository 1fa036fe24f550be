/*
File    : step/repl/repl.go
Project : Step interpreter

Package repl implements the Read-Eval-Print Loop for the Step interpreter.
The REPL provides an interactive environment where users can enter Step
code line by line, see immediate results, and navigate history with the
arrow keys. Definitions persist across lines because a single evaluator
(and therefore a single global scope) lives for the whole session.

Program errors — including assertion failures — are printed in red and do
not terminate the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/step-lang/step/eval"
	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
)

// Color definitions for REPL output:
// - yellowColor: expression results and version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Prompt  string // Command prompt shown to the user (e.g., "step> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// Start runs the interactive loop, reading lines from the terminal and
// writing results to out. It returns when the user enters "exit" or
// "quit", or closes the input (ctrl-D).
func (r *Repl) Start(out io.Writer) error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	greenColor.Fprint(out, r.Banner)
	yellowColor.Fprintf(out, "Step %s\n", r.Version)
	cyanColor.Fprintln(out, "Type Step statements ending in ';'. Enter 'exit' to leave.")

	// One evaluator for the whole session keeps the global scope alive
	ev := eval.NewEvaluator()
	ev.SetWriter(out)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		p := parser.NewParser(input)
		root := p.Parse()

		if p.Lex.HasErrors() {
			for _, msg := range p.Lex.Errors {
				redColor.Fprintln(out, msg)
			}
			continue
		}
		if p.HasErrors() {
			for _, msg := range p.GetErrors() {
				redColor.Fprintln(out, msg)
			}
			continue
		}

		result := ev.Eval(root)

		if eval.IsError(result) {
			redColor.Fprintln(out, result.ToString())
			continue
		}

		// Echo the value of the last statement unless it was None
		if _, isNone := result.(*objects.None); !isNone {
			yellowColor.Fprintln(out, result.ToObject())
		}
	}

	cyanColor.Fprintln(out, "Bye!")
	return nil
}
