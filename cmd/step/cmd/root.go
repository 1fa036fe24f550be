/*
File    : step/cmd/step/cmd/root.go
Project : Step interpreter
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/step-lang/step/repl"
)

// Version is the interpreter version (set by build flags).
var Version = "0.1.0-dev"

// BANNER is the logo displayed when the REPL starts.
var BANNER = `
      _
  ___| |_ ___ _ __
 / __| __/ _ \ '_ \
 \__ \ ||  __/ |_) |
 |___/\__\___| .__/
             |_|
`

var rootCmd = &cobra.Command{
	Use:   "step",
	Short: "Step language interpreter",
	Long: `step is an interpreter for the Step programming language.

Step is a small dynamically-typed imperative language with curly-brace,
semicolon-terminated syntax and Python-like semantics for numbers,
strings, lists, and first-class functions.

Run a script with 'step run file.step', or start the interactive REPL by
invoking 'step' with no arguments.`,
	Version: Version,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Bare invocation starts the interactive REPL
		repler := repl.NewRepl(BANNER, Version, "step> ")
		return repler.Start(os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readSource resolves the script source for a subcommand: either the
// inline -e expression or the contents of the file argument.
func readSource(evalExpr string, args []string) (src string, name string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// errorColor prints fatal diagnostics to stderr.
var errorColor = color.New(color.FgRed)
