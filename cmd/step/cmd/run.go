/*
File    : step/cmd/step/cmd/run.go
Project : Step interpreter
*/
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/step-lang/step/eval"
	"github.com/step-lang/step/objects"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Step file or expression",
	Long: `Execute a Step program from a file or inline expression.

Examples:
  # Run a script file
  step run script.step

  # Evaluate an inline expression
  step run -e "print(1 + 2);"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	code := runProgram(src, os.Stdout, os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// runProgram wires the pipeline to the given sinks and returns the exit
// status. The fail hook emits the single diagnostic line to errOut.
func runProgram(src string, out, errOut io.Writer) int {
	return eval.Run(src, out, func(kind objects.ErrorKind, msg string) {
		errorColor.Fprintln(errOut, msg)
	})
}
