/*
File    : step/cmd/step/cmd/parse.go
Project : Step interpreter
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/step-lang/step/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Step file and dump the reconstructed program",
	Long: `Run the lexer and parser without executing, then print the program
re-rendered from the AST. Useful for checking how a source file parses.

Example:
  step parse script.step`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseSource,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseSource(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	p := parser.NewParser(src)
	root := p.Parse()

	if p.Lex.HasErrors() || p.HasErrors() {
		for _, msg := range p.Lex.Errors {
			errorColor.Fprintln(os.Stderr, msg)
		}
		for _, msg := range p.GetErrors() {
			errorColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	fmt.Print(root.Literal())
	return nil
}
