/*
File    : step/cmd/step/cmd/lex.go
Project : Step interpreter
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/step-lang/step/lexer"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Step file and dump the token stream",
	Long: `Run only the lexical analysis stage and print one token per line
with its source position. Useful for debugging the scanner.

Example:
  step lex script.step
  step lex -e "x = 1; # comment"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexSource(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	lex := lexer.NewLexer(src)
	for _, tok := range lex.ConsumeTokens() {
		fmt.Println(tok.String())
	}

	if lex.HasErrors() {
		for _, msg := range lex.Errors {
			errorColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
	return nil
}
