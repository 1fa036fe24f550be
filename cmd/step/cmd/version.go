/*
File    : step/cmd/step/cmd/version.go
Project : Step interpreter
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the step version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("step version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
