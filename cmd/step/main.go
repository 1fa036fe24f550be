/*
File    : step/cmd/step/main.go
Project : Step interpreter
*/

// Package main is the entry point for the step command.
package main

import (
	"os"

	"github.com/step-lang/step/cmd/step/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
