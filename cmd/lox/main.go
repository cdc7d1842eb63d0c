// Command lox runs a script file through the lexer/parser/evaluator
// pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/kavanwolfe/lox/pkg/lox"
)

const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}

	os.Exit(runFile(os.Args[1]))
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: %v\n", err)
		return exitUsage
	}

	runner := lox.NewRunner(os.Stdout)
	reporter := runner.Run(string(source), os.Stderr)

	switch {
	case reporter.HadRuntimeError:
		return exitRuntime
	case reporter.HadError:
		return exitCompile
	default:
		return 0
	}
}
