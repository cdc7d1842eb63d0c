package lox

import "io"

// Runner wires the lexer, parser, and evaluator into a staged pipeline,
// gating each stage on the previous stage's sticky error flag. It mirrors
// the shape of a Compiler type (NewCompiler/Compile/CompileFromReader),
// generalized from a one-shot emitting compile into a reusable pipeline: a
// Runner can be driven repeatedly against the same Interpreter so a REPL
// host can accumulate global state across inputs.
type Runner struct {
	interp *Interpreter
}

// NewRunner builds a Runner with a fresh global environment.
func NewRunner(out io.Writer) *Runner {
	return &Runner{interp: NewInterpreter(nil, out)}
}

// Run executes one unit of source against this Runner's Interpreter,
// reusing its global environment across calls. diagnostics receives any
// lex/parse/runtime error output; print output goes to the writer the
// Runner was built with. Run returns the ErrorReporter used for this call
// so the host can inspect HadError and HadRuntimeError to choose an exit
// code or decide whether to keep a REPL session alive.
func (r *Runner) Run(source string, diagnostics io.Writer) *ErrorReporter {
	reporter := NewErrorReporter(diagnostics, source)
	r.interp.reporter = reporter

	tokens := NewLexer(source, reporter).ScanTokens()
	if reporter.HadError {
		return reporter
	}

	parser := NewParser(tokens, reporter)

	if IsExpressionMode(tokens) {
		expr := parser.ParseExpression()
		if reporter.HadError {
			return reporter
		}

		r.interp.InterpretExpression(expr)
		return reporter
	}

	statements := parser.Parse()
	if reporter.HadError {
		return reporter
	}

	r.interp.Interpret(statements)
	return reporter
}
