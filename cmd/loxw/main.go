package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/loxw-lang/loxw/internal/config"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/interp"
	"github.com/loxw-lang/loxw/internal/parser"
	"github.com/loxw-lang/loxw/internal/pipeline"
	"github.com/loxw-lang/loxw/internal/resolver"
	"github.com/loxw-lang/loxw/internal/scanner"
)

// frontend runs the scan → parse → resolve pipeline over one chunk of
// source, short-circuiting on the first stage that records a static
// error — there is no point resolving a program the parser already
// rejected.
func frontend() *pipeline.Pipeline {
	return pipeline.New(
		&scanner.Processor{},
		&parser.Processor{},
		&resolver.Processor{},
	)
}

func reportStatic(errs []*diagnostics.SourceError) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
}

// runSource processes one chunk of source through the static pipeline
// and, if nothing rejected it first, hands the resolved statements to in
// for evaluation. It reports whether a static error occurred (distinct
// from in.HadRuntimeError, which the caller checks separately).
func runSource(source string, in *interp.Interpreter) (hadStaticError bool) {
	ctx := pipeline.NewContext(source)
	ctx = frontend().Run(ctx)

	if ctx.HadStaticError() {
		reportStatic(ctx.Errors)
		return true
	}

	in.MergeLocals(ctx.Locals)
	in.Interpret(ctx.Statements)
	return false
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxw: %s\n", err)
		return config.ExitUsage
	}

	start := time.Now()
	in := interp.NewInterpreter(interp.StdoutPrinter{}, interp.StderrReporter{}, nil)
	hadStaticError := runSource(string(source), in)

	if os.Getenv(config.DebugEnvVar) == "1" {
		fmt.Fprintf(os.Stderr, "loxw: ran %s in %s ns\n", path, humanize.Comma(time.Since(start).Nanoseconds()))
	}

	switch {
	case hadStaticError:
		return config.ExitDataErr
	case in.HadRuntimeError:
		return config.ExitFailure
	default:
		return config.ExitOK
	}
}

func runPrompt() int {
	in := interp.NewInterpreter(interp.StdoutPrinter{}, interp.StderrReporter{}, nil)
	interactive := isatty.IsTerminal(os.Stdin.Fd())

	scan := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(config.ReplPrompt)
		}
		if !scan.Scan() {
			return config.ExitOK
		}
		line := scan.Text()
		if line == config.ReplExitLine {
			return config.ExitOK
		}
		runSource(line, in)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv(config.DebugEnvVar) == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "loxw: internal error: %v\n", r)
			os.Exit(config.ExitFailure)
		}
	}()

	switch len(os.Args) {
	case 1:
		os.Exit(runPrompt())
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: loxw [script]")
		os.Exit(config.ExitUsage)
	}
}
