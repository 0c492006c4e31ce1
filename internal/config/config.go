// Package config is the single source of truth for the fixed constants the
// rest of the interpreter reads: parameter/argument limits, process exit
// codes, the REPL prompt, and the default source-file extension.
package config

const (
	// MaxParams is the maximum number of parameters a function or method
	// declaration may list, and the maximum number of arguments a call may
	// pass. Exceeding it is a parse error, not a fatal one.
	MaxParams = 255

	// SourceFileExt is the conventional extension for script files. The
	// driver does not check it: it runs whatever path it is given.
	SourceFileExt = ".loxw"

	// ReplPrompt is printed before each line read in interactive mode.
	ReplPrompt = "> "

	// ReplExitLine, typed alone at the prompt, ends the REPL.
	ReplExitLine = "exit"
)

// Exit codes, matching the sysexits.h convention the driver follows.
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitDataErr = 65 // static (scan/parse/resolve) error
	ExitFailure = 70 // runtime error
)

// DebugEnvVar, when set to "1", makes the driver re-panic on an internal
// error (for a stack trace) instead of printing a friendly message, and
// enables the humanized post-run timing line.
const DebugEnvVar = "LOXW_DEBUG"
