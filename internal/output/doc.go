// Package output provides structured output and error handling for the
// fluorine CLI.
//
// Every command prints through a Printer, which switches between
// lipgloss-styled text for people and JSON for scripts:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.KeyValue("data", dir)
//	printer.Error(err)
//
// # JSON Mode
//
// With --json, results are written as one JSON document and errors as
// {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, unknown home in strict mode
//	output.ExitSystemError // 2: filesystem failures
//	output.ExitConflict    // 3: target already populated
package output
