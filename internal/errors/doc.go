// Package errors provides structured, actionable error messages for nextforge.
//
// Every failure a user can hit has a registered code (e.g. "E120") that
// maps to a short message, a longer explanation, and a documentation URL.
// Errors carry optional detail, a fix suggestion, and the name of the
// setup step that failed, so the top level can print one coherent report
// instead of a generic catch-all.
//
// # Error Categories
//
// Errors are organized into categories:
//   - usage: bad invocation (missing or invalid project name), reported
//     before any side effect
//   - preflight: the local environment is missing a required tool
//   - setup: a scaffolding step failed after side effects began
//   - config: the tool's own configuration could not be loaded
//
// # Error Codes
//
// Each error has a unique code (e.g., "E102") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E120").
//	    WithStep("create-app").
//	    WithSuggestion("Check your network connection and re-run the command")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E120: Project scaffolding failed
//	//
//	//   Step: create-app
//	//
//	//   Hint: Check your network connection and re-run the command
//	//
//	//   Learn more: https://nextforge.dev/docs/errors/E120
package errors
