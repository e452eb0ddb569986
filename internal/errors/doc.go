// Package errors provides structured, actionable error messages for sift.
//
// The errors package implements an error system that:
//   - Shows exact file locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues, with example invocations
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: Problems with sift.json (invalid JSON, bad values)
//   - snapshot: Snapshot documents that cannot be decoded
//   - store: Local or remote snapshot store failures
//   - selector: Selectors that yield no usable tokens
//   - server: Inspector server failures
//   - cli: Command usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E100") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E100").
//	    WithLocation("sift.json", 4, 18).
//	    WithSuggestion("Check that sift.json is valid JSON")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E100: Invalid sift.json
//	//
//	//   sift.json:4:18
//	//
//	//      2 │   "name": "myapp",
//	//      3 │   "serve": {
//	//   →  4 │     "port": "oops"
//	//        │                  ^
//	//      5 │   }
//	//      6 │ }
//	//
//	//   Hint: Check that sift.json is valid JSON
//	//
//	//   Learn more: https://sift.dev/docs/errors/E100
package errors
