// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInput,
//	    "File not found: fridge.csv",
//	    cause,
//	    map[string]any{
//	        "path": "fridge.csv",
//	    },
//	)
//
// Callers branch on the code rather than the message:
//
//	if errors.IsCode(err, errors.ErrCodeInput) {
//	    fmt.Println(errors.MessageOf(err))
//	}
package errors
