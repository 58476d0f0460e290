// Package errors provides structured error types for the catalog, validator
// and highlighter packages.
//
// Only construction problems and malformed input surface as errors. Failed
// cell checks are reported as validator.Violation values instead.
//
// Example usage:
//
//	_, err := cat.SchemaFor("NOT-A-REAL-TYPE")
//	if errors.HasCode(err, errors.ErrCodeUnknownReportType) {
//	    // list cat.ReportTypes() to the caller
//	}
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to compile column pattern",
//	    cause,
//	    map[string]any{"key": "Depth .+"},
//	)
package errors
