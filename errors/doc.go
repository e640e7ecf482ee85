// Package errors provides standardized error handling patterns for SemPath components.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input or malformed data,
// non-retryable), and Fatal (unrecoverable).
//
// In SemPath the classification drives the degradation policy of the search
// pipeline: transport failures (ErrTransport) are transient and may be
// retried before the fetch is abandoned; malformed remote responses
// (ErrProtocol) and corrupt cache files (ErrStorageCorrupt) are invalid and
// are absorbed at the client/cache boundary; nothing short of invalid
// configuration is fatal to the process. No error aborts a running search.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// The generic Wrap() function applies the format without attaching a class.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
package errors
