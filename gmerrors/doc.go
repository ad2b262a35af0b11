// Package gmerrors provides structured error types for the googlemap library.
//
// Import path: github.com/erraggy/googlemap/gmerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so callers can tell an invalid marker shape from an unknown document reference
// without matching on message text.
//
// # Error Types
//
//   - [ParseError]: map document YAML/JSON decoding failures
//   - [ReferenceError]: unknown named references inside a map document
//   - [ValidationError]: a setter or constructor rejected a value
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// A [ValidationError] additionally matches the sentinel of the component that
// rejected the value ([ErrMap], [ErrBase], [ErrOverlay], [ErrControl], [ErrLayer]
// or [ErrService]):
//
//	_, err := overlays.NewCircle(center, -1)
//	if errors.Is(err, gmerrors.ErrOverlay) {
//	    // rejected by an overlay
//	}
//
//	var verr *gmerrors.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Println(verr.Field) // "radius"
//	}
package gmerrors
