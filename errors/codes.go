package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value could not be decoded.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// ErrCodeInternal indicates an unexpected failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

var inputCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:  true,
	ErrCodeMissingField:  true,
	ErrCodeInvalidFormat: true,
}

// IsInputCode reports whether code blames the caller's input rather than
// the program.
func IsInputCode(code ErrorCode) bool {
	return inputCodes[code]
}
