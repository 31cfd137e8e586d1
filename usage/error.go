// Package usage defines the user-facing error taxonomy for dispatch:
// resolution errors (unknown command, action or option, with optional
// suggestions) and binding errors (missing values, conversion failures,
// mutual-exclusivity violations, validation failures).
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnknownAction
	ErrUnknownOption
	ErrMissingValue
	ErrConversion
	ErrExclusivity
	ErrValidation
)

// Exit codes:
//
//	Exit 1: Resolution errors
//	  - Unknown errors
//	  - Unknown command
//	  - Unknown action
//	  - Unknown option
//
//	Exit 2: Binding errors
//	  - Missing required value
//	  - Conversion failure
//	  - Mutual-exclusivity violation
//	  - Validation failure
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrUnknownCommand: 1,
	ErrUnknownAction:  1,
	ErrUnknownOption:  1,
	ErrMissingValue:   2,
	ErrConversion:     2,
	ErrExclusivity:    2,
	ErrValidation:     2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind       ErrorKind
	Message    string
	Suggestion string // nearest valid alternative, empty when none is close
	ExitCode   int    // explicit override, computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Suggestion != "" {
		return e.Message + " Did you mean '" + e.Suggestion + "'?"
	}
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is
// derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsBinding reports whether the error was raised during parameter binding
// rather than command resolution.
func (e *Error) IsBinding() bool {
	switch e.Kind {
	case ErrMissingValue, ErrConversion, ErrExclusivity, ErrValidation:
		return true
	}
	return false
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
