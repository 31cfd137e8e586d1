package usage

import (
	"fmt"
	"strings"
)

// MissingValue is returned when a required option or argument has no value
// from any source.
func MissingValue(param string) *Error {
	return &Error{
		Kind:    ErrMissingValue,
		Message: fmt.Sprintf("required option or argument '%s' not provided.", param),
	}
}

// Conversion is returned when a supplied value cannot be converted to the
// parameter's declared type.
func Conversion(param, value, typeName string) *Error {
	return &Error{
		Kind:    ErrConversion,
		Message: fmt.Sprintf("invalid value '%s' for '%s': cannot convert to %s.", value, param, typeName),
	}
}

// Exclusivity is returned when two or more options of one mutual-exclusivity
// group were supplied on the command line. Names keep group declaration order.
func Exclusivity(names []string) *Error {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "--" + n
	}
	return &Error{
		Kind:    ErrExclusivity,
		Message: fmt.Sprintf("options (%s) cannot be used together.", strings.Join(quoted, ", ")),
	}
}

// Validation is returned when a converted value fails a declared validation
// rule. The message comes from the rule itself.
func Validation(param, value, message string) *Error {
	return &Error{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("invalid value '%s' for '%s': %s.", value, param, message),
	}
}
