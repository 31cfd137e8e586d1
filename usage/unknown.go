package usage

import "fmt"

// UnknownCommand is returned when no command matches the given token.
func UnknownCommand(command, suggestion string) *Error {
	return &Error{
		Kind:       ErrUnknownCommand,
		Message:    fmt.Sprintf("'%s' is not a known command.", command),
		Suggestion: suggestion,
	}
}

// UnknownAction is returned when a command resolved but the action token
// matches none of its actions.
func UnknownAction(command, action, suggestion string) *Error {
	return &Error{
		Kind:       ErrUnknownAction,
		Message:    fmt.Sprintf("'%s' is not an action of '%s'.", action, command),
		Suggestion: suggestion,
	}
}

// UnknownOption is returned when an option token matches no declared
// parameter of the resolved action.
func UnknownOption(option, suggestion string) *Error {
	return &Error{
		Kind:       ErrUnknownOption,
		Message:    fmt.Sprintf("unknown option '%s'.", option),
		Suggestion: suggestion,
	}
}
