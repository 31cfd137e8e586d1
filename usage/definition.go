package usage

import "fmt"

// DefinitionError reports a defect in the command-tree declaration itself,
// such as a command with no primary action or duplicate sibling names.
// It is a developer-time failure: hooks never see it and it is always fatal.
type DefinitionError struct {
	Message string
}

// Definitionf builds a DefinitionError from a format string.
func Definitionf(format string, args ...any) *DefinitionError {
	return &DefinitionError{Message: fmt.Sprintf(format, args...)}
}

func (e *DefinitionError) Error() string {
	return "command definition error: " + e.Message
}

var _ error = (*DefinitionError)(nil)
