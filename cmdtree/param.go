package cmdtree

// ParamKind selects how a parameter is supplied on the command line.
type ParamKind int

const (
	// KindOption is a named `--name value` parameter.
	KindOption ParamKind = iota
	// KindArgument is a positional parameter, consumed left to right by
	// ascending position index.
	KindArgument
	// KindSwitch is a boolean parameter whose presence sets it true.
	KindSwitch
	// KindContainer is a named parameter holding a comma-separated
	// collection.
	KindContainer
)

func (k ParamKind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindArgument:
		return "argument"
	case KindSwitch:
		return "switch"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// ValidationRule is a post-conversion check. Rules run in declaration order;
// the first failing rule reports Message and stops validation for that
// parameter.
type ValidationRule struct {
	Check   func(value any) bool
	Message string
}

// ParameterSpec describes one option, argument, switch or container of an
// action. Specs are declared once and never mutated after the tree is built.
type ParameterSpec struct {
	Kind     ParamKind
	Name     string
	Short    rune // optional single-character form, 0 when absent
	Summary  string
	Required bool

	Default    string
	HasDefault bool

	Type   TypeDescriptor
	EnvVar string

	Rules []ValidationRule

	// Position is the zero-based index among the action's arguments,
	// assigned from declaration order when the tree is built.
	Position int

	// Group names the mutual-exclusivity group this parameter belongs to.
	Group string

	// Global marks a cross-cutting option whose configuration-file value
	// may come from the globalOptions section.
	Global bool
}

// ValueExpected reports whether an occurrence of this parameter on the
// command line consumes a following value token.
func (p *ParameterSpec) ValueExpected() bool {
	return p.Kind == KindOption || p.Kind == KindContainer
}

// ExclusivityGroup is a set of parameters of which at most one may be
// explicitly supplied per invocation. Members keep declaration order.
type ExclusivityGroup struct {
	ID      string
	Members []string
}
