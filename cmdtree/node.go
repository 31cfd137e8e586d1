// Package cmdtree holds the immutable registry of commands, actions and
// parameter specifications, and resolves command-path tokens against it.
//
// Trees are declared once through the builder specs in spec.go, frozen, and
// never mutated afterwards, which makes a tree safe for concurrent
// independent dispatches.
package cmdtree

import (
	"context"
	"strings"

	"github.com/rudder-tools/rudder/exitcode"
	"github.com/rudder-tools/rudder/hooks"
)

// ReturnKind describes how an action's return value maps to an exit code.
type ReturnKind int

const (
	// ReturnNone ignores the action's result; success is exit code 0.
	ReturnNone ReturnKind = iota
	// ReturnInt uses the returned integer verbatim as the exit code.
	ReturnInt
	// ReturnEnum uses the integer value underlying the returned enum
	// member.
	ReturnEnum
)

// ActionFunc is the body of an action. The returned int is interpreted
// according to the action's ReturnKind.
type ActionFunc = func(ctx context.Context, args *BoundArguments) (int, error)

// CommandNode is one command in the tree. Nodes are addressed by index into
// the owning Tree's arena; the parent link is an index, not a pointer.
type CommandNode struct {
	Name    string
	Aliases []string
	Summary string

	// Path is the sequence of command names from the root to this node,
	// root excluded.
	Path []string

	Children []*CommandNode
	Actions  []*ActionNode
	Hooks    []hooks.Descriptor

	id     int
	parent int // arena index of the parent, -1 for the root
}

// Matches reports whether tok equals the node's name or one of its aliases,
// case-insensitively.
func (n *CommandNode) Matches(tok string) bool {
	if strings.EqualFold(n.Name, tok) {
		return true
	}
	for _, a := range n.Aliases {
		if strings.EqualFold(a, tok) {
			return true
		}
	}
	return false
}

// Primary returns the node's primary action, if exactly one is declared.
func (n *CommandNode) Primary() (*ActionNode, bool) {
	for _, a := range n.Actions {
		if a.Primary {
			return a, true
		}
	}
	return nil, false
}

// ActionNode is the leaf unit of dispatch within a command.
type ActionNode struct {
	Name    string
	Aliases []string
	Summary string

	// Primary marks the action invoked when no action token follows the
	// command path. At most one action per command may be primary.
	Primary bool

	Params []*ParameterSpec
	Hooks  []hooks.Descriptor

	ExitMappings []exitcode.Mapping
	ReturnKind   ReturnKind
	Async        bool

	Run ActionFunc
}

// Matches reports whether tok equals the action's name or one of its
// aliases, case-insensitively.
func (a *ActionNode) Matches(tok string) bool {
	if strings.EqualFold(a.Name, tok) {
		return true
	}
	for _, al := range a.Aliases {
		if strings.EqualFold(al, tok) {
			return true
		}
	}
	return false
}

// Arguments returns the action's positional parameters in ascending
// position order.
func (a *ActionNode) Arguments() []*ParameterSpec {
	var args []*ParameterSpec
	for _, p := range a.Params {
		if p.Kind == KindArgument {
			args = append(args, p)
		}
	}
	return args
}

// Lookup finds a named (non-argument) parameter by long name,
// case-insensitively.
func (a *ActionNode) Lookup(name string) (*ParameterSpec, bool) {
	for _, p := range a.Params {
		if p.Kind != KindArgument && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// LookupShort finds a named parameter by its single-character form.
func (a *ActionNode) LookupShort(short rune) (*ParameterSpec, bool) {
	for _, p := range a.Params {
		if p.Kind != KindArgument && p.Short != 0 && p.Short == short {
			return p, true
		}
	}
	return nil, false
}

// OptionNames returns the long names of the action's named parameters in
// declaration order, for suggestion lookups.
func (a *ActionNode) OptionNames() []string {
	var names []string
	for _, p := range a.Params {
		if p.Kind != KindArgument {
			names = append(names, p.Name)
		}
	}
	return names
}

// Groups derives the action's mutual-exclusivity groups from its parameter
// specs. Group members keep parameter declaration order.
func (a *ActionNode) Groups() []ExclusivityGroup {
	var groups []ExclusivityGroup
	index := make(map[string]int)

	for _, p := range a.Params {
		if p.Group == "" {
			continue
		}
		i, ok := index[p.Group]
		if !ok {
			i = len(groups)
			index[p.Group] = i
			groups = append(groups, ExclusivityGroup{ID: p.Group})
		}
		groups[i].Members = append(groups[i].Members, p.Name)
	}

	return groups
}

// Tree is the frozen command registry. The zero value is not usable; build
// trees with New and the builder specs.
type Tree struct {
	nodes []*CommandNode // arena; nodes[0] is the root
}

// Root returns the root node.
func (t *Tree) Root() *CommandNode {
	return t.nodes[0]
}

// Parent returns the parent of n, or nil for the root.
func (t *Tree) Parent(n *CommandNode) *CommandNode {
	if n.parent < 0 {
		return nil
	}
	return t.nodes[n.parent]
}
