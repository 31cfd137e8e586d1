package cmdtree

import (
	"github.com/rudder-tools/rudder/exitcode"
	"github.com/rudder-tools/rudder/hooks"
)

// RootSpec declares the root of a command tree.
type RootSpec struct {
	Name    string
	Summary string
	Hooks   []hooks.Descriptor
}

// CommandSpec declares one command. A nil Parent attaches the command to
// the root.
type CommandSpec struct {
	Name    string
	Aliases []string
	Parent  *CommandNode
	Summary string
	Hooks   []hooks.Descriptor
}

// ActionSpec declares one action of a command.
type ActionSpec struct {
	Name    string
	Aliases []string
	Owner   *CommandNode
	Summary string
	Primary bool

	Params []*ParameterSpec
	Hooks  []hooks.Descriptor

	ExitMappings []exitcode.Mapping
	ReturnKind   ReturnKind
	Async        bool

	Run ActionFunc
}
