package cmdtree

import (
	"strings"

	"github.com/rudder-tools/rudder/usage"
)

// Builder assembles a Tree from declaration specs. Declaration mistakes are
// collected and reported by Build as a DefinitionError; the intermediate
// calls never fail, which keeps declarations free of error plumbing.
type Builder struct {
	tree *Tree
	errs []string
}

// NewBuilder starts a tree with the given root.
func NewBuilder(spec RootSpec) *Builder {
	root := &CommandNode{
		Name:    spec.Name,
		Summary: spec.Summary,
		Hooks:   spec.Hooks,
		id:      0,
		parent:  -1,
	}
	return &Builder{tree: &Tree{nodes: []*CommandNode{root}}}
}

// Command adds a command under spec.Parent, or under the root when Parent
// is nil. The returned node is only valid as a Parent/Owner reference for
// further declarations until Build is called.
func (b *Builder) Command(spec CommandSpec) *CommandNode {
	parent := spec.Parent
	if parent == nil {
		parent = b.tree.nodes[0]
	}

	node := &CommandNode{
		Name:    spec.Name,
		Aliases: spec.Aliases,
		Summary: spec.Summary,
		Hooks:   spec.Hooks,
		Path:    append(append([]string{}, parent.Path...), spec.Name),
		id:      len(b.tree.nodes),
		parent:  parent.id,
	}

	parent.Children = append(parent.Children, node)
	b.tree.nodes = append(b.tree.nodes, node)
	return node
}

// Action adds an action to spec.Owner, or to the root when Owner is nil.
func (b *Builder) Action(spec ActionSpec) *ActionNode {
	owner := spec.Owner
	if owner == nil {
		owner = b.tree.nodes[0]
	}

	action := &ActionNode{
		Name:         spec.Name,
		Aliases:      spec.Aliases,
		Summary:      spec.Summary,
		Primary:      spec.Primary,
		Params:       spec.Params,
		Hooks:        spec.Hooks,
		ExitMappings: spec.ExitMappings,
		ReturnKind:   spec.ReturnKind,
		Async:        spec.Async,
		Run:          spec.Run,
	}

	// Positional indexes follow declaration order.
	pos := 0
	for _, p := range action.Params {
		if p.Kind == KindArgument {
			p.Position = pos
			pos++
		}
	}

	owner.Actions = append(owner.Actions, action)
	return action
}

// Build validates the declared tree and freezes it. All declaration defects
// found are reported together in one DefinitionError.
func (b *Builder) Build() (*Tree, error) {
	for _, node := range b.tree.nodes {
		b.checkChildren(node)
		b.checkActions(node)
	}

	if len(b.errs) > 0 {
		return nil, usage.Definitionf("%s", strings.Join(b.errs, "; "))
	}
	return b.tree, nil
}

func (b *Builder) checkChildren(node *CommandNode) {
	seen := make(map[string]string)
	for _, child := range node.Children {
		for _, name := range append([]string{child.Name}, child.Aliases...) {
			key := strings.ToLower(name)
			if prev, dup := seen[key]; dup {
				b.errs = append(b.errs,
					"command '"+node.Name+"': duplicate child name or alias '"+name+"' (already used by '"+prev+"')")
				continue
			}
			seen[key] = child.Name
		}
	}
}

func (b *Builder) checkActions(node *CommandNode) {
	seen := make(map[string]string)
	primaries := 0

	for _, action := range node.Actions {
		if action.Primary {
			primaries++
		}
		if action.Run == nil {
			b.errs = append(b.errs, "action '"+node.Name+" "+action.Name+"': no body")
		}
		for _, name := range append([]string{action.Name}, action.Aliases...) {
			key := strings.ToLower(name)
			if prev, dup := seen[key]; dup {
				b.errs = append(b.errs,
					"command '"+node.Name+"': duplicate action name or alias '"+name+"' (already used by '"+prev+"')")
				continue
			}
			seen[key] = action.Name
		}
		b.checkParams(node, action)
	}

	if primaries > 1 {
		b.errs = append(b.errs, "command '"+node.Name+"': more than one primary action")
	}
}

func (b *Builder) checkParams(node *CommandNode, action *ActionNode) {
	names := make(map[string]bool)
	shorts := make(map[rune]bool)

	for _, p := range action.Params {
		key := strings.ToLower(p.Name)
		if names[key] {
			b.errs = append(b.errs,
				"action '"+node.Name+" "+action.Name+"': duplicate parameter '"+p.Name+"'")
		}
		names[key] = true

		if p.Short != 0 {
			if shorts[p.Short] {
				b.errs = append(b.errs,
					"action '"+node.Name+" "+action.Name+"': duplicate short form '-"+string(p.Short)+"'")
			}
			shorts[p.Short] = true
		}

		if p.Kind == KindContainer && p.Type.Kind != TypeCollection {
			b.errs = append(b.errs,
				"action '"+node.Name+" "+action.Name+"': container '"+p.Name+"' must declare a collection type")
		}
		if p.Kind == KindSwitch && !(p.Type.Kind == TypePrimitive && p.Type.Primitive == Bool) {
			// Switches are boolean regardless of what was declared.
			p.Type = Primitive(Bool)
		}
	}
}
