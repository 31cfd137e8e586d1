package cmdtree

import (
	"strings"

	"github.com/rudder-tools/rudder/textdist"
	"github.com/rudder-tools/rudder/usage"
)

// Resolution is the outcome of walking a token vector through the tree:
// the resolved command, the action to invoke, and the remaining tokens for
// the token classifier.
type Resolution struct {
	Command *CommandNode
	Action  *ActionNode
	Rest    []string
}

// Resolve walks tokens from the root, matching each against child command
// names and aliases with case-insensitive exact matches. The token after
// the command path may name an action; otherwise the command's primary
// action is used. Unresolvable tokens produce a usage error carrying the
// closest declared name as a suggestion.
func (t *Tree) Resolve(tokens []string) (Resolution, error) {
	current := t.Root()
	rest := tokens

	for len(rest) > 0 {
		tok := rest[0]
		if strings.HasPrefix(tok, "-") {
			break
		}

		if child := current.childMatching(tok); child != nil {
			current = child
			rest = rest[1:]
			continue
		}

		if action := current.actionMatching(tok); action != nil {
			return Resolution{Command: current, Action: action, Rest: rest[1:]}, nil
		}

		// A primary action that declares positionals may consume the
		// token as an argument; the classifier decides. Without
		// positionals the token can only be a typo.
		if primary, ok := current.Primary(); ok && len(primary.Arguments()) > 0 {
			break
		}

		return Resolution{}, unknownToken(t, current, tok)
	}

	primary, ok := current.Primary()
	if !ok {
		if len(current.Actions) == 0 && len(current.Children) > 0 && len(rest) == 0 {
			// A command group given without a subcommand is user
			// error, not a declaration defect.
			return Resolution{}, usage.UnknownCommand(
				strings.Join(current.Path, " "), "")
		}
		return Resolution{}, usage.Definitionf(
			"command '%s' has no primary action", pathOrRoot(current))
	}

	return Resolution{Command: current, Action: primary, Rest: rest}, nil
}

func (n *CommandNode) childMatching(tok string) *CommandNode {
	for _, child := range n.Children {
		if child.Matches(tok) {
			return child
		}
	}
	return nil
}

func (n *CommandNode) actionMatching(tok string) *ActionNode {
	for _, action := range n.Actions {
		if action.Matches(tok) {
			return action
		}
	}
	return nil
}

// unknownToken builds the unknown command/action error for tok at node,
// with a did-you-mean suggestion over everything declared there.
func unknownToken(t *Tree, node *CommandNode, tok string) error {
	var candidates []string
	for _, child := range node.Children {
		candidates = append(candidates, child.Name)
	}
	for _, action := range node.Actions {
		candidates = append(candidates, action.Name)
	}

	suggestion, _ := textdist.FindMostSimilar(tok, candidates)

	if node == t.Root() {
		return usage.UnknownCommand(tok, suggestion)
	}
	if len(node.Actions) > 0 && len(node.Children) == 0 {
		return usage.UnknownAction(pathOrRoot(node), tok, suggestion)
	}
	return usage.UnknownCommand(strings.Join(append(node.Path, tok), " "), suggestion)
}

func pathOrRoot(n *CommandNode) string {
	if len(n.Path) == 0 {
		return n.Name
	}
	return strings.Join(n.Path, " ")
}
