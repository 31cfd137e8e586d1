package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudder-tools/rudder/usage"
)

func buildResolveTree(t *testing.T) *Tree {
	t.Helper()

	b := NewBuilder(RootSpec{Name: "shipctl"})

	b.Action(ActionSpec{
		Name:    "status",
		Primary: true,
		Run:     nopAction,
		Params: []*ParameterSpec{
			{Kind: KindArgument, Name: "target", Type: Primitive(String)},
		},
	})

	cargo := b.Command(CommandSpec{Name: "cargo", Aliases: []string{"cg"}})
	b.Action(ActionSpec{Name: "add", Owner: cargo, Primary: true, Run: nopAction})
	b.Action(ActionSpec{Name: "list", Aliases: []string{"ls"}, Owner: cargo, Run: nopAction})

	remote := b.Command(CommandSpec{Name: "remote"})
	b.Command(CommandSpec{Name: "prune", Parent: remote})

	tree, err := b.Build()
	require.NoError(t, err)
	return tree
}

func TestResolve_PrimaryAtRoot(t *testing.T) {
	tree := buildResolveTree(t)

	res, err := tree.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "status", res.Action.Name)
	assert.Empty(t, res.Rest)
}

func TestResolve_CommandPrimary(t *testing.T) {
	tree := buildResolveTree(t)

	res, err := tree.Resolve([]string{"cargo"})
	require.NoError(t, err)
	assert.Equal(t, "cargo", res.Command.Name)
	assert.Equal(t, "add", res.Action.Name)
}

func TestResolve_ActionToken(t *testing.T) {
	tree := buildResolveTree(t)

	res, err := tree.Resolve([]string{"cargo", "list"})
	require.NoError(t, err)
	assert.Equal(t, "list", res.Action.Name)
	assert.Empty(t, res.Rest)
}

func TestResolve_CaseInsensitiveAliases(t *testing.T) {
	tree := buildResolveTree(t)

	res, err := tree.Resolve([]string{"CG", "LS"})
	require.NoError(t, err)
	assert.Equal(t, "cargo", res.Command.Name)
	assert.Equal(t, "list", res.Action.Name)
}

func TestResolve_RestAfterAction(t *testing.T) {
	tree := buildResolveTree(t)

	res, err := tree.Resolve([]string{"cargo", "list", "--json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--json"}, res.Rest)
}

func TestResolve_PositionalStaysInRest(t *testing.T) {
	tree := buildResolveTree(t)

	// "everything" matches nothing at the root, but the root's primary
	// action takes a positional, so it stays for the classifier.
	res, err := tree.Resolve([]string{"everything"})
	require.NoError(t, err)
	assert.Equal(t, "status", res.Action.Name)
	assert.Equal(t, []string{"everything"}, res.Rest)
}

func TestResolve_UnknownActionWithSuggestion(t *testing.T) {
	tree := buildResolveTree(t)

	_, err := tree.Resolve([]string{"cargo", "lst"})
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, usage.ErrUnknownAction, ue.Kind)
	assert.Equal(t, "list", ue.Suggestion)
	assert.Contains(t, ue.Error(), "Did you mean 'list'?")
}

func TestResolve_UnknownSubcommandWithSuggestion(t *testing.T) {
	tree := buildResolveTree(t)

	_, err := tree.Resolve([]string{"remote", "prnue"})
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "prune", ue.Suggestion)
}

func TestResolve_GroupWithoutSubcommand(t *testing.T) {
	tree := buildResolveTree(t)

	_, err := tree.Resolve([]string{"remote"})
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, usage.ErrUnknownCommand, ue.Kind)
}

func TestResolve_NoPrimaryIsDefinitionError(t *testing.T) {
	b := NewBuilder(RootSpec{Name: "app"})
	cmd := b.Command(CommandSpec{Name: "serve"})
	b.Action(ActionSpec{Name: "start", Owner: cmd, Run: nopAction})
	tree, err := b.Build()
	require.NoError(t, err)

	_, err = tree.Resolve([]string{"serve"})
	require.Error(t, err)

	var de *usage.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Error(), "no primary action")
}

func TestResolve_LongTypoSuggestion(t *testing.T) {
	b := NewBuilder(RootSpec{Name: "app"})
	for _, name := range []string{"large-cmd-50", "large-cmd-51"} {
		cmd := b.Command(CommandSpec{Name: name})
		b.Action(ActionSpec{Name: "run", Owner: cmd, Primary: true, Run: nopAction})
	}
	tree, err := b.Build()
	require.NoError(t, err)

	_, err = tree.Resolve([]string{"large-cnd-50"})
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "large-cmd-50", ue.Suggestion)
}
