// Package testutil provides command-tree fixtures shared by dispatcher
// tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudder-tools/rudder/cmdtree"
)

// Recorder captures the bound arguments of the last invoked action.
type Recorder struct {
	Invoked string
	Args    *cmdtree.BoundArguments
}

func (r *Recorder) run(name string, code int) cmdtree.ActionFunc {
	return func(ctx context.Context, args *cmdtree.BoundArguments) (int, error) {
		r.Invoked = name
		r.Args = args
		return code, nil
	}
}

// NewShipTree builds the tree used across dispatcher tests:
//
//	shipctl
//	  serve            (primary action with port/host/tags/format options)
//	  cargo
//	    add <name>     (primary, positional + switches in one group)
//	    list | ls
func NewShipTree(t *testing.T, rec *Recorder) *cmdtree.Tree {
	t.Helper()

	b := cmdtree.NewBuilder(cmdtree.RootSpec{Name: "shipctl", Summary: "Fleet control"})

	b.Action(cmdtree.ActionSpec{
		Name:    "serve",
		Primary: true,
		Run:     rec.run("serve", 0),
		Params: []*cmdtree.ParameterSpec{
			{
				Kind:       cmdtree.KindOption,
				Name:       "port",
				Short:      'p',
				Type:       cmdtree.Primitive(cmdtree.Int),
				EnvVar:     "PORT",
				Default:    "8080",
				HasDefault: true,
			},
			{
				Kind: cmdtree.KindOption,
				Name: "host",
				Type: cmdtree.Primitive(cmdtree.String),
			},
			{
				Kind: cmdtree.KindContainer,
				Name: "tags",
				Type: cmdtree.Collection(cmdtree.Primitive(cmdtree.String)),
			},
			{Kind: cmdtree.KindSwitch, Name: "json", Group: "format"},
			{Kind: cmdtree.KindSwitch, Name: "xml", Group: "format"},
		},
	})

	cargo := b.Command(cmdtree.CommandSpec{Name: "cargo", Summary: "Manage cargo"})

	b.Action(cmdtree.ActionSpec{
		Name:    "add",
		Owner:   cargo,
		Primary: true,
		Run:     rec.run("cargo add", 0),
		Params: []*cmdtree.ParameterSpec{
			{
				Kind:     cmdtree.KindArgument,
				Name:     "name",
				Required: true,
				Type:     cmdtree.Primitive(cmdtree.String),
			},
			{
				Kind: cmdtree.KindOption,
				Name: "weight",
				Type: cmdtree.Primitive(cmdtree.Float),
			},
		},
	})

	b.Action(cmdtree.ActionSpec{
		Name:    "list",
		Aliases: []string{"ls"},
		Owner:   cargo,
		Run:     rec.run("cargo list", 0),
	})

	tree, err := b.Build()
	require.NoError(t, err)
	return tree
}
