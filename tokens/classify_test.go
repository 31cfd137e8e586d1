package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/usage"
)

func classifyAction() *cmdtree.ActionNode {
	return &cmdtree.ActionNode{
		Name: "serve",
		Params: []*cmdtree.ParameterSpec{
			{Kind: cmdtree.KindOption, Name: "port", Short: 'p', Type: cmdtree.Primitive(cmdtree.Int)},
			{Kind: cmdtree.KindOption, Name: "host", Type: cmdtree.Primitive(cmdtree.String)},
			{Kind: cmdtree.KindSwitch, Name: "verbose", Short: 'v'},
			{Kind: cmdtree.KindContainer, Name: "tags", Type: cmdtree.Collection(cmdtree.Primitive(cmdtree.String))},
			{Kind: cmdtree.KindArgument, Name: "source", Position: 0, Type: cmdtree.Primitive(cmdtree.String)},
			{Kind: cmdtree.KindArgument, Name: "dest", Position: 1, Type: cmdtree.Primitive(cmdtree.String)},
		},
	}
}

func TestClassify_LongForms(t *testing.T) {
	c, err := Classify([]string{"--port", "9000", "--host=local"}, classifyAction())
	require.NoError(t, err)

	port, ok := c.Lookup("port")
	require.True(t, ok)
	assert.Equal(t, "9000", port.Raw)
	assert.True(t, port.HasValue)

	host, ok := c.Lookup("host")
	require.True(t, ok)
	assert.Equal(t, "local", host.Raw)
}

func TestClassify_ShortForms(t *testing.T) {
	c, err := Classify([]string{"-p", "9000", "-v"}, classifyAction())
	require.NoError(t, err)

	port, ok := c.Lookup("port")
	require.True(t, ok)
	assert.Equal(t, "9000", port.Raw)

	verbose, ok := c.Lookup("verbose")
	require.True(t, ok)
	assert.False(t, verbose.HasValue)
}

func TestClassify_SwitchTakesNoValue(t *testing.T) {
	c, err := Classify([]string{"--verbose", "input.txt"}, classifyAction())
	require.NoError(t, err)

	verbose, ok := c.Lookup("verbose")
	require.True(t, ok)
	assert.False(t, verbose.HasValue)

	src, ok := c.Lookup("source")
	require.True(t, ok)
	assert.Equal(t, "input.txt", src.Raw)
}

func TestClassify_PositionalOrder(t *testing.T) {
	c, err := Classify([]string{"a.txt", "--verbose", "b.txt"}, classifyAction())
	require.NoError(t, err)

	src, _ := c.Lookup("source")
	dest, _ := c.Lookup("dest")
	assert.Equal(t, "a.txt", src.Raw)
	assert.Equal(t, "b.txt", dest.Raw)
}

func TestClassify_DoubleDashEndsOptions(t *testing.T) {
	c, err := Classify([]string{"--", "--verbose", "-p"}, classifyAction())
	require.NoError(t, err)

	_, ok := c.Lookup("verbose")
	assert.False(t, ok)

	src, _ := c.Lookup("source")
	dest, _ := c.Lookup("dest")
	assert.Equal(t, "--verbose", src.Raw)
	assert.Equal(t, "-p", dest.Raw)
}

func TestClassify_RepeatedContainerAccumulates(t *testing.T) {
	c, err := Classify([]string{"--tags", "a,b", "--tags", "c"}, classifyAction())
	require.NoError(t, err)

	tags, ok := c.Lookup("tags")
	require.True(t, ok)
	assert.Equal(t, "a,b,c", tags.Raw)
}

func TestClassify_UnknownOptionSuggestion(t *testing.T) {
	_, err := Classify([]string{"--prot", "9000"}, classifyAction())
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, usage.ErrUnknownOption, ue.Kind)
	assert.Equal(t, "--port", ue.Suggestion)
}

func TestClassify_MissingTrailingValue(t *testing.T) {
	_, err := Classify([]string{"--port"}, classifyAction())
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, usage.ErrMissingValue, ue.Kind)
}

func TestClassify_TooManyPositionals(t *testing.T) {
	_, err := Classify([]string{"a", "b", "c"}, classifyAction())
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, usage.ErrUnknownOption, ue.Kind)
}
