package exitcode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rudder-tools/rudder/usage"
)

var errLocked = errors.New("resource locked")

func TestResolve_NilIsOK(t *testing.T) {
	assert.Equal(t, OK, Resolve(nil, nil))
}

func TestResolve_FirstMappingWins(t *testing.T) {
	mappings := []Mapping{
		MapError(errLocked, Unavailable),
		{Match: func(error) bool { return true }, Code: 99},
	}

	assert.Equal(t, Unavailable, Resolve(fmt.Errorf("open: %w", errLocked), mappings))
	assert.Equal(t, 99, Resolve(errors.New("anything else"), mappings))
}

func TestResolve_UnmappedErrorIsGenericFailure(t *testing.T) {
	assert.Equal(t, Error, Resolve(errors.New("boom"), nil))
}

func TestResolve_UsageErrorsUseKindCodes(t *testing.T) {
	assert.Equal(t, 1, Resolve(usage.UnknownCommand("frob", ""), nil))
	assert.Equal(t, 2, Resolve(usage.MissingValue("port"), nil))
	assert.Equal(t, 2, Resolve(usage.Exclusivity([]string{"json", "xml"}), nil))
}

func TestResolve_DefinitionErrorIsConfig(t *testing.T) {
	assert.Equal(t, Config, Resolve(usage.Definitionf("no primary action"), nil))
}

func TestResolve_ContextCancellation(t *testing.T) {
	assert.Equal(t, Cancelled, Resolve(context.Canceled, nil))
	assert.Equal(t, Cancelled, Resolve(context.DeadlineExceeded, nil))
}

func TestResolve_MappingBeatsIntrinsicCategory(t *testing.T) {
	mappings := []Mapping{MapError(context.Canceled, BSDUsage)}
	assert.Equal(t, BSDUsage, Resolve(context.Canceled, mappings))
}
