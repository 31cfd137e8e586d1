// Package bind converts classified tokens and merged configuration into
// typed bound values, applying defaults, type conversion and validation,
// and checks mutual-exclusivity groups over the bound set.
package bind

import (
	"context"
	"strconv"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/config"
	"github.com/rudder-tools/rudder/usage"
)

// Bind resolves every parameter of action through layers and produces the
// bound-argument set for one invocation.
//
// A failing parameter does not stop the others from binding, so resources
// are acquired and released consistently, but only the first failure is
// surfaced. Callers own the returned BoundArguments and must Release it
// when the invocation completes; on error Release has already run.
func Bind(ctx context.Context, action *cmdtree.ActionNode, layers *config.Layers) (*cmdtree.BoundArguments, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bound := cmdtree.NewBoundArguments()
	var firstErr error

	for _, spec := range action.Params {
		if err := bindOne(spec, layers, bound); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = CheckExclusivity(action.Groups(), bound)
	}

	if firstErr != nil {
		_ = bound.Release()
		return nil, firstErr
	}
	return bound, nil
}

func bindOne(spec *cmdtree.ParameterSpec, layers *config.Layers, bound *cmdtree.BoundArguments) error {
	if spec.Kind == cmdtree.KindSwitch {
		return bindSwitch(spec, layers, bound)
	}

	value, supplied := layers.Resolve(spec)
	if !supplied {
		if spec.Required {
			return usage.MissingValue(spec.Name)
		}
		return nil
	}

	converted, err := convert(spec, spec.Type, value.Raw, bound)
	if err != nil {
		return err
	}

	if err := runRules(spec, value.Raw, converted); err != nil {
		return err
	}

	bound.Put(spec.Name, converted, value.Source)
	return nil
}

// bindSwitch binds a boolean switch. Presence on the command line means
// true; absence means false regardless of configuration-layer values. An
// explicit value string is parsed as a boolean literal, and an unparseable
// literal yields false rather than an error.
func bindSwitch(spec *cmdtree.ParameterSpec, layers *config.Layers, bound *cmdtree.BoundArguments) error {
	value, supplied := layers.Resolve(spec)
	if !supplied || value.Source != cmdtree.SourceCLI {
		bound.Put(spec.Name, false, cmdtree.SourceDefault)
		return nil
	}

	if !value.HasValue {
		bound.Put(spec.Name, true, cmdtree.SourceCLI)
		return nil
	}

	parsed, err := strconv.ParseBool(value.Raw)
	if err != nil {
		parsed = false
	}
	bound.Put(spec.Name, parsed, cmdtree.SourceCLI)
	return nil
}

// runRules applies the declared validation rules in order. The first
// failing rule reports and stops validation for this parameter.
func runRules(spec *cmdtree.ParameterSpec, raw string, converted any) error {
	for _, rule := range spec.Rules {
		if rule.Check != nil && !rule.Check(converted) {
			return usage.Validation(spec.Name, raw, rule.Message)
		}
	}
	return nil
}

// CheckExclusivity verifies that at most one member of each group was
// explicitly supplied on the command line. Values from environment,
// configuration files or defaults never conflict.
func CheckExclusivity(groups []cmdtree.ExclusivityGroup, bound *cmdtree.BoundArguments) error {
	for _, g := range groups {
		var conflicting []string
		for _, name := range g.Members {
			if bound.Source(name) == cmdtree.SourceCLI {
				conflicting = append(conflicting, name)
			}
		}
		if len(conflicting) >= 2 {
			return usage.Exclusivity(conflicting)
		}
	}
	return nil
}
