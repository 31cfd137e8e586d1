// Package exitcode maps dispatch outcomes to process exit codes.
//
// Codes 0 and 1 are success and generic failure. Codes 2-8 cover common
// failure categories, and the 64-78 range mirrors the BSD sysexits taxonomy
// for callers that want it.
package exitcode

import (
	"context"
	"errors"

	"github.com/rudder-tools/rudder/usage"
)

const (
	OK               = 0
	Error            = 1
	InvalidArgs      = 2
	NotFound         = 3
	PermissionDenied = 4
	Network          = 5
	Cancelled        = 6
	Config           = 7
	Unavailable      = 8
)

// BSD-style sysexits subset.
const (
	BSDUsage     = 64
	BSDDataErr   = 65
	BSDNoInput   = 66
	BSDIOErr     = 74
	BSDConfigErr = 78
)

// Mapping pairs an error predicate with the exit code to use when an
// unhandled action error matches it. Mappings are evaluated in declaration
// order; the first match wins.
type Mapping struct {
	Match func(error) bool
	Code  int
}

// MapError builds a Mapping that matches errors.Is against target.
func MapError(target error, code int) Mapping {
	return Mapping{
		Match: func(err error) bool { return errors.Is(err, target) },
		Code:  code,
	}
}

// Resolve computes the exit code for an error that survived the error-hook
// chain. Mappings are consulted first; errors without a matching mapping
// fall back to their intrinsic category, then to the generic failure code.
func Resolve(err error, mappings []Mapping) int {
	if err == nil {
		return OK
	}

	for _, m := range mappings {
		if m.Match != nil && m.Match(err) {
			return m.Code
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Cancelled
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}

	var de *usage.DefinitionError
	if errors.As(err, &de) {
		return Config
	}

	return Error
}
