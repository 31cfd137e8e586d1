package config

import (
	"os"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/tokens"
)

// Value is the winning raw value for one parameter, before conversion.
type Value struct {
	Raw      string
	HasValue bool // false for a bare switch occurrence
	Source   cmdtree.Source
}

// Layers is the precedence chain for one action invocation:
// explicit CLI token > environment variable > configuration-file value >
// declared default. Layers are call-scoped; absent or malformed layers are
// treated as "not supplied", never as errors.
type Layers struct {
	CLI  *tokens.Classified
	Env  func(string) string // nil falls back to os.Getenv
	File *File
	Path []string // resolved command path
}

// Resolve walks the chain for spec and returns the winning value.
// The second result is false when no source supplied the parameter.
func (l *Layers) Resolve(spec *cmdtree.ParameterSpec) (Value, bool) {
	if l.CLI != nil {
		if s, ok := l.CLI.Lookup(spec.Name); ok {
			return Value{Raw: s.Raw, HasValue: s.HasValue, Source: cmdtree.SourceCLI}, true
		}
	}

	if spec.EnvVar != "" {
		env := l.Env
		if env == nil {
			env = os.Getenv
		}
		// An empty variable is equivalent to "not supplied".
		if v := env(spec.EnvVar); v != "" {
			return Value{Raw: v, HasValue: true, Source: cmdtree.SourceEnv}, true
		}
	}

	if v, ok := l.File.CommandValue(l.Path, spec.Name); ok {
		return Value{Raw: v, HasValue: true, Source: cmdtree.SourceConfig}, true
	}
	if spec.Global {
		if v, ok := l.File.GlobalValue(spec.Name); ok {
			return Value{Raw: v, HasValue: true, Source: cmdtree.SourceConfig}, true
		}
	}

	if spec.HasDefault {
		return Value{Raw: spec.Default, HasValue: true, Source: cmdtree.SourceDefault}, true
	}

	return Value{}, false
}
