// Package rudder is a declarative command-line framework: applications
// describe a tree of commands, actions, options and arguments as plain
// data, and the framework resolves an argument vector into one validated,
// typed, bound action invocation with layered configuration, lifecycle
// hooks and exit-code semantics.
package rudder

import (
	"io"
	"os"

	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/config"
	"github.com/rudder-tools/rudder/hooks"
	"github.com/rudder-tools/rudder/log"
)

// App is a constructed framework instance: the frozen command tree plus
// its hook registrations and configuration sources. An App is safe for
// concurrent independent Dispatch calls.
type App struct {
	tree       *cmdtree.Tree
	hooks      []hooks.Descriptor
	configFile *config.File
	env        func(string) string
	version    string
	logger     log.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// Option configures an App at construction time.
type Option func(*App)

// WithConfigFile supplies the parsed configuration source consulted by the
// precedence chain. Use the config.From* adapters to produce one.
func WithConfigFile(f *config.File) Option {
	return func(a *App) { a.configFile = f }
}

// WithEnv overrides environment lookup, mainly for tests. The default is
// os.Getenv.
func WithEnv(fn func(string) string) Option {
	return func(a *App) { a.env = fn }
}

// WithVersion sets the string printed by --version.
func WithVersion(v string) Option {
	return func(a *App) { a.version = v }
}

// WithLogger wires a logger the dispatcher traces resolution and binding
// through. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithHooks registers application-level lifecycle hooks. They run around
// every action, ordered before command- and action-level hooks of equal
// order.
func WithHooks(ds ...hooks.Descriptor) Option {
	return func(a *App) { a.hooks = append(a.hooks, ds...) }
}

// WithOutput redirects the app's standard and error output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// New constructs an App over a frozen command tree.
func New(tree *cmdtree.Tree, opts ...Option) *App {
	a := &App{
		tree:   tree,
		logger: log.NopLogger{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tree returns the app's command tree.
func (a *App) Tree() *cmdtree.Tree {
	return a.tree
}
