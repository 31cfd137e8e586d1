package rudder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rudder-tools/rudder/bind"
	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/config"
	"github.com/rudder-tools/rudder/exitcode"
	"github.com/rudder-tools/rudder/hooks"
	"github.com/rudder-tools/rudder/style"
	"github.com/rudder-tools/rudder/tokens"
	"github.com/rudder-tools/rudder/usage"
)

// Dispatch resolves argv to one action, binds its parameters, runs the
// hook pipeline around the action and returns the process exit code. The
// returned error is the unhandled failure, if any; the exit code is
// already derived from it.
//
// Dispatch is single-threaded per call. Cancellation of ctx is cooperative
// and observed at binder start and at hook boundaries.
func (a *App) Dispatch(ctx context.Context, argv []string) (int, error) {
	if code, done := a.shortCircuit(argv); done {
		return code, nil
	}

	res, err := a.tree.Resolve(argv)
	if err != nil {
		return exitcode.Resolve(err, nil), err
	}
	a.logger.Debug("resolved %q to action %q", strings.Join(res.Command.Path, " "), res.Action.Name)

	bound, err := a.bindAction(ctx, res)
	if err != nil {
		return exitcode.Resolve(err, res.Action.ExitMappings), err
	}
	defer func() { _ = bound.Release() }()

	outcome, err := a.runPipeline(ctx, res, bound)
	if err != nil {
		code := exitcode.Resolve(err, res.Action.ExitMappings)
		a.logger.Debug("action %q failed with code %d: %v", res.Action.Name, code, err)
		return code, err
	}

	if outcome.State == hooks.Cancelled {
		a.logger.Info("dispatch cancelled: %s", outcome.CancelMessage)
		return exitcode.Cancelled, nil
	}

	if res.Action.ReturnKind == cmdtree.ReturnNone {
		return exitcode.OK, nil
	}
	return outcome.Code, nil
}

// Run dispatches argv and renders any failure to the app's error output,
// returning the exit code for main to pass to os.Exit.
func (a *App) Run(ctx context.Context, argv []string) int {
	code, err := a.Dispatch(ctx, argv)
	if err != nil {
		a.renderError(err)
	}
	return code
}

func (a *App) bindAction(ctx context.Context, res cmdtree.Resolution) (*cmdtree.BoundArguments, error) {
	classified, err := tokens.Classify(res.Rest, res.Action)
	if err != nil {
		return nil, err
	}

	layers := &config.Layers{
		CLI:  classified,
		Env:  a.env,
		File: a.configFile,
		Path: res.Command.Path,
	}

	return bind.Bind(ctx, res.Action, layers)
}

// runPipeline assembles the hook pipeline for the resolved action from the
// application registrations, the command chain root-first, and the action
// itself, then runs the action inside it.
func (a *App) runPipeline(ctx context.Context, res cmdtree.Resolution, bound *cmdtree.BoundArguments) (hooks.Outcome, error) {
	groups := [][]hooks.Descriptor{a.hooks}
	for _, node := range a.commandChain(res.Command) {
		groups = append(groups, node.Hooks)
	}
	groups = append(groups, res.Action.Hooks)

	pipeline := hooks.NewPipeline(groups...)
	hc := hooks.NewContext()

	return pipeline.Run(ctx, hc, func(ctx context.Context) (int, error) {
		return res.Action.Run(ctx, bound)
	})
}

// commandChain returns the nodes from the root to n, root first.
func (a *App) commandChain(n *cmdtree.CommandNode) []*cmdtree.CommandNode {
	var chain []*cmdtree.CommandNode
	for node := n; node != nil; node = a.tree.Parent(node) {
		chain = append(chain, node)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// shortCircuit handles --help/-h and --version, which are recognized at
// any point before option parsing ends and bypass normal dispatch with
// exit code 0.
func (a *App) shortCircuit(argv []string) (int, bool) {
	for _, tok := range argv {
		switch tok {
		case "--":
			return 0, false
		case "--help", "-h":
			a.printHelp(argv)
			return exitcode.OK, true
		case "--version":
			fmt.Fprintln(a.stdout, a.versionString())
			return exitcode.OK, true
		}
	}
	return 0, false
}

func (a *App) versionString() string {
	if a.version == "" {
		return a.tree.Root().Name + " (version unknown)"
	}
	return a.tree.Root().Name + " " + a.version
}

// printHelp writes a minimal usage summary for the deepest command the
// path tokens reach. Full help layout is left to external renderers; this
// keeps --help useful without one.
func (a *App) printHelp(argv []string) {
	node := a.tree.Root()
	for _, tok := range argv {
		if strings.HasPrefix(tok, "-") {
			break
		}
		found := false
		for _, child := range node.Children {
			if child.Matches(tok) {
				node = child
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	name := node.Name
	if len(node.Path) > 0 {
		name = a.tree.Root().Name + " " + strings.Join(node.Path, " ")
	}
	fmt.Fprintln(a.stdout, style.Header(name))
	if node.Summary != "" {
		fmt.Fprintln(a.stdout, "  "+node.Summary)
	}

	if len(node.Children) > 0 {
		fmt.Fprintln(a.stdout, style.Header("commands:"))
		for _, child := range node.Children {
			fmt.Fprintf(a.stdout, "  %-18s %s\n", child.Name, style.Muted(child.Summary))
		}
	}
	if len(node.Actions) > 0 {
		fmt.Fprintln(a.stdout, style.Header("actions:"))
		for _, action := range node.Actions {
			fmt.Fprintf(a.stdout, "  %-18s %s\n", action.Name, style.Muted(action.Summary))
		}
	}
}

func (a *App) renderError(err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(a.stderr, style.Error(ue.Message))
		if ue.Suggestion != "" {
			fmt.Fprintln(a.stderr, style.Hint("Did you mean '"+ue.Suggestion+"'?"))
		}
		return
	}
	fmt.Fprintln(a.stderr, style.Error(err.Error()))
}
