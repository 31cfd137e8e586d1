// Command rudderdemo is a small fleet-control CLI built on the rudder
// framework. It exists to exercise the framework surface end to end:
// nested commands, typed options, enums, collections, structured values,
// lifecycle hooks, layered configuration and exit-code mapping.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/rudder-tools/rudder"
	"github.com/rudder-tools/rudder/cmdtree"
	"github.com/rudder-tools/rudder/config"
	"github.com/rudder-tools/rudder/exitcode"
	"github.com/rudder-tools/rudder/hooks"
	"github.com/rudder-tools/rudder/log"
	"github.com/rudder-tools/rudder/style"
)

var errVesselNotFound = errors.New("vessel not found")

func main() {
	args := os.Args[1:]

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !hasFlag(args, "--no-color")
	style.Init(enableColor)

	logger := log.Logger(log.NopLogger{})
	if hasFlag(args, "--debug") {
		logger = log.New(os.Stderr, log.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := rudder.New(buildTree(),
		rudder.WithVersion("v0.3.0"),
		rudder.WithConfigFile(loadConfig(logger)),
		rudder.WithLogger(logger),
		rudder.WithHooks(timingHooks()...),
	)

	os.Exit(app.Run(ctx, stripGlobalFlags(args)))
}

func buildTree() *cmdtree.Tree {
	b := cmdtree.NewBuilder(cmdtree.RootSpec{
		Name:    "shipctl",
		Summary: "Control a small fleet of ships",
	})

	format := &cmdtree.EnumType{
		Name: "format",
		Members: []cmdtree.EnumMember{
			{Name: "table", Value: 0},
			{Name: "json", Value: 1},
			{Name: "yaml", Value: 2},
		},
	}

	b.Action(cmdtree.ActionSpec{
		Name:       "status",
		Summary:    "Report fleet health",
		Primary:    true,
		ReturnKind: cmdtree.ReturnEnum,
		Run:        runStatus,
		Params: []*cmdtree.ParameterSpec{
			{
				Kind:       cmdtree.KindOption,
				Name:       "format",
				Short:      'f',
				Summary:    "Output format",
				Type:       cmdtree.Enum(format),
				Default:    "table",
				HasDefault: true,
			},
			{
				Kind:    cmdtree.KindSwitch,
				Name:    "verbose",
				Short:   'v',
				Summary: "Include per-vessel detail",
			},
		},
	})

	cargo := b.Command(cmdtree.CommandSpec{
		Name:    "cargo",
		Summary: "Manage cargo manifests",
	})

	b.Action(cmdtree.ActionSpec{
		Name:    "add",
		Owner:   cargo,
		Summary: "Register a crate on a vessel",
		Primary: true,
		ExitMappings: []exitcode.Mapping{
			exitcode.MapError(errVesselNotFound, exitcode.NotFound),
		},
		Run: runCargoAdd,
		Params: []*cmdtree.ParameterSpec{
			{
				Kind:     cmdtree.KindArgument,
				Name:     "name",
				Summary:  "Crate name",
				Required: true,
				Type:     cmdtree.Primitive(cmdtree.String),
			},
			{
				Kind:    cmdtree.KindOption,
				Name:    "vessel",
				Summary: "Target vessel",
				EnvVar:  "SHIPCTL_VESSEL",
				Type:    cmdtree.Primitive(cmdtree.String),
			},
			{
				Kind:       cmdtree.KindOption,
				Name:       "weight",
				Short:      'w',
				Summary:    "Crate weight in tonnes",
				Type:       cmdtree.Primitive(cmdtree.Float),
				Default:    "1.0",
				HasDefault: true,
				Rules: []cmdtree.ValidationRule{{
					Check:   func(v any) bool { f, ok := v.(float64); return ok && f > 0 },
					Message: "weight must be positive",
				}},
			},
			{
				Kind:    cmdtree.KindContainer,
				Name:    "tags",
				Summary: "Labels attached to the crate",
				Type:    cmdtree.Collection(cmdtree.Primitive(cmdtree.String)),
			},
		},
	})

	b.Action(cmdtree.ActionSpec{
		Name:    "list",
		Aliases: []string{"ls"},
		Owner:   cargo,
		Summary: "List registered crates",
		Run:     runCargoList,
		Params: []*cmdtree.ParameterSpec{
			{Kind: cmdtree.KindSwitch, Name: "json", Group: "output"},
			{Kind: cmdtree.KindSwitch, Name: "xml", Group: "output"},
		},
	})

	manifest := b.Command(cmdtree.CommandSpec{
		Name:    "manifest",
		Summary: "Work with manifest files",
	})

	b.Action(cmdtree.ActionSpec{
		Name:    "load",
		Owner:   manifest,
		Summary: "Load and count a manifest file",
		Primary: true,
		Run:     runManifestLoad,
		Params: []*cmdtree.ParameterSpec{
			{
				Kind:     cmdtree.KindArgument,
				Name:     "file",
				Summary:  "Manifest to read",
				Required: true,
				Type:     cmdtree.Structured(cmdtree.InputFile),
			},
			{
				Kind:       cmdtree.KindOption,
				Name:       "timeout",
				Summary:    "Give up after this long",
				Type:       cmdtree.Structured(cmdtree.Duration),
				Default:    "30s",
				HasDefault: true,
			},
		},
	})

	tree, err := b.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Config)
	}
	return tree
}

func runStatus(ctx context.Context, args *cmdtree.BoundArguments) (int, error) {
	vessels := []struct{ name, state string }{
		{"albatross", "ok"},
		{"kestrel", "degraded"},
	}
	worst := 0
	for _, v := range vessels {
		if v.state == "degraded" && worst < 5 {
			worst = 5
		}
	}
	overall := map[int]string{0: "ok", 5: "degraded"}[worst]

	switch args.Int("format") {
	case 1:
		fmt.Printf("{\"overall\": %q}\n", overall)
	case 2:
		fmt.Printf("overall: %s\n", overall)
	default:
		fmt.Println(style.Header("fleet status"))
		if args.Bool("verbose") {
			for _, v := range vessels {
				fmt.Printf("  %-12s %s\n", v.name, v.state)
			}
		}
		fmt.Println("overall: " + overall)
	}
	return worst, nil
}

func runCargoAdd(ctx context.Context, args *cmdtree.BoundArguments) (int, error) {
	vessel := args.String("vessel")
	if vessel == "" {
		vessel = "albatross"
	}
	if vessel == "ghost" {
		return 0, fmt.Errorf("%w: %s", errVesselNotFound, vessel)
	}
	fmt.Printf("added %s (%.1ft) to %s", args.String("name"), args.Float("weight"), vessel)
	if tags := args.Strings("tags"); len(tags) > 0 {
		fmt.Printf(" tags=%v", tags)
	}
	fmt.Println()
	return 0, nil
}

func runCargoList(ctx context.Context, args *cmdtree.BoundArguments) (int, error) {
	crates := []string{"spare-anchors", "rations", "rope"}
	switch {
	case args.Bool("json"):
		fmt.Printf("[%q, %q, %q]\n", crates[0], crates[1], crates[2])
	case args.Bool("xml"):
		for _, c := range crates {
			fmt.Printf("<crate>%s</crate>\n", c)
		}
	default:
		for _, c := range crates {
			fmt.Println("  " + c)
		}
	}
	return 0, nil
}

func runManifestLoad(ctx context.Context, args *cmdtree.BoundArguments) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, args.Duration("timeout"))
	defer cancel()

	lines := 0
	sc := bufio.NewScanner(args.Reader("file"))
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		lines++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	fmt.Printf("manifest ok, %d entries\n", lines)
	return 0, nil
}

// timingHooks measures the action and reports the elapsed time afterwards.
func timingHooks() []hooks.Descriptor {
	return []hooks.Descriptor{
		{
			Stage: hooks.StageBefore,
			Fn: func(ctx context.Context, hc *hooks.Context) error {
				hc.Set("start", time.Now())
				return nil
			},
		},
		{
			Stage: hooks.StageAfter,
			Fn: func(ctx context.Context, hc *hooks.Context) error {
				if v, ok := hc.Get("start"); ok {
					fmt.Fprintln(os.Stderr, style.Muted(fmt.Sprintf("took %s", time.Since(v.(time.Time)).Round(time.Millisecond))))
				}
				return nil
			},
		},
	}
}

// loadConfig reads the first shipctl config file found next to the binary's
// working directory. Each supported format maps to one adapter.
func loadConfig(logger log.Logger) *config.File {
	adapters := []struct {
		name string
		from func([]byte) (*config.File, error)
	}{
		{"shipctl.toml", config.FromTOML},
		{"shipctl.yaml", config.FromYAML},
		{"shipctl.json", config.FromJSON},
		{"shipctl.ini", config.FromINI},
	}
	for _, a := range adapters {
		data, err := os.ReadFile(filepath.Join(".", a.name))
		if err != nil {
			continue
		}
		f, err := a.from(data)
		if err != nil {
			logger.Warn("ignoring %s: %v", a.name, err)
			continue
		}
		logger.Debug("loaded configuration from %s", a.name)
		return f
	}
	return nil
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == name {
			return true
		}
	}
	return false
}

// stripGlobalFlags removes the flags main itself consumes before dispatch.
func stripGlobalFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "--no-color" || a == "--debug" {
			continue
		}
		out = append(out, a)
	}
	return out
}
