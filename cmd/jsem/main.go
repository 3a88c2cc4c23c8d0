// jsem resolves Java identifiers against the declarations collected
// from a source tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/jsem/internal/collect"
	"github.com/standardbeagle/jsem/internal/config"
	"github.com/standardbeagle/jsem/internal/debug"
	"github.com/standardbeagle/jsem/internal/resolve"
	"github.com/standardbeagle/jsem/internal/suggest"
	"github.com/standardbeagle/jsem/internal/symbols"
	"github.com/standardbeagle/jsem/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "jsem",
		Usage:   "Java declaration collection and name resolution",
		Version: version.Info(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a .jsem.kdl config file (default: <root>/.jsem.kdl)",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "project root to scan",
				Value: ".",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug tracing on stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				debug.SetOutput(os.Stderr)
			}
			return nil
		},
		Commands: []*cli.Command{
			collectCommand(),
			resolveCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "jsem: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path, c.String("root"))
	} else {
		cfg, err = config.Load(c.String("root"))
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func collectCommand() *cli.Command {
	return &cli.Command{
		Name:  "collect",
		Usage: "collect declarations and print a per-package summary",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "keep re-collecting when sources change",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			collector := collect.New(cfg)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			graph, err := collector.Collect(ctx)
			if err != nil {
				return err
			}
			printSummary(graph)

			if !c.Bool("watch") {
				return nil
			}

			watcher, err := collect.NewWatcher(cfg, collector, func(g *collect.Graph) {
				fmt.Println("--- re-collected ---")
				printSummary(g)
			})
			if err != nil {
				return err
			}
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Println("watching for changes, Ctrl-C to stop")
			<-ctx.Done()
			return nil
		},
	}
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "resolve an identifier as seen from a class body",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "class",
				Usage:    "qualified name of the class the reference appears in",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "requested kinds: var, type, or both",
				Value: "both",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one identifier, got %d", c.NArg())
			}
			name := c.Args().First()

			kinds, err := parseKinds(c.String("kind"))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			graph, err := collect.New(cfg).Collect(ctx)
			if err != nil {
				return err
			}

			site := graph.LookupType(c.String("class"))
			if site == nil {
				return fmt.Errorf("class %q not found in collected sources", c.String("class"))
			}

			arena := resolve.NewArena()
			env := collect.EnvFor(arena, site)
			resolver := resolve.New(cfg.Resolver.MaxDepth)

			out := resolver.FindIdent(env, name, kinds)
			printOutcome(cfg, graph, name, out)
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			fmt.Println(version.FullInfo())
			return nil
		},
	}
}

func parseKinds(s string) (resolve.Lookup, error) {
	switch s {
	case "var":
		return resolve.LookupVariables, nil
	case "type":
		return resolve.LookupTypes, nil
	case "both":
		return resolve.LookupVariables | resolve.LookupTypes, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want var, type, or both)", s)
	}
}

func printSummary(graph *collect.Graph) {
	for _, pkg := range graph.Packages() {
		name := pkg.Name
		if name == "" {
			name = "(default package)"
		}
		types, fields, methods := countMembers(pkg)
		fmt.Printf("%s: %d types, %d fields, %d methods\n", name, types, fields, methods)
	}
}

func countMembers(owner *symbols.Symbol) (types, fields, methods int) {
	for _, name := range owner.Members.Names() {
		for _, s := range owner.Members.Lookup(name) {
			switch s.Kind {
			case symbols.KindType:
				types++
				t, f, m := countMembers(s)
				types += t
				fields += f
				methods += m
			case symbols.KindVariable:
				fields++
			case symbols.KindMethod:
				methods++
			}
		}
	}
	return types, fields, methods
}

func printOutcome(cfg *config.Config, graph *collect.Graph, name string, out resolve.Outcome) {
	switch out.Status {
	case resolve.StatusFound:
		loc := out.Sym.Location
		fmt.Printf("%s %s", out.Sym.Kind, out.Sym.QualifiedName())
		if !loc.IsZero() {
			fmt.Printf(" (%s:%d:%d)", loc.File, loc.Line, loc.Column)
		}
		fmt.Println()
	case resolve.StatusInaccessible:
		fmt.Printf("inaccessible: %s %s is not visible from here\n",
			out.Sym.Flags, out.Sym.QualifiedName())
	case resolve.StatusAmbiguous:
		fmt.Printf("ambiguous: multiple candidates named %s\n", name)
	case resolve.StatusNotFound:
		fmt.Printf("not found: %s\n", name)
		if cfg.Suggest.Enabled {
			s := suggest.New(cfg.Suggest.Threshold, cfg.Suggest.MaxResults)
			for _, hint := range s.Rank(name, graph.Names()) {
				fmt.Printf("  did you mean %s?\n", hint.Name)
			}
		}
	}
}
