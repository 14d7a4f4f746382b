package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/flowdefgo/internal/config"
	"github.com/vk/flowdefgo/internal/ctxlog"
	"github.com/vk/flowdefgo/internal/dag"
	"github.com/vk/flowdefgo/internal/guard"
	"github.com/vk/flowdefgo/internal/loader"
	"github.com/vk/flowdefgo/internal/store"
)

// Run executes the main application logic: merge the profile, open the
// database, load the requested graph and report on it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cfg, err := a.mergeProfile(ctx)
	if err != nil {
		return err
	}

	db, err := store.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	a.logger.Debug("Database opened.", "driver", cfg.Driver, "dsn", cfg.DSN)

	if cfg.ListVersions {
		versions, err := loader.Versions(ctx, db, cfg.GraphName)
		if err != nil {
			return err
		}
		if len(versions) == 0 {
			return &loader.NotFoundError{Name: cfg.GraphName}
		}
		fmt.Fprintf(a.outW, "versions of %s:", cfg.GraphName)
		for _, v := range versions {
			fmt.Fprintf(a.outW, " %d", v)
		}
		fmt.Fprintln(a.outW)
		return nil
	}

	var g *dag.Graph
	if cfg.Version >= 0 {
		g, err = loader.LoadGraph(ctx, db, cfg.GraphName, cfg.Version, a.registry)
	} else {
		g, err = loader.LoadLatestGraph(ctx, db, cfg.GraphName, a.registry)
	}
	if err != nil {
		return err
	}
	a.logger.Info("Workflow graph loaded.", "graph", g.ID().String(), "nodes", g.NodeCount(), "arcs", g.ArcCount())

	a.printSummary(g)

	if cfg.LintGuards {
		issues := guard.LintGraph(g)
		for _, issue := range issues {
			fmt.Fprintf(a.outW, "guard: %s\n", issue)
		}
		if len(issues) > 0 {
			return fmt.Errorf("guard lint found %d issue(s) in graph %s", len(issues), g.ID())
		}
		fmt.Fprintln(a.outW, "guards: ok")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// mergeProfile overlays profile values under the flag values. Flags always
// win; the profile only fills what the command line left empty.
func (a *App) mergeProfile(ctx context.Context) (*Config, error) {
	cfg := *a.config

	if cfg.ProfilePath != "" {
		profile, err := config.Load(ctx, cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
		if profile.Database != nil {
			if cfg.DSN == "" {
				cfg.DSN = profile.Database.DSN
			}
			if cfg.Driver == "" {
				cfg.Driver = profile.Database.Driver
			}
		}
		if profile.Defaults != nil {
			if cfg.GraphName == "" {
				cfg.GraphName = profile.Defaults.Graph
			}
			if cfg.Version < 0 && profile.Defaults.Version != nil {
				cfg.Version = *profile.Defaults.Version
			}
		}
	}

	if cfg.Driver == "" {
		cfg.Driver = config.DefaultDriver
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("no workflow database configured (set -db or a profile database block)")
	}
	if cfg.GraphName == "" {
		return nil, fmt.Errorf("no workflow graph named (set -graph or a profile defaults block)")
	}
	return &cfg, nil
}

// printSummary writes the loaded graph's shape to the output writer.
func (a *App) printSummary(g *dag.Graph) {
	fmt.Fprintf(a.outW, "graph %s (id %d): %d node(s), %d arc(s)\n",
		g.ID(), g.ID().ID, g.NodeCount(), g.ArcCount())

	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].RefID < nodes[j].RefID })
	for _, n := range nodes {
		var marks []string
		if n.IsStart {
			marks = append(marks, "start")
		}
		if n.IsJoin {
			marks = append(marks, "join")
		}
		if n.Guard != "" {
			marks = append(marks, "guarded")
		}
		if n.Source.Depth() > 0 {
			marks = append(marks, fmt.Sprintf("nested@%d via %s", n.Source.Depth(), n.Source.InstancePath))
		}
		detail := ""
		if len(marks) > 0 {
			detail = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Fprintf(a.outW, "  node %d %s type=%s extra=%s%s\n",
			n.RefID, n.Name, n.Type, n.Extra.ExtraType(), detail)
	}

	for _, arc := range g.Arcs() {
		label := ""
		if arc.Name != "" {
			label = fmt.Sprintf(" (%s)", arc.Name)
		}
		fmt.Fprintf(a.outW, "  arc %d -> %d%s\n", arc.TailRefID, arc.HeadRefID, label)
	}
}
