package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biglinehq/bigline/pkg/layout"
	"github.com/biglinehq/bigline/pkg/lineage"
)

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "layout [roster.json]",
		Short: "Compute lineage chart geometry from a roster",
		Long: `Compute lineage chart geometry from a roster.

The layout command reads a roster.json file and computes final (x, y)
coordinates for every member: generation depth becomes the vertical layer,
families become side-by-side blocks ordered by cross-family connectivity,
and members are spaced by their estimated label widths. The output is a
layout.json file consumed by a rendering frontend.

Relationship cycles in the roster are reported as warnings; the layout
always completes. Results are cached locally keyed by roster content and
layout settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, configPath, noCache, width, height)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML layout profile overriding the default spacing")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width override")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height override")

	return cmd
}

// runLayout loads the roster, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output, configPath string, noCache bool, width, height float64) error {
	cfg, err := loadLayoutConfig(configPath)
	if err != nil {
		return err
	}
	if width > 0 {
		cfg.CanvasWidth = width
	}
	if height > 0 {
		cfg.CanvasHeight = height
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read roster %s: %w", input, err)
	}

	runner := c.newRunner(noCache)
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, "Computing layout...")
	spinner.Start()

	res, cacheHit, err := runner.LayoutRoster(ctx, data, cfg)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	source := "computed"
	if cacheHit {
		source = "cached"
	}
	prog.done(fmt.Sprintf("Laid out %d members across %d families (%s)",
		len(res.Nodes), len(res.Families), source))

	printCycles(res.Cycles)

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + ".layout.json"
	}
	if err := layout.WriteResultFile(res, output); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	printSuccess("Layout written")
	printFile(output)
	printDetail("canvas: %.0f×%.0f, families: %s",
		res.Width, res.Height, strings.Join(familyLabels(res.Families), ", "))
	return nil
}

// familyLabels replaces the unnamed family with a readable placeholder.
func familyLabels(families []string) []string {
	out := make([]string, len(families))
	for i, f := range families {
		if f == "" {
			f = "(unaffiliated)"
		}
		out[i] = f
	}
	return out
}

// readGraph loads a roster file and builds its graph.
func readGraph(path string) (lineage.Roster, *lineage.Graph, error) {
	roster, err := lineage.ReadRosterFile(path)
	if err != nil {
		return lineage.Roster{}, nil, err
	}
	return roster, roster.Graph(), nil
}
