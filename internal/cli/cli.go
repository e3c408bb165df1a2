// Package cli implements the bigline command-line interface.
//
// This package provides commands for computing lineage chart layouts from
// roster files, finding shortest relationship paths between members,
// serving both over HTTP, and managing the local layout cache. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
//   - layout: compute diagram geometry from a roster file
//   - path: find the shortest big/little chain between two members
//   - serve: expose layout and path search over HTTP
//   - cache: manage the layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers stay testable.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/biglinehq/bigline/pkg/buildinfo"
	"github.com/biglinehq/bigline/pkg/cache"
	"github.com/biglinehq/bigline/pkg/layout"
	"github.com/biglinehq/bigline/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "bigline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bigline",
		Short:        "Bigline lays out big/little lineage charts",
		Long:         `Bigline turns a mentorship roster into 2-D lineage chart geometry: generations become layers, families become side-by-side blocks, and every big/little relationship becomes a drawable edge. It also answers "how are these two people related?" with the shortest relationship chain.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/bigline/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadLayoutConfig resolves the layout configuration for a command:
// defaults, optionally overlaid with a TOML profile.
func loadLayoutConfig(path string) (layout.Config, error) {
	if path == "" {
		return layout.DefaultConfig(), nil
	}
	return layout.LoadConfig(path)
}
