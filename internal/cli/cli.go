// Package cli implements the shortpath command-line interface.
//
// The CLI drives the shortest-path engine on generated graphs:
//   - johnson: all-pairs shortest paths on a random feasible digraph
//   - verify:  cross-check Johnson against per-source Bellman-Ford
//   - cycle:   show that a negative cycle is rejected
//
// Configuration comes from internal/config (defaults, YAML, SHORTPATH_*
// environment); command flags override it. Loggers are passed through
// context.Context.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/internal/config"
)

const appName = "shortpath"

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	cfg        *config.Config
	loaders    []config.LoaderOption
}

// New creates a CLI writing results to out and logs to errOut. Extra loader
// options are applied after the --config flag.
func New(out, errOut io.Writer, opts ...config.LoaderOption) *CLI {
	return &CLI{out: out, errOut: errOut, loaders: opts}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "shortpath runs Johnson, Bellman-Ford and Dijkstra on generated digraphs",
		Long: `shortpath generates random directed graphs with negative edges but no
negative cycles and computes all-pairs shortest paths with Johnson's
algorithm (Bellman-Ford potentials + Dijkstra over a binomial heap).`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.johnsonCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.cycleCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	opts := []config.LoaderOption{}
	if c.configPath != "" {
		opts = append(opts, config.WithConfigFile(c.configPath))
	}
	opts = append(opts, c.loaders...)

	loader := config.NewLoader(opts...)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := parseLevel(cfg.Log.Level)
	if c.verbose {
		level = LogDebug
	}
	logger := newLogger(c.errOut, level, cfg.Log.Format)
	if f := loader.File(); f != "" {
		logger.Debug("config loaded", "file", f)
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}
