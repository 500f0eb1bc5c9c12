// Package cli implements the flowstep command tree: load a network file,
// drive the stepwise Edmonds–Karp engine and print the step history.
package cli

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options collects the persistent flags shared by all subcommands.
type options struct {
	file    string
	source  string
	sink    string
	output  string
	verbose bool
	metrics bool
	verify  bool
	epsilon float64
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Defaults for --file and --output
// come from FLOWSTEP_FILE / FLOWSTEP_OUTPUT, optionally loaded from ./.env.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	env := loadEnvDefaults(".env")
	o := &options{}

	rootCmd := &cobra.Command{
		Use:          "flowstep",
		Short:        "Trace the Edmonds-Karp maximum flow algorithm one augmenting path at a time.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&o.file, "file", "f", env.file, "path to the YAML network file")
	pf.StringVar(&o.source, "source", "", "source vertex (overrides the file)")
	pf.StringVar(&o.sink, "sink", "", "sink vertex (overrides the file)")
	pf.StringVarP(&o.output, "output", "o", env.output, "output format: text or yaml")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&o.metrics, "metrics", false, "print Prometheus metrics after the run")
	pf.BoolVar(&o.verify, "verify", false, "cross-check the max flow with Dinic's algorithm")
	pf.Float64Var(&o.epsilon, "epsilon", 0, "treat residual capacities <= epsilon as exhausted")

	rootCmd.AddCommand(newRunCommand(o), newStepCommand(o), newCutCommand(o))

	return rootCmd
}

// newLogger writes to the command's stderr; --verbose enables engine debug entries.
func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
