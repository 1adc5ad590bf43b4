// Package cli provides the command-line interface for optgen.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/optgen/internal/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Env carries what a run writes to and logs through.
type Env struct {
	Ctx    context.Context
	Stdout io.Writer
	Log    *logrus.Logger
}

// Context returns the run context, never nil.
func (e *Env) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// NewLogger returns a logrus logger writing text to w.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Execute creates and runs the root command. SIGINT and SIGTERM cancel a
// running watch.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the optgen command tree.
func NewRootCommand() *cobra.Command {
	config := NewGenerateConfig()

	cmd := &cobra.Command{
		Use:   "optgen [options.md]",
		Short: "Generate option lookup tables from a Markdown option reference",
		Long: `optgen reads a Markdown option reference where "## " headings name
sections and "### " headings name options, and prints one literal table per
section. Each row is {name, heading, short description}.

The input defaults to options.md and the output goes to stdout.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				config.InputPath = args[0]
			}
			env := &Env{
				Ctx:    cmd.Context(),
				Stdout: cmd.OutOrStdout(),
				Log:    NewLogger(cmd.ErrOrStderr(), config.Verbose),
			}
			return GenerateTables(config, env)
		},
	}

	cmd.Flags().StringVarP(&config.OutputPath, "output", "o", DefaultOutput, "Path to output file or '-' for stdout")
	cmd.Flags().StringVarP(&config.Format, "format", "f", DefaultFormat, "Output format (see 'optgen formats')")
	cmd.Flags().StringVar(&config.Package, "package", generator.DefaultPackage, "Package name for the go format")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .optgen.yml config file")
	cmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Log extraction details")
	cmd.Flags().BoolVar(&config.Watch, "watch", false, "Regenerate whenever the input file changes")

	cmd.AddCommand(newFormatsCommand())
	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range generator.DefaultRegistry().List() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-6s %s\n", f.ID, f.Extension, f.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
