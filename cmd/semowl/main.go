// Package main provides the semowl binary entry point.
// Semowl decodes OWL 2 ontologies from RDF, resolves their imports and
// re-encodes them in the export formats.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/c360studio/semowl/config"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semowl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string

	// Load flags, registered by the commands that load ontologies
	resolve  bool
	ontology string

	// Publish flag, registered by watch
	natsURL string
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "OWL 2 RDF mapping translator",
		Long: `Semowl translates between RDF graphs and the OWL 2 structural model.

It provides:
- Decoding N-Triples and N-Quads documents into OWL 2 axioms and SWRL rules
- Resolving owl:imports over HTTP with a local SQLite library
- Exporting ontologies as Turtle, N-Triples, JSON-LD or semstreams triples`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		decodeCmd(opts),
		convertCmd(opts),
		roundtripCmd(opts),
		watchCmd(opts),
		libraryCmd(opts),
		configCmd(opts),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config unless one exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), config.LogConfig{Level: opts.logLevel, Format: "text"})
			if err != nil {
				return err
			}
			path, created, err := config.NewLoader(logger).WriteUserConfig()
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "exists  %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote   %s\n", path)
			return nil
		},
	})

	return cmd
}

// addLoadFlags registers the flags that change how ontologies are loaded.
func (o *rootOptions) addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.resolve, "resolve", false, "Resolve owl:imports")
	cmd.Flags().StringVar(&o.ontology, "ontology", "", "IRI of the ontology to decode when a document holds several")
}

// loadConfig loads the layered configuration and applies flag overrides.
func (o *rootOptions) loadConfig(stderr io.Writer) (*config.Config, error) {
	bootstrap, err := newLogger(stderr, config.LogConfig{Level: o.logLevel, Format: "text"})
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader(bootstrap).Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.resolve {
		cfg.Imports.Resolve = true
	}
	if o.ontology != "" {
		cfg.Decode.OntologyIRI = o.ontology
	}
	if o.natsURL != "" {
		cfg.Publish.NATSURL = o.natsURL
	}
	return cfg, nil
}

// newApp builds the application for a command run.
func (o *rootOptions) newApp(cmd *cobra.Command) (*App, error) {
	cfg, err := o.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, err
	}

	return NewApp(cmd.Context(), cfg, logger)
}

// newLogger creates the stderr logger described by cfg.
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
}
