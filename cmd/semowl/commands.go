package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/loader"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/spf13/cobra"
)

func decodeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file|dir|glob>...",
		Short: "Decode ontologies and summarize their axioms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			paths, err := loader.ResolvePaths(args)
			if err != nil {
				return err
			}

			for _, path := range paths {
				o, err := app.loader.LoadFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), path, o)
			}
			return nil
		},
	}
	opts.addLoadFlags(cmd)
	return cmd
}

func convertCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		format  string
		profile string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Decode an ontology and export it in another format",
		Long: `Convert decodes an ontology and writes it in one of the export formats.

Without --format the format follows the extension of --output, falling back
to output.format from the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			f := export.Format(format)
			if f == "" && output != "" {
				f, _ = export.FormatForExtension(filepath.Ext(output))
			}
			if f == "" {
				f = export.Format(app.cfg.Output.Format)
			}

			exporter, err := app.exporter(profile)
			if err != nil {
				return err
			}

			o, err := app.loader.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out, err := exporter.Export(o, f)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			app.logger.Info("Wrote ontology",
				slog.String("path", output),
				slog.String("format", string(f)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld, semstreams)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Export profile (asserted, imports, full)")
	opts.addLoadFlags(cmd)
	return cmd
}

func roundtripCmd(opts *rootOptions) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "roundtrip <file|dir|glob>...",
		Short: "Check that ontologies survive encoding and decoding",
		Long: `Roundtrip decodes each ontology, encodes it back to RDF under the export
profile and decodes the result again. Axiom and rule counts must match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if profile == "" {
				profile = app.cfg.Output.Profile
			}
			pc, ok := export.Profiles[export.Profile(profile)]
			if !ok {
				return fmt.Errorf("unknown profile %q", profile)
			}

			paths, err := loader.ResolvePaths(args)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range paths {
				o, err := app.loader.LoadFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				diffs, err := roundtrip(o, pc, app.logger)
				if err != nil {
					return fmt.Errorf("roundtrip %s: %w", path, err)
				}
				if len(diffs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", path)
					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s\n", path)
				for _, d := range diffs {
					fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", d)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d ontologies did not round trip", failed, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Export profile (asserted, imports, full)")
	opts.addLoadFlags(cmd)
	return cmd
}

// roundtrip encodes o under pc, decodes the graph and reports every axiom
// kind whose count changed.
func roundtrip(o *owl.Ontology, pc export.ProfileConfig, logger *slog.Logger) ([]string, error) {
	g, err := rdfmap.Encode(o, append(pc.EncodeOptions(), rdfmap.WithEncodeLogger(logger))...)
	if err != nil {
		return nil, err
	}
	back, err := rdfmap.Decode(g, rdfmap.WithDecodeLogger(logger))
	if err != nil {
		return nil, err
	}

	included := func(b *owl.AxiomBase) bool {
		return (pc.IncludeImported || !b.IsImport) && (pc.IncludeInferred || !b.IsInference)
	}

	want := make(map[string]int)
	for _, ax := range o.Axioms {
		if included(ax.Base()) {
			want[string(ax.Kind())]++
		}
	}
	for _, r := range o.Rules {
		if (pc.IncludeImported || !r.IsImport) && (pc.IncludeInferred || !r.IsInference) {
			want["Rule"]++
		}
	}

	got := make(map[string]int)
	for kind, n := range back.CountByKind() {
		got[string(kind)] = n
	}
	if len(back.Rules) > 0 {
		got["Rule"] = len(back.Rules)
	}

	kinds := make(map[string]bool)
	for k := range want {
		kinds[k] = true
	}
	for k := range got {
		kinds[k] = true
	}

	var diffs []string
	for k := range kinds {
		if want[k] != got[k] {
			diffs = append(diffs, fmt.Sprintf("%s: %d -> %d", k, want[k], got[k]))
		}
	}
	sort.Strings(diffs)
	return diffs, nil
}

func watchCmd(opts *rootOptions) *cobra.Command {
	var (
		debounce    time.Duration
		metricsAddr string
		profile     string
	)

	cmd := &cobra.Command{
		Use:   "watch <file|dir|glob>...",
		Short: "Reload ontologies as they change",
		Long: `Watch reloads ontologies when their files change and prints one line
per reload. With --nats-url each reloaded ontology is also published to
graph.ingest.entity as one semstreams entity.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			paths, err := loader.ResolvePaths(args)
			if err != nil {
				return err
			}

			w, err := loader.NewWatcher(app.loader, loader.WatcherConfig{
				Paths:         paths,
				DebounceDelay: debounce,
				Logger:        app.logger,
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			exporter, err := app.exporter(profile)
			if err != nil {
				return err
			}
			publisher, err := app.publisher(ctx, exporter)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           app.metricsHandler(),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						app.logger.Error("Metrics server failed", slog.Any("error", err))
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
				app.logger.Info("Serving metrics", slog.String("addr", metricsAddr))
			}

			if err := w.Start(ctx); err != nil {
				_ = w.Stop()
				return err
			}
			defer w.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-w.Events():
					if !ok {
						return nil
					}
					printEvent(cmd.OutOrStdout(), event)
					if event.Ontology == nil {
						continue
					}
					if err := publisher.Publish(ctx, event.Ontology); err != nil {
						app.logger.Warn("Failed to publish ontology",
							slog.String("path", event.Path),
							slog.Any("error", err))
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "Wait for further changes before reloading")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "", "Publish reloaded ontologies to the semstreams graph over NATS")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Export profile of published ontologies (asserted, imports, full)")
	opts.addLoadFlags(cmd)
	return cmd
}

func libraryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local ontology library",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored ontology documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openLibrary(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			entries, err := app.library.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					e.FetchedAt.Format(time.RFC3339), shortChecksum(e.Checksum), e.IRI)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <iri>...",
		Short: "Remove stored ontology documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openLibrary(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			for _, iri := range args {
				if err := app.library.Delete(cmd.Context(), iri); err != nil {
					return fmt.Errorf("remove %s: %w", iri, err)
				}
				app.logger.Info("Removed ontology", slog.String("iri", iri))
			}
			return nil
		},
	})

	return cmd
}

// openLibrary builds the app and requires a configured library.
func openLibrary(cmd *cobra.Command, opts *rootOptions) (*App, error) {
	app, err := opts.newApp(cmd)
	if err != nil {
		return nil, err
	}
	if app.library == nil {
		app.Close()
		return nil, errors.New("no library configured: set store.path")
	}
	return app, nil
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

// printSummary writes the header and axiom counts of a decoded ontology.
func printSummary(w io.Writer, path string, o *owl.Ontology) {
	iri := string(o.IRI)
	if iri == "" {
		iri = "(anonymous)"
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  %-22s %s\n", "ontology", iri)
	if o.VersionIRI != "" {
		fmt.Fprintf(w, "  %-22s %s\n", "version", o.VersionIRI)
	}
	fmt.Fprintf(w, "  %-22s %d\n", "imports", len(o.Imports))
	fmt.Fprintf(w, "  %-22s %d (asserted %d)\n", "axioms", len(o.Axioms), len(o.Asserted()))
	fmt.Fprintf(w, "  %-22s %d\n", "rules", len(o.Rules))

	counts := o.CountByCategory()
	for _, c := range owl.Categories {
		if n := counts[c]; n > 0 {
			fmt.Fprintf(w, "    %-20s %d\n", c, n)
		}
	}
}

// printEvent writes one line per watch event.
func printEvent(w io.Writer, event loader.WatchEvent) {
	switch {
	case event.Error != nil:
		fmt.Fprintf(w, "%-6s  %s  error: %v\n", event.Operation, event.Path, event.Error)
	case event.Ontology != nil:
		fmt.Fprintf(w, "%-6s  %s  %s  %d axioms\n",
			event.Operation, event.Path, event.Ontology.IRI, len(event.Ontology.Axioms))
	default:
		fmt.Fprintf(w, "%-6s  %s\n", event.Operation, event.Path)
	}
}
