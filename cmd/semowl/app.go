package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/imports"
	"github.com/c360studio/semowl/loader"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/c360studio/semowl/storage"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App wires together the components one command run needs.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry

	// Storage, nil without store.path
	library *storage.Library

	// Import fetching, nil unless imports.resolve is set
	fetcher *imports.HTTPFetcher

	loader *loader.Loader

	// Graph publishing, nil until connectNATS succeeds
	nats *natsclient.Client
}

// NewApp creates a new application instance. Imports are resolved only when
// cfg.Imports.Resolve is set. Fetched documents are kept in the library when
// cfg.Store.Path is set.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	if cfg.Store.Path != "" {
		lib, err := storage.Open(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		app.library = lib
		logger.Debug("Opened ontology library", slog.String("path", lib.Path()))
	}

	loaderOpts := []loader.Option{
		loader.WithLogger(logger),
		loader.WithRegisterer(app.registry),
	}
	if cfg.Decode.OntologyIRI != "" {
		loaderOpts = append(loaderOpts, loader.WithDecodeOptions(rdfmap.WithOntologyIRI(cfg.Decode.OntologyIRI)))
	}

	if cfg.Imports.Resolve {
		fetcherOpts := []imports.Option{
			imports.WithLogger(logger),
			imports.WithRegisterer(app.registry),
		}
		if app.library != nil {
			fetcherOpts = append(fetcherOpts, imports.WithLibrary(app.library))
		}

		fetcher, err := imports.NewHTTPFetcher(ctx, cfg.Imports.FetcherConfig(), fetcherOpts...)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("create fetcher: %w", err)
		}
		app.fetcher = fetcher

		resolver := imports.NewResolver(fetcher,
			imports.WithMaxDepth(cfg.Imports.MaxDepth),
			imports.WithConcurrency(cfg.Imports.Concurrency),
			imports.WithResolverLogger(logger))
		loaderOpts = append(loaderOpts, loader.WithResolver(resolver))
	}

	l, err := loader.New(loaderOpts...)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.loader = l

	return app, nil
}

// Close releases the NATS connection, the fetcher cache and the library.
func (a *App) Close() error {
	var errs []error
	if a.nats != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		errs = append(errs, a.nats.Close(ctx))
		cancel()
	}
	if a.fetcher != nil {
		errs = append(errs, a.fetcher.Close())
	}
	if a.library != nil {
		errs = append(errs, a.library.Close())
	}
	return errors.Join(errs...)
}

// exporter returns an exporter for profile, or the configured profile when
// profile is empty.
func (a *App) exporter(profile string) (*export.Exporter, error) {
	if profile == "" {
		profile = a.cfg.Output.Profile
	}
	if _, ok := export.Profiles[export.Profile(profile)]; !ok {
		return nil, fmt.Errorf("unknown profile %q", profile)
	}
	return export.NewExporter(export.Profile(profile), export.WithLogger(a.logger)), nil
}

// metricsHandler serves the metrics of this run.
func (a *App) metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// publisher returns a publisher for reloaded ontologies. Without
// publish.nats_url it has no client and publishes nothing.
func (a *App) publisher(ctx context.Context, exporter *export.Exporter) (*export.Publisher, error) {
	url := a.cfg.Publish.NATSURL
	if url == "" {
		return export.NewPublisher(nil, exporter, a.logger), nil
	}
	if a.nats == nil {
		client, err := connectToNATS(ctx, url, a.logger)
		if err != nil {
			return nil, err
		}
		a.nats = client
	}
	return export.NewPublisher(a.nats, exporter, a.logger), nil
}

func connectToNATS(ctx context.Context, url string, logger *slog.Logger) (*natsclient.Client, error) {
	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithHealthInterval(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		_ = client.Close(context.Background())
		return nil, wrapNATSError(err, url)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// wrapNATSError points at the flag when the server cannot be reached.
func wrapNATSError(err error, url string) error {
	if errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, natsclient.ErrCircuitOpen) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("NATS connection failed: %w (no server at %s; set --nats-url or publish.nats_url)", err, url)
	}
	return fmt.Errorf("NATS connection failed: %w", err)
}
