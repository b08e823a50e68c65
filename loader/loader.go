// Package loader reads ontology documents from disk, resolves their imports
// and keeps them current as the files change.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/imports"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/c360studio/semowl/storage"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithResolver resolves owl:imports of every loaded ontology with r.
func WithResolver(r *imports.Resolver) Option {
	return func(l *Loader) {
		l.resolver = r
	}
}

// WithDecodeOptions passes opts to every decode.
func WithDecodeOptions(opts ...rdfmap.DecodeOption) Option {
	return func(l *Loader) {
		l.decodeOpts = append(l.decodeOpts, opts...)
	}
}

// WithRegisterer registers load metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(l *Loader) {
		l.registerer = reg
	}
}

// Loader turns N-Triples or N-Quads files into ontologies.
type Loader struct {
	resolver   *imports.Resolver
	decodeOpts []rdfmap.DecodeOption
	registerer prometheus.Registerer
	metrics    *loadMetrics
	logger     *slog.Logger
}

// New creates a loader.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	metrics, err := newLoadMetrics(l.registerer)
	if err != nil {
		return nil, fmt.Errorf("register loader metrics: %w", err)
	}
	l.metrics = metrics
	return l, nil
}

// LoadFile reads, decodes and, when a resolver is configured, resolves the
// imports of the ontology in path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*owl.Ontology, error) {
	o, _, err := l.load(ctx, path)
	return o, err
}

// load returns the ontology and the checksum of the file content.
func (l *Loader) load(ctx context.Context, path string) (*owl.Ontology, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	started := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		l.metrics.recordFailure(stageRead)
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	checksum := storage.Checksum(content)

	g, err := graph.ReadNQuads(bytes.NewReader(content))
	if err != nil {
		l.metrics.recordFailure(stageParse)
		return nil, checksum, fmt.Errorf("parse %s: %w", path, err)
	}

	opts := append([]rdfmap.DecodeOption{rdfmap.WithDecodeLogger(l.logger)}, l.decodeOpts...)
	o, err := rdfmap.Decode(g, opts...)
	if err != nil {
		l.metrics.recordFailure(stageDecode)
		return nil, checksum, fmt.Errorf("decode %s: %w", path, err)
	}

	if l.resolver != nil {
		if err := l.resolver.Resolve(ctx, o); err != nil {
			l.metrics.recordFailure(stageImports)
			return nil, checksum, fmt.Errorf("load %s: %w", path, err)
		}
	}

	elapsed := time.Since(started)
	l.metrics.recordLoad(o, elapsed)
	l.logger.Debug("Loaded ontology",
		slog.String("path", path),
		slog.String("iri", string(o.IRI)),
		slog.Int("triples", g.Len()),
		slog.Int("axioms", len(o.Axioms)),
		slog.Duration("elapsed", elapsed))

	return o, checksum, nil
}
