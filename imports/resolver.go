package imports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semowl/owl"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxDepth    = 8
	defaultConcurrency = 4
)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMaxDepth limits how many levels of owl:imports are followed. Depth 1
// resolves only the direct imports.
func WithMaxDepth(depth int) ResolverOption {
	return func(r *Resolver) {
		r.maxDepth = depth
	}
}

// WithConcurrency sets how many imports of one level are fetched at once.
func WithConcurrency(n int) ResolverOption {
	return func(r *Resolver) {
		r.concurrency = n
	}
}

// WithResolverLogger sets the logger.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver follows the import closure of an ontology and merges the imported
// axioms and rules into it, marked as imported.
type Resolver struct {
	fetcher     Fetcher
	maxDepth    int
	concurrency int
	logger      *slog.Logger
}

// NewResolver creates a resolver that loads ontologies with fetcher.
func NewResolver(fetcher Fetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher:     fetcher,
		maxDepth:    defaultMaxDepth,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Resolve fetches the transitive imports of o, level by level, and appends
// their axioms and rules to o in import order. Each ontology is fetched once;
// import cycles and the ontology's own IRI are skipped. When any fetch fails
// the error is returned and o is left unchanged.
func (r *Resolver) Resolve(ctx context.Context, o *owl.Ontology) error {
	visited := map[owl.IRI]bool{}
	if o.IRI != "" {
		visited[o.IRI] = true
	}

	var loaded []*owl.Ontology
	level := r.unvisited(o.Imports, visited)
	for depth := 1; len(level) > 0; depth++ {
		if r.maxDepth > 0 && depth > r.maxDepth {
			r.logger.Warn("Import depth limit reached",
				slog.String("ontology", string(o.IRI)),
				slog.Int("max_depth", r.maxDepth),
				slog.Int("skipped", len(level)))
			break
		}

		fetched, err := r.fetchLevel(ctx, level)
		if err != nil {
			return err
		}
		loaded = append(loaded, fetched...)

		var next []owl.IRI
		for _, imported := range fetched {
			next = append(next, r.unvisited(imported.Imports, visited)...)
		}
		level = next
	}

	for _, imported := range loaded {
		for _, ax := range imported.Axioms {
			ax.Base().IsImport = true
			o.Add(ax)
		}
		for _, rule := range imported.Rules {
			rule.IsImport = true
			o.AddRule(rule)
		}
	}

	r.logger.Debug("Resolved imports",
		slog.String("ontology", string(o.IRI)),
		slog.Int("ontologies", len(loaded)))
	return nil
}

// unvisited returns the IRIs not seen before, marking them seen.
func (r *Resolver) unvisited(iris []owl.IRI, visited map[owl.IRI]bool) []owl.IRI {
	var out []owl.IRI
	for _, iri := range iris {
		if visited[iri] {
			continue
		}
		visited[iri] = true
		out = append(out, iri)
	}
	return out
}

// fetchLevel fetches every IRI concurrently and returns the results in the
// order of iris.
func (r *Resolver) fetchLevel(ctx context.Context, iris []owl.IRI) ([]*owl.Ontology, error) {
	results := make([]*owl.Ontology, len(iris))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, iri := range iris {
		g.Go(func() error {
			imported, err := r.fetcher.Fetch(gctx, string(iri))
			if err != nil {
				return fmt.Errorf("resolve import %s: %w", iri, err)
			}
			results[i] = imported
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
