// Package imports fetches the ontologies named by owl:imports and merges their
// axioms into the importing ontology.
package imports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/c360studio/semowl/storage"
	"github.com/c360studio/semstreams/pkg/cache"
	"github.com/c360studio/semstreams/pkg/retry"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Fetch outcomes recorded in metrics.
const (
	outcomeFetched = "fetched"
	outcomeLibrary = "library"
	outcomeError   = "error"
)

// defaultMaxBodySize caps the size of a fetched ontology document.
const defaultMaxBodySize = 64 << 20

const acceptHeader = "application/n-triples, application/n-quads;q=0.9, text/plain;q=0.5"

// Fetcher loads the ontology published at an IRI.
type Fetcher interface {
	Fetch(ctx context.Context, iri string) (*owl.Ontology, error)
}

// Config holds fetcher settings.
type Config struct {
	// ConnectTimeout bounds establishing a connection.
	ConnectTimeout time.Duration

	// ReadTimeout bounds waiting for and reading the response.
	ReadTimeout time.Duration

	// RequestsPerSecond limits outgoing requests. Zero disables the limit.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size.
	Burst int

	// CacheTTL is how long a fetched document stays cached.
	CacheTTL time.Duration

	// Retry controls retries of transient failures.
	Retry retry.Config

	// UserAgent is sent with every request.
	UserAgent string

	// MaxBodySize is the largest document accepted, in bytes. Zero means
	// the default of 64MB.
	MaxBodySize int64
}

// DefaultConfig returns fetcher defaults.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:    10 * time.Second,
		ReadTimeout:       30 * time.Second,
		RequestsPerSecond: 5,
		Burst:             5,
		CacheTTL:          time.Hour,
		Retry:             retry.DefaultConfig(),
		UserAgent:         "semowl",
		MaxBodySize:       defaultMaxBodySize,
	}
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *HTTPFetcher) {
		f.logger = logger
	}
}

// WithLibrary stores every fetched document in lib and serves documents
// from it when a fetch fails.
func WithLibrary(lib *storage.Library) Option {
	return func(f *HTTPFetcher) {
		f.library = lib
	}
}

// WithRegisterer registers fetch metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(f *HTTPFetcher) {
		f.registerer = reg
	}
}

// HTTPFetcher fetches N-Triples or N-Quads documents over HTTP(S) or from
// file:// IRIs. Parsed graphs are cached by IRI; each Fetch decodes a fresh
// ontology so callers may modify the result.
type HTTPFetcher struct {
	cfg        Config
	limiter    *rate.Limiter
	cache      cache.Cache[*graph.Graph]
	library    *storage.Library
	logger     *slog.Logger
	registerer prometheus.Registerer
	metrics    *fetchMetrics
}

// NewHTTPFetcher creates a fetcher. The cache cleanup goroutine stops when
// ctx is cancelled or Close is called.
func NewHTTPFetcher(ctx context.Context, cfg Config, opts ...Option) (*HTTPFetcher, error) {
	f := &HTTPFetcher{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	c, err := cache.NewTTL[*graph.Graph](ctx, ttl, ttl/2)
	if err != nil {
		return nil, fmt.Errorf("create import cache: %w", err)
	}
	f.cache = c

	metrics, err := newFetchMetrics(f.registerer)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("register import metrics: %w", err)
	}
	f.metrics = metrics

	return f, nil
}

// Close stops the cache.
func (f *HTTPFetcher) Close() error {
	return f.cache.Close()
}

// Fetch loads iri with the configured timeouts.
func (f *HTTPFetcher) Fetch(ctx context.Context, iri string) (*owl.Ontology, error) {
	return f.FetchWithTimeouts(ctx, iri, f.cfg.ConnectTimeout, f.cfg.ReadTimeout)
}

// FetchWithTimeouts loads iri with per-call connect and read timeouts. A
// cached graph is decoded without network access; a fresh fetch replaces the
// cached entry.
func (f *HTTPFetcher) FetchWithTimeouts(ctx context.Context, iri string, connect, read time.Duration) (*owl.Ontology, error) {
	u, err := parseIRI(iri)
	if err != nil {
		return nil, err
	}

	g, hit := f.cache.Get(iri)
	f.metrics.recordCache(hit)
	if !hit {
		started := time.Now()
		g, err = f.load(ctx, u, connect, read)
		if err != nil {
			f.metrics.recordFetch(outcomeError, time.Since(started))
			return nil, err
		}
		if _, err := f.cache.Set(iri, g); err != nil {
			f.logger.Warn("Failed to cache import", slog.String("iri", iri), slog.Any("error", err))
		}
	}

	o, err := rdfmap.Decode(g, rdfmap.WithDecodeLogger(f.logger))
	if err != nil {
		return nil, newFatalError(iri, 0, err)
	}
	return o, nil
}

// load fetches and parses the document, falling back to the library when the
// fetch fails.
func (f *HTTPFetcher) load(ctx context.Context, u *url.URL, connect, read time.Duration) (*graph.Graph, error) {
	iri := u.String()
	started := time.Now()

	body, fetchErr := f.fetchBody(ctx, u, connect, read)
	outcome := outcomeFetched
	if fetchErr != nil {
		if f.library == nil {
			return nil, fetchErr
		}
		entry, err := f.library.Get(ctx, iri)
		if err != nil {
			f.logger.Debug("Import not in library", slog.String("iri", iri), slog.Any("error", err))
			return nil, fetchErr
		}
		f.logger.Info("Using library copy of import",
			slog.String("iri", iri),
			slog.Time("fetched_at", entry.FetchedAt),
			slog.Any("error", fetchErr))
		body = entry.Content
		outcome = outcomeLibrary
	}

	g, err := graph.ReadNQuads(bytes.NewReader(body))
	if err != nil {
		return nil, newFatalError(iri, 0, err)
	}

	if outcome == outcomeFetched && f.library != nil {
		if _, err := f.library.Put(ctx, iri, body); err != nil {
			f.logger.Warn("Failed to store import in library", slog.String("iri", iri), slog.Any("error", err))
		}
	}
	f.metrics.recordFetch(outcome, time.Since(started))
	f.logger.Debug("Loaded import",
		slog.String("iri", iri),
		slog.String("source", outcome),
		slog.Int("triples", g.Len()))
	return g, nil
}

func (f *HTTPFetcher) fetchBody(ctx context.Context, u *url.URL, connect, read time.Duration) ([]byte, error) {
	if u.Scheme == "file" {
		body, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, newFatalError(u.String(), 0, err)
		}
		if int64(len(body)) > f.maxBodySize() {
			return nil, newFatalError(u.String(), 0, ErrBodyTooLarge)
		}
		return body, nil
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: connect}).DialContext,
		TLSHandshakeTimeout:   connect,
		ResponseHeaderTimeout: read,
	}
	defer transport.CloseIdleConnections()
	client := &http.Client{Transport: transport}

	body, err := retry.DoWithResult(ctx, f.cfg.Retry, func() ([]byte, error) {
		body, err := f.get(ctx, client, u.String(), read)
		if err != nil && !IsTransient(err) {
			return nil, retry.NonRetryable(err)
		}
		return body, err
	})
	if err != nil {
		var nonRetryable *retry.NonRetryableError
		if errors.As(err, &nonRetryable) {
			err = nonRetryable.Err
		}
		return nil, err
	}
	return body, nil
}

// get performs one rate-limited request. The read timeout also bounds reading
// the body.
func (f *HTTPFetcher) get(ctx context.Context, client *http.Client, iri string, read time.Duration) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, newFatalError(iri, 0, err)
		}
	}

	reqCtx := ctx
	if read > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, read)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, iri, nil)
	if err != nil {
		return nil, newFatalError(iri, 0, err)
	}
	req.Header.Set("Accept", acceptHeader)
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, newFatalError(iri, 0, ctx.Err())
		}
		return nil, newTransientError(iri, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return nil, newTransientError(iri, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	case resp.StatusCode >= 300:
		return nil, newFatalError(iri, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	// One byte past the limit tells a full document from a cut one
	limit := f.maxBodySize()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, newTransientError(iri, resp.StatusCode, err)
	}
	if int64(len(body)) > limit {
		return nil, newFatalError(iri, resp.StatusCode, ErrBodyTooLarge)
	}
	return body, nil
}

func (f *HTTPFetcher) maxBodySize() int64 {
	if f.cfg.MaxBodySize > 0 {
		return f.cfg.MaxBodySize
	}
	return defaultMaxBodySize
}

// parseIRI accepts absolute http, https and file IRIs.
func parseIRI(iri string) (*url.URL, error) {
	if iri == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidIRI)
	}
	u, err := url.Parse(iri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidIRI, iri, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("%w: %s: missing host", ErrInvalidIRI, iri)
		}
	case "file":
		if u.Path == "" {
			return nil, fmt.Errorf("%w: %s: missing path", ErrInvalidIRI, iri)
		}
	default:
		return nil, fmt.Errorf("%w: %s: unsupported scheme %q", ErrInvalidIRI, iri, u.Scheme)
	}
	return u, nil
}
