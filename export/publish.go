package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semstreams/message"
)

// GraphIngestSubject is the subject semstreams ingests graph entities from.
const GraphIngestSubject = "graph.ingest.entity"

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// StreamPublisher publishes to a JetStream subject. *natsclient.Client
// satisfies it.
type StreamPublisher interface {
	PublishToStream(ctx context.Context, subject string, data []byte) error
}

// Publisher sends exported ontologies to the knowledge graph.
type Publisher struct {
	client   StreamPublisher
	exporter *Exporter
	logger   *slog.Logger
	now      func() time.Time
}

// NewPublisher creates a publisher that exports with exporter. A nil client
// makes Publish a no-op.
func NewPublisher(client StreamPublisher, exporter *Exporter, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client:   client,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish publishes o as one entity whose triples are the encoded ontology.
func (p *Publisher) Publish(ctx context.Context, o *owl.Ontology) error {
	if p == nil || p.client == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	triples, err := p.exporter.Triples(o)
	if err != nil {
		return err
	}

	now := p.now()
	for i := range triples {
		triples[i].Timestamp = now
	}

	msg := EntityIngestMessage{
		ID:        OntologyEntityID(string(o.IRI)),
		Triples:   triples,
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal ontology entity: %w", err)
	}

	if err := p.client.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish ontology entity: %w", err)
	}

	p.logger.Debug("Published ontology",
		slog.String("id", msg.ID),
		slog.Int("triples", len(triples)))
	return nil
}

// OntologyEntityID generates a consistent entity ID for an ontology.
// Format: semowl.local.owl.ontology.ontology.<slug>
func OntologyEntityID(iri string) string {
	slug := strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, strings.TrimPrefix(strings.TrimPrefix(iri, "https://"), "http://")), "-")
	if slug == "" {
		slug = "anonymous"
	}
	return fmt.Sprintf("semowl.local.owl.ontology.ontology.%s", slug)
}
