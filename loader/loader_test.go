package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c360studio/semowl/imports"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rdfType    = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"
	owlClass   = "<http://www.w3.org/2002/07/owl#Class>"
	owlOnto    = "<http://www.w3.org/2002/07/owl#Ontology>"
	owlImports = "<http://www.w3.org/2002/07/owl#imports>"
	subClassOf = "<http://www.w3.org/2000/01/rdf-schema#subClassOf>"
)

// ontologyFile writes an N-Triples ontology declaring the given classes. The
// file is replaced atomically so watchers never see partial content.
func ontologyFile(t *testing.T, dir, name, iri string, classes ...string) string {
	t.Helper()

	lines := []string{"<" + iri + "> " + rdfType + " " + owlOnto + " ."}
	for _, c := range classes {
		lines = append(lines, "<"+iri+"#"+c+"> "+rdfType+" "+owlClass+" .")
	}
	return replaceFile(t, filepath.Join(dir, name), strings.Join(lines, "\n")+"\n")
}

func replaceFile(t *testing.T, path, content string) string {
	t.Helper()

	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o600))
	require.NoError(t, os.Rename(tmp, path))
	return path
}

type stubFetcher map[string]*owl.Ontology

func (s stubFetcher) Fetch(_ context.Context, iri string) (*owl.Ontology, error) {
	o, ok := s[iri]
	if !ok {
		return nil, os.ErrNotExist
	}
	return o, nil
}

func TestLoadFile(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := New(WithRegisterer(reg))
	require.NoError(t, err)

	path := ontologyFile(t, t.TempDir(), "pizza.nt", "http://example.org/pizza", "Pizza", "Topping")
	o, err := l.LoadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, owl.IRI("http://example.org/pizza"), o.IRI)
	assert.Len(t, o.Axioms, 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(l.metrics.axioms.WithLabelValues(string(owl.CategoryDeclaration))))
}

func TestLoadFileErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := New(WithRegisterer(reg))
	require.NoError(t, err)
	dir := t.TempDir()
	ctx := context.Background()

	_, err = l.LoadFile(ctx, filepath.Join(dir, "missing.nt"))
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.nt")
	require.NoError(t, os.WriteFile(garbage, []byte("not a statement\n"), 0o600))
	_, err = l.LoadFile(ctx, garbage)
	require.Error(t, err)

	noHeader := filepath.Join(dir, "noheader.nt")
	require.NoError(t, os.WriteFile(noHeader, []byte("<http://example.org/a> "+rdfType+" "+owlClass+" .\n"), 0o600))
	_, err = l.LoadFile(ctx, noHeader)
	assert.ErrorIs(t, err, rdfmap.ErrMissingOntology)

	assert.Equal(t, float64(1), testutil.ToFloat64(l.metrics.failures.WithLabelValues(stageRead)))
	assert.Equal(t, float64(1), testutil.ToFloat64(l.metrics.failures.WithLabelValues(stageParse)))
	assert.Equal(t, float64(1), testutil.ToFloat64(l.metrics.failures.WithLabelValues(stageDecode)))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = l.LoadFile(cancelled, garbage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFileResolvesImports(t *testing.T) {
	base := owl.NewOntology("http://example.org/base")
	base.Add(&owl.Declaration{Entity: owl.Class{IRI: "http://example.org/base#Food"}})
	resolver := imports.NewResolver(stubFetcher{"http://example.org/base": base})

	l, err := New(WithResolver(resolver))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "pizza.nt")
	doc := "<http://example.org/pizza> " + rdfType + " " + owlOnto + " .\n" +
		"<http://example.org/pizza> " + owlImports + " <http://example.org/base> .\n" +
		"<http://example.org/pizza#Pizza> " + rdfType + " " + owlClass + " .\n" +
		"<http://example.org/pizza#Pizza> " + subClassOf + " <http://example.org/base#Food> .\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	o, err := l.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, o.Axioms, 3)
	assert.Len(t, o.Asserted(), 2)

	missing := imports.NewResolver(stubFetcher{})
	l, err = New(WithResolver(missing))
	require.NoError(t, err)
	_, err = l.LoadFile(context.Background(), path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileSelectsOntology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "two.nt")
	doc := "<http://example.org/one> " + rdfType + " " + owlOnto + " .\n" +
		"<http://example.org/two> " + rdfType + " " + owlOnto + " .\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	l, err := New(WithDecodeOptions(rdfmap.WithOntologyIRI("http://example.org/two")))
	require.NoError(t, err)

	o, err := l.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, owl.IRI("http://example.org/two"), o.IRI)
}
