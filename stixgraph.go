package stixgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/stixgraph/graph"
	"github.com/zero-day-ai/stixgraph/source"
	"github.com/zero-day-ai/stixgraph/stix"
)

// Converter turns STIX bundles into graph nodes and edges. A single
// Converter may process many bundles into one graph; later bundles
// overwrite the nodes of earlier ones (last write wins). Converters are
// not safe for concurrent use against the same graph: a session is
// single-threaded by design, because object order determines merge
// precedence.
type Converter struct {
	mode               graph.Mode
	includeObservables bool
	logger             *slog.Logger
	tracer             trace.Tracer
}

// New creates a Converter with the provided options. An invalid graph
// mode is a configuration error and fails here, before any bundle is
// touched.
//
// Example:
//
//	conv, err := stixgraph.New(
//	    stixgraph.WithMode(graph.ModeSimple),
//	    stixgraph.WithObservables(false),
//	)
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := graph.New(cfg.mode); err != nil {
		return nil, &Error{Op: "New", Kind: KindConfiguration, Err: err}
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = noop.NewTracerProvider().Tracer("stixgraph")
	}

	return &Converter{
		mode:               cfg.mode,
		includeObservables: cfg.includeObservables,
		logger:             cfg.logger,
		tracer:             cfg.tracer,
	}, nil
}

// NewGraph creates an empty graph in the converter's configured mode.
func (c *Converter) NewGraph() graph.Graph {
	g, _ := graph.New(c.mode) // mode validated in New
	return g
}

// Build resolves a bundle source and converts every resolved bundle
// into a fresh graph. Bundles are processed strictly in order.
//
// Source and parse failures abort the whole session; imperfect objects
// inside a well-formed bundle only produce warnings.
func (c *Converter) Build(ctx context.Context, src any) (graph.Graph, error) {
	g := c.NewGraph()
	if err := c.ingest(ctx, g, src); err != nil {
		return nil, err
	}
	return g, nil
}

// ingest resolves one source specifier and converts its bundles into g.
func (c *Converter) ingest(ctx context.Context, g graph.Graph, src any) error {
	resolver := &source.Resolver{Logger: c.logger}
	bundles, err := resolver.Resolve(ctx, src)
	if err != nil {
		return sessionError("Converter.Build", err)
	}

	for i, bundle := range bundles {
		_, span := c.tracer.Start(ctx, "stixgraph.Convert", trace.WithAttributes(
			attribute.Int("stixgraph.bundle.index", i),
			attribute.String("stixgraph.bundle.id", bundle.ID()),
		))
		c.Convert(g, bundle)
		span.SetAttributes(
			attribute.Int("stixgraph.graph.nodes", g.NodeCount()),
			attribute.Int("stixgraph.graph.edges", g.EdgeCount()),
		)
		span.End()
	}
	return nil
}

// Build is a convenience wrapper: configure a Converter, resolve the
// source, and return the populated graph.
//
// Example:
//
//	g, err := stixgraph.Build(ctx, "bundles/enterprise-attack.json")
func Build(ctx context.Context, src any, opts ...Option) (graph.Graph, error) {
	conv, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return conv.Build(ctx, src)
}

// Convert processes a single bundle into an existing graph, applying
// the per-object dispatch rules. It never fails: malformed objects are
// dropped with a warning and processing continues. A bundle whose
// "objects" field is absent or not a sequence is skipped whole, with a
// warning.
func (c *Converter) Convert(g graph.Graph, bundle stix.Bundle) {
	objs, ok := bundle.Objects()
	if !ok {
		c.logger.Warn("bundle objects field missing or not a sequence, skipping bundle",
			"bundle_id", bundle.ID())
		return
	}

	for _, item := range objs {
		c.convertObject(g, item)
	}
}

func (c *Converter) convertObject(g graph.Graph, item any) {
	raw, ok := item.(map[string]any)
	if !ok {
		c.logger.Warn("skipping non-mapping entry in bundle", "go_type", fmt.Sprintf("%T", item))
		return
	}
	obj := stix.Object(raw)

	if obj.Type() == "" {
		c.logger.Warn("skipping object with no type field", "id", obj.ID())
		return
	}

	class := stix.Classify(obj)

	if obj.ID() == "" {
		// Skippable objects are dropped anyway; no point warning about them.
		if class != stix.ClassSkippable {
			c.logger.Warn("skipping object with no id field", "type", obj.Type())
		}
		return
	}

	switch class {
	case stix.ClassSkippable:
		return

	case stix.ClassRelationship:
		c.addRelationship(g, obj)

	case stix.ClassSighting:
		c.addSighting(g, obj)

	case stix.ClassDomainObject:
		g.AddNode(obj.ID(), obj.Attrs())
		if obj.Type() == stix.TypeObservedData && c.includeObservables {
			for _, sco := range stix.ExtractEmbedded(obj) {
				g.AddNode(sco.ID(), sco.Attrs())
			}
		}

	case stix.ClassObservable:
		if c.includeObservables {
			g.AddNode(obj.ID(), obj.Attrs())
		}

	default:
		// Unknown types are kept as nodes so custom content survives
		// conversion, but they never originate edges.
		c.logger.Debug("adding unknown object type as node", "type", obj.Type(), "id", obj.ID())
		g.AddNode(obj.ID(), obj.Attrs())
	}
}

// addRelationship inserts a relationship object as a directed edge. The
// endpoints are encoded structurally, so source_ref, target_ref, and
// type are stripped from the edge attributes; everything else, id and
// relationship_type included, is preserved.
func (c *Converter) addRelationship(g graph.Graph, obj stix.Object) {
	src, _ := obj["source_ref"].(string)
	dst, _ := obj["target_ref"].(string)
	if src == "" || dst == "" {
		c.logger.Warn("relationship missing source_ref or target_ref, skipping", "id", obj.ID())
		return
	}

	attrs := obj.Attrs()
	delete(attrs, "source_ref")
	delete(attrs, "target_ref")
	delete(attrs, "type")
	g.AddEdge(src, dst, attrs)
}

// addSighting inserts a sighting as a node plus derived edges:
// sighting_of_ref -> one "sighting_of" edge, where_sighted_refs -> one
// "seen_by" edge per entry, observed_data_refs -> one "observed" edge
// per entry. Absent reference fields simply produce no edges.
func (c *Converter) addSighting(g graph.Graph, obj stix.Object) {
	id := obj.ID()
	g.AddNode(id, obj.Attrs())

	if ref, _ := obj["sighting_of_ref"].(string); ref != "" {
		g.AddEdge(id, ref, map[string]any{"relationship_type": "sighting_of"})
	}
	for _, ref := range stringRefs(obj["where_sighted_refs"]) {
		g.AddEdge(id, ref, map[string]any{"relationship_type": "seen_by"})
	}
	for _, ref := range stringRefs(obj["observed_data_refs"]) {
		g.AddEdge(id, ref, map[string]any{"relationship_type": "observed"})
	}
}

// stringRefs extracts the string entries of an optional reference
// sequence. Non-string entries are unrepresentable as edge endpoints
// and are ignored.
func stringRefs(v any) []string {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	var refs []string
	for _, item := range seq {
		if ref, ok := item.(string); ok && ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
