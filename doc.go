// Package stixgraph converts STIX cyber threat intelligence bundles
// into in-memory directed graphs suitable for traversal, querying, and
// visualization.
//
// STIX Domain Objects (threat actors, malware, indicators, ...) become
// nodes, relationship objects become directed edges, and sightings
// become nodes with derived edges to the entities they reference.
// Cyber-observable Objects are included as nodes by default and can be
// excluded. Both the STIX 2.1 and the legacy 2.0 object models are
// handled, including observables embedded inline in 2.0 observed-data.
//
// # Core Concepts
//
//   - Converter: processes bundles into a graph, one bundle at a time
//   - Graph: the mutable accumulator (multigraph or simple digraph)
//   - Source: a bundle source specifier (file, directory, URL, JSON
//     texts, or pre-parsed bundles)
//
// Converting multiple bundles into one graph merges them: when the same
// identifier appears again, the later object's attributes replace the
// earlier ones completely. Processing order is merge precedence.
//
// # Getting Started
//
// The one-call form resolves a source and returns a populated graph:
//
//	g, err := stixgraph.Build(ctx, "bundles/enterprise-attack.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.NodeCount(), g.EdgeCount())
//
// For more control, configure a Converter and feed it bundles:
//
//	conv, err := stixgraph.New(
//	    stixgraph.WithMode(graph.ModeSimple),
//	    stixgraph.WithObservables(false),
//	    stixgraph.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := conv.NewGraph()
//	conv.Convert(g, bundleA)
//	conv.Convert(g, bundleB)
//
// # Error Handling
//
// Only configuration and source resolution fail a session: an invalid
// graph mode, an unsupported source specifier, a missing file, or
// malformed JSON. Inside a well-formed bundle, imperfect objects
// (missing type or id, relationship without endpoints) are dropped with
// a warning and conversion continues. Failures carry the structured
// *Error type and match the exported sentinels with errors.Is.
package stixgraph
