package graph

// MultiDiGraph is a directed multigraph: every AddEdge call between the
// same ordered pair is kept as an independent edge with its own
// attributes. This is the mode that preserves multiple relationships of
// different types connecting the same two objects.
type MultiDiGraph struct {
	nodes  nodeSet
	edges  []Edge
	byPair map[pair][]int
}

// NewMultiDiGraph creates an empty directed multigraph.
func NewMultiDiGraph() *MultiDiGraph {
	return &MultiDiGraph{
		nodes:  newNodeSet(),
		byPair: make(map[pair][]int),
	}
}

// AddNode inserts or replaces a node.
func (g *MultiDiGraph) AddNode(id string, attrs map[string]any) {
	g.nodes.add(id, attrs)
}

// AddEdge appends a new edge from -> to, creating stub endpoints as
// needed. Existing edges between the pair are untouched.
func (g *MultiDiGraph) AddEdge(from, to string, attrs map[string]any) {
	g.nodes.ensure(from)
	g.nodes.ensure(to)
	if attrs == nil {
		attrs = make(map[string]any)
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Attrs: attrs})
	k := pair{from, to}
	g.byPair[k] = append(g.byPair[k], len(g.edges)-1)
}

// HasNode reports whether the node exists.
func (g *MultiDiGraph) HasNode(id string) bool { return g.nodes.has(id) }

// HasEdge reports whether at least one edge from -> to exists.
func (g *MultiDiGraph) HasEdge(from, to string) bool {
	return len(g.byPair[pair{from, to}]) > 0
}

// Node returns the node's live attribute mapping.
func (g *MultiDiGraph) Node(id string) (map[string]any, bool) { return g.nodes.get(id) }

// Nodes returns all node identifiers in insertion order.
func (g *MultiDiGraph) Nodes() []string { return g.nodes.ids() }

// NodeCount returns the number of nodes.
func (g *MultiDiGraph) NodeCount() int { return len(g.nodes.order) }

// Edges returns all edges in insertion order.
func (g *MultiDiGraph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// EdgesBetween returns every edge from -> to in insertion order.
func (g *MultiDiGraph) EdgesBetween(from, to string) []Edge {
	idxs := g.byPair[pair{from, to}]
	out := make([]Edge, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.edges[i])
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *MultiDiGraph) EdgeCount() int { return len(g.edges) }

// Mode returns ModeMulti.
func (g *MultiDiGraph) Mode() Mode { return ModeMulti }
