package graph

// DiGraph is a simple directed graph: at most one edge per ordered node
// pair. Re-adding an edge between the same pair replaces the previous
// edge's attributes completely, mirroring node merge semantics.
type DiGraph struct {
	nodes nodeSet
	attrs map[pair]map[string]any
	order []pair
}

// NewDiGraph creates an empty simple directed graph.
func NewDiGraph() *DiGraph {
	return &DiGraph{
		nodes: newNodeSet(),
		attrs: make(map[pair]map[string]any),
	}
}

// AddNode inserts or replaces a node.
func (g *DiGraph) AddNode(id string, attrs map[string]any) {
	g.nodes.add(id, attrs)
}

// AddEdge inserts or replaces the edge from -> to, creating stub
// endpoints as needed.
func (g *DiGraph) AddEdge(from, to string, attrs map[string]any) {
	g.nodes.ensure(from)
	g.nodes.ensure(to)
	if attrs == nil {
		attrs = make(map[string]any)
	}
	k := pair{from, to}
	if _, ok := g.attrs[k]; !ok {
		g.order = append(g.order, k)
	}
	g.attrs[k] = attrs
}

// HasNode reports whether the node exists.
func (g *DiGraph) HasNode(id string) bool { return g.nodes.has(id) }

// HasEdge reports whether the edge from -> to exists.
func (g *DiGraph) HasEdge(from, to string) bool {
	_, ok := g.attrs[pair{from, to}]
	return ok
}

// Node returns the node's live attribute mapping.
func (g *DiGraph) Node(id string) (map[string]any, bool) { return g.nodes.get(id) }

// Nodes returns all node identifiers in insertion order.
func (g *DiGraph) Nodes() []string { return g.nodes.ids() }

// NodeCount returns the number of nodes.
func (g *DiGraph) NodeCount() int { return len(g.nodes.order) }

// Edges returns all edges in first-insertion order.
func (g *DiGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, Edge{From: k.from, To: k.to, Attrs: g.attrs[k]})
	}
	return out
}

// EdgesBetween returns the single edge from -> to, if present.
func (g *DiGraph) EdgesBetween(from, to string) []Edge {
	k := pair{from, to}
	a, ok := g.attrs[k]
	if !ok {
		return nil
	}
	return []Edge{{From: from, To: to, Attrs: a}}
}

// EdgeCount returns the number of edges.
func (g *DiGraph) EdgeCount() int { return len(g.order) }

// Mode returns ModeSimple.
func (g *DiGraph) Mode() Mode { return ModeSimple }
