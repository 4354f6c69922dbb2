package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates a graph mode outside the supported set.
var ErrInvalidMode = errors.New("invalid graph mode")

// Mode selects the edge semantics of a graph for a whole session.
type Mode string

const (
	// ModeMulti keeps every edge added between an ordered node pair,
	// each with its own attributes.
	ModeMulti Mode = "multi"

	// ModeSimple keeps at most one edge per ordered node pair; adding
	// another replaces the previous edge's attributes wholesale.
	ModeSimple Mode = "simple"
)

// IsValid returns true if the mode is one of the supported modes.
func (m Mode) IsValid() bool {
	return m == ModeMulti || m == ModeSimple
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// Edge is a directed edge with its attribute mapping.
type Edge struct {
	From  string
	To    string
	Attrs map[string]any
}

// Graph is the mutable accumulator populated by conversion.
//
// Node semantics are shared by both modes: AddNode on an existing
// identifier replaces its attributes completely (last write wins, the
// defined multi-bundle merge policy), and AddEdge auto-creates any
// missing endpoint as a stub node with no attributes. Nothing is ever
// removed. Edge semantics depend on the Mode.
type Graph interface {
	// AddNode inserts or replaces the node with the given identifier.
	AddNode(id string, attrs map[string]any)

	// AddEdge inserts a directed edge. Missing endpoints are created
	// as attribute-less stub nodes.
	AddEdge(from, to string, attrs map[string]any)

	// HasNode reports whether a node with the identifier exists.
	HasNode(id string) bool

	// HasEdge reports whether at least one edge exists from -> to.
	HasEdge(from, to string) bool

	// Node returns the node's live attribute mapping.
	Node(id string) (map[string]any, bool)

	// Nodes returns all node identifiers in insertion order.
	Nodes() []string

	// NodeCount returns the number of nodes.
	NodeCount() int

	// Edges returns all edges in insertion order.
	Edges() []Edge

	// EdgesBetween returns the edges from -> to in insertion order.
	EdgesBetween(from, to string) []Edge

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// Mode returns the mode the graph was created with.
	Mode() Mode
}

// New creates an empty Graph for the given mode.
func New(mode Mode) (Graph, error) {
	switch mode {
	case ModeMulti:
		return NewMultiDiGraph(), nil
	case ModeSimple:
		return NewDiGraph(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, mode, ModeMulti, ModeSimple)
	}
}

// nodeSet is the node storage shared by both graph variants.
type nodeSet struct {
	attrs map[string]map[string]any
	order []string
}

func newNodeSet() nodeSet {
	return nodeSet{attrs: make(map[string]map[string]any)}
}

func (s *nodeSet) add(id string, attrs map[string]any) {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if _, ok := s.attrs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.attrs[id] = attrs
}

// ensure creates a stub node if the identifier is new; an existing
// node's attributes are left untouched.
func (s *nodeSet) ensure(id string) {
	if _, ok := s.attrs[id]; !ok {
		s.add(id, nil)
	}
}

func (s *nodeSet) has(id string) bool {
	_, ok := s.attrs[id]
	return ok
}

func (s *nodeSet) get(id string) (map[string]any, bool) {
	a, ok := s.attrs[id]
	return a, ok
}

func (s *nodeSet) ids() []string {
	return append([]string(nil), s.order...)
}

type pair struct {
	from, to string
}
