// Package dijkstra defines the path-query types and options for the
// shortest-path engine.
//
// Path carries the reconstructed node sequence, its total cost and the
// search statistics of the query that produced it.
//
// Options:
//
//	– WithOnSettle(fn): callback invoked each time a node's cost is finalized.
//
// Errors (sentinel):
//
//	– ErrNoPath        if the frontier empties before reaching the end node.
//	– core.ErrNodeNotFound (wrapped) if start or end is not in the graph.
//	– ErrNilGraph      if Wrap receives a nil *core.Graph.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/campuswalk/core"
	"github.com/katalvlaran/campuswalk/hashtable"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNoPath indicates that end is not reachable from start.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrNilGraph indicates that Wrap was called with a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
)

// Graph augments core.Graph with shortest-path queries. All core methods
// (InsertNode, InsertEdge, GetEdge, …) are promoted from the embedded graph.
type Graph[N comparable, W core.Weight] struct {
	*core.Graph[N, W]
}

// NewGraph creates an empty query-capable graph; see core.NewGraph.
func NewGraph[N comparable, W core.Weight](h hashtable.Hasher[N], opts ...core.GraphOption) *Graph[N, W] {
	return &Graph[N, W]{Graph: core.NewGraph[N, W](h, opts...)}
}

// Wrap attaches the shortest-path engine to an existing graph.
// The graph is shared, not copied.
func Wrap[N comparable, W core.Weight](g *core.Graph[N, W]) (*Graph[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Graph[N, W]{Graph: g}, nil
}

// Stats describes the work done by one query.
type Stats struct {
	// Settled is the number of nodes whose cost was finalized.
	Settled int
	// Pushed is the number of search nodes pushed onto the frontier.
	Pushed int
}

// Path is the result of a successful query.
//
// Nodes begins with the start value and ends with the end value; when
// start == end it has exactly one element and Cost is zero. Cost equals the
// sum of edge weights between consecutive Nodes.
type Path[N comparable, W core.Weight] struct {
	Nodes []N
	Cost  W
	Stats Stats
}

// Options configures a single query.
type Options[N comparable, W core.Weight] struct {
	// OnSettle, if set, is called with each node value and its final cost,
	// in settle order.
	OnSettle func(value N, cost W)
}

// Option represents a functional option for configuring a query.
type Option[N comparable, W core.Weight] func(*Options[N, W])

// WithOnSettle registers fn as the settle hook. Panics if fn is nil.
func WithOnSettle[N comparable, W core.Weight](fn func(value N, cost W)) Option[N, W] {
	if fn == nil {
		panic("dijkstra: WithOnSettle requires a non-nil callback")
	}

	return func(o *Options[N, W]) { o.OnSettle = fn }
}
