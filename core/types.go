// SPDX-License-Identifier: MIT
//
// Package core defines the Graph, Node and Edge types, the Weight
// constraint, sentinel errors, options and the NewGraph constructor.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/campuswalk/hashtable"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates InsertNode was called with a value already in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight is not a number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Weight is the set of numeric types usable as edge costs.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Node is a graph vertex wrapping one identifying value.
//
// out holds the edges leaving this node, in insertion order; in holds the
// edges arriving at it. Both lists share *Edge pointers, so a weight update
// is visible from either side.
type Node[N comparable, W Weight] struct {
	// Value identifies the node within its Graph.
	Value N

	out []*Edge[N, W]
	in  []*Edge[N, W]
}

// IsNil reports whether the receiver is nil; safe on typed-nil pointers.
func (n *Node[N, W]) IsNil() bool { return n == nil }

// OutDegree returns the number of edges leaving n.
func (n *Node[N, W]) OutDegree() int { return len(n.out) }

// InDegree returns the number of edges arriving at n.
func (n *Node[N, W]) InDegree() int { return len(n.in) }

// RangeOut calls fn for each outgoing edge in insertion order until fn
// returns false. fn must not mutate the graph.
func (n *Node[N, W]) RangeOut(fn func(e *Edge[N, W]) bool) {
	for _, e := range n.out {
		if !fn(e) {
			return
		}
	}
}

// Edge is a directed, weighted relation From → To.
type Edge[N comparable, W Weight] struct {
	From   *Node[N, W]
	To     *Node[N, W]
	Weight W
}

// graphConfig collects construction-time flags.
type graphConfig struct {
	capacity   int
	allowLoops bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

// WithCapacity sets the initial bucket count of the node index.
// Panics with hashtable.ErrBadCapacity if n < 1.
func WithCapacity(n int) GraphOption {
	if n < 1 {
		panic(hashtable.ErrBadCapacity.Error())
	}

	return func(c *graphConfig) { c.capacity = n }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is a directed weighted graph indexed by node value.
//
// nodes maps value → *Node through the custom hashtable; order keeps values
// in insertion order so enumeration is deterministic.
type Graph[N comparable, W Weight] struct {
	hasher     hashtable.Hasher[N]
	nodes      *hashtable.Map[N, *Node[N, W]]
	order      []N
	edgeCount  int
	allowLoops bool
}

// NewGraph creates an empty Graph whose node index hashes values with h.
// By default loops are rejected and the index starts at
// hashtable.DefaultCapacity buckets.
// Complexity: O(capacity).
func NewGraph[N comparable, W Weight](h hashtable.Hasher[N], opts ...GraphOption) *Graph[N, W] {
	cfg := graphConfig{capacity: hashtable.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, W]{
		hasher:     h,
		nodes:      hashtable.New[N, *Node[N, W]](h, hashtable.WithCapacity(cfg.capacity)),
		allowLoops: cfg.allowLoops,
	}
}

// Hasher returns the hash capability used by the node index, so algorithms
// can build side tables (visited sets) keyed the same way.
func (g *Graph[N, W]) Hasher() hashtable.Hasher[N] { return g.hasher }

// Looped reports whether self-loops are permitted.
func (g *Graph[N, W]) Looped() bool { return g.allowLoops }
