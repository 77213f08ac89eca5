// Package core provides the directed weighted Graph that every other package
// in campuswalk builds on.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes wrap one comparable value (a location name, an integer ID, …).
//     At most one Node exists per distinct value.
//   - Edges are directed, carry a numeric Weight and are owned by the
//     source node's outgoing list. Each node also keeps an incoming list so
//     RemoveNode can drop every incident edge without scanning the graph.
//   - Node lookups route through a hashtable.Map keyed by node value, giving
//     O(1) expected lookup.
//   - At most one edge exists per ordered (from, to) pair.
//
// Policies:
//
//	InsertNode on an existing value     → ErrDuplicateNode (graph untouched)
//	InsertEdge on an existing (from,to) → weight replaced, EdgeCount unchanged
//	InsertEdge with weight < 0          → ErrNegativeWeight
//	InsertEdge with NaN weight          → ErrBadWeight
//	InsertEdge(v, v) without WithLoops  → ErrLoopNotAllowed
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n)  initial bucket count of the node index.
//	– WithLoops()      permit self-loops.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(v N) error                 // O(1) expected
//	RemoveNode(v N) error                 // O(deg(v)² + V) worst case
//	ContainsNode(v N) bool                // O(1) expected
//
//	// Edge lifecycle
//	InsertEdge(from, to N, w W) error     // O(outdeg(from))
//	RemoveEdge(from, to N) error          // O(outdeg(from) + indeg(to))
//	GetEdge(from, to N) (W, error)        // O(outdeg(from))
//
//	// Query
//	Nodes() []N                           // insertion order
//	Successors(v N) ([]N, error)          // edge insertion order
//	NodeCount(), EdgeCount() int          // O(1)
//
// Errors:
//
//	ErrDuplicateNode  – InsertNode on an existing value.
//	ErrNodeNotFound   – operation referenced a missing node.
//	ErrEdgeNotFound   – RemoveEdge/GetEdge on a missing edge.
//	ErrNegativeWeight – weight below zero.
//	ErrBadWeight      – NaN weight.
//	ErrLoopNotAllowed – self-loop when loops are disabled.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Build it fully, then query
//	it; callers that reload must build a fresh Graph and swap it in (see
//	campus.Service).
package core
