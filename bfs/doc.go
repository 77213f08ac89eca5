// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node,
//     following directed edges forward only. Weights are ignored.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - OnVisit hook may abort the search with an error.
//   - Neighbor filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or no limit (d==0).
//
// Determinism
//
//	Successors are enqueued in edge insertion order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Union South",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached         from Result.PathTo for unvisited nodes.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
