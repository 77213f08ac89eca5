// Package dijkstra answers point-to-point shortest-path queries over a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Graph embeds *core.Graph, so one value both builds the map
//     (InsertNode, InsertEdge) and answers queries.
//   - Each query is independent: search state lives in a per-query arena and
//     nothing is retained between calls. Concurrent queries on a graph that
//     is no longer being mutated are safe.
//   - Predecessors are arena indices, not pointers, so the back-reference
//     chain of a path is a plain slice walk.
//
// When to use:
//
//   - Walking-time routing between named locations (see package campus).
//   - Any static, non-negatively weighted directed graph where only a few
//     (start, end) pairs are queried and all-pairs precomputation is overkill.
//
// Error handling (sentinel errors):
//
//   - core.ErrNodeNotFound (wrapped):
//     start or end is not a node of the graph.
//   - ErrNoPath:
//     both endpoints exist but end is unreachable from start.
//   - ErrNilGraph:
//     Wrap was given a nil graph.
//
// API reference:
//
//	g := dijkstra.NewGraph[string, float64](hashtable.String())
//	_ = g.InsertNode("A"); _ = g.InsertNode("B")
//	_ = g.InsertEdge("A", "B", 4)
//
//	p, err := g.ShortestPath("A", "B")          // Path{Nodes, Cost, Stats}
//	nodes, err := g.ShortestPathData("A", "B")  // []string{"A", "B"}
//	cost, err := g.ShortestPathCost("A", "B")   // 4
//
// Thread safety:
//
//   - Queries only read the graph. Mutating the graph concurrently with a
//     query is a data race; build a new graph and swap it instead.
package dijkstra
