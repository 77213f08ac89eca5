// Package dijkstra implements point-to-point shortest-path queries on
// non-negatively weighted directed graphs.
//
// Each query builds a fresh arena of search nodes. A search node pairs a
// graph node with its cumulative cost from the start and the arena index of
// the search node that produced it. The frontier is a binary min-heap of
// arena indices ordered by cost alone.
//
// Complexity:
//
//   - Time:  O((V + E) log E). Every edge out of a settled node pushes at
//     most one search node; each heap operation is logarithmic.
//   - Space: O(V + E) for the arena, the frontier and the visited set.
//
// Notes on implementation choices:
//
//   - Weights are validated at insertion (core rejects negatives), so no
//     pre-scan is performed here.
//   - Search stops as soon as the end node is popped; its cost is final.
//   - Stale frontier entries whose node is already settled are discarded
//     when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campuswalk/core"
	"github.com/katalvlaran/campuswalk/hashtable"
)

// noPred marks a search node without predecessor (the start).
const noPred = -1

// ShortestPath returns the minimum-cost path from start to end.
//
// Implementation:
//   - Stage 1: Resolve start and end; either missing → core.ErrNodeNotFound.
//   - Stage 2: Seed the frontier with (start, 0, noPred).
//   - Stage 3: Pop the cheapest search node. If it is the end node, stop.
//     Otherwise, if its node is unsettled, settle it and push one search
//     node per outgoing edge to an unsettled target.
//   - Stage 4: Empty frontier → ErrNoPath.
//   - Stage 5: Follow predecessor indices back to the start and reverse.
//
// Complexity:
//   - Time: O((V + E) log E), Space: O(V + E).
func (g *Graph[N, W]) ShortestPath(start, end N, opts ...Option[N, W]) (Path[N, W], error) {
	var cfg Options[N, W]
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := g.Lookup(start)
	if err != nil {
		return Path[N, W]{}, fmt.Errorf("dijkstra: start: %w", err)
	}
	dst, err := g.Lookup(end)
	if err != nil {
		return Path[N, W]{}, fmt.Errorf("dijkstra: end: %w", err)
	}

	r := &runner[N, W]{
		options: cfg,
		target:  dst,
		visited: hashtable.New[N, *core.Node[N, W]](g.Hasher(),
			hashtable.WithCapacity(max(hashtable.DefaultCapacity, g.NodeCount()*2))),
	}
	r.frontier.arena = &r.arena
	r.push(src, 0, noPred)

	last, ok := r.process()
	if !ok {
		return Path[N, W]{Stats: r.stats}, fmt.Errorf("%w: %v -> %v", ErrNoPath, start, end)
	}

	return Path[N, W]{
		Nodes: r.reconstruct(last),
		Cost:  r.arena[last].cost,
		Stats: r.stats,
	}, nil
}

// ShortestPathData returns the node values along the shortest path from
// start to end. Errors as ShortestPath.
func (g *Graph[N, W]) ShortestPathData(start, end N) ([]N, error) {
	p, err := g.ShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	return p.Nodes, nil
}

// ShortestPathCost returns the total weight of the shortest path from start
// to end. Errors as ShortestPath.
func (g *Graph[N, W]) ShortestPathCost(start, end N) (W, error) {
	p, err := g.ShortestPath(start, end)
	if err != nil {
		var zero W
		return zero, err
	}

	return p.Cost, nil
}

// searchNode is one candidate path prefix: node reached at cost via pred.
type searchNode[N comparable, W core.Weight] struct {
	node *core.Node[N, W]
	cost W
	pred int
}

// runner holds the mutable state for a single query.
type runner[N comparable, W core.Weight] struct {
	options  Options[N, W]
	target   *core.Node[N, W]
	arena    []searchNode[N, W]
	frontier frontier[N, W]
	visited  *hashtable.Map[N, *core.Node[N, W]]
	stats    Stats
}

// push appends a search node to the arena and its index to the frontier.
func (r *runner[N, W]) push(n *core.Node[N, W], cost W, pred int) {
	r.arena = append(r.arena, searchNode[N, W]{node: n, cost: cost, pred: pred})
	heap.Push(&r.frontier, len(r.arena)-1)
	r.stats.Pushed++
}

// process runs the main loop and returns the arena index of the terminal
// search node, or false if the end node is unreachable.
func (r *runner[N, W]) process() (int, bool) {
	for r.frontier.Len() > 0 {
		idx := heap.Pop(&r.frontier).(int)
		cur := r.arena[idx]

		if cur.node == r.target {
			return idx, true
		}
		if r.visited.ContainsKey(cur.node.Value) {
			continue // a cheaper prefix already settled this node
		}
		// Put cannot fail: the key was just checked and came from the graph.
		_ = r.visited.Put(cur.node.Value, cur.node)
		r.stats.Settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(cur.node.Value, cur.cost)
		}

		cur.node.RangeOut(func(e *core.Edge[N, W]) bool {
			if !r.visited.ContainsKey(e.To.Value) {
				r.push(e.To, cur.cost+e.Weight, idx)
			}
			return true
		})
	}

	return noPred, false
}

// reconstruct walks predecessor indices from last back to the start and
// returns the values in start → end order.
func (r *runner[N, W]) reconstruct(last int) []N {
	var out []N
	for i := last; i != noPred; i = r.arena[i].pred {
		out = append(out, r.arena[i].node.Value)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// frontier is a min-heap of arena indices ordered by cumulative cost.
// Equal costs keep no secondary key; extraction order among them is
// deterministic for a fixed push order but otherwise unspecified.
type frontier[N comparable, W core.Weight] struct {
	arena *[]searchNode[N, W]
	items []int
}

func (f frontier[N, W]) Len() int { return len(f.items) }

func (f frontier[N, W]) Less(i, j int) bool {
	a := *f.arena
	return a[f.items[i]].cost < a[f.items[j]].cost
}

func (f frontier[N, W]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds an arena index. Called by heap.Push.
func (f *frontier[N, W]) Push(x any) { f.items = append(f.items, x.(int)) }

// Pop removes and returns the last index. Called by heap.Pop.
func (f *frontier[N, W]) Pop() any {
	old := f.items
	n := len(old)
	idx := old[n-1]
	f.items = old[:n-1]

	return idx
}
