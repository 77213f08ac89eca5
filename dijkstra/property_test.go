package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/campuswalk/dijkstra"
	"github.com/katalvlaran/campuswalk/hashtable"
)

const propNodes = 8

// buildRandom inserts nodes 0..propNodes-1 and one edge per triple
// (from, to, w) taken from raw, skipping self-loops.
func buildRandom(raw []int) *dijkstra.Graph[int, int] {
	g := dijkstra.NewGraph[int, int](hashtable.Integer[int]())
	for i := 0; i < propNodes; i++ {
		_ = g.InsertNode(i)
	}
	for i := 0; i+2 < len(raw); i += 3 {
		from, to, w := raw[i]%propNodes, raw[i+1]%propNodes, raw[i+2]
		if from == to {
			continue
		}
		_ = g.InsertEdge(from, to, w)
	}

	return g
}

// bellmanFord returns reference distances from src; -1 marks unreachable.
func bellmanFord(g *dijkstra.Graph[int, int], src int) []int {
	dist := make([]int, propNodes)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	for round := 0; round < propNodes; round++ {
		for u := 0; u < propNodes; u++ {
			if dist[u] < 0 {
				continue
			}
			succ, _ := g.Successors(u)
			for _, v := range succ {
				w, _ := g.GetEdge(u, v)
				if dist[v] < 0 || dist[u]+w < dist[v] {
					dist[v] = dist[u] + w
				}
			}
		}
	}

	return dist
}

// TestShortestPathProperties cross-checks the engine against Bellman-Ford on
// random graphs and verifies the path/cost relationship.
func TestShortestPathProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	rawGen := gen.SliceOfN(3*24, gen.IntRange(0, 50))

	// Property 1: cost matches the reference distance, ErrNoPath iff unreachable.
	properties.Property("cost is optimal", prop.ForAll(
		func(raw []int, src, dst int) bool {
			g := buildRandom(raw)
			want := bellmanFord(g, src)[dst]

			cost, err := g.ShortestPathCost(src, dst)
			if want < 0 {
				return errors.Is(err, dijkstra.ErrNoPath)
			}

			return err == nil && cost == want
		},
		rawGen,
		gen.IntRange(0, propNodes-1),
		gen.IntRange(0, propNodes-1),
	))

	// Property 2: the path runs start → end over existing edges whose weights
	// sum to the reported cost.
	properties.Property("path cost equals sum of legs", prop.ForAll(
		func(raw []int, src, dst int) bool {
			g := buildRandom(raw)
			p, err := g.ShortestPath(src, dst)
			if err != nil {
				return errors.Is(err, dijkstra.ErrNoPath)
			}
			if p.Nodes[0] != src || p.Nodes[len(p.Nodes)-1] != dst {
				return false
			}
			sum := 0
			for i := 1; i < len(p.Nodes); i++ {
				w, err := g.GetEdge(p.Nodes[i-1], p.Nodes[i])
				if err != nil {
					return false
				}
				sum += w
			}

			return sum == p.Cost
		},
		rawGen,
		gen.IntRange(0, propNodes-1),
		gen.IntRange(0, propNodes-1),
	))

	properties.TestingRun(t)
}
