// SPDX-License-Identifier: MIT
package core

import "fmt"

// InsertEdge adds the directed edge from → to with weight w, or replaces the
// weight if that edge already exists.
//
// Implementation:
//   - Stage 1: Validate w (NaN → ErrBadWeight, negative → ErrNegativeWeight).
//   - Stage 2: Resolve both endpoints (ErrNodeNotFound).
//   - Stage 3: Reject from == to unless WithLoops was given.
//   - Stage 4: If an edge from → to exists, overwrite its weight; otherwise
//     append a new edge to from.out and to.in and bump EdgeCount.
//
// Complexity: O(outdeg(from)).
func (g *Graph[N, W]) InsertEdge(from, to N, w W) error {
	if w != w { // only NaN is unequal to itself
		return fmt.Errorf("%w: %v -> %v", ErrBadWeight, from, to)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v -> %v (%v)", ErrNegativeWeight, from, to, w)
	}

	src, err := g.node(from)
	if err != nil {
		return err
	}
	dst, err := g.node(to)
	if err != nil {
		return err
	}
	if src == dst && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	if e := findEdge(src, dst); e != nil {
		e.Weight = w
		return nil
	}

	e := &Edge[N, W]{From: src, To: dst, Weight: w}
	src.out = append(src.out, e)
	dst.in = append(dst.in, e)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from → to.
// Errors: ErrEdgeNotFound, also when either endpoint is absent.
func (g *Graph[N, W]) RemoveEdge(from, to N) error {
	e, err := g.edge(from, to)
	if err != nil {
		return err
	}
	e.From.out = dropEdge(e.From.out, e)
	e.To.in = dropEdge(e.To.in, e)
	g.edgeCount--

	return nil
}

// GetEdge returns the weight of the directed edge from → to.
// Errors: ErrEdgeNotFound, also when either endpoint is absent.
func (g *Graph[N, W]) GetEdge(from, to N) (W, error) {
	e, err := g.edge(from, to)
	if err != nil {
		var zero W
		return zero, err
	}

	return e.Weight, nil
}

// ContainsEdge reports whether the directed edge from → to exists.
func (g *Graph[N, W]) ContainsEdge(from, to N) bool {
	_, err := g.edge(from, to)
	return err == nil
}

func (g *Graph[N, W]) edge(from, to N) (*Edge[N, W], error) {
	src, err := g.nodes.Get(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	dst, err := g.nodes.Get(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	if e := findEdge(src, dst); e != nil {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
}

func findEdge[N comparable, W Weight](src, dst *Node[N, W]) *Edge[N, W] {
	for _, e := range src.out {
		if e.To == dst {
			return e
		}
	}

	return nil
}
