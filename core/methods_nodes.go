// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campuswalk/hashtable"
)

// InsertNode adds a node for value v.
//
// Errors:
//   - ErrDuplicateNode if v is already present (graph untouched).
//   - hashtable.ErrNilKey / hashtable.ErrInvalidKey wrapped, if the hasher
//     rejects v.
//
// Complexity: O(1) expected.
func (g *Graph[N, W]) InsertNode(v N) error {
	if err := g.nodes.Put(v, &Node[N, W]{Value: v}); err != nil {
		if errors.Is(err, hashtable.ErrDuplicateKey) {
			return fmt.Errorf("%w: %v", ErrDuplicateNode, v)
		}

		return fmt.Errorf("core: insert node: %w", err)
	}
	g.order = append(g.order, v)

	return nil
}

// RemoveNode deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Look up v; missing → ErrNodeNotFound.
//   - Stage 2: Detach each outgoing edge from its target's incoming list.
//   - Stage 3: Detach each incoming edge from its source's outgoing list.
//   - Stage 4: Drop v from the index and from insertion order.
//
// A self-loop sits in both lists of v and is counted once.
func (g *Graph[N, W]) RemoveNode(v N) error {
	n, err := g.node(v)
	if err != nil {
		return err
	}

	removed := 0
	for _, e := range n.out {
		if e.To != n {
			e.To.in = dropEdge(e.To.in, e)
		}
		removed++
	}
	for _, e := range n.in {
		if e.From == n {
			continue // self-loop already counted
		}
		e.From.out = dropEdge(e.From.out, e)
		removed++
	}
	g.edgeCount -= removed
	n.out, n.in = nil, nil

	if _, err = g.nodes.Remove(v); err != nil {
		return fmt.Errorf("core: remove node: %w", err)
	}
	for i, val := range g.order {
		if val == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// ContainsNode reports whether v is in the graph. Values the hasher rejects
// are never contained.
func (g *Graph[N, W]) ContainsNode(v N) bool { return g.nodes.ContainsKey(v) }

// Lookup returns the internal Node for v, for algorithms that walk adjacency
// directly. The returned Node must be treated as read-only.
func (g *Graph[N, W]) Lookup(v N) (*Node[N, W], error) { return g.node(v) }

// NodeCount returns |V|.
func (g *Graph[N, W]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns |E|.
func (g *Graph[N, W]) EdgeCount() int { return g.edgeCount }

// Nodes returns all node values in insertion order. The slice is a copy.
func (g *Graph[N, W]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Successors returns the targets of v's outgoing edges in edge insertion order.
// Errors: ErrNodeNotFound.
func (g *Graph[N, W]) Successors(v N) ([]N, error) {
	n, err := g.node(v)
	if err != nil {
		return nil, err
	}
	out := make([]N, 0, len(n.out))
	for _, e := range n.out {
		out = append(out, e.To.Value)
	}

	return out, nil
}

// node resolves v to its Node, mapping every lookup failure to ErrNodeNotFound.
func (g *Graph[N, W]) node(v N) (*Node[N, W], error) {
	n, err := g.nodes.Get(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	return n, nil
}

// dropEdge removes e from list, preserving order.
func dropEdge[N comparable, W Weight](list []*Edge[N, W], e *Edge[N, W]) []*Edge[N, W] {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}

	return list
}
