// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop count from a start node,
// with an optional visit hook, depth limiting, and neighbor filtering.
// Edge weights are ignored.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/campuswalk/core"
	"github.com/katalvlaran/campuswalk/hashtable"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable, W core.Weight] struct {
	node  *core.Node[N, W]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable, W core.Weight] struct {
	opts    Options[N]
	ctx     context.Context
	queue   []queueItem[N, W]
	visited *hashtable.Map[N, struct{}]
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[N comparable, W core.Weight](g *core.Graph[N, W], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	root, err := g.Lookup(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[N, W]{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[N, W], 0, n),
		visited: hashtable.New[N, struct{}](g.Hasher(), hashtable.WithCapacity(max(hashtable.DefaultCapacity, n*2))),
		res: &Result[N]{
			Start:  start,
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, records its parent and adds it to the queue.
func (w *walker[N, W]) enqueue(n *core.Node[N, W], d int, parent *core.Node[N, W]) {
	_ = w.visited.Put(n.Value, struct{}{})
	w.res.Depth[n.Value] = d
	if parent != nil {
		w.res.Parent[n.Value] = parent.Value
	}
	w.queue = append(w.queue, queueItem[N, W]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node.Value)
		if err := w.opts.OnVisit(item.node.Value, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node.Value, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// successor in edge insertion order.
func (w *walker[N, W]) enqueueNeighbors(item queueItem[N, W]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	item.node.RangeOut(func(e *core.Edge[N, W]) bool {
		if !w.opts.FilterNeighbor(item.node.Value, e.To.Value) {
			return true
		}
		if !w.visited.ContainsKey(e.To.Value) {
			w.enqueue(e.To, next, item.node)
		}
		return true
	})
}
