// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core.Graph tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campuswalk/core"
	"github.com/katalvlaran/campuswalk/hashtable"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// newGraph returns an empty string-keyed, float-weighted graph.
func newGraph(opts ...core.GraphOption) *core.Graph[string, float64] {
	return core.NewGraph[string, float64](hashtable.String(), opts...)
}

// mustNodes inserts every value, failing the test on error.
func mustNodes(t *testing.T, g *core.Graph[string, float64], values ...string) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, g.InsertNode(v))
	}
}

// mustEdge inserts from → to with weight w, failing the test on error.
func mustEdge(t *testing.T, g *core.Graph[string, float64], from, to string, w float64) {
	t.Helper()
	require.NoError(t, g.InsertEdge(from, to, w))
}
