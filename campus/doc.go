// Package campus is the walking-route service: it loads a campus map from a
// DOT-style edge list and answers shortest-walk queries between named
// locations.
//
// Map format: one walkway per line,
//
//	digraph campus {
//	    "Union South" -> "Computer Sciences and Statistics" [seconds=176.0];
//	}
//
// Lines without "->" and comment lines are ignored. IDs may be quoted or
// bare, and a trailing // or # comment is allowed. The bracketed
// attribute's value is the walking time in seconds.
//
// Queries:
//
//	FindShortestPath(start, end)          []string  (empty when none)
//	TravelTimesOnPath(start, end)         []float64 (per walkway)
//	FindShortestPathVia(start, via, end)  []string
//	TravelTimesOnPathVia(start, via, end) []float64
//	Route(start, via, end)                Route, error
//	Reachable(ctx, start, maxHops)        []Reach, error
//
// Via queries chain two independent shortest-path queries (start → via,
// via → end). Each leg is optimal; the combination is not guaranteed to be
// the quickest walk through via.
//
// Reloading (Load, LoadFile, Watch) builds a whole new graph and swaps it in;
// in-flight queries finish on the map they started with.
package campus
