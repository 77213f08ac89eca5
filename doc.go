// Package campuswalk finds the quickest walking routes across a campus,
// from the hash map underneath up to a CLI and an HTTP API.
//
// What is in here?
//
//	A small, layered stack:
//		• hashtable/ – generic separate-chaining map that doubles at 0.8 load
//		• core/      – directed weighted graph stored in that map
//		• dijkstra/  – single-pair shortest path over core graphs
//		• bfs/       – breadth-first reachability with depth limits
//		• campus/    – map loading, route queries, via-routes, live reload
//		• config/    – YAML configuration with validation
//		• logging/   – slog construction
//		• metrics/   – Prometheus registry for queries, loads and HTTP
//		• server/    – gin HTTP API
//		• cmd/campuswalk – cobra CLI: route, locations, reachable, serve
//
// Quick ASCII example:
//
//	  [Union South] --176--> [Computer Sciences] --80--> [AOSS]
//
//	represents two one-way walkways; the quickest walk from Union South to
//	AOSS takes 256 seconds.
//
// Maps are DOT-style edge lists, one walkway per line:
//
//	"Union South" -> "Computer Sciences and Statistics" [seconds=176.0];
//
//	go install github.com/katalvlaran/campuswalk/cmd/campuswalk@latest
package campuswalk
