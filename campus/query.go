package campus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/campuswalk/bfs"
	"github.com/katalvlaran/campuswalk/dijkstra"
	"github.com/katalvlaran/campuswalk/metrics"
)

// Leg is one walkway of a route.
type Leg struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Seconds float64 `json:"seconds"`
}

// Route is the result of a point-to-point or via query.
//
// When Found is false, Stops and Legs are empty and TotalSeconds is zero.
type Route struct {
	Stops        []string `json:"stops"`
	Legs         []Leg    `json:"legs"`
	TotalSeconds float64  `json:"total_seconds"`
	Found        bool     `json:"found"`
}

// Reach is one location found by Reachable.
type Reach struct {
	Name string `json:"name"`
	Hops int    `json:"hops"`
}

// FindShortestPath returns the location names along the quickest walk from
// start to end, or an empty slice if either location is unknown or no walk
// exists.
func (s *Service) FindShortestPath(start, end string) []string {
	stops, _ := s.path(s.snapshot(), "path", start, end)
	return stops
}

// TravelTimesOnPath returns the seconds spent on each walkway of the path
// FindShortestPath would return, or an empty slice.
func (s *Service) TravelTimesOnPath(start, end string) []float64 {
	m := s.snapshot()
	stops, _ := s.path(m, "path", start, end)
	return legTimes(m, stops)
}

// FindShortestPathVia returns the path start → via → end built from two
// independent shortest-path queries, with the shared via location listed
// once. It is empty if either leg fails.
//
// The result is the quickest walk that visits via as a waypoint between two
// optimal legs; it is not a search over all walks containing via.
func (s *Service) FindShortestPathVia(start, via, end string) []string {
	stops, _ := s.pathVia(s.snapshot(), start, via, end)
	return stops
}

// TravelTimesOnPathVia returns per-walkway seconds along FindShortestPathVia.
func (s *Service) TravelTimesOnPathVia(start, via, end string) []float64 {
	m := s.snapshot()
	stops, _ := s.pathVia(m, start, via, end)
	return legTimes(m, stops)
}

// Route answers a query with full detail. via may be empty.
//
// Errors:
//   - ErrNotLoaded if no map has been loaded.
//   - ErrUnknownLocation (wrapped, naming the location) for absent names.
//
// An existing but unreachable destination is not an error: Found is false.
func (s *Service) Route(start, via, end string) (Route, error) {
	m := s.snapshot()
	if m.graph == nil {
		return Route{}, ErrNotLoaded
	}
	names := []string{start, end}
	if via != "" {
		names = append(names, via)
	}
	for _, n := range names {
		if !m.graph.ContainsNode(n) {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownLocation, n)
		}
	}

	var stops []string
	var err error
	if via == "" {
		stops, err = s.path(m, "route", start, end)
	} else {
		stops, err = s.pathVia(m, start, via, end)
	}
	if err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
		return Route{}, err
	}
	if len(stops) == 0 {
		return Route{Stops: []string{}, Legs: []Leg{}}, nil
	}

	r := Route{Stops: stops, Legs: make([]Leg, 0, len(stops)-1), Found: true}
	for i, sec := range legTimes(m, stops) {
		r.Legs = append(r.Legs, Leg{From: stops[i], To: stops[i+1], Seconds: sec})
		r.TotalSeconds += sec
	}

	return r, nil
}

// Reachable lists every location reachable on foot from start, in
// breadth-first order with its walkway count. maxHops <= 0 means no limit.
func (s *Service) Reachable(ctx context.Context, start string, maxHops int) ([]Reach, error) {
	m := s.snapshot()
	if m.graph == nil {
		return nil, ErrNotLoaded
	}
	if maxHops < 0 {
		maxHops = 0
	}

	res, err := bfs.BFS(m.graph.Graph, start,
		bfs.WithContext[string](ctx),
		bfs.WithMaxDepth[string](maxHops),
	)
	if errors.Is(err, bfs.ErrStartNodeNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, start)
	}
	if err != nil {
		return nil, fmt.Errorf("campus: reachable: %w", err)
	}

	out := make([]Reach, 0, len(res.Order))
	for _, name := range res.Order {
		out = append(out, Reach{Name: name, Hops: res.Depth[name]})
	}

	return out, nil
}

// path runs one shortest-path query and records it. Errors are returned for
// callers that need to tell unknown locations from missing paths; the
// returned slice is empty (never nil) on failure.
func (s *Service) path(m *campusMap, kind, start, end string) ([]string, error) {
	if m.graph == nil {
		return []string{}, ErrNotLoaded
	}

	var opts []dijkstra.Option[string, float64]
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, dijkstra.WithOnSettle(func(loc string, cost float64) {
			s.log.Debug("settled", "location", loc, "seconds", cost)
		}))
	}

	began := time.Now()
	p, err := m.graph.ShortestPath(start, end, opts...)
	s.recordQuery(kind, err, time.Since(began), p.Stats)
	if err != nil {
		s.log.Debug("no route", "start", start, "end", end, "error", err)
		return []string{}, err
	}

	return p.Nodes, nil
}

func (s *Service) pathVia(m *campusMap, start, via, end string) ([]string, error) {
	first, err := s.path(m, "via", start, via)
	if err != nil {
		return []string{}, err
	}
	second, err := s.path(m, "via", via, end)
	if err != nil {
		return []string{}, err
	}

	out := make([]string, 0, len(first)+len(second)-1)
	out = append(out, first[:len(first)-1]...)

	return append(out, second...), nil
}

// legTimes looks up the walkway weight between consecutive stops.
func legTimes(m *campusMap, stops []string) []float64 {
	if len(stops) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		w, err := m.graph.GetEdge(stops[i], stops[i+1])
		if err != nil {
			// stops came from a query on this same snapshot
			return []float64{}
		}
		out = append(out, w)
	}

	return out
}

func (s *Service) recordQuery(kind string, err error, d time.Duration, st dijkstra.Stats) {
	if s.metrics == nil {
		return
	}
	status := metrics.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, dijkstra.ErrNoPath):
		status = metrics.StatusNoPath
	case errors.Is(err, ErrNotLoaded):
		status = metrics.StatusError
	default:
		status = metrics.StatusUnknown
	}
	s.metrics.RecordQuery(kind, status, d, st.Settled, st.Pushed)
}
