package campus

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/katalvlaran/campuswalk/hashtable"
	"github.com/katalvlaran/campuswalk/logging"
	"github.com/katalvlaran/campuswalk/metrics"
)

// Sentinel errors for the path service.
var (
	// ErrMalformedEdge indicates an edge line that could not be parsed.
	ErrMalformedEdge = errors.New("campus: malformed edge line")

	// ErrUnknownLocation indicates a query named a location not on the map.
	ErrUnknownLocation = errors.New("campus: unknown location")

	// ErrNotLoaded indicates a query before any map was loaded.
	ErrNotLoaded = errors.New("campus: no map loaded")
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records load and query metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Service) { s.metrics = r }
}

// WithCapacity sets the initial node-index capacity of each loaded graph.
// Panics with hashtable.ErrBadCapacity if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(hashtable.ErrBadCapacity.Error())
	}

	return func(s *Service) { s.capacity = n }
}

// Service answers walking-route queries over a loaded campus map.
//
// Loads build a complete new map and swap it in under mu; queries take a
// snapshot pointer under the read lock and never observe a half-built graph.
// All methods are safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	current  *campusMap
	source   string
	loadedAt time.Time

	log      *slog.Logger
	metrics  *metrics.Registry
	capacity int
}

// New returns an empty Service. Call Load or LoadFile before querying.
func New(opts ...Option) *Service {
	s := &Service{
		current:  &campusMap{},
		log:      logging.Discard(),
		capacity: hashtable.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load replaces the current map with the edge list read from r.
// On error the previous map stays in place.
func (s *Service) Load(r io.Reader) error {
	return s.load(r, "<reader>")
}

// LoadFile replaces the current map with the edge list in path.
func (s *Service) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.recordLoad(metrics.StatusError, 0)
		return fmt.Errorf("campus: open map: %w", err)
	}
	defer f.Close()

	return s.load(f, path)
}

func (s *Service) load(r io.Reader, source string) error {
	start := time.Now()
	m, err := parse(r, s.capacity)
	elapsed := time.Since(start)
	if err != nil {
		s.recordLoad(metrics.StatusError, elapsed)
		s.log.Error("campus map load failed", "source", source, "error", err)
		return err
	}

	s.mu.Lock()
	s.current = m
	s.source = source
	s.loadedAt = time.Now()
	// gauges must follow the swap order, not the order loads finish
	if s.metrics != nil {
		s.metrics.SetGraphSize(m.graph.NodeCount(), m.graph.EdgeCount())
	}
	s.mu.Unlock()

	s.recordLoad(metrics.StatusOK, elapsed)
	s.log.Info("campus map loaded",
		"source", source,
		"locations", m.graph.NodeCount(),
		"walkways", m.graph.EdgeCount(),
		"duration", elapsed,
	)

	return nil
}

// Info describes the currently loaded map.
type Info struct {
	Source    string
	Locations int
	Walkways  int
	LoadedAt  time.Time
}

// Info returns a summary of the current map.
func (s *Service) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := Info{Source: s.source, LoadedAt: s.loadedAt}
	if s.current.graph != nil {
		info.Locations = s.current.graph.NodeCount()
		info.Walkways = s.current.graph.EdgeCount()
	}

	return info
}

// Locations returns all location names in the order they first appeared in
// the loaded map. The slice is a copy.
func (s *Service) Locations() []string {
	m := s.snapshot()
	out := make([]string, len(m.locations))
	copy(out, m.locations)

	return out
}

func (s *Service) snapshot() *campusMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *Service) recordLoad(status string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordLoad(status, d)
	}
}
