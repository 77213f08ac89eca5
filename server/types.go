package server

import "github.com/katalvlaran/campuswalk/campus"

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
	Walkways  int    `json:"walkways"`
	Source    string `json:"source,omitempty"`
}

// LocationsResponse is returned by GET /v1/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// RouteResponse is returned by GET /v1/route.
type RouteResponse = campus.Route

// ReachableResponse is returned by GET /v1/reachable.
type ReachableResponse struct {
	From      string         `json:"from"`
	Locations []campus.Reach `json:"locations"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`
}
