package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campuswalk/campus"
)

// handleHealth reports liveness and the size of the loaded map.
//
// Response:
//
//	200 OK: HealthResponse
func (s *Server) handleHealth(c *gin.Context) {
	info := s.svc.Info()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Locations: info.Locations,
		Walkways:  info.Walkways,
		Source:    info.Source,
	})
}

// handleLocations lists every location in load order.
func (s *Server) handleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, LocationsResponse{Locations: s.svc.Locations()})
}

// handleRoute answers GET /v1/route?start=&end=[&via=].
//
// Response:
//
//	200 OK: RouteResponse (found may be false)
//	400 Bad Request: missing start or end
//	404 Not Found: unknown location
//	503 Service Unavailable: no map loaded
func (s *Server) handleRoute(c *gin.Context) {
	logger := s.log.With(requestIDKey, getOrCreateRequestID(c), "handler", "route")

	start, end, via := c.Query("start"), c.Query("end"), c.Query("via")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query parameters start and end are required",
			Code:  "MISSING_PARAMETER",
		})
		return
	}

	route, err := s.svc.Route(start, via, end)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}

	logger.Debug("route answered", "start", start, "via", via, "end", end,
		"found", route.Found, "total_seconds", route.TotalSeconds)
	c.JSON(http.StatusOK, route)
}

// handleReachable answers GET /v1/reachable?from=[&max_hops=].
func (s *Server) handleReachable(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query parameter from is required",
			Code:  "MISSING_PARAMETER",
		})
		return
	}

	maxHops := 0
	if raw := c.Query("max_hops"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "max_hops must be a non-negative integer",
				Code:  "INVALID_PARAMETER",
			})
			return
		}
		maxHops = n
	}

	reach, err := s.svc.Reachable(c.Request.Context(), from, maxHops)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReachableResponse{From: from, Locations: reach})
}

func (s *Server) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, campus.ErrUnknownLocation):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "UNKNOWN_LOCATION"})
	case errors.Is(err, campus.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Code: "NOT_LOADED"})
	default:
		s.log.Error("query failed", requestIDKey, getOrCreateRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
	}
}
