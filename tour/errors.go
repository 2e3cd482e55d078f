package tour

import "errors"

var (
	// ErrTooFewEndpoints is returned when fewer than two endpoints are given.
	ErrTooFewEndpoints = errors.New("tour: need at least two endpoints")

	// ErrUnknownEndpoint is returned when an endpoint ID is absent from the graph.
	ErrUnknownEndpoint = errors.New("tour: endpoint not found in graph")
)
