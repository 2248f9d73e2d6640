// Package middleware provides an ordered HTTP middleware stack plus the
// CORS and request-logging middleware used by API modules.
package middleware

import "net/http"

// System manages an ordered stack of HTTP middleware.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	layers []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &stack{
		layers: []func(http.Handler) http.Handler{},
	}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.layers = append(s.layers, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.layers) - 1; i >= 0; i-- {
		handler = s.layers[i](handler)
	}
	return handler
}
