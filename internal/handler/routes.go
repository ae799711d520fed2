package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelwave/booking/internal/handler/gen"
)

// Mount registers every generated API route on base (a fresh chi router
// when nil) with the JSON error handlers installed. main.go and the handler
// tests both go through here so they exercise identical wiring.
func Mount(base chi.Router, srv *Server, log *slog.Logger) http.Handler {
	requestErr := NewRequestErrorHandler(log)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErr,
		ResponseErrorHandlerFunc: NewResponseErrorHandler(log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       base,
		ErrorHandlerFunc: requestErr,
	})
}
