// Package handler implements the HTTP handlers for the booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into per-resource files (health.go, booking.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/travelwave/booking/internal/domain"
)

// BookingServicer defines the business operations the booking handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without touching the database or service layer.
type BookingServicer interface {
	SubmitBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions.
type Server struct {
	bookings BookingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(bookings BookingServicer) *Server {
	return &Server{bookings: bookings}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}
