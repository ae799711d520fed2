package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"

	"github.com/travelwave/booking/internal/domain"
	"github.com/travelwave/booking/internal/handler/gen"
)

// confirmationMessage is returned with every successful submission.
const confirmationMessage = "Your Slot is Booked"

// SubmitBooking handles POST /api/v1/booking/book.
func (s *Server) SubmitBooking(ctx context.Context, req gen.SubmitBookingRequestObject) (gen.SubmitBookingResponseObject, error) {
	in := requestToBooking(req.Body)

	created, err := s.bookings.SubmitBooking(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			return gen.SubmitBooking400JSONResponse(missingFieldBody(in.MissingFields())), nil
		case errors.Is(err, domain.ErrDuplicateEmail):
			return gen.SubmitBooking401JSONResponse(duplicateEmailBody()), nil
		case errors.Is(err, domain.ErrDuplicatePhone):
			return gen.SubmitBooking401JSONResponse(duplicatePhoneBody()), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.SubmitBooking400JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	b := bookingToResponse(created)
	return gen.SubmitBooking201JSONResponse{Message: confirmationMessage, Booking: &b}, nil
}

// ListBookings handles GET /api/v1/booking/all.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ListBookings(ctx context.Context, req gen.ListBookingsRequestObject) (gen.ListBookingsResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Json && format != gen.Csv {
		return gen.ListBookings400JSONResponse(requestBody("format must be json or csv")), nil
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	if format == gen.Csv {
		return buildCSVResponse(bookings), nil
	}

	out := make(gen.ListBookings200JSONResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingToResponse(b))
	}
	return out, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToBooking converts the decoded body into a domain.BookingRequest.
// A null body yields an empty request, which the service rejects as missing fields.
func requestToBooking(body *gen.SubmitBookingRequest) domain.BookingRequest {
	if body == nil {
		return domain.BookingRequest{}
	}
	r := domain.BookingRequest{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		DateTime: body.DateTime,
		Trip:     body.Trip,
	}
	if body.SpecialReq != nil {
		r.SpecialReq = *body.SpecialReq
	}
	return r
}

// bookingToResponse converts a domain.Booking into the generated gen.Booking type.
func bookingToResponse(b domain.Booking) gen.Booking {
	resp := gen.Booking{
		Id:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		DateTime:  b.DateTime,
		Trip:      b.Trip,
		CreatedAt: b.CreatedAt,
	}
	if b.SpecialReq != "" {
		resp.SpecialReq = &b.SpecialReq
	}
	return resp
}

// buildCSVResponse encodes bookings as CSV, header row first, and wraps the
// result in the streaming response type.
func buildCSVResponse(bookings []domain.Booking) gen.ListBookings200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(domain.ExportHeaders)
	for _, b := range bookings {
		//nolint:errcheck
		w.Write(b.ExportRecord())
	}
	w.Flush()

	return gen.ListBookings200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}
