package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/travelwave/booking/internal/domain"
	"github.com/travelwave/booking/internal/handler/gen"
)

// Client-facing messages. 500 responses never carry the underlying error.
const (
	msgMissingField   = "All fields are required"
	msgDuplicateEmail = "Email already exists, try a different email"
	msgDuplicatePhone = "Phone already exists, try a different number"
	msgValidation     = "Booking details are invalid"
	msgServerError    = "Server Error"
	msgTooLarge       = "Request body too large"
)

// missingFieldBody lists every required field that was blank.
func missingFieldBody(fields []string) gen.ErrorResponse {
	out := make([]gen.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, gen.FieldError{Field: f, Reason: "is required"})
	}
	return gen.ErrorResponse{Code: gen.MissingField, Message: msgMissingField, Fields: &out}
}

func duplicateEmailBody() gen.ErrorResponse {
	return gen.ErrorResponse{Code: gen.DuplicateEmail, Message: msgDuplicateEmail}
}

func duplicatePhoneBody() gen.ErrorResponse {
	return gen.ErrorResponse{Code: gen.DuplicatePhone, Message: msgDuplicatePhone}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// A *domain.ValidationError contributes one entry per violated field.
func validationBody(err error) gen.ErrorResponse {
	resp := gen.ErrorResponse{Code: gen.ValidationError, Message: msgValidation}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]gen.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, gen.FieldError{Field: f.Field, Reason: f.Reason})
		}
		resp.Fields = &fields
	}
	return resp
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. undecodable body or bad query parameter).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Code: gen.BadRequest, Message: message}
}

func serverErrorBody() gen.ErrorResponse {
	return gen.ErrorResponse{Code: gen.InternalError, Message: msgServerError}
}

// NewRequestErrorHandler handles requests the generated router rejects
// before a handler runs: undecodable JSON, bad query parameters and bodies
// cut off by http.MaxBytesReader.
func NewRequestErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				gen.ErrorResponse{Code: gen.PayloadTooLarge, Message: msgTooLarge})
			return
		}

		log.InfoContext(r.Context(), "rejected request",
			"path", r.URL.Path,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)

		var paramErr *gen.InvalidParamFormatError
		if errors.As(err, &paramErr) {
			writeError(w, http.StatusBadRequest, requestBody("invalid "+paramErr.ParamName+" parameter"))
			return
		}
		writeError(w, http.StatusBadRequest, requestBody("request body must be a valid JSON booking"))
	}
}

// NewResponseErrorHandler handles errors returned by handlers. The cause is
// logged server-side; the client only sees the generic 500 body.
func NewResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, serverErrorBody())
	}
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
