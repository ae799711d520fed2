// Package domain contains the core data types for the travel booking API.
// It depends only on uuid and is imported by every other internal package
// (repo, service, handler, cache).
package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// Booking is a single trip-reservation request submitted by a visitor.
// ID, CreatedAt and Seq are assigned by the store on insert and never change.
type Booking struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	DateTime   time.Time `json:"dateTime"`
	Trip       string    `json:"trip"`
	SpecialReq string    `json:"specialReq,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	// Seq orders bookings that share a CreatedAt instant.
	Seq int64 `json:"-"`
}

// BookingRequest carries the raw submission as it arrived from the client.
// DateTime is still text here; NewBooking parses it.
type BookingRequest struct {
	Name       string
	Email      string
	Phone      string
	DateTime   string
	Trip       string
	SpecialReq string
}

// MissingFields returns the names of required fields that are empty after
// trimming, in form order. An empty result means every field is present.
func (r BookingRequest) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"dateTime", r.DateTime},
		{"trip", r.Trip},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// NewBooking builds a candidate Booking from a request. Text fields are
// trimmed; zone-less date-times are read in loc.
// Returns a *ValidationError when DateTime cannot be parsed.
func NewBooking(r BookingRequest, loc *time.Location) (Booking, error) {
	dt, err := ParseDateTime(r.DateTime, loc)
	if err != nil {
		return Booking{}, &ValidationError{Fields: []FieldError{
			{Field: "dateTime", Reason: "must be a valid date and time"},
		}}
	}
	return Booking{
		Name:       strings.TrimSpace(r.Name),
		Email:      r.Email,
		Phone:      r.Phone,
		DateTime:   dt,
		Trip:       strings.TrimSpace(r.Trip),
		SpecialReq: strings.TrimSpace(r.SpecialReq),
	}, nil
}

// dateTimeLayouts are tried in order. The last one is what an HTML
// datetime-local input submits.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses s using the accepted booking layouts.
// Layouts without an offset are interpreted in loc (UTC when loc is nil).
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		t, err = time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Validate checks every field constraint against now and returns a
// *ValidationError listing all violations, or nil.
//   - name and trip must be non-empty after trimming
//   - email must look like local@domain.tld
//   - phone must be exactly ten digits
//   - dateTime must be strictly after now
func (b Booking) Validate(now time.Time) error {
	var fields []FieldError

	if strings.TrimSpace(b.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Reason: "Name is required"})
	}
	switch {
	case b.Email == "":
		fields = append(fields, FieldError{Field: "email", Reason: "Email is required"})
	case !emailPattern.MatchString(b.Email):
		fields = append(fields, FieldError{Field: "email", Reason: "Please provide a valid email"})
	}
	switch {
	case b.Phone == "":
		fields = append(fields, FieldError{Field: "phone", Reason: "Phone number is required"})
	case !phonePattern.MatchString(b.Phone):
		fields = append(fields, FieldError{Field: "phone", Reason: "Phone number must be 10 digits"})
	}
	switch {
	case b.DateTime.IsZero():
		fields = append(fields, FieldError{Field: "dateTime", Reason: "Date and time are required"})
	case !b.DateTime.After(now):
		fields = append(fields, FieldError{Field: "dateTime", Reason: "Date and time must be in the future"})
	}
	if strings.TrimSpace(b.Trip) == "" {
		fields = append(fields, FieldError{Field: "trip", Reason: "Trip selection is required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
