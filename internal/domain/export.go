package domain

import "time"

// ExportHeaders are the column names of the flat booking export, in order.
var ExportHeaders = []string{
	"id", "name", "email", "phone", "date_time", "trip", "special_req", "created_at",
}

// ExportRecord flattens a booking into one export row matching ExportHeaders.
// Timestamps are RFC 3339 in UTC; an empty special request stays empty.
func (b Booking) ExportRecord() []string {
	return []string{
		b.ID.String(),
		b.Name,
		b.Email,
		b.Phone,
		b.DateTime.UTC().Format(time.RFC3339),
		b.Trip,
		b.SpecialReq,
		b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
