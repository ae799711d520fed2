package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelwave/booking/internal/middleware"
)

// bodyReadingHandler reads the full request body and answers 413 if the read
// fails (as MaxBytesReader causes), otherwise 200. It stands in for the JSON
// decoding the generated handlers do.
var bodyReadingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler(t *testing.T) {
	tests := []struct {
		name          string
		limit         int64
		size          int
		contentLength int64
		want          int
	}{
		{"within limit", 100, 50, 50, http.StatusOK},
		{"exactly at limit", 100, 100, 100, http.StatusOK},
		{"content length over limit", 100, 200, 200, http.StatusRequestEntityTooLarge},
		{"streaming body over limit", 100, 200, -1, http.StatusRequestEntityTooLarge},
		{"limit disabled", 0, 200, 200, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewMaxBodySizeHandler(tc.limit)(bodyReadingHandler)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/book",
				strings.NewReader(strings.Repeat("x", tc.size)))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

// TestMaxBodySizeHandler_EarlyRejectBody verifies that a request rejected on
// Content-Length alone gets the API's JSON error body.
func TestMaxBodySizeHandler_EarlyRejectBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := middleware.NewMaxBodySizeHandler(10)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/book", strings.NewReader(strings.Repeat("x", 20)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called, "next handler must not run")

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "payload_too_large", body["code"])
}
