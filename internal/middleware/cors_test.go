package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelwave/booking/internal/middleware"
)

const frontendOrigin = "http://localhost:5173"

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// TestCORSHandler_GET_AllowedOrigin verifies that a GET from the front-end
// origin is answered with its origin echoed and credentials allowed.
func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{frontendOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/all", nil)
	req.Header.Set("Origin", frontendOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, frontendOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

// TestCORSHandler_OPTIONS_Preflight verifies that the preflight a browser sends
// before a JSON POST is answered with 2xx and the CORS headers.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{frontendOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/booking/book", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	// Browsers send Access-Control-Request-Headers in lowercase; rs/cors
	// compares against its lowercased allow list verbatim.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, frontendOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

// TestCORSHandler_Preflight_DisallowedMethod verifies that methods the API
// does not serve are not granted in a preflight.
func TestCORSHandler_Preflight_DisallowedMethod(t *testing.T) {
	h := middleware.NewCORSHandler([]string{frontendOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/booking/all", nil)
	req.Header.Set("Origin", frontendOrigin)
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a request from another
// origin does not receive the Access-Control-Allow-Origin header. The browser
// then blocks the response even though the status is still 200.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{frontendOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/all", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
