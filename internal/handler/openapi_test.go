package handler_test

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/travelwave/booking/internal/handler/gen"
	"github.com/travelwave/booking/openapi"
)

type apiDocument struct {
	Paths map[string]map[string]struct {
		OperationID string         `yaml:"operationId"`
		Responses   map[string]any `yaml:"responses"`
	} `yaml:"paths"`
	Components struct {
		Schemas struct {
			ErrorResponse struct {
				Properties struct {
					Code struct {
						Enum []string `yaml:"enum"`
					} `yaml:"code"`
				} `yaml:"properties"`
			} `yaml:"ErrorResponse"`
		} `yaml:"schemas"`
	} `yaml:"components"`
}

func loadDocument(t *testing.T) apiDocument {
	t.Helper()
	var doc apiDocument
	require.NoError(t, yaml.Unmarshal(openapi.Document, &doc))
	require.NotEmpty(t, doc.Paths)
	return doc
}

func documentStatuses(t *testing.T, doc apiDocument, path, method string) []string {
	t.Helper()
	op, ok := doc.Paths[path][method]
	require.True(t, ok, "%s %s missing from openapi.yaml", method, path)
	out := make([]string, 0, len(op.Responses))
	for status := range op.Responses {
		out = append(out, status)
	}
	sort.Strings(out)
	return out
}

func TestGeneratedRoutesMatchDocument(t *testing.T) {
	doc := loadDocument(t)

	var want []string
	for path, ops := range doc.Paths {
		for method := range ops {
			want = append(want, strings.ToUpper(method)+" "+path)
		}
	}

	r := chi.NewRouter()
	gen.HandlerFromMux(gen.Unimplemented{}, r)
	var got []string
	require.NoError(t, chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}))

	assert.ElementsMatch(t, want, got)
}

func TestGeneratedErrorCodesMatchDocument(t *testing.T) {
	doc := loadDocument(t)

	generated := []gen.ErrorResponseCode{
		gen.BadRequest,
		gen.DuplicateEmail,
		gen.DuplicatePhone,
		gen.InternalError,
		gen.MissingField,
		gen.PayloadTooLarge,
		gen.ValidationError,
	}
	got := make([]string, 0, len(generated))
	for _, c := range generated {
		got = append(got, string(c))
	}

	assert.ElementsMatch(t, doc.Components.Schemas.ErrorResponse.Properties.Code.Enum, got)
}

func TestGeneratedResponsesMatchDocument(t *testing.T) {
	doc := loadDocument(t)

	visited := func(t *testing.T, visit func(http.ResponseWriter) error) string {
		t.Helper()
		rec := httptest.NewRecorder()
		require.NoError(t, visit(rec))
		return strconv.Itoa(rec.Code)
	}
	unique := func(in []string) []string {
		seen := map[string]bool{}
		var out []string
		for _, s := range in {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		sort.Strings(out)
		return out
	}

	t.Run("SubmitBooking", func(t *testing.T) {
		var got []string
		for _, resp := range []gen.SubmitBookingResponseObject{
			gen.SubmitBooking201JSONResponse{},
			gen.SubmitBooking400JSONResponse{},
			gen.SubmitBooking401JSONResponse{},
			gen.SubmitBooking413JSONResponse{},
			gen.SubmitBooking500JSONResponse{},
		} {
			got = append(got, visited(t, resp.VisitSubmitBookingResponse))
		}
		assert.Equal(t, documentStatuses(t, doc, "/api/v1/booking/book", "post"), unique(got))
	})

	t.Run("ListBookings", func(t *testing.T) {
		var got []string
		for _, resp := range []gen.ListBookingsResponseObject{
			gen.ListBookings200JSONResponse{},
			gen.ListBookings200TextcsvResponse{Body: strings.NewReader("")},
			gen.ListBookings400JSONResponse{},
			gen.ListBookings500JSONResponse{},
		} {
			got = append(got, visited(t, resp.VisitListBookingsResponse))
		}
		assert.Equal(t, documentStatuses(t, doc, "/api/v1/booking/all", "get"), unique(got))
	})

	t.Run("GetHealth", func(t *testing.T) {
		got := []string{visited(t, gen.GetHealth200JSONResponse{}.VisitGetHealthResponse)}
		assert.Equal(t, documentStatuses(t, doc, "/healthz", "get"), got)
	})
}
