// Package openapi embeds the OpenAPI document for the booking API.
// It is served at /openapi.yaml and rendered by the Swagger UI at /docs.
// The server code in internal/handler/gen is generated from the same file.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
