// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/danielhkuo/newsboard/middleware"
)

//go:embed endpoints.json
var endpointsJSON []byte

type endpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// Endpoints handles GET /api
// Serves the machine-readable endpoint catalog embedded at build time.
func Endpoints(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, endpointsResponse{
		Endpoints: json.RawMessage(endpointsJSON),
	})
}
