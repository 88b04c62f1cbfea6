// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware, JSON helpers, and the error
translator for the API.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/topics", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
correlated by a generated request id echoed in X-Request-ID.

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(mux)

Allows methods GET, POST, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Bad request")

Error bodies are always {"msg": "..."}.

Parse JSON request bodies:

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.HandleError(w, models.BadRequest("Bad request"))
		return
	}

# Error Translation

HandleError maps any error to an HTTP response:

	middleware.HandleError(w, err)

Tagged *models.APIError values pass through verbatim. PostgreSQL error
codes 22P02, 23502, and 23505 become 400; 23503 (foreign key) becomes
404. Everything else is logged and answered with a generic 500.
*/
package middleware
