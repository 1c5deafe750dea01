// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /admin", middleware.WithLogging(handler))

Each request gets a UUID (google/uuid) returned in the X-Request-ID header.
Logs request start (request_id, method, path, remote) and completion
(status, duration_ms).

# Error Pages

	middleware.ErrorResponse(w, http.StatusInternalServerError, "message")

Writes a small HTML page with the status text and escaped message.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
