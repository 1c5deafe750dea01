// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the registration site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	v, _ := views.New()
	mux := router.NewRouter(gdb, cfg, v)

# Endpoints

	GET  /health    - Liveness check
	GET  /          - Intake form
	POST /          - Submit registration (303 to /thank-you, or back to / with a notice)
	GET  /thank-you - Confirmation page
	GET  /admin     - All registrations, newest first

/admin has no access control.

Any other path returns 404; a wrong method on a known path returns 405.
*/
package router
