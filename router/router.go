// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/cliparse"
	"github.com/danielhkuo/explore-registration/handlers"
	"github.com/danielhkuo/explore-registration/middleware"
	"github.com/danielhkuo/explore-registration/views"
)

func NewRouter(db *gorm.DB, cfg cliparse.Config, v *views.Views) *http.ServeMux {
	mux := http.NewServeMux()

	regHandler := handlers.NewRegistrationHandler(db, cfg, v)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Intake form (public)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(regHandler.RegisterForm))
	mux.HandleFunc("POST /{$}", middleware.WithLogging(regHandler.Submit))
	mux.HandleFunc("GET /thank-you", middleware.WithLogging(regHandler.ThankYou))

	// Listing (unauthenticated)
	mux.HandleFunc("GET /admin", middleware.WithLogging(regHandler.Admin))

	return mux
}
