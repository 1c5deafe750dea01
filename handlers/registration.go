// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/cliparse"
	"github.com/danielhkuo/explore-registration/flash"
	"github.com/danielhkuo/explore-registration/middleware"
	"github.com/danielhkuo/explore-registration/models"
	"github.com/danielhkuo/explore-registration/views"
)

type RegistrationHandler struct {
	db       *gorm.DB
	cfg      cliparse.Config
	views    *views.Views
	validate *validator.Validate
}

func NewRegistrationHandler(db *gorm.DB, cfg cliparse.Config, v *views.Views) *RegistrationHandler {
	return &RegistrationHandler{db: db, cfg: cfg, views: v, validate: newValidator()}
}

// RegisterForm handles GET /
func (h *RegistrationHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageRegister, views.PageData{Title: "Register"})
}

// Submit handles POST /
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	reg, err := Submit(r.Context(), h.db, h.validate, r.PostForm)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			slog.Warn("registration rejected", "missing", verr.Fields)
			flash.Set(w, h.cfg.SecretKey, models.NoticeError, models.MsgMissingFields)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		slog.Error("failed to store registration", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	slog.Info("registration stored", "registration_id", reg.ID)

	flash.Set(w, h.cfg.SecretKey, models.NoticeSuccess, models.MsgRegistered)
	http.Redirect(w, r, "/thank-you", http.StatusSeeOther)
}

// ThankYou handles GET /thank-you
func (h *RegistrationHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageThankYou, views.PageData{Title: "Thank You"})
}

// Admin handles GET /admin
// No access control: anyone who can reach the server can read every row.
func (h *RegistrationHandler) Admin(w http.ResponseWriter, r *http.Request) {
	regs, err := ListRegistrations(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to query registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.render(w, r, views.PageAdmin, views.PageData{Title: "Registrations", Registrations: regs})
}

// render consumes any pending notice and writes the page
func (h *RegistrationHandler) render(w http.ResponseWriter, r *http.Request, page string, data views.PageData) {
	if n, ok := flash.Pop(w, r, h.cfg.SecretKey); ok {
		data.Notice = &n
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
	}
}
