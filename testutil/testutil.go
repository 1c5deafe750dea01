// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/cliparse"
	"github.com/danielhkuo/explore-registration/db"
	"github.com/danielhkuo/explore-registration/flash"
	"github.com/danielhkuo/explore-registration/models"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "registrations_test.db")

	gdb, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close(gdb) })

	if err := db.CreateSchema(gdb); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return gdb
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Command:      cliparse.CommandServe,
		Port:         5000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "registrations_test.db",
		SecretKey:    "test-secret-key",
	}
}

// RequiredFields lists every form field that must be non-empty
var RequiredFields = []string{
	"full_name", "email", "phone", "date_of_birth",
	"address_line1", "address_line2", "city", "state", "postal_code", "country",
	"school", "grade", "gpa", "graduation_year",
	"anticipated_major", "anticipated_start_semester", "anticipated_start_year", "academic_plan",
	"guests", "tshirt_size", "dietary_restrictions",
	"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship",
	"interests", "transportation", "heard_about_event", "notes",
	"guardian_name", "guardian_email",
}

// ValidForm returns a complete submission with every required field filled
func ValidForm() url.Values {
	return url.Values{
		"full_name":                      {"Grace Hopper"},
		"email":                          {"grace@example.com"},
		"phone":                          {"314-555-0100"},
		"date_of_birth":                  {"2008-05-02"},
		"address_line1":                  {"1 University Blvd"},
		"address_line2":                  {"Apt 2"},
		"city":                           {"St. Louis"},
		"state":                          {"MO"},
		"postal_code":                    {"63121"},
		"country":                        {"USA"},
		"school":                         {"Central High"},
		"grade":                          {"11"},
		"gpa":                            {"3.9"},
		"graduation_year":                {"2026"},
		"academic_plan":                  {"Study computer engineering"},
		"anticipated_major":              {"Computer Engineering"},
		"anticipated_start_semester":     {"Fall"},
		"anticipated_start_year":         {"2026"},
		"guests":                         {"2"},
		"tshirt_size":                    {"M"},
		"dietary_restrictions":           {"None"},
		"emergency_contact_name":         {"Walter Hopper"},
		"emergency_contact_phone":        {"314-555-0101"},
		"emergency_contact_relationship": {"Father"},
		"guardian_name":                  {"Mary Hopper"},
		"guardian_email":                 {"mary@example.com"},
		"interests":                      {"Electrical, Mechanical"},
		"transportation":                 {"Car"},
		"first_time_attendee":            {"on"},
		"heard_about_event":              {"Teacher"},
		"notes":                          {"Looking forward to it"},
	}
}

// MakeFormRequest creates a URL-encoded POST request
func MakeFormRequest(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// CountRegistrations returns the number of stored registrations
func CountRegistrations(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := gdb.Model(&models.Registration{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count registrations: %v", err)
	}
	return count
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// FlashCookie returns the notice cookie set by a response, if any
func FlashCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge >= 0 {
			return c
		}
	}
	return nil
}
