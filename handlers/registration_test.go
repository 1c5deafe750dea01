// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/models"
	"github.com/danielhkuo/explore-registration/testutil"
	"github.com/danielhkuo/explore-registration/views"
)

func newTestHandler(t *testing.T) (*RegistrationHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	v, err := views.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return NewRegistrationHandler(db, testutil.GetTestConfig(), v), db
}

func lastRegistration(t *testing.T, db *gorm.DB) models.Registration {
	t.Helper()

	var reg models.Registration
	if err := db.Order("id DESC").First(&reg).Error; err != nil {
		t.Fatalf("Failed to load registration: %v", err)
	}
	return reg
}

func TestSubmitHandler_Success(t *testing.T) {
	handler, db := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Submit(w, testutil.MakeFormRequest("/", testutil.ValidForm()))

	testutil.AssertRedirect(t, w, "/thank-you")
	if n := testutil.CountRegistrations(t, db); n != 1 {
		t.Fatalf("Expected exactly 1 registration, got %d", n)
	}

	reg := lastRegistration(t, db)
	if reg.FullName != "Grace Hopper" || reg.Email != "grace@example.com" {
		t.Errorf("Unexpected identity fields: %q %q", reg.FullName, reg.Email)
	}
	if reg.Guests != 2 {
		t.Errorf("Expected 2 guests, got %d", reg.Guests)
	}
	if reg.DateOfBirth == nil || reg.DateOfBirth.Format(DateLayout) != "2008-05-02" {
		t.Errorf("Expected date of birth 2008-05-02, got %v", reg.DateOfBirth)
	}
	if !reg.FirstTimeAttendee {
		t.Error("Expected first_time_attendee true")
	}
	if reg.GPA != "3.9" || reg.GraduationYear != "2026" {
		t.Errorf("Expected GPA and graduation year kept as text, got %q %q", reg.GPA, reg.GraduationYear)
	}
	if time.Since(reg.CreatedAt) > time.Minute {
		t.Errorf("Expected created_at near now, got %v", reg.CreatedAt)
	}

	if c := testutil.FlashCookie(w); c == nil {
		t.Error("Expected a success notice cookie")
	}
}

func TestSubmitHandler_MissingRequiredField(t *testing.T) {
	for _, field := range testutil.RequiredFields {
		t.Run(field, func(t *testing.T) {
			handler, db := newTestHandler(t)

			form := testutil.ValidForm()
			form.Set(field, "")

			w := httptest.NewRecorder()
			handler.Submit(w, testutil.MakeFormRequest("/", form))

			testutil.AssertRedirect(t, w, "/")
			if n := testutil.CountRegistrations(t, db); n != 0 {
				t.Errorf("Expected no rows persisted, got %d", n)
			}
			if c := testutil.FlashCookie(w); c == nil {
				t.Error("Expected an error notice cookie")
			}
		})
	}
}

func TestSubmitHandler_Coercion(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(f map[string][]string)
		wantGuests    int
		wantDOB       string
		wantFirstTime bool
	}{
		{
			name:          "numeric guests",
			mutate:        func(f map[string][]string) { f["guests"] = []string{"3"} },
			wantGuests:    3,
			wantDOB:       "2008-05-02",
			wantFirstTime: true,
		},
		{
			name:          "malformed guests",
			mutate:        func(f map[string][]string) { f["guests"] = []string{"abc"} },
			wantGuests:    0,
			wantDOB:       "2008-05-02",
			wantFirstTime: true,
		},
		{
			name:          "absent guests",
			mutate:        func(f map[string][]string) { delete(f, "guests") },
			wantGuests:    0,
			wantDOB:       "2008-05-02",
			wantFirstTime: true,
		},
		{
			name:          "malformed date of birth",
			mutate:        func(f map[string][]string) { f["date_of_birth"] = []string{"not-a-date"} },
			wantGuests:    2,
			wantDOB:       "",
			wantFirstTime: true,
		},
		{
			name:          "checkbox absent",
			mutate:        func(f map[string][]string) { delete(f, "first_time_attendee") },
			wantGuests:    2,
			wantDOB:       "2008-05-02",
			wantFirstTime: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, db := newTestHandler(t)

			form := testutil.ValidForm()
			tc.mutate(form)

			w := httptest.NewRecorder()
			handler.Submit(w, testutil.MakeFormRequest("/", form))
			testutil.AssertRedirect(t, w, "/thank-you")

			reg := lastRegistration(t, db)
			if reg.Guests != tc.wantGuests {
				t.Errorf("Expected %d guests, got %d", tc.wantGuests, reg.Guests)
			}

			gotDOB := ""
			if reg.DateOfBirth != nil {
				gotDOB = reg.DateOfBirth.Format(DateLayout)
			}
			if gotDOB != tc.wantDOB {
				t.Errorf("Expected date of birth %q, got %q", tc.wantDOB, gotDOB)
			}

			if reg.FirstTimeAttendee != tc.wantFirstTime {
				t.Errorf("Expected first_time_attendee %v, got %v", tc.wantFirstTime, reg.FirstTimeAttendee)
			}
		})
	}
}

func TestSubmitHandler_StorageFailure(t *testing.T) {
	handler, db := newTestHandler(t)
	if err := db.Migrator().DropTable("registrations"); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	handler.Submit(w, testutil.MakeFormRequest("/", testutil.ValidForm()))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if c := testutil.FlashCookie(w); c != nil {
		t.Error("Expected no notice on storage failure")
	}
}

func TestNoticeShownOnce(t *testing.T) {
	handler, _ := newTestHandler(t)

	form := testutil.ValidForm()
	form.Set("email", "")

	w := httptest.NewRecorder()
	handler.Submit(w, testutil.MakeFormRequest("/", form))
	cookie := testutil.FlashCookie(w)
	if cookie == nil {
		t.Fatal("Expected notice cookie")
	}

	// First render shows the notice and clears it
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.RegisterForm(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), models.MsgMissingFields) {
		t.Error("Expected error notice on the intake form")
	}
	if testutil.FlashCookie(w) != nil {
		t.Error("Expected notice cookie to be cleared")
	}

	// A render without the cookie shows nothing
	w = httptest.NewRecorder()
	handler.RegisterForm(w, httptest.NewRequest("GET", "/", nil))
	if strings.Contains(w.Body.String(), models.MsgMissingFields) {
		t.Error("Notice must not be shown twice")
	}
}

func TestThankYou_ShowsSuccessNotice(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Submit(w, testutil.MakeFormRequest("/", testutil.ValidForm()))

	req := httptest.NewRequest("GET", "/thank-you", nil)
	req.AddCookie(testutil.FlashCookie(w))
	w = httptest.NewRecorder()
	handler.ThankYou(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), models.MsgRegistered) {
		t.Error("Expected success notice on confirmation page")
	}
}

func TestAdmin_NewestFirst(t *testing.T) {
	handler, db := newTestHandler(t)

	names := []string{"Alpha Attendee", "Bravo Attendee", "Charlie Attendee"}
	for _, name := range names {
		form := testutil.ValidForm()
		form.Set("full_name", name)

		w := httptest.NewRecorder()
		handler.Submit(w, testutil.MakeFormRequest("/", form))
		testutil.AssertRedirect(t, w, "/thank-you")
	}

	regs, err := ListRegistrations(t.Context(), db)
	if err != nil {
		t.Fatalf("ListRegistrations failed: %v", err)
	}
	if len(regs) != 3 {
		t.Fatalf("Expected 3 registrations, got %d", len(regs))
	}
	for i, want := range []string{"Charlie Attendee", "Bravo Attendee", "Alpha Attendee"} {
		if regs[i].FullName != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, regs[i].FullName)
		}
	}
	for i := 1; i < len(regs); i++ {
		if regs[i].CreatedAt.After(regs[i-1].CreatedAt) {
			t.Errorf("Registrations not ordered by created_at desc at %d", i)
		}
	}

	w := httptest.NewRecorder()
	handler.Admin(w, httptest.NewRequest("GET", "/admin", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	c, b, a := strings.Index(body, "Charlie Attendee"), strings.Index(body, "Bravo Attendee"), strings.Index(body, "Alpha Attendee")
	if c < 0 || b < 0 || a < 0 {
		t.Fatal("Expected all three registrations in the admin page")
	}
	if !(c < b && b < a) {
		t.Error("Expected admin table ordered newest first")
	}
	if !strings.Contains(body, "3 total") {
		t.Error("Expected registration count")
	}
}

func TestAdmin_ReadOnly(t *testing.T) {
	handler, db := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Submit(w, testutil.MakeFormRequest("/", testutil.ValidForm()))
	before := lastRegistration(t, db)

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		handler.Admin(w, httptest.NewRequest("GET", "/admin", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	after := lastRegistration(t, db)
	if testutil.CountRegistrations(t, db) != 1 || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("Listing must not change stored registrations")
	}
}
