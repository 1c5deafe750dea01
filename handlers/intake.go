// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/danielhkuo/explore-registration/models"
)

// DateLayout is the canonical date_of_birth format
const DateLayout = "2006-01-02"

// dobLayout also accepts a month or day without its leading zero
const dobLayout = "2006-1-2"

// ErrValidation is returned when a required field is blank
var ErrValidation = errors.New("missing required fields")

// ValidationError lists the blank required fields by form name
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidator reports field errors using the form tag names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// NormalizeForm reads every intake field from submitted values.
// Missing fields default to "" ("0" for guests) and all values are trimmed.
// A field that is present but blank stays blank.
func NormalizeForm(values url.Values) models.RegistrationForm {
	get := func(name, def string) string {
		vs, ok := values[name]
		if !ok || len(vs) == 0 {
			return strings.TrimSpace(def)
		}
		return strings.TrimSpace(vs[0])
	}

	return models.RegistrationForm{
		FullName:    get("full_name", ""),
		Email:       get("email", ""),
		Phone:       get("phone", ""),
		DateOfBirth: get("date_of_birth", ""),

		AddressLine1: get("address_line1", ""),
		AddressLine2: get("address_line2", ""),
		City:         get("city", ""),
		State:        get("state", ""),
		PostalCode:   get("postal_code", ""),
		Country:      get("country", ""),

		School:         get("school", ""),
		Grade:          get("grade", ""),
		GPA:            get("gpa", ""),
		GraduationYear: get("graduation_year", ""),

		AcademicPlan:             get("academic_plan", ""),
		AnticipatedMajor:         get("anticipated_major", ""),
		AnticipatedStartSemester: get("anticipated_start_semester", ""),
		AnticipatedStartYear:     get("anticipated_start_year", ""),

		Guests:              get("guests", "0"),
		TshirtSize:          get("tshirt_size", ""),
		DietaryRestrictions: get("dietary_restrictions", ""),

		EmergencyContactName:         get("emergency_contact_name", ""),
		EmergencyContactPhone:        get("emergency_contact_phone", ""),
		EmergencyContactRelationship: get("emergency_contact_relationship", ""),

		GuardianName:  get("guardian_name", ""),
		GuardianEmail: get("guardian_email", ""),

		Interests:      get("interests", ""),
		Transportation: get("transportation", ""),
		// Checkbox convention: only "on" is checked
		FirstTimeAttendee: values.Get("first_time_attendee") == "on",
		HeardAboutEvent:   get("heard_about_event", ""),
		Notes:             get("notes", ""),
	}
}

// ValidateForm checks every required field is non-empty.
// The returned error wraps ErrValidation and names the blank fields.
func ValidateForm(v *validator.Validate, form models.RegistrationForm) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	verr := &ValidationError{Fields: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}

// ParseGuests converts the guest count. Malformed or negative values
// become 0 instead of failing the submission.
func ParseGuests(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseDateOfBirth parses YYYY-MM-DD, zero padding optional.
// Anything else is stored as absent.
func ParseDateOfBirth(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(dobLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

// BuildRegistration coerces a validated form into a record ready to insert
func BuildRegistration(form models.RegistrationForm) models.Registration {
	return models.Registration{
		FullName:    form.FullName,
		Email:       form.Email,
		Phone:       form.Phone,
		DateOfBirth: ParseDateOfBirth(form.DateOfBirth),

		AddressLine1: form.AddressLine1,
		AddressLine2: form.AddressLine2,
		City:         form.City,
		State:        form.State,
		PostalCode:   form.PostalCode,
		Country:      form.Country,

		School:         form.School,
		Grade:          form.Grade,
		GPA:            form.GPA,
		GraduationYear: form.GraduationYear,

		AcademicPlan:             form.AcademicPlan,
		AnticipatedMajor:         form.AnticipatedMajor,
		AnticipatedStartSemester: form.AnticipatedStartSemester,
		AnticipatedStartYear:     form.AnticipatedStartYear,

		Guests:              ParseGuests(form.Guests),
		TshirtSize:          form.TshirtSize,
		DietaryRestrictions: form.DietaryRestrictions,

		EmergencyContactName:         form.EmergencyContactName,
		EmergencyContactPhone:        form.EmergencyContactPhone,
		EmergencyContactRelationship: form.EmergencyContactRelationship,

		GuardianName:  form.GuardianName,
		GuardianEmail: form.GuardianEmail,

		Interests:         form.Interests,
		Transportation:    form.Transportation,
		FirstTimeAttendee: form.FirstTimeAttendee,
		HeardAboutEvent:   form.HeardAboutEvent,
		Notes:             form.Notes,
	}
}

// Submit normalizes, validates and stores one registration.
// On validation failure nothing is written and the error wraps ErrValidation.
// Storage errors are returned as-is for the caller to surface.
func Submit(ctx context.Context, db *gorm.DB, v *validator.Validate, values url.Values) (*models.Registration, error) {
	form := NormalizeForm(values)
	if err := ValidateForm(v, form); err != nil {
		return nil, err
	}

	reg := BuildRegistration(form)
	// gorm wraps a single Create in its own transaction
	if err := db.WithContext(ctx).Create(&reg).Error; err != nil {
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}

	return &reg, nil
}
