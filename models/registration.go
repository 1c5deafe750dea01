// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Notice kinds
const (
	NoticeError   = "error"
	NoticeSuccess = "success"
)

// User-facing notice text
const (
	MsgMissingFields = "Please complete all required fields."
	MsgRegistered    = "Registration received! We look forward to seeing you."
)

// Registration is one persisted attendee submission.
// Rows are inserted once and never updated.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"<-:create;not null;index" json:"created_at"`

	// Basic information
	FullName    string     `gorm:"size:120;not null" json:"full_name"`
	Email       string     `gorm:"size:120;not null" json:"email"`
	Phone       string     `gorm:"size:40" json:"phone"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	// Address
	AddressLine1 string `gorm:"size:200" json:"address_line1"`
	AddressLine2 string `gorm:"size:200" json:"address_line2"`
	City         string `gorm:"size:120" json:"city"`
	State        string `gorm:"size:80" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`
	Country      string `gorm:"size:80" json:"country"`

	// School information
	School         string `gorm:"size:160" json:"school"`
	Grade          string `gorm:"size:40" json:"grade"`
	GPA            string `gorm:"column:gpa;size:10" json:"gpa"`
	GraduationYear string `gorm:"size:10" json:"graduation_year"`

	// Academic plans
	AcademicPlan             string `gorm:"type:text" json:"academic_plan"`
	AnticipatedMajor         string `gorm:"size:160" json:"anticipated_major"`
	AnticipatedStartSemester string `gorm:"size:40" json:"anticipated_start_semester"` // Fall, Spring, Summer
	AnticipatedStartYear     string `gorm:"size:10" json:"anticipated_start_year"`

	// Event details
	Guests              int    `gorm:"not null;default:0" json:"guests"`
	TshirtSize          string `gorm:"size:10" json:"tshirt_size"`
	DietaryRestrictions string `gorm:"type:text" json:"dietary_restrictions"`

	// Emergency contact
	EmergencyContactName         string `gorm:"size:120" json:"emergency_contact_name"`
	EmergencyContactPhone        string `gorm:"size:40" json:"emergency_contact_phone"`
	EmergencyContactRelationship string `gorm:"size:60" json:"emergency_contact_relationship"`

	// Additional information.
	// FirstTimeAttendee carries no column default: gorm omits zero values
	// on insert for defaulted columns, which would turn false into true.
	Interests         string `gorm:"type:text" json:"interests"`
	Transportation    string `gorm:"size:100" json:"transportation"`
	FirstTimeAttendee bool   `gorm:"not null" json:"first_time_attendee"`
	HeardAboutEvent   string `gorm:"size:200" json:"heard_about_event"`
	Notes             string `gorm:"type:text" json:"notes"`

	// Parent/guardian
	GuardianName  string `gorm:"size:120" json:"guardian_name"`
	GuardianEmail string `gorm:"size:120" json:"guardian_email"`
}

// RegistrationForm is the trimmed, uncoerced intake form.
// Every text field is required; the form tag names the HTML input.
type RegistrationForm struct {
	FullName    string `form:"full_name" validate:"required"`
	Email       string `form:"email" validate:"required"`
	Phone       string `form:"phone" validate:"required"`
	DateOfBirth string `form:"date_of_birth" validate:"required"`

	AddressLine1 string `form:"address_line1" validate:"required"`
	AddressLine2 string `form:"address_line2" validate:"required"`
	City         string `form:"city" validate:"required"`
	State        string `form:"state" validate:"required"`
	PostalCode   string `form:"postal_code" validate:"required"`
	Country      string `form:"country" validate:"required"`

	School         string `form:"school" validate:"required"`
	Grade          string `form:"grade" validate:"required"`
	GPA            string `form:"gpa" validate:"required"`
	GraduationYear string `form:"graduation_year" validate:"required"`

	AcademicPlan             string `form:"academic_plan" validate:"required"`
	AnticipatedMajor         string `form:"anticipated_major" validate:"required"`
	AnticipatedStartSemester string `form:"anticipated_start_semester" validate:"required"`
	AnticipatedStartYear     string `form:"anticipated_start_year" validate:"required"`

	Guests              string `form:"guests" validate:"required"`
	TshirtSize          string `form:"tshirt_size" validate:"required"`
	DietaryRestrictions string `form:"dietary_restrictions" validate:"required"`

	EmergencyContactName         string `form:"emergency_contact_name" validate:"required"`
	EmergencyContactPhone        string `form:"emergency_contact_phone" validate:"required"`
	EmergencyContactRelationship string `form:"emergency_contact_relationship" validate:"required"`

	GuardianName  string `form:"guardian_name" validate:"required"`
	GuardianEmail string `form:"guardian_email" validate:"required"`

	Interests         string `form:"interests" validate:"required"`
	Transportation    string `form:"transportation" validate:"required"`
	FirstTimeAttendee bool   `form:"first_time_attendee"`
	HeardAboutEvent   string `form:"heard_about_event" validate:"required"`
	Notes             string `form:"notes" validate:"required"`
}

// Notice is a single-use message shown on the next rendered page
type Notice struct {
	Kind    string
	Message string
}
