// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the registration record, the intake form shape, and
the notice type.

# Storage Mapping

Registration is the gorm model for the registrations table. ID is assigned
by the database; CreatedAt is set by gorm at insert time and is create-only
(`<-:create`). Column sizes follow the form's field limits; long free-text
answers use unbounded text columns.

# Intake Form

RegistrationForm holds the trimmed string values exactly as submitted.
Every text field carries `validate:"required"` for go-playground/validator.
FirstTimeAttendee is already coerced (checkbox "on" means true) and is the
only unchecked field.

# Notices

	NoticeError   = "error"
	NoticeSuccess = "success"

MsgMissingFields and MsgRegistered are the two notice texts.
*/
package models
