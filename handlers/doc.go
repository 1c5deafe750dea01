// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the registration intake and listing logic and
its HTTP handlers.

# Handler

RegistrationHandler holds the gorm handle, config, parsed views and a
validator. It is built once at startup:

	h := handlers.NewRegistrationHandler(gdb, cfg, v)

	GET  /          → RegisterForm
	POST /          → Submit
	GET  /thank-you → ThankYou
	GET  /admin     → Admin

# Intake

Submit runs four steps over the posted values:

	form := NormalizeForm(values)   // defaults, trim, checkbox
	err := ValidateForm(v, form)    // every text field required
	reg := BuildRegistration(form)  // coerce guests and date of birth
	db.Create(&reg)

A blank required field returns a *ValidationError (wrapping ErrValidation)
and nothing is written. A malformed guest count becomes 0 and a malformed
date of birth is stored as NULL (YYYY-M-D without zero padding is
accepted); neither rejects the submission. This
asymmetry is kept for compatibility with existing data.

# Listing

	regs, err := ListRegistrations(ctx, db)

Orders by created_at descending, then id descending.
*/
package handlers
