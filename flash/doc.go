// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flash implements single-use notices carried across one redirect.

# Cookie Format

A notice is stored in the "flash" cookie as

	base64url(kind "\n" message) "." base64url(HMAC-SHA256(secret, payload))

The secret is the configured SECRET_KEY. Signing keeps clients from
injecting arbitrary text into rendered pages.

# Usage

The handler that redirects sets the notice:

	flash.Set(w, cfg.SecretKey, models.NoticeError, models.MsgMissingFields)
	http.Redirect(w, r, "/", http.StatusSeeOther)

The page that renders next consumes it:

	notice, ok := flash.Pop(w, r, cfg.SecretKey)

Pop always expires the cookie, so a notice is shown at most once.
*/
package flash
