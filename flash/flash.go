// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/danielhkuo/explore-registration/models"
)

// CookieName is the cookie carrying the pending notice
const CookieName = "flash"

var (
	ErrInvalidSignature = errors.New("invalid notice signature")
	ErrMalformed        = errors.New("malformed notice")
)

// Sign creates an HMAC-signed cookie value for a notice.
// The payload is kind and message joined by a newline, URL-safe base64 without padding.
func Sign(n models.Notice, secret string) string {
	payload := encode([]byte(n.Kind + "\n" + n.Message))
	return payload + "." + signature(payload, secret)
}

// Verify checks the signature of a cookie value and decodes the notice
func Verify(value, secret string) (models.Notice, error) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok {
		return models.Notice{}, ErrMalformed
	}

	expected := signature(payload, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return models.Notice{}, ErrInvalidSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return models.Notice{}, ErrMalformed
	}

	kind, message, ok := strings.Cut(string(raw), "\n")
	if !ok {
		return models.Notice{}, ErrMalformed
	}

	return models.Notice{Kind: kind, Message: message}, nil
}

// Set attaches a notice to the response. It is read back by the next Pop.
func Set(w http.ResponseWriter, secret, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    Sign(models.Notice{Kind: kind, Message: message}, secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and clears it.
// A cookie that fails verification is cleared and ignored.
func Pop(w http.ResponseWriter, r *http.Request, secret string) (models.Notice, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return models.Notice{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	n, err := Verify(c.Value, secret)
	if err != nil {
		return models.Notice{}, false
	}
	return n, true
}

func signature(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return encode(h.Sum(nil))
}

func encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
