// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil holds shared helpers for handler and router tests:
// a throwaway SQLite database, a complete valid submission, and
// response assertions.
package testutil
