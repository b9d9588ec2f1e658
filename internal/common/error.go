// Package common defines shared constants and sentinel errors used across
// the CLI and agent layers of resumefill. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (empty required input, malformed import, bad status).
	ErrValidation = errors.New("validation error")

	// Transport errors. ErrNoReceiver means the message channel has no
	// listener on the other side (agent not running, page script absent);
	// callers are expected to fall back to a degraded path rather than fail.
	ErrTransport  = errors.New("transport error")
	ErrNoReceiver = errors.New("no receiver")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
