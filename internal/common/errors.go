// Package common defines shared constants and sentinel errors used across
// client and server layers of custkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Gateway-level errors.
	ErrorNotRemovable = errors.New("record cannot be removed")
	ErrorValidation   = errors.New("validation error")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
