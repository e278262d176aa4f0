package goforce

import (
	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/constants"
)

// Well-known failures, re-exported from [pkg/constants] so callers can match
// them with errors.Is without an extra import.
var (
	// ErrUserNotFound means the requested user spec has never been saved.
	ErrUserNotFound = constants.ErrUserNotFound

	// ErrClientNotFound means the requested client spec has never been
	// saved.
	ErrClientNotFound = constants.ErrClientNotFound

	// ErrChangeUnknown means the server does not know the changelist
	// number.
	ErrChangeUnknown = constants.ErrChangeUnknown

	// ErrSessionExpired means the ticket expired and Login is required.
	ErrSessionExpired = constants.ErrSessionExpired

	// ErrAuthentication means Login was rejected.
	ErrAuthentication = constants.ErrAuthentication
)

// CommandError is the operational failure type; see
// [pkg/connection.CommandError].
type CommandError = connection.CommandError
