// Package constants holds sentinel errors shared across the module.
package constants

import "errors"

// Errors reported after inspecting decoded p4 output. They describe
// conditions the server raised, never a failure to decode its stream.
var (
	ErrUserNotFound   = errors.New("user does not exist")
	ErrClientNotFound = errors.New("client workspace does not exist")
	ErrChangeUnknown  = errors.New("changelist unknown")
	ErrSessionExpired = errors.New("perforce session expired, password is required")
	ErrAuthentication = errors.New("perforce login failed")
	ErrMissingField   = errors.New("required field missing from p4 output")
)

// Configuration errors.
var (
	ErrNoPort         = errors.New("p4 port not set")
	ErrStdinNotInJSON = errors.New("spec forms on standard input require the marshal format")
)
