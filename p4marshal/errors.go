package p4marshal

import "fmt"

// FormatError describes malformed or truncated marshal input. Offset is the
// position of the offending byte relative to the start of the stream, which
// stays meaningful across record boundaries in concatenated streams.
type FormatError struct {
	Offset int64
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("p4marshal: %s at offset %d", e.Reason, e.Offset)
}

func errBadMarker(off int64, want, got byte) *FormatError {
	return &FormatError{
		Offset: off,
		Reason: fmt.Sprintf("expected marker %q, found %#02x", want, got),
	}
}

func errBadType(off int64, got byte) *FormatError {
	return &FormatError{
		Offset: off,
		Reason: fmt.Sprintf("unrecognized type marker %#02x", got),
	}
}

func errTruncated(off int64, what string) *FormatError {
	return &FormatError{
		Offset: off,
		Reason: "truncated input reading " + what,
	}
}
