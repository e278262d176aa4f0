// Package connection spawns the p4 command-line client and turns its tagged
// output into decoded records. It owns process lifecycle, the stdin/stdout
// codec plumbing and the classification of server-reported errors; it knows
// nothing about the shape of individual commands.
package connection

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/models"
)

// Connection executes p4 commands. Implementations are safe for sequential
// use; concurrent command dispatch is not part of the contract.
type Connection interface {
	// Run executes one p4 command and returns its decoded output records.
	Run(ctx context.Context, command []string, opts ...RunOption) ([]*p4marshal.Record, error)

	// Login authenticates against the server with the given password.
	Login(ctx context.Context, password string) error
}

// RunSettings is the resolved set of per-call options.
type RunSettings struct {
	// Stdin, when non-nil, is written to p4 standard input as a marshaled
	// spec form.
	Stdin *p4marshal.Record

	// MaxSeverity is the highest error-record severity tolerated in the
	// output before the call fails.
	MaxSeverity models.MessageSeverity

	Format Format
}

// RunOption adjusts a single Run call.
type RunOption func(*RunSettings)

// ApplySettings resolves options against the given defaults. Connection
// implementations and test doubles share it so options mean the same thing
// everywhere.
func ApplySettings(defaults RunSettings, opts []RunOption) RunSettings {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithStdin writes the record to p4 standard input as a marshaled spec form,
// the `-i` convention. Only supported with FormatMarshal.
func WithStdin(r *p4marshal.Record) RunOption {
	return func(rs *RunSettings) { rs.Stdin = r }
}

// WithMaxSeverity tolerates error records up to the given severity instead
// of failing the call. The default tolerates none.
func WithMaxSeverity(s models.MessageSeverity) RunOption {
	return func(rs *RunSettings) { rs.MaxSeverity = s }
}

// WithFormat overrides the configured output format for this call.
func WithFormat(f Format) RunOption {
	return func(rs *RunSettings) { rs.Format = f }
}

// CommandError is an operational failure reported by the p4 client or
// server: the stream decoded fine, but a record in it carried an error, or
// the process wrote to standard error. It is never used for decode failures;
// those surface as *p4marshal.FormatError.
type CommandError struct {
	// Message is the server's error text, trimmed.
	Message string

	// Command is the full argument vector that was executed.
	Command []string

	// Fields is the raw record that reported the error, when there was
	// one; nil for bare stderr output.
	Fields map[string]string

	Severity models.MessageSeverity
	Level    models.MessageLevel
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("p4: %s", e.Message)
}

// RecordCode returns the "code" field of a decoded record.
func RecordCode(r *p4marshal.Record) models.Code {
	return models.Code(r.Get("code").Text())
}

func recordInt(r *p4marshal.Record, key string) int {
	v, ok := r.Lookup(key)
	if !ok {
		return 0
	}
	if v.Kind() == p4marshal.KindInt {
		return int(v.Int())
	}
	n, _ := strconv.Atoi(v.Text())
	return n
}
