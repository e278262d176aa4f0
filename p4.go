package goforce

import (
	"context"
	"strconv"
	"strings"

	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/logger"
	"github.com/goforce/goforce/pkg/models"
)

// P4 is a Perforce client. It wraps a [connection.Connection] and exposes
// one method per p4 command, returning typed models instead of raw records.
type P4 struct {
	conn connection.Connection
	log  logger.Logger
}

// New spawns p4 subprocesses configured by config. It fails when the
// configuration cannot address a server.
func New(config *connection.Config) (*P4, error) {
	conn, err := connection.NewExec(config)
	if err != nil {
		return nil, err
	}
	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &P4{conn: conn, log: log}, nil
}

// FromConnection wraps an existing connection. A nil log discards client-side
// messages.
func FromConnection(conn connection.Connection, log logger.Logger) *P4 {
	if log == nil {
		log = logger.Discard()
	}
	return &P4{conn: conn, log: log}
}

// Login authenticates against the server. The password travels over the
// subprocess standard input, never the argument vector.
func (p *P4) Login(ctx context.Context, password string) error {
	return p.conn.Login(ctx, password)
}

// Run executes an arbitrary p4 command and returns its decoded records. It
// is the escape hatch for commands without a typed wrapper.
func (p *P4) Run(ctx context.Context, command []string, opts ...connection.RunOption) ([]*p4marshal.Record, error) {
	return p.conn.Run(ctx, command, opts...)
}

func onlyRecord(records []*p4marshal.Record, command []string) (*p4marshal.Record, error) {
	if len(records) == 0 {
		return nil, &connection.CommandError{Message: "no output", Command: command}
	}
	return records[0], nil
}

// splitFileData splits an error record's "<path> - <message>" data on the
// last separator, since depot paths may themselves contain " - ".
func splitFileData(data string) (path, message string) {
	if i := strings.LastIndex(data, " - "); i >= 0 {
		return strings.TrimSpace(data[:i]), strings.TrimSpace(data[i+3:])
	}
	return "", strings.TrimSpace(data)
}

// recordError turns a tolerated error record back into the failure the
// connection layer would have produced had it not been below the severity
// threshold.
func recordError(r *p4marshal.Record, command []string) *connection.CommandError {
	fields := r.Fields()
	severity, _ := strconv.Atoi(fields["severity"])
	level, _ := strconv.Atoi(fields["generic"])
	return &connection.CommandError{
		Message:  strings.TrimSpace(fields["data"]),
		Command:  command,
		Fields:   fields,
		Severity: models.MessageSeverity(severity),
		Level:    models.MessageLevel(level),
	}
}
