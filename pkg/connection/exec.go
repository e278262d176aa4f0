package connection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/goforce/goforce/internal/codec"
	"github.com/goforce/goforce/p4json"
	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/constants"
	"github.com/goforce/goforce/pkg/logger"
	"github.com/goforce/goforce/pkg/models"
)

// expiredMessage is the exact error text the server sends when a ticket or
// session has lapsed.
const expiredMessage = "Perforce password (P4PASSWD) invalid or unset."

// ExecConnection runs p4 commands by spawning the client binary, one process
// per call. It holds no state between calls beyond its configuration.
type ExecConnection struct {
	config *Config
}

var _ Connection = (*ExecConnection)(nil)

// NewExec returns a Connection spawning the binary named in config. An
// unset binary, logger or codec falls back to the NewConfig default.
func NewExec(config *Config) (*ExecConnection, error) {
	if config.Port == "" {
		return nil, constants.ErrNoPort
	}
	if config.Binary == "" {
		config.Binary = "p4"
	}
	if config.Logger == nil {
		config.Logger = logger.Discard()
	}
	mcodec := p4marshal.New()
	if config.Marshaler == nil {
		config.Marshaler = mcodec
	}
	if config.Unmarshaler == nil {
		config.Unmarshaler = mcodec
	}
	if config.JSONUnmarshaler == nil {
		config.JSONUnmarshaler = p4json.New()
	}
	return &ExecConnection{config: config}, nil
}

// Run executes one p4 command in tagged output mode and returns its decoded
// records. Error records above the call's severity threshold abort the call
// with a *CommandError; an expired session aborts with ErrSessionExpired.
func (c *ExecConnection) Run(ctx context.Context, command []string, opts ...RunOption) ([]*p4marshal.Record, error) {
	rs := ApplySettings(RunSettings{Format: c.config.Format}, opts)

	if rs.Stdin != nil && rs.Format == FormatJSON {
		return nil, constants.ErrStdinNotInJSON
	}

	args := c.globalArgs(rs.Format)
	args = append(args, command...)
	c.config.Logger.Debug("running p4", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.config.Binary, args...)
	if rs.Stdin != nil {
		form, err := c.config.Marshaler.Marshal(rs.Stdin)
		if err != nil {
			return nil, err
		}
		cmd.Stdin = bytes.NewReader(form)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// A non-zero exit with diagnostics in the output stream is how p4
		// reports command failures; those are classified below. Anything
		// else (binary missing, signal) surfaces as is.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %s: %w", c.config.Binary, err)
		}
	}
	if stderr.Len() > 0 {
		return nil, &CommandError{
			Message: strings.TrimSpace(stderr.String()),
			Command: args,
		}
	}

	records, err := c.unmarshaler(rs.Format).Unmarshal(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	return records, c.gate(records, args, rs.MaxSeverity)
}

// Login authenticates against the server, feeding the password to
// `p4 login` over standard input. The command runs outside tagged mode; any
// stderr output means the login was rejected.
func (c *ExecConnection) Login(ctx context.Context, password string) error {
	args := []string{"-p", c.config.Port}
	if c.config.User != "" {
		args = append(args, "-u", c.config.User)
	}
	args = append(args, "login")
	c.config.Logger.Debug("running p4", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.config.Binary, args...)
	cmd.Stdin = strings.NewReader(password)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("running %s: %w", c.config.Binary, err)
		}
	}
	if stderr.Len() > 0 {
		return fmt.Errorf("%w: %s", constants.ErrAuthentication, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// globalArgs builds the argument prefix shared by every tagged command.
func (c *ExecConnection) globalArgs(format Format) []string {
	var args []string
	if format == FormatJSON {
		args = append(args, "-Mj", "-ztag")
	} else {
		args = append(args, "-G")
	}
	args = append(args, "-p", c.config.Port)
	if c.config.User != "" {
		args = append(args, "-u", c.config.User)
	}
	if c.config.Client != "" {
		args = append(args, "-c", c.config.Client)
	}
	return args
}

func (c *ExecConnection) unmarshaler(format Format) codec.Unmarshaler {
	if format == FormatJSON {
		return c.config.JSONUnmarshaler
	}
	return c.config.Unmarshaler
}

// gate inspects decoded records for server-reported errors above the
// tolerated severity. Tolerated error records stay in the result for the
// caller to interpret.
func (c *ExecConnection) gate(records []*p4marshal.Record, args []string, max models.MessageSeverity) error {
	for _, r := range records {
		if RecordCode(r) != models.CodeError {
			continue
		}
		severity := models.MessageSeverity(recordInt(r, "severity"))
		if severity <= max {
			continue
		}

		message := strings.TrimSpace(r.Get("data").Text())
		if message == expiredMessage {
			return constants.ErrSessionExpired
		}
		return &CommandError{
			Message:  message,
			Command:  args,
			Fields:   r.Fields(),
			Severity: severity,
			Level:    models.MessageLevel(recordInt(r, "generic")),
		}
	}
	return nil
}
