package connection

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/constants"
	"github.com/goforce/goforce/pkg/logger"
	"github.com/goforce/goforce/pkg/models"
)

func testConfig() *Config {
	config := NewConfig("localhost:1666")
	config.Logger = logger.New(slog.NewTextHandler(io.Discard, nil))
	return config
}

func TestNewExecRequiresPort(t *testing.T) {
	_, err := NewExec(&Config{})
	assert.ErrorIs(t, err, constants.ErrNoPort)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("P4PORT", "ssl:p4.example.com:1666")
	t.Setenv("P4USER", "alice")
	t.Setenv("P4CLIENT", "alice-ws")

	config := FromEnv()
	assert.Equal(t, "ssl:p4.example.com:1666", config.Port)
	assert.Equal(t, "alice", config.User)
	assert.Equal(t, "alice-ws", config.Client)
	assert.Equal(t, "p4", config.Binary)
}

func TestGlobalArgs(t *testing.T) {
	config := testConfig()
	config.User = "alice"
	config.Client = "alice-ws"
	conn, err := NewExec(config)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"-G", "-p", "localhost:1666", "-u", "alice", "-c", "alice-ws"},
		conn.globalArgs(FormatMarshal))
	assert.Equal(t,
		[]string{"-Mj", "-ztag", "-p", "localhost:1666", "-u", "alice", "-c", "alice-ws"},
		conn.globalArgs(FormatJSON))
}

func TestGlobalArgsOmitsUnsetIdentity(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"-G", "-p", "localhost:1666"}, conn.globalArgs(FormatMarshal))
}

func TestRunRejectsStdinInJSONFormat(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	form := p4marshal.NewRecord()
	form.SetString("Description", "x")

	_, err = conn.Run(context.Background(), []string{"change", "-i"},
		WithStdin(form), WithFormat(FormatJSON))
	assert.ErrorIs(t, err, constants.ErrStdinNotInJSON)
}

func errorRecord(data string, severity models.MessageSeverity, generic models.MessageLevel) *p4marshal.Record {
	r := p4marshal.NewRecord()
	r.SetString("code", "error")
	r.SetInt("severity", int32(severity))
	r.SetInt("generic", int32(generic))
	r.SetString("data", data)
	return r
}

func TestGateRaisesCommandError(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	records := []*p4marshal.Record{
		errorRecord("//depot/nope - protected namespace - access denied.\n", models.SeverityFailed, models.LevelProtect),
	}

	err = conn.gate(records, []string{"-G", "sync"}, models.SeverityEmpty)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "//depot/nope - protected namespace - access denied.", cmdErr.Message)
	assert.Equal(t, []string{"-G", "sync"}, cmdErr.Command)
	assert.Equal(t, models.SeverityFailed, cmdErr.Severity)
	assert.Equal(t, models.LevelProtect, cmdErr.Level)
	assert.Equal(t, "error", cmdErr.Fields["code"])
}

func TestGateToleratesUpToMaxSeverity(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	records := []*p4marshal.Record{
		errorRecord("//depot/a.txt - file(s) up-to-date.\n", models.SeverityWarning, models.LevelEmpty),
	}

	assert.NoError(t, conn.gate(records, nil, models.SeverityWarning))
	assert.Error(t, conn.gate(records, nil, models.SeverityInfo))
}

func TestGateIgnoresDataRecords(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	stat := p4marshal.NewRecord()
	stat.SetString("code", "stat")
	info := p4marshal.NewRecord()
	info.SetString("code", "info")

	assert.NoError(t, conn.gate([]*p4marshal.Record{stat, info}, nil, models.SeverityEmpty))
}

func TestGateDetectsExpiredSession(t *testing.T) {
	conn, err := NewExec(testConfig())
	require.NoError(t, err)

	records := []*p4marshal.Record{
		errorRecord("Perforce password (P4PASSWD) invalid or unset.\n", models.SeverityFailed, models.LevelNone),
	}

	err = conn.gate(records, nil, models.SeverityEmpty)
	assert.ErrorIs(t, err, constants.ErrSessionExpired)
}

func TestRecordCode(t *testing.T) {
	r := p4marshal.NewRecord()
	r.SetString("code", "stat")
	assert.Equal(t, models.CodeStat, RecordCode(r))
}
