package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionInfo(t *testing.T) {
	a, err := ParseActionInfo(map[string]string{
		"code":       "stat",
		"action":     "add",
		"clientFile": "/home/alice/p4/main/a.txt",
		"depotFile":  "//depot/main/a.txt",
		"type":       "text",
		"workRev":    "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "add", a.Action)
	assert.Equal(t, "//depot/main/a.txt", a.DepotFile)
	assert.Equal(t, "text", a.FileType)
	assert.Equal(t, 1, a.WorkRev)
}

func TestParseActionMessage(t *testing.T) {
	m, err := ParseActionMessage(map[string]string{
		"code":  "info",
		"data":  "/home/alice/p4/main/a.txt - empty, assuming text.",
		"level": "0",
	})
	require.NoError(t, err)

	assert.Equal(t, "/home/alice/p4/main/a.txt", m.Path)
	assert.Equal(t, "empty, assuming text.", m.Message)
	assert.Equal(t, LevelNone, m.Level)
}

func TestParseActionMessagePathWithSeparator(t *testing.T) {
	m, err := ParseActionMessage(map[string]string{
		"data":  "/tmp/a - b/c.txt - can't add existing file",
		"level": "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/a - b/c.txt", m.Path)
	assert.Equal(t, "can't add existing file", m.Message)
	assert.Equal(t, LevelUnknown, m.Level)
}

func TestParseActionMessageNoSeparator(t *testing.T) {
	m, err := ParseActionMessage(map[string]string{
		"data":  "some server feedback",
		"level": "0",
	})
	require.NoError(t, err)

	assert.Empty(t, m.Path)
	assert.Equal(t, "some server feedback", m.Message)
}
