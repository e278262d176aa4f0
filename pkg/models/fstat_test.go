package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFStat(t *testing.T) {
	f, err := ParseFStat(map[string]string{
		"code":        "stat",
		"depotFile":   "//depot/main/a.txt",
		"clientFile":  "/home/alice/p4/main/a.txt",
		"isMapped":    "",
		"haveRev":     "3",
		"headAction":  "edit",
		"headChange":  "42",
		"headRev":     "4",
		"headType":    "text",
		"headTime":    "1709308953",
		"headModTime": "1709308000",
	})
	require.NoError(t, err)

	assert.True(t, f.IsMapped)
	require.NotNil(t, f.HaveRev)
	assert.Equal(t, 3, *f.HaveRev)
	require.NotNil(t, f.Head)
	assert.Equal(t, ActionEdit, f.Head.Action)
	assert.Equal(t, 42, f.Head.Change)
	assert.Equal(t, 4, f.Head.Rev)
	assert.Equal(t, int64(1709308953), f.Head.Time.Unix())
	assert.Empty(t, f.OthersOpen)
}

func TestParseFStatNoHead(t *testing.T) {
	f, err := ParseFStat(map[string]string{
		"depotFile":  "//depot/main/new.txt",
		"clientFile": "/home/alice/p4/main/new.txt",
	})
	require.NoError(t, err)

	assert.Nil(t, f.Head)
	assert.Nil(t, f.HaveRev)
	assert.False(t, f.IsMapped)
}

func TestParseFStatOthersOpen(t *testing.T) {
	f, err := ParseFStat(map[string]string{
		"depotFile":    "//depot/main/a.txt",
		"otherOpen":    "2",
		"otherOpen0":   "bob@bob-ws",
		"otherAction0": "edit",
		"otherChange0": "55",
		"otherOpen1":   "carol@carol-ws",
		"otherAction1": "delete",
		"otherChange1": "default",
	})
	require.NoError(t, err)

	require.Len(t, f.OthersOpen, 2)
	assert.Equal(t, OtherOpen{User: "bob", Client: "bob-ws", Action: ActionEdit, Change: "55"}, f.OthersOpen[0])
	assert.Equal(t, OtherOpen{User: "carol", Client: "carol-ws", Action: ActionDelete, Change: "default"}, f.OthersOpen[1])
}

func TestParseFStatRequiresDepotFile(t *testing.T) {
	_, err := ParseFStat(map[string]string{"clientFile": "/tmp/x"})
	assert.Error(t, err)
}
