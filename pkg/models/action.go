package models

import (
	"strconv"
	"strings"
)

// ActionInfo is the stat record returned for each file opened by an action
// command (add, edit, delete).
type ActionInfo struct {
	Action     string
	ClientFile string
	DepotFile  string

	// FileType is the p4 file type, such as "text" or "binary+F".
	FileType string

	// WorkRev is the open revision.
	WorkRev int
}

// ParseActionInfo builds an ActionInfo from a stat record of an action
// command.
func ParseActionInfo(fields map[string]string) (*ActionInfo, error) {
	var a ActionInfo
	var err error

	if a.Action, err = required(fields, "action", "action"); err != nil {
		return nil, err
	}
	if a.ClientFile, err = required(fields, "action", "clientFile"); err != nil {
		return nil, err
	}
	if a.DepotFile, err = required(fields, "action", "depotFile"); err != nil {
		return nil, err
	}
	if a.FileType, err = required(fields, "action", "type"); err != nil {
		return nil, err
	}
	if a.WorkRev, err = requiredInt(fields, "action", "workRev"); err != nil {
		return nil, err
	}
	return &a, nil
}

// ActionMessage is per-file feedback emitted as an info record during an
// action command.
//
// Notable messages:
//   - "can't add (already opened for edit)"
//   - "can't add existing file"
//   - "empty, assuming text."
//   - "also opened by user@client"
type ActionMessage struct {
	Path    string
	Message string
	Level   MessageLevel
}

// ParseActionMessage builds an ActionMessage from an info record. The "data"
// field holds "<path> - <message>".
func ParseActionMessage(fields map[string]string) (ActionMessage, error) {
	data, err := required(fields, "action message", "data")
	if err != nil {
		return ActionMessage{}, err
	}
	level, err := required(fields, "action message", "level")
	if err != nil {
		return ActionMessage{}, err
	}
	n, err := strconv.Atoi(level)
	if err != nil {
		return ActionMessage{}, err
	}

	path, message := splitFileMessage(data)
	return ActionMessage{Path: path, Message: message, Level: MessageLevel(n)}, nil
}

// splitFileMessage splits "<path> - <message>" on the last separator, since
// paths may themselves contain " - ".
func splitFileMessage(data string) (path, message string) {
	if i := strings.LastIndex(data, " - "); i >= 0 {
		return strings.TrimSpace(data[:i]), strings.TrimSpace(data[i+3:])
	}
	return "", strings.TrimSpace(data)
}
