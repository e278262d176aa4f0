package models

import "strconv"

// Sync is the result of syncing one file to the workspace.
type Sync struct {
	Action     string
	ClientFile string
	DepotFile  string
	Rev        int

	// FileSize is zero for actions that remove the local file.
	FileSize int64
}

// ParseSync builds a Sync from a stat record of `p4 sync`.
func ParseSync(fields map[string]string) (*Sync, error) {
	var s Sync
	var err error

	if s.Action, err = required(fields, "sync", "action"); err != nil {
		return nil, err
	}
	if s.ClientFile, err = required(fields, "sync", "clientFile"); err != nil {
		return nil, err
	}
	if s.DepotFile, err = required(fields, "sync", "depotFile"); err != nil {
		return nil, err
	}
	if s.Rev, err = requiredInt(fields, "sync", "rev"); err != nil {
		return nil, err
	}
	if v, ok := fields["fileSize"]; ok {
		if s.FileSize, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
