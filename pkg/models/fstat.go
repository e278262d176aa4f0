package models

import (
	"strconv"
	"strings"
)

// HeadInfo is the head revision information embedded in an fstat record.
type HeadInfo struct {
	Action Action
	Change int

	// Rev is the head revision, or the revision matched by a revision
	// specifier when one was used in the query.
	Rev int

	FileType string

	// Time is the head revision's changelist time.
	Time Timestamp

	// ModTime is when the file was last modified on the client before
	// submit.
	ModTime Timestamp

	// Charset is only present for unicode-enabled servers.
	Charset string
}

// OtherOpen describes another client that has the file open.
type OtherOpen struct {
	User   string
	Client string
	Action Action

	// Change is a changelist number, or "default".
	Change string
}

// FStat is one file's status, as reported by `p4 fstat`.
type FStat struct {
	ClientFile string
	DepotFile  string

	// Head is nil for files with no submitted revision, such as files
	// only opened for add.
	Head *HeadInfo

	// HaveRev is the revision last synced to the workspace, nil when the
	// file is not on the workspace.
	HaveRev *int

	// IsMapped reports whether the file is mapped to the client view.
	IsMapped bool

	// OthersOpen lists other clients with the file open.
	OthersOpen []OtherOpen
}

// ParseFStat builds an FStat from a stat record of `p4 fstat`.
func ParseFStat(fields map[string]string) (*FStat, error) {
	var f FStat
	var err error

	if f.DepotFile, err = required(fields, "fstat", "depotFile"); err != nil {
		return nil, err
	}
	f.ClientFile = fields["clientFile"]

	// isMapped is a flag field: present and empty when set.
	_, f.IsMapped = fields["isMapped"]

	if v, ok := fields["haveRev"]; ok {
		rev, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		f.HaveRev = &rev
	}

	if _, ok := fields["headRev"]; ok {
		if f.Head, err = parseHeadInfo(fields); err != nil {
			return nil, err
		}
	}

	if total, ok := fields["otherOpen"]; ok {
		n, err := strconv.Atoi(total)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			suffix := strconv.Itoa(i)
			user, client, _ := strings.Cut(fields["otherOpen"+suffix], "@")
			f.OthersOpen = append(f.OthersOpen, OtherOpen{
				User:   user,
				Client: client,
				Action: Action(fields["otherAction"+suffix]),
				Change: fields["otherChange"+suffix],
			})
		}
	}
	return &f, nil
}

func parseHeadInfo(fields map[string]string) (*HeadInfo, error) {
	var h HeadInfo
	var err error

	action, err := required(fields, "fstat", "headAction")
	if err != nil {
		return nil, err
	}
	h.Action = Action(action)

	if h.Change, err = requiredInt(fields, "fstat", "headChange"); err != nil {
		return nil, err
	}
	if h.Rev, err = requiredInt(fields, "fstat", "headRev"); err != nil {
		return nil, err
	}
	if h.FileType, err = required(fields, "fstat", "headType"); err != nil {
		return nil, err
	}
	if h.Time, err = requiredTimestamp(fields, "fstat", "headTime"); err != nil {
		return nil, err
	}
	if h.ModTime, err = requiredTimestamp(fields, "fstat", "headModTime"); err != nil {
		return nil, err
	}
	h.Charset = fields["headCharset"]
	return &h, nil
}
