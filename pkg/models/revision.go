package models

import "strconv"

// Revision is one revision of a depot file, as reported by `p4 filelog`.
type Revision struct {
	DepotFile string

	// Rev is the revision number of this entry.
	Rev int

	// Action is the operation the file was open for.
	Action Action

	// Change is the number of the submitting changelist.
	Change int

	Client      string
	User        string
	Description string
	Time        Timestamp

	FileType string

	// Digest is the MD5 of the revision content; empty when the revision
	// is a deletion.
	Digest string

	// FileSize is the revision length in bytes; nil when the revision is
	// a deletion.
	FileSize *int64
}

// ParseRevision builds a Revision from a per-revision field map, after the
// caller has stripped the numeric suffixes filelog appends to field names.
func ParseRevision(fields map[string]string) (*Revision, error) {
	var r Revision
	var err error

	if r.DepotFile, err = required(fields, "revision", "depotFile"); err != nil {
		return nil, err
	}
	if r.Rev, err = requiredInt(fields, "revision", "rev"); err != nil {
		return nil, err
	}

	action, err := required(fields, "revision", "action")
	if err != nil {
		return nil, err
	}
	r.Action = Action(action)

	if r.Change, err = requiredInt(fields, "revision", "change"); err != nil {
		return nil, err
	}
	if r.Client, err = required(fields, "revision", "client"); err != nil {
		return nil, err
	}
	if r.User, err = required(fields, "revision", "user"); err != nil {
		return nil, err
	}
	if r.Description, err = required(fields, "revision", "desc"); err != nil {
		return nil, err
	}
	if r.Time, err = requiredTimestamp(fields, "revision", "time"); err != nil {
		return nil, err
	}
	if r.FileType, err = required(fields, "revision", "type"); err != nil {
		return nil, err
	}

	r.Digest = fields["digest"]
	if v, ok := fields["fileSize"]; ok {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		r.FileSize = &size
	}
	return &r, nil
}
