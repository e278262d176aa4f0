package models

// Change is a full changelist specification, as returned by `p4 change -o`.
type Change struct {
	Change int
	Client string

	// User is the name of the change owner.
	User string

	// Date is when the changelist was last modified.
	Date DateTime

	Description string
	Status      ChangeStatus
	Type        ChangeType

	// Files lists the depot files in this changelist, from Files0..Fn.
	Files []string

	// ShelveAccess and ShelveUpdate are only present when the changelist
	// has shelved files.
	ShelveAccess *DateTime
	ShelveUpdate *DateTime
}

// ParseChange builds a Change from the field map of a `p4 change -o` record.
func ParseChange(fields map[string]string) (*Change, error) {
	var c Change
	var err error

	if c.Change, err = requiredInt(fields, "change", "Change"); err != nil {
		return nil, err
	}
	if c.Client, err = required(fields, "change", "Client"); err != nil {
		return nil, err
	}
	if c.User, err = required(fields, "change", "User"); err != nil {
		return nil, err
	}
	if c.Date, err = requiredDateTime(fields, "change", "Date"); err != nil {
		return nil, err
	}
	if c.Description, err = required(fields, "change", "Description"); err != nil {
		return nil, err
	}

	status, err := required(fields, "change", "Status")
	if err != nil {
		return nil, err
	}
	c.Status = ChangeStatus(status)

	kind, err := required(fields, "change", "Type")
	if err != nil {
		return nil, err
	}
	c.Type = ChangeType(kind)

	c.Files = IndexedValues(fields, "Files")

	for key, dst := range map[string]**DateTime{
		"shelveAccess": &c.ShelveAccess,
		"shelveUpdate": &c.ShelveUpdate,
	} {
		if v, ok := fields[key]; ok {
			d, err := ParseDateTime(v)
			if err != nil {
				return nil, err
			}
			*dst = &d
		}
	}
	return &c, nil
}

// ChangeInfo is a changelist as listed by `p4 changes`. Unlike Change it
// does not carry the file list, and the server transmits its fields in the
// lowercase tagged form.
type ChangeInfo struct {
	Change int
	Client string
	User   string

	// Time is when the changelist was last modified.
	Time Timestamp

	Description string
	Status      ChangeStatus
	Type        ChangeType
}

// ParseChangeInfo builds a ChangeInfo from the field map of a `p4 changes`
// record.
func ParseChangeInfo(fields map[string]string) (*ChangeInfo, error) {
	var c ChangeInfo
	var err error

	if c.Change, err = requiredInt(fields, "change", "change"); err != nil {
		return nil, err
	}
	if c.Client, err = required(fields, "change", "client"); err != nil {
		return nil, err
	}
	if c.User, err = required(fields, "change", "user"); err != nil {
		return nil, err
	}
	if c.Time, err = requiredTimestamp(fields, "change", "time"); err != nil {
		return nil, err
	}
	if c.Description, err = required(fields, "change", "desc"); err != nil {
		return nil, err
	}

	status, err := required(fields, "change", "status")
	if err != nil {
		return nil, err
	}
	c.Status = ChangeStatus(status)

	kind, err := required(fields, "change", "changeType")
	if err != nil {
		return nil, err
	}
	c.Type = ChangeType(kind)
	return &c, nil
}
