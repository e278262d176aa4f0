package models

import "strconv"

// Code is the value of the "code" field present in every record of tagged p4
// output.
type Code string

const (
	// CodeStat means "status" and is the default for data records.
	CodeStat Code = "stat"

	// CodeError marks an error record; the message is in the "data" field.
	CodeError Code = "error"

	// CodeInfo marks feedback from the command; the message is in the
	// "data" field.
	CodeInfo Code = "info"
)

// MessageSeverity is the severity attached to error records.
type MessageSeverity int

const (
	SeverityEmpty   MessageSeverity = iota // no error
	SeverityInfo                           // something good happened
	SeverityWarning                        // something not good happened
	SeverityFailed                         // the command was rejected
	SeverityFatal                          // severe error, cannot continue
)

func (s MessageSeverity) String() string {
	switch s {
	case SeverityEmpty:
		return "empty"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFailed:
		return "failed"
	case SeverityFatal:
		return "fatal"
	}
	return "severity(" + strconv.Itoa(int(s)) + ")"
}

// MessageLevel is the generic "level" code attached to info and error
// records, classifying what went wrong rather than how badly.
type MessageLevel int

const (
	LevelNone    MessageLevel = 0x00 // miscellaneous
	LevelUsage   MessageLevel = 0x01 // request not consistent with documentation
	LevelUnknown MessageLevel = 0x02 // using unknown entity
	LevelContext MessageLevel = 0x03 // using entity in the wrong context
	LevelIllegal MessageLevel = 0x04 // no permission to perform this action
	LevelNotYet  MessageLevel = 0x05 // something must be fixed first
	LevelProtect MessageLevel = 0x06 // protections prevented the operation
	LevelEmpty   MessageLevel = 0x11 // action returned empty results
	LevelFault   MessageLevel = 0x21 // inexplicable program fault
	LevelClient  MessageLevel = 0x22 // client-side program error
	LevelAdmin   MessageLevel = 0x23 // server administrative action required
	LevelConfig  MessageLevel = 0x24 // client configuration inadequate
	LevelUpgrade MessageLevel = 0x25 // client or server too old to interact
	LevelComm    MessageLevel = 0x26 // communications error
	LevelTooBig  MessageLevel = 0x27 // too big to handle
)

// UserType is a p4 user license class.
type UserType string

const (
	UserStandard UserType = "standard"
	UserOperator UserType = "operator"
	UserService  UserType = "service"
)

// AuthMethod is how a user authenticates against the server.
type AuthMethod string

const (
	AuthPerforce AuthMethod = "perforce"
	AuthLDAP     AuthMethod = "ldap"
)

// SubmitOptions governs the default behavior of p4 submit for a workspace.
type SubmitOptions string

const (
	SubmitUnchanged          SubmitOptions = "submitunchanged"
	SubmitUnchangedAndReopen SubmitOptions = "submitunchanged+reopen"
	RevertUnchanged          SubmitOptions = "revertunchanged"
	RevertUnchangedAndReopen SubmitOptions = "revertunchanged+reopen"
	LeaveUnchanged           SubmitOptions = "leaveunchanged"
	LeaveUnchangedAndReopen  SubmitOptions = "leaveunchanged+reopen"
)

// ClientType is a workspace access class.
type ClientType string

const (
	ClientWriteable   ClientType = "writeable"
	ClientReadonly    ClientType = "readonly"
	ClientPartitioned ClientType = "partitioned"
)

// ChangeStatus is a changelist lifecycle state.
type ChangeStatus string

const (
	ChangePending   ChangeStatus = "pending"
	ChangeShelved   ChangeStatus = "shelved"
	ChangeSubmitted ChangeStatus = "submitted"
)

// ChangeType restricts who can see a changelist's description.
type ChangeType string

const (
	ChangeRestricted ChangeType = "restricted"
	ChangePublic     ChangeType = "public"
)

// Action is a file operation recorded by the depot.
type Action string

const (
	ActionAdd        Action = "add"
	ActionEdit       Action = "edit"
	ActionDelete     Action = "delete"
	ActionBranch     Action = "branch"
	ActionMoveAdd    Action = "move/add"
	ActionMoveDelete Action = "move/delete"
	ActionIntegrate  Action = "integrate"
	ActionImport     Action = "import"
	ActionPurge      Action = "purge"
	ActionArchive    Action = "archive"
)
