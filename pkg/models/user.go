package models

// User is a p4 user specification.
type User struct {
	// Name is the username (the User spec field).
	Name string

	Email    string
	FullName string

	Type       UserType
	AuthMethod AuthMethod

	// Access is when this user last ran a command against the server.
	Access DateTime

	// Update is when this user spec was last modified.
	Update DateTime
}

// ParseUser builds a User from the field map of a `p4 user -o` record.
func ParseUser(fields map[string]string) (*User, error) {
	var u User
	var err error

	if u.Name, err = required(fields, "user", "User"); err != nil {
		return nil, err
	}
	if u.Email, err = required(fields, "user", "Email"); err != nil {
		return nil, err
	}
	if u.FullName, err = required(fields, "user", "FullName"); err != nil {
		return nil, err
	}

	kind, err := required(fields, "user", "Type")
	if err != nil {
		return nil, err
	}
	u.Type = UserType(kind)

	auth, err := required(fields, "user", "AuthMethod")
	if err != nil {
		return nil, err
	}
	u.AuthMethod = AuthMethod(auth)

	if u.Access, err = requiredDateTime(fields, "user", "Access"); err != nil {
		return nil, err
	}
	if u.Update, err = requiredDateTime(fields, "user", "Update"); err != nil {
		return nil, err
	}
	return &u, nil
}
