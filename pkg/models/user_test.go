package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userFields() map[string]string {
	return map[string]string{
		"code":       "stat",
		"User":       "alice",
		"Email":      "alice@example.com",
		"FullName":   "Alice Example",
		"Type":       "standard",
		"AuthMethod": "perforce",
		"Access":     "2024/03/01 10:00:00",
		"Update":     "2023/12/24 08:30:00",
	}
}

func TestParseUser(t *testing.T) {
	u, err := ParseUser(userFields())
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice Example", u.FullName)
	assert.Equal(t, UserStandard, u.Type)
	assert.Equal(t, AuthPerforce, u.AuthMethod)
	assert.Equal(t, "2024/03/01 10:00:00", u.Access.String())
	assert.Equal(t, "2023/12/24 08:30:00", u.Update.String())
}

func TestParseUserMissingField(t *testing.T) {
	for _, key := range []string{"User", "Email", "FullName", "Type", "AuthMethod", "Access", "Update"} {
		fields := userFields()
		delete(fields, key)

		_, err := ParseUser(fields)
		require.Error(t, err, "field %s", key)
		assert.Contains(t, err.Error(), key)
	}
}
