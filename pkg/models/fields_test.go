package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goforce/goforce/pkg/constants"
)

func TestIndexedValues(t *testing.T) {
	fields := map[string]string{
		"Files0":      "//depot/foo",
		"Files1":      "//depot/bar",
		"Files3":      "//depot/orphan", // gap at 2: not reached
		"Description": "msg",
	}

	values := IndexedValues(fields, "Files")
	assert.Equal(t, []string{"//depot/foo", "//depot/bar"}, values)

	// Consumed entries are removed, everything else stays.
	assert.Equal(t, map[string]string{
		"Files3":      "//depot/orphan",
		"Description": "msg",
	}, fields)
}

func TestIndexedValuesEmpty(t *testing.T) {
	assert.Nil(t, IndexedValues(map[string]string{"Other": "x"}, "Files"))
}

func TestRequiredWrapsSentinel(t *testing.T) {
	_, err := required(map[string]string{}, "user", "Email")
	assert.ErrorIs(t, err, constants.ErrMissingField)
	assert.Contains(t, err.Error(), "user.Email")
}
