package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	d, err := ParseDateTime("2024/03/01 16:92")
	assert.Error(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDateTime("2024/03/01 16:02:33")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 16, 2, 33, 0, time.UTC), d.Time)
	assert.Equal(t, "2024/03/01 16:02:33", d.String())
}

func TestParseTimestamp(t *testing.T) {
	_, err := ParseTimestamp("not-a-number")
	assert.Error(t, err)

	ts, err := ParseTimestamp("1709308953")
	require.NoError(t, err)
	assert.Equal(t, int64(1709308953), ts.Unix())
	assert.Equal(t, "1709308953", ts.String())
	assert.Equal(t, time.UTC, ts.Location())
}
