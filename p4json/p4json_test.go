package p4json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalRecords(t *testing.T) {
	data := []byte(`{"code":"stat","depotFile":"//depot/main/a.txt","rev":3}
{"code":"error","data":"//depot/nope - no such file(s).\n","severity":2,"level":17}
`)

	records, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, []string{"code", "depotFile", "rev"}, first.Keys())
	assert.Equal(t, "stat", first.Get("code").Text())
	assert.Equal(t, int32(3), first.Get("rev").Int())

	second := records[1]
	assert.Equal(t, "error", second.Get("code").Text())
	assert.Equal(t, "2", second.Get("severity").Text())
	assert.Equal(t, "//depot/nope - no such file(s).\n", second.Get("data").Text())
}

func TestUnmarshalEmptyInput(t *testing.T) {
	records, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Unmarshal([]byte("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnmarshalMalformedLine(t *testing.T) {
	_, err := Unmarshal([]byte("{\"code\":\"stat\"}\nnot json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestUnmarshalLargeNumberKeepsText(t *testing.T) {
	records, err := Unmarshal([]byte(`{"fileSize":5368709120}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "5368709120", records[0].Get("fileSize").Text())
}
