package p4marshal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalEmptyBufferYieldsEmptyStream(t *testing.T) {
	records, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	records, err = Unmarshal([]byte{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnmarshalEveryProperPrefixFails(t *testing.T) {
	r := NewRecord()
	r.SetString("code", "stat")
	r.SetInt("severity", 3)

	data, err := Marshal(r)
	require.NoError(t, err)

	for n := 1; n < len(data); n++ {
		_, err := Unmarshal(data[:n])
		require.Error(t, err, "prefix of %d bytes decoded silently", n)

		var ferr *FormatError
		require.ErrorAs(t, err, &ferr, "prefix of %d bytes", n)
		assert.LessOrEqual(t, ferr.Offset, int64(n))
	}
}

func TestUnmarshalBadDictMarker(t *testing.T) {
	_, err := Unmarshal([]byte("not marshal data"))

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, int64(0), ferr.Offset)
	assert.Contains(t, ferr.Error(), `'{'`)
}

func TestUnmarshalBadValueMarkerReportsOffset(t *testing.T) {
	// {'a': 1} with the value marker at offset 7 clobbered.
	data := []byte{
		'{',
		's', 1, 0, 0, 0, 'a',
		'i', 1, 0, 0, 0,
		'0',
	}
	data[7] = 'z'

	_, err := Unmarshal(data)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, int64(7), ferr.Offset)
}

func TestUnmarshalBadKeyMarkerReportsOffset(t *testing.T) {
	// Keys must be string-typed; an int in key position is malformed.
	data := []byte{
		'{',
		'i', 1, 0, 0, 0,
		'0',
	}

	_, err := Unmarshal(data)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, int64(1), ferr.Offset)
}

func TestUnmarshalGarbageAfterRecordFails(t *testing.T) {
	r := NewRecord()
	r.SetString("a", "b")
	data, err := Marshal(r)
	require.NoError(t, err)

	_, err = Unmarshal(append(data, 0xff))

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, int64(len(data)), ferr.Offset)
}

func TestDecoderAcceptsUnicodeItems(t *testing.T) {
	// Python's marshal writes str values with the 'u' marker; p4 reads them
	// interchangeably with 's'.
	data := []byte{
		'{',
		'u', 3, 0, 0, 0, 'k', 'e', 'y',
		'u', 2, 0, 0, 0, 'h', 'i',
		'0',
	}

	records, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hi", records[0].Get("key").Text())
}

func TestDecoderOffsetSpansRecords(t *testing.T) {
	r1 := NewRecord()
	r1.SetString("a", "1")
	r2 := NewRecord()
	r2.SetString("b", "2")

	data, err := Marshal(r1)
	require.NoError(t, err)
	first := len(data)
	data, err = Append(data, r2)
	require.NoError(t, err)

	// Corrupt the second record's dict marker: the reported offset must be
	// absolute within the stream, not relative to the record.
	data[first] = 'X'

	d := NewDecoder(bytes.NewReader(data))
	_, err = d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, int64(first), ferr.Offset)
}

func TestDecoderCleanEOFOnlyAtRecordBoundary(t *testing.T) {
	r := NewRecord()
	r.SetString("code", "stat")
	data, err := Marshal(r)
	require.NoError(t, err)

	d := NewDecoder(bytes.NewReader(data))

	got, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "stat", got.Get("code").Text())
	assert.Equal(t, int64(len(data)), d.InputOffset())

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderCorruptLengthDoesNotOverallocate(t *testing.T) {
	// Declared length far beyond the input must fail as truncated, not
	// attempt a 4 GiB allocation.
	data := []byte{
		'{',
		's', 0xff, 0xff, 0xff, 0xff, 'a',
	}

	_, err := Unmarshal(data)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Reason, "truncated")
}

func TestDecoderLargeValueRoundTrip(t *testing.T) {
	r := NewRecord()
	r.SetString("desc", strings.Repeat("x", 1<<16))

	data, err := Marshal(r)
	require.NoError(t, err)

	records, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Get("desc").Text(), 1<<16)
}
