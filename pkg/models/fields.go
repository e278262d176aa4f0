// Package models maps the stringly field dictionaries decoded from tagged p4
// output onto typed, validated records and enumerations. Parsing here never
// touches the wire: by the time a field map reaches this package, decoding
// and server-error classification have already happened in the connection
// layer.
package models

import (
	"fmt"
	"strconv"

	"github.com/goforce/goforce/pkg/constants"
)

// IndexedValues removes prefix0, prefix1, ... from fields and returns their
// values in index order, stopping at the first missing index.
func IndexedValues(fields map[string]string, prefix string) []string {
	var values []string
	for i := 0; ; i++ {
		key := prefix + strconv.Itoa(i)
		v, ok := fields[key]
		if !ok {
			break
		}
		delete(fields, key)
		values = append(values, v)
	}
	return values
}

func required(fields map[string]string, record, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", constants.ErrMissingField, record, key)
	}
	return v, nil
}

func requiredInt(fields map[string]string, record, key string) (int, error) {
	v, err := required(fields, record, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s.%s: %w", record, key, err)
	}
	return n, nil
}

func requiredDateTime(fields map[string]string, record, key string) (DateTime, error) {
	v, err := required(fields, record, key)
	if err != nil {
		return DateTime{}, err
	}
	d, err := ParseDateTime(v)
	if err != nil {
		return DateTime{}, fmt.Errorf("%s.%s: %w", record, key, err)
	}
	return d, nil
}

func requiredTimestamp(fields map[string]string, record, key string) (Timestamp, error) {
	v, err := required(fields, record, key)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := ParseTimestamp(v)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%s.%s: %w", record, key, err)
	}
	return t, nil
}
