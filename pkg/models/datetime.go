package models

import (
	"strconv"
	"time"
)

// DateTimeLayout is the wall-clock form p4 uses in spec fields such as
// Update and Access. Values are server-local but carry no zone marker; they
// are treated as UTC, which matches what P4V displays for a UTC server.
const DateTimeLayout = "2006/01/02 15:04:05"

// DateTime is a timestamp in p4's spec date format.
type DateTime struct {
	time.Time
}

// ParseDateTime parses "2006/01/02 15:04:05".
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t.UTC()}, nil
}

func (d DateTime) String() string {
	return d.UTC().Format(DateTimeLayout)
}

// Timestamp is a timestamp transmitted as unix seconds, the form p4 uses in
// tagged output fields such as time and headTime.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses a decimal unix-seconds string.
func ParseTimestamp(s string) (Timestamp, error) {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{time.Unix(sec, 0).UTC()}, nil
}

func (t Timestamp) String() string {
	return strconv.FormatInt(t.Unix(), 10)
}
