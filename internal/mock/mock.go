// Package mock provides a canned Connection for testing command wrappers
// without a p4 binary or server.
package mock

import (
	"context"

	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/connection"
)

// Call records one Run invocation.
type Call struct {
	Command  []string
	Settings connection.RunSettings
}

// Connection replays scripted responses in order and records every call.
type Connection struct {
	// Responses are consumed one per Run call, each entry being the
	// records (or error) that call returns.
	Responses []Response

	Calls      []Call
	LoginCalls []string
}

type Response struct {
	Records []*p4marshal.Record
	Err     error
}

var _ connection.Connection = (*Connection)(nil)

// Records converts stringly field maps into a Response, keys in map order
// being irrelevant to the consumers under test.
func Records(fields ...map[string]string) Response {
	var records []*p4marshal.Record
	for _, f := range fields {
		r := p4marshal.NewRecord()
		for k, v := range f {
			r.SetString(k, v)
		}
		records = append(records, r)
	}
	return Response{Records: records}
}

func (c *Connection) Run(_ context.Context, command []string, opts ...connection.RunOption) ([]*p4marshal.Record, error) {
	c.Calls = append(c.Calls, Call{
		Command:  command,
		Settings: connection.ApplySettings(connection.RunSettings{}, opts),
	})
	if len(c.Responses) == 0 {
		return nil, nil
	}
	next := c.Responses[0]
	c.Responses = c.Responses[1:]
	return next.Records, next.Err
}

func (c *Connection) Login(_ context.Context, password string) error {
	c.LoginCalls = append(c.LoginCalls, password)
	return nil
}
