package goforce

import (
	"context"
	"fmt"

	"github.com/goforce/goforce/pkg/constants"
	"github.com/goforce/goforce/pkg/models"
)

// Client fetches the spec of the named client workspace via `p4 client -o`.
//
// Like [P4.User], the server fabricates a default spec for unknown names;
// a spec without an Update date fails with [ErrClientNotFound].
func (p *P4) Client(ctx context.Context, name string) (*models.Client, error) {
	command := []string{"client", "-o", name}
	records, err := p.conn.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	r, err := onlyRecord(records, command)
	if err != nil {
		return nil, err
	}

	fields := r.Fields()
	if _, ok := fields["Update"]; !ok {
		return nil, fmt.Errorf("client %q: %w", name, constants.ErrClientNotFound)
	}
	return models.ParseClient(fields)
}
