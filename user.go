package goforce

import (
	"context"
	"fmt"

	"github.com/goforce/goforce/pkg/constants"
	"github.com/goforce/goforce/pkg/models"
)

// User fetches the spec of the named user via `p4 user -o`.
//
// The server fabricates a default spec for names it has never seen, so a
// spec without an Update date means the user does not exist and the call
// fails with [ErrUserNotFound].
func (p *P4) User(ctx context.Context, name string) (*models.User, error) {
	command := []string{"user", "-o", name}
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
		return nil, fmt.Errorf("user %q: %w", name, constants.ErrUserNotFound)
	}
	return models.ParseUser(fields)
}
