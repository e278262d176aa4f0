package goforce

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/constants"
	"github.com/goforce/goforce/pkg/models"
)

// Change fetches a changelist spec via `p4 change -o`. Unknown numbers fail
// with [ErrChangeUnknown].
func (p *P4) Change(ctx context.Context, number int) (*models.Change, error) {
	command := []string{"change", "-o", strconv.Itoa(number)}
	records, err := p.conn.Run(ctx, command)
	if err != nil {
		var cmdErr *connection.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Message == fmt.Sprintf("Change %d unknown.", number) {
			return nil, fmt.Errorf("change %d: %w", number, constants.ErrChangeUnknown)
		}
		return nil, err
	}
	r, err := onlyRecord(records, command)
	if err != nil {
		return nil, err
	}
	return models.ParseChange(r.Fields())
}

// CreateChangelist creates a new pending changelist with the given
// description and returns it.
//
// It round-trips the spec form: fetch the default spec with `change -o`,
// rewrite the description, drop the open-file list so default-changelist
// files are not swept in, then submit the form back with `change -i`. The
// server only reports the new number as free text, so the created change is
// read back with `changes --me -m 1 -l`.
func (p *P4) CreateChangelist(ctx context.Context, description string) (*models.ChangeInfo, error) {
	command := []string{"change", "-o"}
	records, err := p.conn.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	spec, err := onlyRecord(records, command)
	if err != nil {
		return nil, err
	}

	spec.SetString("Description", description)
	for i := 0; ; i++ {
		key := fmt.Sprintf("Files%d", i)
		if _, ok := spec.Lookup(key); !ok {
			break
		}
		spec.Delete(key)
	}

	if _, err := p.conn.Run(ctx, []string{"change", "-i"}, connection.WithStdin(spec)); err != nil {
		return nil, err
	}

	command = []string{"changes", "--me", "-m", "1", "-l"}
	records, err = p.conn.Run(ctx, command)
	if err != nil {
		return nil, err
	}
	r, err := onlyRecord(records, command)
	if err != nil {
		return nil, err
	}
	return models.ParseChangeInfo(r.Fields())
}

// ChangesOptions filter the output of [P4.Changes]. The zero value lists
// every changelist in short form.
type ChangesOptions struct {
	// User restricts the listing to changes owned by that user.
	User string

	// Status restricts the listing to changes in that state.
	Status models.ChangeStatus

	// LongOutput requests the full text of each description instead of
	// the truncated first line.
	LongOutput bool
}

// Changes lists submitted and pending changelists via `p4 changes`.
func (p *P4) Changes(ctx context.Context, opts ChangesOptions) ([]*models.ChangeInfo, error) {
	command := []string{"changes"}
	if opts.User != "" {
		command = append(command, "-u", opts.User)
	}
	if opts.Status != "" {
		command = append(command, "-s", string(opts.Status))
	}
	if opts.LongOutput {
		command = append(command, "-l")
	}

	records, err := p.conn.Run(ctx, command)
	if err != nil {
		return nil, err
	}

	infos := make([]*models.ChangeInfo, 0, len(records))
	for _, r := range records {
		info, err := models.ParseChangeInfo(r.Fields())
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
