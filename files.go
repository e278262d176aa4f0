package goforce

import (
	"context"
	"strconv"

	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/models"
)

// OpenOptions adjust the action commands [P4.Add], [P4.Edit] and
// [P4.Delete].
type OpenOptions struct {
	// Changelist opens the files within that pending changelist instead
	// of the default changelist.
	Changelist int

	// Preview reports which files would be opened without changing any
	// files or metadata.
	Preview bool
}

// Add opens files for addition to the depot via `p4 add`.
//
// Stat records become [models.ActionInfo]; info records, which the client
// only emits when something unexpected happened to a file, become
// [models.ActionMessage].
func (p *P4) Add(ctx context.Context, filespecs []string, opts OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
	return p.open(ctx, "add", filespecs, opts)
}

// Edit opens files for edit via `p4 edit`. Returns follow [P4.Add].
func (p *P4) Edit(ctx context.Context, filespecs []string, opts OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
	return p.open(ctx, "edit", filespecs, opts)
}

// Delete opens files for deletion from the depot via `p4 delete`. Returns
// follow [P4.Add].
func (p *P4) Delete(ctx context.Context, filespecs []string, opts OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
	return p.open(ctx, "delete", filespecs, opts)
}

func (p *P4) open(ctx context.Context, action string, filespecs []string, opts OpenOptions) ([]models.ActionMessage, []*models.ActionInfo, error) {
	command := []string{action}
	if opts.Changelist != 0 {
		command = append(command, "-c", strconv.Itoa(opts.Changelist))
	}
	if opts.Preview {
		command = append(command, "-n")
	}
	command = append(command, filespecs...)

	records, err := p.conn.Run(ctx, command)
	if err != nil {
		return nil, nil, err
	}

	var messages []models.ActionMessage
	var infos []*models.ActionInfo
	for _, r := range records {
		if connection.RecordCode(r) == models.CodeInfo {
			message, err := models.ParseActionMessage(r.Fields())
			if err != nil {
				return nil, nil, err
			}
			messages = append(messages, message)
			continue
		}
		info, err := models.ParseActionInfo(r.Fields())
		if err != nil {
			return nil, nil, err
		}
		infos = append(infos, info)
	}
	return messages, infos, nil
}
