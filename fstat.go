package goforce

import (
	"context"

	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/models"
)

// FstatOptions adjust [P4.Fstat]. The zero value excludes files whose head
// action is a deletion.
type FstatOptions struct {
	// IncludeDeleted keeps files with a head action of delete or
	// move/delete in the listing.
	IncludeDeleted bool
}

// Fstat lists file information via `p4 fstat`.
//
// Purely local files, not in the depot and not opened for add, are reported
// by the command as warning-severity "no such file(s)." errors; those are
// skipped rather than failing the call.
func (p *P4) Fstat(ctx context.Context, filespecs []string, opts FstatOptions) ([]*models.FStat, error) {
	command := []string{"fstat"}
	if !opts.IncludeDeleted {
		command = append(command, "-F", "^headAction=delete ^headAction=move/delete")
	}
	command = append(command, filespecs...)

	records, err := p.conn.Run(ctx, command, connection.WithMaxSeverity(models.SeverityWarning))
	if err != nil {
		return nil, err
	}

	var result []*models.FStat
	for _, r := range records {
		if connection.RecordCode(r) == models.CodeError {
			if _, message := splitFileData(r.Get("data").Text()); message == "no such file(s)." {
				continue
			}
			return nil, recordError(r, command)
		}
		stat, err := models.ParseFStat(r.Fields())
		if err != nil {
			return nil, err
		}
		result = append(result, stat)
	}
	return result, nil
}
