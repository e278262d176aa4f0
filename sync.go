package goforce

import (
	"context"
	"strings"

	"github.com/goforce/goforce/pkg/connection"
	"github.com/goforce/goforce/pkg/models"
)

// Sync updates the given filespecs in the client workspace via `p4 sync`.
//
// The command reports files that are already current as warning-severity
// errors; those are logged and skipped rather than failing the call. The
// leading record carries the transfer totals, which are logged and stripped
// before parsing.
func (p *P4) Sync(ctx context.Context, filespecs []string) ([]*models.Sync, error) {
	command := append([]string{"sync"}, filespecs...)
	records, err := p.conn.Run(ctx, command, connection.WithMaxSeverity(models.SeverityWarning))
	if err != nil {
		return nil, err
	}

	var result []*models.Sync
	for _, r := range records {
		switch connection.RecordCode(r) {
		case models.CodeError:
			data := r.Get("data").Text()
			if _, message := splitFileData(data); message == "file(s) up-to-date." {
				p.log.Debug(strings.TrimSpace(data))
				continue
			}
			return nil, recordError(r, command)
		case models.CodeInfo:
			p.log.Info(strings.TrimSpace(r.Get("data").Text()))
			continue
		}

		fields := r.Fields()
		if len(result) == 0 {
			if _, ok := fields["totalFileCount"]; ok {
				p.log.Info("synced files",
					"totalFileCount", fields["totalFileCount"],
					"totalFileSize", fields["totalFileSize"],
				)
				delete(fields, "totalFileCount")
				delete(fields, "totalFileSize")
			}
		}

		s, err := models.ParseSync(fields)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
