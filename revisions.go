package goforce

import (
	"context"
	"regexp"
	"strconv"

	"github.com/goforce/goforce/pkg/models"
)

// RevisionsOptions adjust [P4.Revisions].
type RevisionsOptions struct {
	// LongOutput requests the full text of each changelist description.
	LongOutput bool
}

// Most filelog fields end with the revision index, like "rev3"; fields that
// describe a relationship carry a second number, like "how0,1".
var revisionKey = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)(?:,([0-9]+))?$`)

// Revisions lists every revision of the files matching filespecs via
// `p4 filelog`, one slice per depot file.
//
// The revisions of a file are returned in the order the command reports
// them. That happens to be descending revision number, but the order is not
// guaranteed.
func (p *P4) Revisions(ctx context.Context, filespecs []string, opts RevisionsOptions) ([][]*models.Revision, error) {
	command := []string{"filelog"}
	if opts.LongOutput {
		command = append(command, "-l")
	}
	command = append(command, filespecs...)

	records, err := p.conn.Run(ctx, command)
	if err != nil {
		return nil, err
	}

	result := make([][]*models.Revision, 0, len(records))
	for _, r := range records {
		fields := r.Fields()

		shared := make(map[string]string)
		perRev := make(map[int]map[string]string)
		var order []int

		for _, key := range r.Keys() {
			m := revisionKey.FindStringSubmatch(key)
			if m == nil {
				shared[key] = fields[key]
				continue
			}
			index, err := strconv.Atoi(m[2])
			if err != nil {
				shared[key] = fields[key]
				continue
			}
			rev, ok := perRev[index]
			if !ok {
				rev = make(map[string]string)
				perRev[index] = rev
				order = append(order, index)
			}
			// "rev3" contributes "rev", "how0,1" contributes "how1".
			rev[m[1]+m[3]] = fields[key]
		}

		revisions := make([]*models.Revision, 0, len(order))
		for _, index := range order {
			merged := make(map[string]string, len(shared)+len(perRev[index]))
			for k, v := range shared {
				merged[k] = v
			}
			for k, v := range perRev[index] {
				merged[k] = v
			}
			revision, err := models.ParseRevision(merged)
			if err != nil {
				return nil, err
			}
			revisions = append(revisions, revision)
		}
		result = append(result, revisions)
	}
	return result, nil
}
