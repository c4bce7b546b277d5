// Package source ingests survey exports (CSV files, archives, SQL tables) into response sets.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pivolan/go_utils"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/domain/models"
)

var ErrMissingColumn = errors.New("missing column")

// Schema names the columns a response set must carry. Names are compared after Slugify.
type Schema struct {
	GroupColumn  string
	GroupAliases []string
	Columns      []string
	Separator    rune
}

func SchemaFromDashboard(d config.Dashboard) Schema {
	sep := ','
	if r := []rune(d.Separator); len(r) == 1 {
		sep = r[0]
	}
	return Schema{
		GroupColumn:  d.GroupColumn,
		GroupAliases: d.GroupAliases,
		Columns:      d.Columns(),
		Separator:    sep,
	}
}

// groupIndex finds the group column, trying aliases after the canonical name.
func (s Schema) groupIndex(headers []string) (int, error) {
	candidates := append([]string{s.GroupColumn}, s.GroupAliases...)
	for _, c := range candidates {
		name := Slugify(c)
		for i, h := range headers {
			if h == name {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: group column %q", ErrMissingColumn, s.GroupColumn)
}

func (s Schema) checkColumns(headers []string) error {
	var missing []string
	for _, c := range s.Columns {
		if !go_utils.InArray(Slugify(c), headers) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// recordBuilder turns raw rows into records once headers are cleaned and checked.
type recordBuilder struct {
	headers []string
	group   int
}

func newRecordBuilder(rawHeaders []string, s Schema) (recordBuilder, error) {
	headers := CleanHeaders(rawHeaders)
	group, err := s.groupIndex(headers)
	if err != nil {
		return recordBuilder{}, err
	}
	if err := s.checkColumns(headers); err != nil {
		return recordBuilder{}, err
	}
	return recordBuilder{headers: headers, group: group}, nil
}

func (b recordBuilder) build(values []string) models.ResponseRecord {
	r := models.ResponseRecord{Answers: make(map[string]string, len(b.headers))}
	for i, h := range b.headers {
		if i >= len(values) {
			break
		}
		if i == b.group {
			r.Group = strings.TrimSpace(values[i])
			continue
		}
		r.Answers[h] = values[i]
	}
	return r
}
