package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// ReadCSV parses a survey export with a header row.
// Short rows leave the trailing answers missing.
func ReadCSV(r io.Reader, s Schema) (models.ResponseSet, error) {
	reader := csv.NewReader(r)
	if s.Separator != 0 {
		reader.Comma = s.Separator
	}
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	builder, err := newRecordBuilder(headers, s)
	if err != nil {
		return nil, err
	}

	set := models.ResponseSet{}
	for line := 2; ; line++ {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		set = append(set, builder.build(values))
	}
	return set, nil
}

// LoadFile opens path (possibly archived) and reads it as CSV.
func LoadFile(path string, s Schema) (models.ResponseSet, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, s)
}
