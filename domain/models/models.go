package models

import "strings"

// ResponseRecord is one survey submission. Group is empty when the source row
// had no group identifier.
type ResponseRecord struct {
	Group   string
	Answers map[string]string
}

// Answer returns the trimmed value of field and whether it is present.
// Absent keys and blank values are both missing.
func (r ResponseRecord) Answer(field string) (string, bool) {
	v, ok := r.Answers[field]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// ResponseSet is an ordered collection of records sharing one schema.
// It is never mutated once ingested.
type ResponseSet []ResponseRecord

type ValueCount struct {
	Value string
	Count int
}

// FrequencyDistribution maps observed category values of one field to counts,
// in the order chosen by the tally.
type FrequencyDistribution struct {
	Field   string
	Entries []ValueCount
}

func (d FrequencyDistribution) Len() int {
	return len(d.Entries)
}

func (d FrequencyDistribution) IsEmpty() bool {
	return d.Total() == 0
}

// Total is the sum of counts, equal to the number of non-missing values.
func (d FrequencyDistribution) Total() int {
	total := 0
	for _, e := range d.Entries {
		total += e.Count
	}
	return total
}

// Get returns the count for value, zero when it was never observed.
func (d FrequencyDistribution) Get(value string) int {
	for _, e := range d.Entries {
		if e.Value == value {
			return e.Count
		}
	}
	return 0
}

type WordFrequency struct {
	Word  string
	Count int
}
