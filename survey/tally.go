package survey

import (
	"fmt"
	"sort"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// Order selects how the entries of a distribution are arranged.
type Order int

const (
	// OrderDiscovery keeps first-seen categories first.
	OrderDiscovery Order = iota
	// OrderAscending sorts by count, smallest first. Ties keep discovery order.
	OrderAscending
	// OrderDescending sorts by count, largest first. Ties keep discovery order.
	OrderDescending
)

func (o Order) String() string {
	switch o {
	case OrderDiscovery:
		return "discovery"
	case OrderAscending:
		return "ascending"
	case OrderDescending:
		return "descending"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder maps a config value to an Order. Empty means discovery.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "discovery":
		return OrderDiscovery, nil
	case "ascending", "asc":
		return OrderAscending, nil
	case "descending", "desc":
		return OrderDescending, nil
	}
	return OrderDiscovery, fmt.Errorf("unknown order %q", s)
}

// Tally counts the non-missing values of field across set.
func Tally(set models.ResponseSet, field string, order Order) models.FrequencyDistribution {
	index := make(map[string]int)
	entries := make([]models.ValueCount, 0)

	for _, r := range set {
		v, ok := r.Answer(field)
		if !ok {
			continue
		}
		if i, exists := index[v]; exists {
			entries[i].Count++
			continue
		}
		index[v] = len(entries)
		entries = append(entries, models.ValueCount{Value: v, Count: 1})
	}

	switch order {
	case OrderAscending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count < entries[j].Count
		})
	case OrderDescending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	}

	return models.FrequencyDistribution{Field: field, Entries: entries}
}
