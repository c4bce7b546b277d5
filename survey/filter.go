// Package survey narrows response sets by group and tallies categorical answers.
package survey

import (
	"sort"
	"strings"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// UnlabeledGroup replaces an absent group identifier so the record is neither
// dropped nor breaks catalog sorting.
const UnlabeledGroup = "unlabeled"

// GroupOf returns the record's group identifier or UnlabeledGroup.
func GroupOf(r models.ResponseRecord) string {
	g := strings.TrimSpace(r.Group)
	if g == "" {
		return UnlabeledGroup
	}
	return g
}

// Filter returns the records whose group is in selected, preserving order.
// An empty selection means "all groups" and returns set itself.
func Filter(set models.ResponseSet, selected []string) models.ResponseSet {
	allowed := toSet(selected)
	if len(allowed) == 0 {
		return set
	}

	out := make(models.ResponseSet, 0, len(set))
	for _, r := range set {
		if allowed[GroupOf(r)] {
			out = append(out, r)
		}
	}
	return out
}

// Catalog lists the distinct group identifiers of set, sorted lexicographically.
func Catalog(set models.ResponseSet) []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, r := range set {
		g := GroupOf(r)
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	sort.Strings(groups)
	return groups
}

// GroupSizes counts records per group, in catalog order.
func GroupSizes(set models.ResponseSet) []models.ValueCount {
	counts := make(map[string]int)
	for _, r := range set {
		counts[GroupOf(r)]++
	}
	catalog := Catalog(set)
	sizes := make([]models.ValueCount, len(catalog))
	for i, g := range catalog {
		sizes[i] = models.ValueCount{Value: g, Count: counts[g]}
	}
	return sizes
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = true
	}
	return set
}
