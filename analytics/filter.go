// Package analytics implements the filter engine and the aggregation
// builders behind the dashboard. Everything here is a pure function over a
// slice of sale records; nothing mutates the cached dataset.
package analytics

import (
	"time"

	"app/models"
)

// DateRange is a closed interval [Start, End]. A range with either endpoint
// missing is treated as "no date constraint" rather than an error: the date
// picker hands over a single endpoint while the user is mid-selection, and
// filtering must degrade instead of failing.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Complete reports whether both endpoints are present.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Selection is the full filter state of one dashboard interaction.
// Empty Regions or Categories mean "all".
type Selection struct {
	Dates      DateRange
	Regions    []string
	Categories []string
}

// Filter returns the records matching the selection. A record passes when
// its order date falls inside the (complete) date range, its region is in
// the region set, and its category is in the category set. The result may
// be empty; callers must treat that as a distinct state and halt dependent
// rendering, not as an error.
func Filter(records []models.SaleRecord, sel Selection) []models.SaleRecord {
	regionSet := toSet(sel.Regions)
	categorySet := toSet(sel.Categories)
	byDate := sel.Dates.Complete()

	filtered := make([]models.SaleRecord, 0, len(records))
	for _, r := range records {
		if byDate {
			if r.OrderDate.Before(*sel.Dates.Start) || r.OrderDate.After(*sel.Dates.End) {
				continue
			}
		}
		if regionSet != nil && !regionSet[r.Region] {
			continue
		}
		if categorySet != nil && !categorySet[r.Category] {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
