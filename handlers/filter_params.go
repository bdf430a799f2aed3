package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/models"
	"app/utils"
)

// parseSelection reads the filter query parameters shared by all dashboard
// endpoints. An unparseable or half-open date range degrades to "no date
// constraint" instead of failing, matching the date picker handing over a
// single endpoint mid-selection. Absent regions/categories mean "all".
func parseSelection(c *fiber.Ctx) analytics.Selection {
	var sel analytics.Selection

	if s := c.Query("startDate"); s != "" {
		if t, err := utils.ParseDate(s); err == nil {
			sel.Dates.Start = &t
		}
	}
	if s := c.Query("endDate"); s != "" {
		if t, err := utils.ParseDate(s); err == nil {
			sel.Dates.End = &t
		}
	}
	sel.Regions = splitList(c.Query("regions"))
	sel.Categories = splitList(c.Query("categories"))
	return sel
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func appliedFilter(sel analytics.Selection) models.AppliedFilter {
	return models.AppliedFilter{
		StartDate:  sel.Dates.Start,
		EndDate:    sel.Dates.End,
		Regions:    sel.Regions,
		Categories: sel.Categories,
	}
}

const emptyResultWarning = "No data is available for the selected filters. Please adjust the filters."

// respondEmptyResult reports the empty-filter state. It is not an error:
// the client stops rendering the dependent sections and shows the warning.
func respondEmptyResult(c *fiber.Ctx, sel analytics.Selection) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": models.OverviewResponse{
			Filter:  appliedFilter(sel),
			Empty:   true,
			Warning: emptyResultWarning,
		},
	})
}
