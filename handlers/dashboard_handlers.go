package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/models"
	"app/store"
	"app/utils"
)

// HandleGetFilterOptions returns the selectable filter values and date
// bounds of the loaded dataset for the UI's sidebar widgets, plus the
// dataset means the prediction form preloads its sliders with.
func HandleGetFilterOptions(c *fiber.Ctx) error {
	bounds := store.DatasetBounds()
	records := store.Records()

	var defaults models.PredictionDefaults
	if len(records) > 0 {
		for _, r := range records {
			defaults.AvgQuantity += float64(r.Quantity)
			defaults.AvgUnitPrice += r.UnitPrice
			defaults.AvgDiscount += r.Discount
		}
		n := float64(len(records))
		defaults.AvgQuantity /= n
		defaults.AvgUnitPrice /= n
		defaults.AvgDiscount /= n
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.FilterOptions{
			MinDate:            bounds.MinDate,
			MaxDate:            bounds.MaxDate,
			Regions:            bounds.Regions,
			Categories:         bounds.Categories,
			PredictionDefaults: defaults,
		},
	})
}

// HandleGetDashboardOverview returns the full data bundle for one render of
// the overview page. Every interaction is a fresh stateless request carrying
// the complete filter selection.
func HandleGetDashboardOverview(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}

	summary := analytics.Summary(filtered)
	resp := models.OverviewResponse{
		Filter:         appliedFilter(sel),
		Summary:        &summary,
		MonthlySales:   analytics.MonthlyTotals(filtered),
		TopProducts:    analytics.TopProducts(filtered, c.QueryInt("limit", analytics.DefaultTopProducts)),
		CategoryShare:  analytics.CategoryShare(filtered),
		PaymentMethods: analytics.PaymentMethodTotals(filtered),
		Regions:        analytics.RegionTotals(filtered),
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// HandleGetDashboardSummary returns the headline metrics for the current filters.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	return c.JSON(fiber.Map{"success": true, "data": analytics.Summary(filtered)})
}

// HandleGetMonthlySales returns the chronological monthly sales trend.
func HandleGetMonthlySales(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	return c.JSON(fiber.Map{"success": true, "data": analytics.MonthlyTotals(filtered)})
}

// HandleGetTopProducts returns the top products by total sales.
func HandleGetTopProducts(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	limit := c.QueryInt("limit", analytics.DefaultTopProducts)
	return c.JSON(fiber.Map{"success": true, "data": analytics.TopProducts(filtered, limit)})
}

// HandleGetCategoryShare returns total sales per product category.
func HandleGetCategoryShare(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	return c.JSON(fiber.Map{"success": true, "data": analytics.CategoryShare(filtered)})
}

// HandleGetPaymentMethodTotals returns total sales per payment method.
func HandleGetPaymentMethodTotals(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	return c.JSON(fiber.Map{"success": true, "data": analytics.PaymentMethodTotals(filtered)})
}

// HandleGetRegionTotals returns total sales per region.
func HandleGetRegionTotals(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}
	return c.JSON(fiber.Map{"success": true, "data": analytics.RegionTotals(filtered)})
}

// HandleGetRecords returns a paginated page of the filtered raw records plus
// descriptive statistics of the numeric columns (the raw-data explorer).
func HandleGetRecords(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}

	pagination := utils.CreatePagination(len(filtered), c.QueryInt("page", 1), c.QueryInt("pageSize", 50))
	start, end := pagination.Window()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"records":    filtered[start:end],
			"pagination": pagination,
			"describe":   analytics.Describe(filtered),
		},
	})
}
