package analytics

import (
	"log"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"app/models"
	"app/utils"
)

// DefaultTopProducts is the row limit of the top-products table.
const DefaultTopProducts = 10

// Summary computes the headline metrics over the filtered records. The
// order count is the number of distinct order ids; the average order value
// is 0 when there are no orders.
func Summary(records []models.SaleRecord) models.SalesSummary {
	var s models.SalesSummary
	orders := make(map[string]bool)

	for _, r := range records {
		s.TotalSales += r.TotalAmount
		s.TotalUnits += r.Quantity
		orders[r.OrderID] = true
	}
	s.OrderCount = len(orders)
	if s.OrderCount > 0 {
		s.AverageOrderValue = s.TotalSales / float64(s.OrderCount)
	}
	return s
}

// MonthlyTotals sums sales per month and returns the rows in chronological
// order. Month labels are ordered by their underlying date, never lexically,
// and re-rendered as YYYY-MM. Labels that fail to parse keep their original
// text and sort last.
func MonthlyTotals(records []models.SaleRecord) []models.MonthlyTotal {
	type monthRow struct {
		label  string
		date   time.Time
		parsed bool
		total  float64
	}

	index := make(map[string]int)
	rows := make([]monthRow, 0)

	for _, r := range records {
		i, ok := index[r.Month]
		if !ok {
			row := monthRow{label: r.Month}
			if d, err := utils.ParseMonth(r.Month); err == nil {
				row.date = d
				row.parsed = true
				row.label = d.Format("2006-01")
			} else {
				log.Printf("Unparseable month label %q, keeping as-is", r.Month)
			}
			index[r.Month] = len(rows)
			rows = append(rows, row)
			i = len(rows) - 1
		}
		rows[i].total += r.TotalAmount
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].parsed != rows[b].parsed {
			return rows[a].parsed
		}
		return rows[a].date.Before(rows[b].date)
	})

	out := make([]models.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.MonthlyTotal{Month: row.label, TotalSales: row.total})
	}
	return out
}

// TopProducts sums sales per product and returns the n largest, descending.
// Ties keep the order products were first encountered in.
func TopProducts(records []models.SaleRecord, n int) []models.ProductTotal {
	if n <= 0 {
		n = DefaultTopProducts
	}

	index := make(map[string]int)
	rows := make([]models.ProductTotal, 0)

	for _, r := range records {
		i, ok := index[r.Product]
		if !ok {
			index[r.Product] = len(rows)
			rows = append(rows, models.ProductTotal{Product: r.Product})
			i = len(rows) - 1
		}
		rows[i].TotalSales += r.TotalAmount
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].TotalSales > rows[b].TotalSales
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// CategoryShare sums sales per category, in first-encountered order.
func CategoryShare(records []models.SaleRecord) []models.CategoryTotal {
	index := make(map[string]int)
	rows := make([]models.CategoryTotal, 0)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			index[r.Category] = len(rows)
			rows = append(rows, models.CategoryTotal{Category: r.Category})
			i = len(rows) - 1
		}
		rows[i].TotalSales += r.TotalAmount
	}
	return rows
}

// PaymentMethodTotals sums sales per payment method, in first-encountered order.
func PaymentMethodTotals(records []models.SaleRecord) []models.PaymentMethodTotal {
	index := make(map[string]int)
	rows := make([]models.PaymentMethodTotal, 0)
	for _, r := range records {
		i, ok := index[r.PaymentMethod]
		if !ok {
			index[r.PaymentMethod] = len(rows)
			rows = append(rows, models.PaymentMethodTotal{PaymentMethod: r.PaymentMethod})
			i = len(rows) - 1
		}
		rows[i].TotalSales += r.TotalAmount
	}
	return rows
}

// RegionTotals sums sales per region, in first-encountered order.
func RegionTotals(records []models.SaleRecord) []models.RegionTotal {
	index := make(map[string]int)
	rows := make([]models.RegionTotal, 0)
	for _, r := range records {
		i, ok := index[r.Region]
		if !ok {
			index[r.Region] = len(rows)
			rows = append(rows, models.RegionTotal{Region: r.Region})
			i = len(rows) - 1
		}
		rows[i].TotalSales += r.TotalAmount
	}
	return rows
}

// Describe computes descriptive statistics for the numeric columns of the
// filtered records (quantity, unit price, discount, total amount). Zero-row
// input yields an empty table.
func Describe(records []models.SaleRecord) []models.NumericSummary {
	if len(records) == 0 {
		return []models.NumericSummary{}
	}

	columns := []struct {
		name   string
		values func(models.SaleRecord) float64
	}{
		{"quantity", func(r models.SaleRecord) float64 { return float64(r.Quantity) }},
		{"unitPrice", func(r models.SaleRecord) float64 { return r.UnitPrice }},
		{"discount", func(r models.SaleRecord) float64 { return r.Discount }},
		{"totalAmount", func(r models.SaleRecord) float64 { return r.TotalAmount }},
	}

	out := make([]models.NumericSummary, 0, len(columns))
	for _, col := range columns {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = col.values(r)
		}
		sort.Float64s(values)

		summary := models.NumericSummary{
			Column: col.name,
			Count:  len(values),
			Mean:   stat.Mean(values, nil),
			Min:    values[0],
			Q25:    stat.Quantile(0.25, stat.Empirical, values, nil),
			Median: stat.Quantile(0.5, stat.Empirical, values, nil),
			Q75:    stat.Quantile(0.75, stat.Empirical, values, nil),
			Max:    values[len(values)-1],
		}
		if len(values) > 1 {
			summary.Std = stat.StdDev(values, nil)
		}
		out = append(out, summary)
	}
	return out
}
