package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []models.SaleRecord {
	return []models.SaleRecord{
		{OrderID: "ORD-1", OrderDate: date(2024, 1, 5), Region: "Jakarta", Category: "Pakaian", Product: "Kaos Polos", Quantity: 2, UnitPrice: 100, Discount: 0.1, PaymentMethod: "E-Wallet", TotalAmount: 180, Month: "2024-01"},
		{OrderID: "ORD-2", OrderDate: date(2024, 2, 14), Region: "Bandung", Category: "Elektronik", Product: "Power Bank", Quantity: 1, UnitPrice: 280, Discount: 0, PaymentMethod: "COD", TotalAmount: 280, Month: "2024-02"},
		{OrderID: "ORD-3", OrderDate: date(2024, 2, 20), Region: "Jakarta", Category: "Elektronik", Product: "Mouse Wireless", Quantity: 3, UnitPrice: 150, Discount: 0.2, PaymentMethod: "Transfer Bank", TotalAmount: 360, Month: "2024-02"},
		{OrderID: "ORD-4", OrderDate: date(2024, 3, 1), Region: "Bandung", Category: "Pakaian", Product: "Kaos Polos", Quantity: 1, UnitPrice: 100, Discount: 0, PaymentMethod: "E-Wallet", TotalAmount: 100, Month: "2024-03"},
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	records := sampleRecords()
	start := date(2024, 2, 14)
	end := date(2024, 2, 20)

	got := Filter(records, Selection{Dates: DateRange{Start: &start, End: &end}})

	assert.Len(t, got, 2)
	for _, r := range got {
		assert.False(t, r.OrderDate.Before(start))
		assert.False(t, r.OrderDate.After(end))
	}
}

func TestFilterFullSetsMatchDateOnly(t *testing.T) {
	records := sampleRecords()
	start := date(2024, 1, 1)
	end := date(2024, 12, 31)
	dates := DateRange{Start: &start, End: &end}

	dateOnly := Filter(records, Selection{Dates: dates})
	full := Filter(records, Selection{
		Dates:      dates,
		Regions:    []string{"Jakarta", "Bandung"},
		Categories: []string{"Pakaian", "Elektronik"},
	})

	assert.Equal(t, len(dateOnly), len(full))
}

func TestFilterRegionAndCategoryIntersect(t *testing.T) {
	got := Filter(sampleRecords(), Selection{
		Regions:    []string{"Jakarta"},
		Categories: []string{"Elektronik"},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "ORD-3", got[0].OrderID)
}

func TestFilterHalfOpenRangeIgnoresDates(t *testing.T) {
	records := sampleRecords()
	start := date(2024, 2, 1)

	// Only one endpoint provided: date filtering must be bypassed, not fail.
	got := Filter(records, Selection{Dates: DateRange{Start: &start}})
	assert.Len(t, got, len(records))

	end := date(2024, 2, 1)
	got = Filter(records, Selection{Dates: DateRange{End: &end}})
	assert.Len(t, got, len(records))
}

func TestFilterEmptyResultIsNotError(t *testing.T) {
	got := Filter(sampleRecords(), Selection{Regions: []string{"Surabaya"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
