package store

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/go-gota/gota/dataframe"

	"app/models"
	"app/utils"
)

// Column names as they appear in the shipped retail_store.csv. The dataset
// ships with Indonesian headers; this package owns the mapping to Go fields.
const (
	ColOrderID       = "OrderID"
	ColOrderDate     = "Tanggal_Pesanan"
	ColRegion        = "Wilayah"
	ColCategory      = "Kategori"
	ColProduct       = "Produk"
	ColQuantity      = "Jumlah"
	ColUnitPrice     = "Harga_Satuan"
	ColDiscount      = "Diskon"
	ColPaymentMethod = "Metode_Pembayaran"
	ColTotalAmount   = "Total_Penjualan"
	ColMonth         = "Bulan"
)

var requiredColumns = []string{
	ColOrderID, ColOrderDate, ColRegion, ColCategory, ColProduct,
	ColQuantity, ColUnitPrice, ColDiscount, ColPaymentMethod,
	ColTotalAmount, ColMonth,
}

// LoadError means an input file is missing or does not match the expected
// schema. It is fatal at startup.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Bounds describes the loaded dataset for the UI's filter widgets.
type Bounds struct {
	MinDate    time.Time
	MaxDate    time.Time
	Regions    []string
	Categories []string
}

var (
	mu           sync.Mutex
	cached       []models.SaleRecord
	cachedBounds Bounds
)

// Load reads the sales dataset from the CSV at path. The first successful
// call caches the records for the process lifetime; identical subsequent
// calls return the same in-memory slice without re-reading the file.
func Load(path string) ([]models.SaleRecord, error) {
	mu.Lock()
	defer mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cached = records
	cachedBounds = computeBounds(records)
	log.Printf("Loaded %d sale records from %s", len(records), path)
	return cached, nil
}

// Records returns the cached dataset. It is nil until Load (or Prime) has run.
func Records() []models.SaleRecord {
	mu.Lock()
	defer mu.Unlock()
	return cached
}

// DatasetBounds returns the date bounds and distinct dimension values of the
// cached dataset.
func DatasetBounds() Bounds {
	mu.Lock()
	defer mu.Unlock()
	return cachedBounds
}

// Prime injects an already-loaded record set into the cache, replacing any
// previous one. Tests and the Postgres source use it; the CSV path goes
// through Load.
func Prime(records []models.SaleRecord) {
	mu.Lock()
	defer mu.Unlock()
	cached = records
	cachedBounds = computeBounds(records)
}

func readCSV(path string) ([]models.SaleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true))
	if df.Error() != nil {
		return nil, &LoadError{Source: path, Err: df.Error()}
	}

	have := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range requiredColumns {
		if !have[name] {
			return nil, &LoadError{Source: path, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	n := df.Nrow()
	orderIDs := df.Col(ColOrderID).Records()
	dates := df.Col(ColOrderDate).Records()
	regions := df.Col(ColRegion).Records()
	categories := df.Col(ColCategory).Records()
	products := df.Col(ColProduct).Records()
	quantities := df.Col(ColQuantity).Float()
	unitPrices := df.Col(ColUnitPrice).Float()
	discounts := df.Col(ColDiscount).Float()
	payments := df.Col(ColPaymentMethod).Records()
	totals := df.Col(ColTotalAmount).Float()
	months := df.Col(ColMonth).Records()

	records := make([]models.SaleRecord, 0, n)
	for i := 0; i < n; i++ {
		orderDate, err := utils.ParseDate(dates[i])
		if err != nil {
			return nil, &LoadError{Source: path, Err: fmt.Errorf("row %d: bad %s value %q: %v", i+1, ColOrderDate, dates[i], err)}
		}
		records = append(records, models.SaleRecord{
			OrderID:       orderIDs[i],
			OrderDate:     orderDate,
			Region:        regions[i],
			Category:      categories[i],
			Product:       products[i],
			Quantity:      int(quantities[i]),
			UnitPrice:     unitPrices[i],
			Discount:      discounts[i],
			PaymentMethod: payments[i],
			TotalAmount:   totals[i],
			Month:         months[i],
		})
	}

	return records, nil
}

func computeBounds(records []models.SaleRecord) Bounds {
	var b Bounds
	regionSet := make(map[string]bool)
	categorySet := make(map[string]bool)

	for i, r := range records {
		if i == 0 || r.OrderDate.Before(b.MinDate) {
			b.MinDate = r.OrderDate
		}
		if i == 0 || r.OrderDate.After(b.MaxDate) {
			b.MaxDate = r.OrderDate
		}
		regionSet[r.Region] = true
		categorySet[r.Category] = true
	}

	for region := range regionSet {
		b.Regions = append(b.Regions, region)
	}
	for category := range categorySet {
		b.Categories = append(b.Categories, category)
	}
	sort.Strings(b.Regions)
	sort.Strings(b.Categories)
	return b
}
