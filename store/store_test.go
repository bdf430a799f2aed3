package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

const sampleCSV = `OrderID,Tanggal_Pesanan,Wilayah,Kategori,Produk,Jumlah,Harga_Satuan,Diskon,Metode_Pembayaran,Total_Penjualan,Bulan
ORD-00001,2024-01-05,Jakarta,Pakaian,Kaos Polos,2,100.00,0.10,E-Wallet,180.00,2024-01
ORD-00002,2024-02-14,Bandung,Elektronik,Power Bank,1,280.00,0.00,COD,280.00,2024-02
ORD-00003,2024-03-20,Jakarta,Elektronik,Mouse Wireless,3,150.00,0.20,Transfer Bank,360.00,2024-03
`

func writeCSVFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retail_store.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	records, err := readCSV(writeCSVFile(t, sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "ORD-00001", first.OrderID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), first.OrderDate)
	assert.Equal(t, "Jakarta", first.Region)
	assert.Equal(t, "Pakaian", first.Category)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 100.0, first.UnitPrice)
	assert.Equal(t, 0.1, first.Discount)
	assert.Equal(t, 180.0, first.TotalAmount)
	assert.Equal(t, "2024-01", first.Month)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := readCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestReadCSVMissingColumn(t *testing.T) {
	csv := `OrderID,Wilayah
ORD-00001,Jakarta
`
	_, err := readCSV(writeCSVFile(t, csv))
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadCSVBadDate(t *testing.T) {
	csv := `OrderID,Tanggal_Pesanan,Wilayah,Kategori,Produk,Jumlah,Harga_Satuan,Diskon,Metode_Pembayaran,Total_Penjualan,Bulan
ORD-00001,not-a-date,Jakarta,Pakaian,Kaos Polos,2,100.00,0.10,E-Wallet,180.00,2024-01
`
	_, err := readCSV(writeCSVFile(t, csv))
	assert.Error(t, err)
}

func TestLoadCachesRecords(t *testing.T) {
	Prime(nil)
	path := writeCSVFile(t, sampleCSV)

	first, err := Load(path)
	require.NoError(t, err)

	// A second load must return the same in-memory slice without re-reading,
	// even if the file has gone away.
	require.NoError(t, os.Remove(path))
	second, err := Load(path)
	require.NoError(t, err)
	assert.Same(t, &first[0], &second[0])
}

func TestBounds(t *testing.T) {
	Prime([]models.SaleRecord{
		{OrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Region: "Bandung", Category: "Elektronik"},
		{OrderDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Region: "Jakarta", Category: "Pakaian"},
	})

	b := DatasetBounds()
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), b.MinDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), b.MaxDate)
	assert.Equal(t, []string{"Bandung", "Jakarta"}, b.Regions)
	assert.Equal(t, []string{"Elektronik", "Pakaian"}, b.Categories)
}
