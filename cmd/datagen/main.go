// Command datagen generates the sample retail dataset and fits the linear
// regression bundle the dashboard serves predictions from. It writes both
// input files the server expects at their default relative paths.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"app/config"
	"app/prediction"
)

var (
	dataPath  = flag.String("data", config.DefaultDataPath, "output path for the dataset CSV")
	modelPath = flag.String("model", config.DefaultModelPath, "output path for the model bundle JSON")
	orders    = flag.Int("orders", 1200, "number of orders to generate")
	seed      = flag.Int64("seed", 42, "random seed")
)

type product struct {
	name      string
	category  string
	basePrice float64
}

var products = []product{
	{"Kaos Polos", "Pakaian", 90},
	{"Kemeja Batik", "Pakaian", 260},
	{"Celana Jeans", "Pakaian", 320},
	{"Sepatu Sneakers", "Pakaian", 480},
	{"Headset Bluetooth", "Elektronik", 350},
	{"Power Bank", "Elektronik", 280},
	{"Mouse Wireless", "Elektronik", 150},
	{"Keyboard Mekanik", "Elektronik", 620},
	{"Blender Mini", "Rumah Tangga", 240},
	{"Set Panci", "Rumah Tangga", 410},
	{"Lampu Meja", "Rumah Tangga", 130},
	{"Novel Fiksi", "Buku", 95},
	{"Buku Resep", "Buku", 120},
	{"Serum Wajah", "Kecantikan", 180},
	{"Paket Skincare", "Kecantikan", 390},
}

var regions = []string{"Jakarta", "Bandung", "Surabaya", "Medan", "Makassar"}

var paymentMethods = []string{"Transfer Bank", "Kartu Kredit", "E-Wallet", "COD"}

type order struct {
	id       string
	date     time.Time
	region   string
	category string
	product  string
	quantity int
	price    float64
	discount float64
	payment  string
	total    float64
	hour     int
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours()/24) + 1

	generated := make([]order, 0, *orders)
	for i := 0; i < *orders; i++ {
		date := start.AddDate(0, 0, rng.Intn(days))

		// Mild yearly seasonality plus a weekend bump.
		weight := 1 + 0.3*math.Sin(2*math.Pi*float64(date.YearDay())/365)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weight += 0.2
		}

		p := products[rng.Intn(len(products))]
		quantity := 1 + rng.Intn(5)
		price := p.basePrice * (0.9 + 0.2*rng.Float64()) * weight
		discount := math.Round(rng.Float64()*20) / 100 // 0.00 .. 0.20

		generated = append(generated, order{
			id:       fmt.Sprintf("ORD-%05d", i+1),
			date:     date,
			region:   regions[rng.Intn(len(regions))],
			category: p.category,
			product:  p.name,
			quantity: quantity,
			price:    math.Round(price*100) / 100,
			discount: discount,
			payment:  paymentMethods[rng.Intn(len(paymentMethods))],
			hour:     9 + rng.Intn(13), // store hours 9..21
		})
		o := &generated[len(generated)-1]
		o.total = math.Round(float64(o.quantity)*o.price*(1-o.discount)*100) / 100
	}

	if err := writeCSV(*dataPath, generated); err != nil {
		log.Fatalf("datagen failed: %v", err)
	}
	log.Printf("Wrote %d orders to %s", len(generated), *dataPath)

	bundle, err := fitModel(generated, start)
	if err != nil {
		log.Fatalf("datagen failed: %v", err)
	}
	if err := writeBundle(*modelPath, bundle); err != nil {
		log.Fatalf("datagen failed: %v", err)
	}
	log.Printf("Wrote model bundle to %s", *modelPath)
}

func writeCSV(path string, generated []order) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"OrderID", "Tanggal_Pesanan", "Wilayah", "Kategori", "Produk",
		"Jumlah", "Harga_Satuan", "Diskon", "Metode_Pembayaran",
		"Total_Penjualan", "Bulan",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, o := range generated {
		row := []string{
			o.id,
			o.date.Format("2006-01-02"),
			o.region,
			o.category,
			o.product,
			strconv.Itoa(o.quantity),
			strconv.FormatFloat(o.price, 'f', 2, 64),
			strconv.FormatFloat(o.discount, 'f', 2, 64),
			o.payment,
			strconv.FormatFloat(o.total, 'f', 2, 64),
			o.date.Format("2006-01"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// fitModel solves the least-squares fit of total sales on the six model
// features and returns the serializable bundle. The first design column is
// the intercept.
func fitModel(generated []order, baseDate time.Time) (*prediction.Model, error) {
	n := len(generated)
	p := len(prediction.FeatureOrder)
	if n < p+1 {
		return nil, fmt.Errorf("need at least %d orders to fit, have %d", p+1, n)
	}

	X := mat.NewDense(n, p+1, nil)
	y := mat.NewDense(n, 1, nil)
	for i, o := range generated {
		weekday := (int(o.date.Weekday()) + 6) % 7 // Monday=0
		X.SetRow(i, []float64{
			1,
			float64(prediction.DateOrdinal(o.date)),
			float64(o.quantity),
			o.price,
			o.discount,
			float64(weekday),
			float64(o.hour),
		})
		y.Set(i, 0, o.total)
	}

	var qr mat.QR
	qr.Factorize(X)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("least squares solve: %w", err)
	}

	coefs := make([]float64, p)
	for j := 0; j < p; j++ {
		coefs[j] = beta.At(j+1, 0)
	}

	return &prediction.Model{
		Features:        prediction.FeatureOrder,
		Coefficients:    coefs,
		Intercept:       beta.At(0, 0),
		BaseDateOrdinal: prediction.DateOrdinal(baseDate),
	}, nil
}

func writeBundle(path string, m *prediction.Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
