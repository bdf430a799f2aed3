package prediction

import (
	"fmt"
	"time"
)

// Feature names the model bundle is trained with. They follow the dataset's
// column naming.
const (
	FeatureDateOrdinal = "Tanggal_Ordinal"
	FeatureQuantity    = "Jumlah"
	FeatureUnitPrice   = "Harga_Satuan"
	FeatureDiscount    = "Diskon"
	FeatureWeekday     = "Hari_Minggu"
	FeatureHour        = "Jam"
)

// FeatureOrder is the canonical column order bundles are written with.
// At inference time the order stored in the bundle wins, not this list.
var FeatureOrder = []string{
	FeatureDateOrdinal,
	FeatureQuantity,
	FeatureUnitPrice,
	FeatureDiscount,
	FeatureWeekday,
	FeatureHour,
}

// Input holds the user-chosen prediction parameters.
type Input struct {
	TargetDate   time.Time
	AvgQuantity  float64
	AvgUnitPrice float64
	AvgDiscount  float64
	Weekday      int // 0=Monday .. 6=Sunday
	Hour         int // 0..23
}

// PredictionError is a per-attempt failure during feature assembly or model
// evaluation. It is surfaced to the user as a warning; the process keeps
// accepting new input.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01
// (0001-01-01 has ordinal 1).
const unixEpochOrdinal = 719163

// DateOrdinal converts a date to its proleptic Gregorian ordinal day number,
// the encoding the model's date feature was trained with. Computed from Unix
// days because a time.Duration cannot span back to year 1.
func DateOrdinal(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Unix()/86400) + unixEpochOrdinal
}

// BuildFeatureRow assembles a single feature row with values placed in
// exactly the order given by features. Column identity is matched by name,
// so the row is correct regardless of the order the parameters arrived in.
func BuildFeatureRow(features []string, in Input) ([]float64, error) {
	if in.Weekday < 0 || in.Weekday > 6 {
		return nil, &PredictionError{Err: fmt.Errorf("weekday %d out of range 0-6", in.Weekday)}
	}
	if in.Hour < 0 || in.Hour > 23 {
		return nil, &PredictionError{Err: fmt.Errorf("hour %d out of range 0-23", in.Hour)}
	}

	values := map[string]float64{
		FeatureDateOrdinal: float64(DateOrdinal(in.TargetDate)),
		FeatureQuantity:    in.AvgQuantity,
		FeatureUnitPrice:   in.AvgUnitPrice,
		FeatureDiscount:    in.AvgDiscount,
		FeatureWeekday:     float64(in.Weekday),
		FeatureHour:        float64(in.Hour),
	}

	row := make([]float64, len(features))
	for i, name := range features {
		v, ok := values[name]
		if !ok {
			return nil, &PredictionError{Err: fmt.Errorf("model expects unknown feature %q", name)}
		}
		row[i] = v
	}
	return row, nil
}

// PredictSales assembles the feature row for in and evaluates the model on
// it, returning the predicted sales amount and the assembled row for
// display. Predictions are pure: identical inputs give identical results,
// and failures are never retried.
func (m *Model) PredictSales(in Input) (float64, []float64, error) {
	row, err := BuildFeatureRow(m.Features, in)
	if err != nil {
		return 0, nil, err
	}
	value, err := m.Predict(row)
	if err != nil {
		return 0, nil, &PredictionError{Err: err}
	}
	return value, row, nil
}
