package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOrdinal(t *testing.T) {
	// Proleptic Gregorian ordinal: 0001-01-01 is day 1.
	assert.Equal(t, 1, DateOrdinal(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 719163, DateOrdinal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 739047, DateOrdinal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))

	// Time-of-day must not shift the day number.
	assert.Equal(t, 739047, DateOrdinal(time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)))
}

func TestBuildFeatureRowOrder(t *testing.T) {
	in := Input{
		TargetDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AvgQuantity:  2.0,
		AvgUnitPrice: 100.0,
		AvgDiscount:  0.1,
		Weekday:      0,
		Hour:         14,
	}

	row, err := BuildFeatureRow(FeatureOrder, in)
	require.NoError(t, err)
	assert.Equal(t, []float64{739047, 2.0, 100.0, 0.1, 0, 14}, row)
}

func TestBuildFeatureRowFollowsGivenOrder(t *testing.T) {
	// The bundle's column order wins, whatever order the values arrived in.
	in := Input{
		TargetDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AvgQuantity:  2.0,
		AvgUnitPrice: 100.0,
		AvgDiscount:  0.1,
		Weekday:      3,
		Hour:         8,
	}
	reversed := []string{FeatureHour, FeatureWeekday, FeatureDiscount, FeatureUnitPrice, FeatureQuantity, FeatureDateOrdinal}

	row, err := BuildFeatureRow(reversed, in)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 3, 0.1, 100.0, 2.0, 739047}, row)
}

func TestBuildFeatureRowUnknownFeature(t *testing.T) {
	_, err := BuildFeatureRow([]string{"No_Such_Feature"}, Input{TargetDate: time.Now()})
	require.Error(t, err)
	var perr *PredictionError
	assert.ErrorAs(t, err, &perr)
}

func TestBuildFeatureRowRangeChecks(t *testing.T) {
	in := Input{TargetDate: time.Now(), Weekday: 7}
	_, err := BuildFeatureRow(FeatureOrder, in)
	assert.Error(t, err)

	in = Input{TargetDate: time.Now(), Hour: 24}
	_, err = BuildFeatureRow(FeatureOrder, in)
	assert.Error(t, err)
}

func TestPredictSales(t *testing.T) {
	m := &Model{
		Features:     FeatureOrder,
		Coefficients: []float64{0, 10, 1, -100, 0, 0},
		Intercept:    5,
	}
	in := Input{
		TargetDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AvgQuantity:  2.0,
		AvgUnitPrice: 100.0,
		AvgDiscount:  0.1,
		Weekday:      0,
		Hour:         14,
	}

	value, row, err := m.PredictSales(in)
	require.NoError(t, err)
	assert.Len(t, row, 6)
	// 0*739047 + 10*2 + 1*100 + (-100)*0.1 + 0 + 0 + 5
	assert.InDelta(t, 115.0, value, 1e-9)
}

func TestPredictSalesIdempotent(t *testing.T) {
	m := &Model{Features: FeatureOrder, Coefficients: []float64{1, 1, 1, 1, 1, 1}}
	in := Input{TargetDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), AvgQuantity: 1}

	a, _, err := m.PredictSales(in)
	require.NoError(t, err)
	b, _, err := m.PredictSales(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPredictRowLengthMismatch(t *testing.T) {
	m := &Model{Features: []string{FeatureHour}, Coefficients: []float64{1}}
	_, err := m.Predict([]float64{1, 2})
	assert.Error(t, err)
}
