// Package prediction loads the serialized sales regression bundle and turns
// user-chosen parameters into a feature row in the model's trained column
// order.
package prediction

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Model is the deserialized regression bundle: a fitted linear estimator,
// the ordered feature-name list it was trained with, and the base-date
// ordinal used during training to derive the date feature. The base date is
// informational at inference time and is not re-validated.
type Model struct {
	Features        []string  `json:"features"`
	Coefficients    []float64 `json:"coefficients"`
	Intercept       float64   `json:"intercept"`
	BaseDateOrdinal int       `json:"base_date_ordinal"`
}

var (
	mu     sync.Mutex
	cached *Model
)

// Load deserializes the model bundle at path and caches it for the process
// lifetime. A missing file, malformed JSON, or an unexpected bundle shape is
// a fatal startup error.
func Load(path string) (*Model, error) {
	mu.Lock()
	defer mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	m, err := readBundle(path)
	if err != nil {
		return nil, err
	}
	cached = m
	return cached, nil
}

func readBundle(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	return &m, nil
}

// Get returns the cached model. It is nil until Load (or Prime) has run.
func Get() *Model {
	mu.Lock()
	defer mu.Unlock()
	return cached
}

// Prime injects a model into the cache, replacing any previous one.
func Prime(m *Model) {
	mu.Lock()
	defer mu.Unlock()
	cached = m
}

func (m *Model) validate() error {
	if len(m.Features) == 0 {
		return fmt.Errorf("bundle has no feature list")
	}
	if len(m.Coefficients) != len(m.Features) {
		return fmt.Errorf("bundle has %d coefficients for %d features",
			len(m.Coefficients), len(m.Features))
	}
	return nil
}

// Predict evaluates the linear estimator on a single feature row.
func (m *Model) Predict(row []float64) (float64, error) {
	if len(row) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature row has %d values, model expects %d",
			len(row), len(m.Coefficients))
	}
	coefs := mat.NewVecDense(len(m.Coefficients), m.Coefficients)
	x := mat.NewVecDense(len(row), row)
	return mat.Dot(coefs, x) + m.Intercept, nil
}
