package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/config"
	"app/models"
	"app/prediction"
)

func newPredictApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/predict", HandlePredictSales)
	app.Post("/api/v1/insights", HandleGenerateInsights)
	return app
}

func seedModel() {
	prediction.Prime(&prediction.Model{
		Features:        prediction.FeatureOrder,
		Coefficients:    []float64{0, 100, 2, -500, 10, 1},
		Intercept:       50,
		BaseDateOrdinal: 738521,
	})
}

func TestPredictSales(t *testing.T) {
	seedModel()
	app := newPredictApp()

	body := `{
		"targetDate": "2024-06-10",
		"avgQuantity": 2.0,
		"avgUnitPrice": 100.0,
		"avgDiscount": 0.1,
		"dayOfWeek": 0,
		"hourOfDay": 14
	}`
	req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    models.PredictResponse `json:"data"`
	}
	decodeBody(t, resp.Body, &envelope)

	assert.True(t, envelope.Success)
	// 0*739047 + 100*2 + 2*100 + (-500)*0.1 + 10*0 + 1*14 + 50
	assert.InDelta(t, 414.0, envelope.Data.PredictedSales, 1e-9)

	require.Len(t, envelope.Data.Features, 6)
	assert.Equal(t, prediction.FeatureDateOrdinal, envelope.Data.Features[0].Name)
	assert.Equal(t, 739047.0, envelope.Data.Features[0].Value)
	assert.Equal(t, 14.0, envelope.Data.Features[5].Value)
}

func TestPredictSalesMissingDate(t *testing.T) {
	seedModel()
	app := newPredictApp()

	req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(`{"avgQuantity": 1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPredictSalesInvalidInputIsWarningNotCrash(t *testing.T) {
	seedModel()
	app := newPredictApp()

	body := `{"targetDate": "2024-06-10", "dayOfWeek": 9, "hourOfDay": 14}`
	req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, resp.Body, &envelope)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "prediction failed")

	// The process keeps accepting new input after a failed attempt.
	good := `{"targetDate": "2024-06-10", "avgQuantity": 1, "avgUnitPrice": 50, "dayOfWeek": 0, "hourOfDay": 9}`
	req = httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(good))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestInsightsUnconfigured(t *testing.T) {
	seedStore()
	config.AppConfig.GeminiAPIKey = ""
	app := newPredictApp()

	req := httptest.NewRequest("POST", "/api/v1/insights", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
