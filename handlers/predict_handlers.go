package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/prediction"
	"app/utils"
)

// HandlePredictSales predicts the potential total sales for the given
// parameters using the loaded regression model. Failures during assembly or
// evaluation are reported as a warning in the response; the process keeps
// accepting new input and nothing is retried.
func HandlePredictSales(c *fiber.Ctx) error {
	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.TargetDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "targetDate is required",
		})
	}
	targetDate, err := utils.ParseDate(req.TargetDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid targetDate format",
		})
	}

	model := prediction.Get()
	if model == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Prediction model is not loaded",
		})
	}

	value, row, err := model.PredictSales(prediction.Input{
		TargetDate:   targetDate,
		AvgQuantity:  req.AvgQuantity,
		AvgUnitPrice: req.AvgUnitPrice,
		AvgDiscount:  req.AvgDiscount,
		Weekday:      req.DayOfWeek,
		Hour:         req.HourOfDay,
	})
	if err != nil {
		log.Printf("Prediction failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	features := make([]models.FeatureValue, len(row))
	for i, name := range model.Features {
		features[i] = models.FeatureValue{Name: name, Value: row[i]}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.PredictResponse{
			PredictedSales: value,
			Features:       features,
		},
	})
}
