package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/analytics"
	"app/config"
	"app/models"
	"app/store"
)

// HandleGenerateInsights produces a qualitative AI analysis of the currently
// filtered sales data using the Gemini API.
// POST /api/v1/insights
func HandleGenerateInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "AI insights are not configured",
		})
	}

	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}

	prompt := constructInsightPrompt(
		analytics.Summary(filtered),
		analytics.MonthlyTotals(filtered),
		analytics.TopProducts(filtered, analytics.DefaultTopProducts),
		analytics.RegionTotals(filtered),
	)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to connect to AI service",
		})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate insights from AI",
		})
	}

	analysis, err := parseInsightResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.InsightResponse{
			ReportName:  "Sales Performance Insights",
			GeneratedAt: time.Now(),
			Period:      describePeriod(sel),
			AiAnalysis:  *analysis,
		},
	})
}

func describePeriod(sel analytics.Selection) string {
	if !sel.Dates.Complete() {
		return "all time"
	}
	return fmt.Sprintf("%s to %s",
		sel.Dates.Start.Format("2006-01-02"), sel.Dates.End.Format("2006-01-02"))
}

// constructInsightPrompt creates a detailed prompt for the Gemini API from
// the aggregated dashboard tables.
func constructInsightPrompt(summary models.SalesSummary, monthly []models.MonthlyTotal, top []models.ProductTotal, regions []models.RegionTotal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total sales: %.2f over %d orders (average order value %.2f, %d units sold).\n",
		summary.TotalSales, summary.OrderCount, summary.AverageOrderValue, summary.TotalUnits)

	sb.WriteString("Monthly sales totals:\n")
	for _, m := range monthly {
		fmt.Fprintf(&sb, "- %s: %.2f\n", m.Month, m.TotalSales)
	}
	sb.WriteString("Top products by sales:\n")
	for _, p := range top {
		fmt.Fprintf(&sb, "- %s: %.2f\n", p.Product, p.TotalSales)
	}
	sb.WriteString("Sales by region:\n")
	for _, r := range regions {
		fmt.Fprintf(&sb, "- %s: %.2f\n", r.Region, r.TotalSales)
	}

	jsonFormat := `{"summary":"string","positive_factors":["string",...],"negative_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Your task is to analyze the aggregated sales data below and provide a brief, actionable assessment of the store's performance.

        **Aggregated Sales Data:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, sb.String(), jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into a structured analysis.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*models.AiAnalysis, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}
	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var analysis models.AiAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI insight data")
	}
	return &analysis, nil
}
