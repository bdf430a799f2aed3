package models

import "time"

// AppliedFilter echoes back the selection a dashboard response was built from.
type AppliedFilter struct {
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Regions    []string   `json:"regions,omitempty"`
	Categories []string   `json:"categories,omitempty"`
}

// OverviewResponse is the full data bundle for one render of the overview
// page. When Empty is true the filter matched no records and all tables are
// omitted; the client should show Warning instead of the charts.
type OverviewResponse struct {
	Filter         AppliedFilter        `json:"filter"`
	Empty          bool                 `json:"empty"`
	Warning        string               `json:"warning,omitempty"`
	Summary        *SalesSummary        `json:"summary,omitempty"`
	MonthlySales   []MonthlyTotal       `json:"monthlySales,omitempty"`
	TopProducts    []ProductTotal       `json:"topProducts,omitempty"`
	CategoryShare  []CategoryTotal      `json:"categoryShare,omitempty"`
	PaymentMethods []PaymentMethodTotal `json:"paymentMethods,omitempty"`
	Regions        []RegionTotal        `json:"regions,omitempty"`
}

// FilterOptions feeds the dashboard's filter widgets: the selectable values
// and the date bounds of the loaded dataset, plus the dataset means the
// prediction form uses as slider defaults.
type FilterOptions struct {
	MinDate            time.Time          `json:"minDate"`
	MaxDate            time.Time          `json:"maxDate"`
	Regions            []string           `json:"regions"`
	Categories         []string           `json:"categories"`
	PredictionDefaults PredictionDefaults `json:"predictionDefaults"`
}

// PredictionDefaults are dataset-wide averages preloaded into the
// prediction form.
type PredictionDefaults struct {
	AvgQuantity  float64 `json:"avgQuantity"`
	AvgUnitPrice float64 `json:"avgUnitPrice"`
	AvgDiscount  float64 `json:"avgDiscount"`
}

// AiAnalysis contains the qualitative insights from the Gemini model.
type AiAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// InsightResponse is the complete structure for the AI insight API response.
type InsightResponse struct {
	ReportName  string     `json:"reportName"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Period      string     `json:"period"`
	AiAnalysis  AiAnalysis `json:"aiAnalysis"`
}
