package models

import "time"

// --- Core Models ---

// SaleRecord is a single order line from the retail dataset. The stored
// TotalAmount already includes the discount (quantity x unit price x (1 - discount))
// and is treated as authoritative; it is never re-derived here.
type SaleRecord struct {
	OrderID       string    `json:"orderId"`
	OrderDate     time.Time `json:"orderDate"`
	Region        string    `json:"region"`
	Category      string    `json:"category"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unitPrice"`
	Discount      float64   `json:"discount"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   float64   `json:"totalAmount"`
	Month         string    `json:"month"`
}

// --- Aggregated Tables ---

// SalesSummary holds the headline metrics shown at the top of the overview page.
type SalesSummary struct {
	TotalSales        float64 `json:"totalSales"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalUnits        int     `json:"totalUnits"`
}

// MonthlyTotal is one point of the monthly sales trend, in chronological order.
type MonthlyTotal struct {
	Month      string  `json:"month"`
	TotalSales float64 `json:"totalSales"`
}

// ProductTotal is one row of the top-products table.
type ProductTotal struct {
	Product    string  `json:"product"`
	TotalSales float64 `json:"totalSales"`
}

// CategoryTotal is one slice of the category share chart.
type CategoryTotal struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"totalSales"`
}

// PaymentMethodTotal is one bar of the payment method chart.
type PaymentMethodTotal struct {
	PaymentMethod string  `json:"paymentMethod"`
	TotalSales    float64 `json:"totalSales"`
}

// RegionTotal is one bar of the regional sales chart.
type RegionTotal struct {
	Region     string  `json:"region"`
	TotalSales float64 `json:"totalSales"`
}

// NumericSummary describes one numeric column of the filtered dataset
// (count, mean, std, min, quartiles, max), as shown in the raw-data explorer.
type NumericSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// --- Prediction API ---

// PredictRequest is the body of POST /api/v1/predict.
type PredictRequest struct {
	TargetDate   string  `json:"targetDate"`
	AvgQuantity  float64 `json:"avgQuantity"`
	AvgUnitPrice float64 `json:"avgUnitPrice"`
	AvgDiscount  float64 `json:"avgDiscount"`
	DayOfWeek    int     `json:"dayOfWeek"` // 0=Monday .. 6=Sunday
	HourOfDay    int     `json:"hourOfDay"` // 0..23
}

// FeatureValue is one assembled model input, echoed back for display.
type FeatureValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PredictResponse carries the predicted sales amount and the feature row
// that produced it, in the model's trained column order.
type PredictResponse struct {
	PredictedSales float64        `json:"predictedSales"`
	Features       []FeatureValue `json:"features"`
}
