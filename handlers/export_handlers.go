package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"app/analytics"
	"app/store"
)

const exportSheet = "Sheet1"

var exportHeader = []string{
	"OrderID", "OrderDate", "Region", "Category", "Product",
	"Quantity", "UnitPrice", "Discount", "PaymentMethod", "TotalAmount", "Month",
}

// HandleExportSales streams the currently filtered records as an .xlsx
// workbook.
// GET /api/v1/export
func HandleExportSales(c *fiber.Ctx) error {
	sel := parseSelection(c)
	filtered := analytics.Filter(store.Records(), sel)
	if len(filtered) == 0 {
		return respondEmptyResult(c, sel)
	}

	f := excelize.NewFile()
	defer f.Close()

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return exportError(c, err)
		}
		if err := f.SetCellValue(exportSheet, cell, name); err != nil {
			return exportError(c, err)
		}
	}

	for i, r := range filtered {
		values := []interface{}{
			r.OrderID, r.OrderDate.Format("2006-01-02"), r.Region, r.Category,
			r.Product, r.Quantity, r.UnitPrice, r.Discount, r.PaymentMethod,
			r.TotalAmount, r.Month,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return exportError(c, err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return exportError(c, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return exportError(c, err)
	}

	filename := fmt.Sprintf("sales_export_%d_rows.xlsx", len(filtered))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func exportError(c *fiber.Ctx, err error) error {
	log.Printf("Export failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to build export workbook",
	})
}
