package services

import (
	"context"
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

// ExportStatistics writes the current order statistics as an xlsx workbook.
func (s *OrderService) ExportStatistics(ctx context.Context, w io.Writer) error {
	stats, err := s.ComputeOrderStatistics(ctx)
	if err != nil {
		return err
	}
	return WriteStatisticsWorkbook(stats, w)
}

func WriteStatisticsWorkbook(stats models.OrderStatistics, w io.Writer) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Categories")
	if err != nil {
		return fmt.Errorf("add categories sheet: %w", err)
	}
	header := sheet.AddRow()
	for _, h := range []string{"Category", "Count", "Total Price"} {
		header.AddCell().SetString(h)
	}
	for _, ct := range stats.CategoryTotals {
		row := sheet.AddRow()
		row.AddCell().SetString(ct.Category)
		row.AddCell().SetInt(ct.Count)
		row.AddCell().SetFloat(ct.TotalPrice)
	}

	best, err := file.AddSheet("Best Seller")
	if err != nil {
		return fmt.Errorf("add best seller sheet: %w", err)
	}
	header = best.AddRow()
	for _, h := range []string{"Item", "Category", "Count", "Total Price", "Menu ID"} {
		header.AddCell().SetString(h)
	}
	if b := stats.BestSeller; b != nil {
		row := best.AddRow()
		row.AddCell().SetString(b.Name)
		row.AddCell().SetString(b.Category)
		row.AddCell().SetInt(b.Count)
		row.AddCell().SetFloat(b.TotalPrice)
		row.AddCell().SetString(b.Item.MenuID)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
