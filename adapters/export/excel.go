// Package export writes sweep tables to XLSX workbooks so the performance
// curves can be inspected or charted outside the engine.
package export

import (
	"fmt"

	"newsvendor/domain/model"
	"newsvendor/internal"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// WriteFillRateCurve writes a fill-rate curve to an XLSX file, one row per
// candidate quantity, ordered as given.
func WriteFillRateCurve(path string, points []model.FillRatePoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeHeader(f, "Quantity", "Fill Rate"); err != nil {
		return err
	}
	for i, pt := range points {
		row := i + 2
		if err := setRow(f, row, pt.Quantity, pt.FillRate); err != nil {
			return err
		}
	}

	return save(f, path, len(points))
}

// WriteProfitProfile writes a profit profile to an XLSX file, one row per
// candidate quantity, ordered as given.
func WriteProfitProfile(path string, points []model.ProfitPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	err := writeHeader(f, "Quantity", "Avg Profit", "Max Profit", "Min Profit",
		"Avg Units Sold", "Avg Lost Sales", "Avg Leftover")
	if err != nil {
		return err
	}
	for i, pt := range points {
		row := i + 2
		err := setRow(f, row, pt.Quantity, pt.AvgProfit, pt.MaxProfit,
			pt.MinProfit, pt.AvgUnitsSold, pt.AvgLostSales, pt.AvgLeftover)
		if err != nil {
			return err
		}
	}

	return save(f, path, len(points))
}

func writeHeader(f *excelize.File, headers ...string) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header %q: %w", h, err)
		}
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("row %d cell: %w", row, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}
	return nil
}

func save(f *excelize.File, path string, rows int) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	internal.DefaultLogger.Debug("wrote %d table rows to %s", rows, path)
	return nil
}
