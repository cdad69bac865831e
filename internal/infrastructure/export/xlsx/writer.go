package xlsx

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	colWidth     = 18
	// excelize rejects longer sheet names
	maxSheetName = 31
)

var ErrNoSheets = errors.New("workbook needs at least one sheet")

type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Write saves sheets into a new workbook at path, one worksheet per sheet
// with a bold header row. Nil cells are left empty.
func Write(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sh := range sheets {
		name := sheetName(sh.Name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("failed to rename sheet %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, sh, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sh Sheet, headerStyle int) error {
	for i, col := range sh.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col); err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}
		if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("sheet %s header style: %w", name, err)
		}
	}

	for r, row := range sh.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, r+1, err)
			}
		}
	}

	if len(sh.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(sh.Columns))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, "A", last, colWidth); err != nil {
			return fmt.Errorf("sheet %s widths: %w", name, err)
		}
	}
	return nil
}

func sheetName(name string) string {
	if name == "" {
		name = "report"
	}
	if r := []rune(name); len(r) > maxSheetName {
		return string(r[:maxSheetName])
	}
	return name
}
