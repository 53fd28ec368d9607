// Package export writes tabular data to XLSX workbooks with the shared
// formatting every pipeline output uses: bold wrapped header, fitted column
// widths, frozen header row.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxColWidth = 80

// WriteTable writes a single-sheet workbook at path. Cell values keep their
// native type so numeric cells stay numeric in the spreadsheet.
func WriteTable(path, sheet string, columns []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("new sheet: %w", err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
	}

	for c, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := autoFormat(f, sheet, columns, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx save: %w", err)
	}
	return nil
}

func autoFormat(f *excelize.File, sheet string, columns []string, rows [][]any) error {
	if len(columns) == 0 {
		return nil
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			WrapText:   true,
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	if len(rows) > 0 {
		wrapStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return fmt.Errorf("wrap style: %w", err)
		}
		bottom, _ := excelize.CoordinatesToCellName(len(columns), len(rows)+1)
		if err := f.SetCellStyle(sheet, "A2", bottom, wrapStyle); err != nil {
			return fmt.Errorf("apply wrap style: %w", err)
		}
	}

	for c := range columns {
		width := len(columns[c])
		for _, row := range rows {
			if c < len(row) {
				if l := len(fmt.Sprintf("%v", row[c])); l > width {
					width = l
				}
			}
		}
		if width+2 < maxColWidth {
			width += 2
		} else {
			width = maxColWidth
		}
		name, _ := excelize.ColumnNumberToName(c + 1)
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}
	return nil
}
