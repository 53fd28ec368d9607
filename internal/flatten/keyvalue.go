package flatten

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/assay-extract/internal/common"
)

const kvSheet = "PDF Content"
const kvMaxWidth = 120

// KeyValueWorkbook renders a detailed export CSV (Section, Category, Field,
// Value, ...) as a two-column key/value sheet. Each row's key combines
// Category and Field; a Category starting with "===" marks a section header
// row, which gets its own banner styling.
func KeyValueWorkbook(csvPath, xlsxPath string) error {
	header, records, err := readCSV(csvPath)
	if err != nil {
		return err
	}

	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, need := range []string{"Category", "Field", "Value"} {
		if _, ok := col[need]; !ok {
			return common.NewAppError("CSV_SHAPE",
				fmt.Sprintf("column %q missing from %s", need, csvPath), common.ErrInvalidInput)
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", kvSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	keyStyle, sectionStyle, valueStyle, err := kvStyles(f)
	if err != nil {
		return err
	}

	cell := func(c, r int) string {
		name, _ := excelize.CoordinatesToCellName(c, r)
		return name
	}
	field := func(rec []string, name string) string {
		if i := col[name]; i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	row := 1
	for _, rec := range records {
		category := field(rec, "Category")
		if strings.HasPrefix(category, "===") {
			_ = f.SetCellValue(kvSheet, cell(1, row), category)
			_ = f.SetCellStyle(kvSheet, cell(1, row), cell(1, row), sectionStyle)
			row++
			continue
		}

		key := category
		if fv := field(rec, "Field"); fv != "" {
			key += " | " + fv
		}

		_ = f.SetCellValue(kvSheet, cell(1, row), key)
		_ = f.SetCellStyle(kvSheet, cell(1, row), cell(1, row), keyStyle)
		_ = f.SetCellValue(kvSheet, cell(2, row), field(rec, "Value"))
		_ = f.SetCellStyle(kvSheet, cell(2, row), cell(2, row), valueStyle)
		row++
	}

	if err := fitKVColumns(f); err != nil {
		return err
	}

	if err := f.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("xlsx save: %w", err)
	}
	return nil
}

func kvStyles(f *excelize.File) (keyStyle, sectionStyle, valueStyle int, err error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	wrap := &excelize.Alignment{WrapText: true, Vertical: "top"}

	keyStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: wrap,
		Border:    thin,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("key style: %w", err)
	}
	sectionStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: wrap,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("section style: %w", err)
	}
	valueStyle, err = f.NewStyle(&excelize.Style{
		Alignment: wrap,
		Border:    thin,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("value style: %w", err)
	}
	return keyStyle, sectionStyle, valueStyle, nil
}

func fitKVColumns(f *excelize.File) error {
	rows, err := f.GetRows(kvSheet)
	if err != nil {
		return fmt.Errorf("read back rows: %w", err)
	}
	for c := 1; c <= 2; c++ {
		maxLen := 0
		for _, row := range rows {
			if c-1 < len(row) && len(row[c-1]) > maxLen {
				maxLen = len(row[c-1])
			}
		}
		width := maxLen + 5
		if width > kvMaxWidth {
			width = kvMaxWidth
		}
		name, _ := excelize.ColumnNumberToName(c)
		if err := f.SetColWidth(kvSheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}
	return nil
}
