package fullcontent

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/assay-extract/internal/export"
)

const (
	xlsxSuffix  = "_fullcontent.xlsx"
	tableSuffix = "_fullcontent_table.csv"

	// Cap the raw dump at the XLSX cell character limit; excelize rejects
	// longer strings outright.
	rawDumpLimit = 32767
)

// OutputPaths derives the workbook and table paths from the input file.
func OutputPaths(inputPath string) (xlsxPath, tablePath string) {
	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return stem + xlsxSuffix, stem + tableSuffix
}

// WriteRawWorkbook writes text into a one-cell FullContent_Raw sheet, used
// both when no full-content section exists (the whole file, capped) and when
// recovery ended in the raw fallback.
func WriteRawWorkbook(path, text string) error {
	if len(text) > rawDumpLimit {
		cut := rawDumpLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return export.WriteTable(path, "FullContent_Raw",
		[]string{"FullContent_Raw"}, [][]any{{text}})
}

// WriteTableOutputs writes the recovered table as a formatted workbook plus
// a derived CSV.
func WriteTableOutputs(xlsxPath, csvPath string, t Table) error {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		rows[i] = cells
	}
	if err := export.WriteTable(xlsxPath, "FullContent", t.Columns, rows); err != nil {
		return err
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("create table csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write table csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write table csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
