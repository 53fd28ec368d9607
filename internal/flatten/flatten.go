// Package flatten reshapes previously generated CSV exports into
// spreadsheets: expanding a JSON-encoded column into sibling columns, and
// rendering the detailed export as a styled key/value workbook.
package flatten

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/joseph-ayodele/assay-extract/internal/common"
	"github.com/joseph-ayodele/assay-extract/internal/export"
)

// jsonColumn is the column holding one JSON-encoded object per row.
const jsonColumn = "structured_data"

// Flatten reads the CSV at csvPath, expands the structured_data column into
// sibling columns (dropping the original column), and writes the workbook at
// xlsxPath. Files without a structured_data column convert as-is. Expanded
// column order is base columns first, then JSON keys as first encountered.
func Flatten(csvPath, xlsxPath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	header, records, err := readCSV(csvPath)
	if err != nil {
		return err
	}

	jsonIdx := -1
	for i, name := range header {
		if name == jsonColumn {
			jsonIdx = i
			break
		}
	}

	if jsonIdx == -1 {
		logger.Info("flatten.passthrough", "path", csvPath, "rows", len(records))
		return writeRows(xlsxPath, header, asCells(records))
	}

	baseCols := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != jsonIdx {
			baseCols = append(baseCols, name)
		}
	}

	var jsonCols []string
	seen := map[string]bool{}
	expanded := make([]map[string]any, len(records))

	for r, rec := range records {
		flat := map[string]any{}
		if jsonIdx < len(rec) && rec[jsonIdx] != "" {
			var obj map[string]any
			if err := json.Unmarshal([]byte(rec[jsonIdx]), &obj); err != nil {
				logger.Warn("flatten.bad_json_cell", "row", r+1, "error", err)
			} else {
				flattenInto(flat, "", obj)
			}
		}
		for _, k := range sortedFlatKeys(flat) {
			if !seen[k] {
				seen[k] = true
				jsonCols = append(jsonCols, k)
			}
		}
		expanded[r] = flat
	}

	columns := append(append([]string{}, baseCols...), jsonCols...)
	rows := make([][]any, len(records))
	for r, rec := range records {
		row := make([]any, 0, len(columns))
		for i := range header {
			if i == jsonIdx {
				continue
			}
			if i < len(rec) {
				row = append(row, rec[i])
			} else {
				row = append(row, "")
			}
		}
		for _, k := range jsonCols {
			if v, ok := expanded[r][k]; ok {
				row = append(row, v)
			} else {
				row = append(row, "")
			}
		}
		rows[r] = row
	}

	logger.Info("flatten.ok", "path", csvPath, "rows", len(rows), "json_columns", len(jsonCols))
	return writeRows(xlsxPath, columns, rows)
}

// flattenInto expands nested objects with dotted key paths. Non-object
// leaves keep their decoded type; arrays are preserved as compact JSON text.
func flattenInto(into map[string]any, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flattenInto(into, key, t)
		case []any:
			b, err := json.Marshal(t)
			if err != nil {
				into[key] = fmt.Sprintf("%v", t)
			} else {
				into[key] = string(b)
			}
		default:
			into[key] = v
		}
	}
}

func sortedFlatKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("read csv: %s is empty", path)
	}
	return all[0], all[1:], nil
}

func asCells(records [][]string) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		rows[i] = row
	}
	return rows
}

func writeRows(path string, columns []string, rows [][]any) error {
	return export.WriteTable(path, "Sheet1", columns, rows)
}
