package flatten

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/assay-extract/internal/common"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sheetRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestFlattenExpandsJSONColumn(t *testing.T) {
	csvPath := writeTempCSV(t, "structured.csv",
		"id,structured_data\n"+
			`r1,"{""a"":1}"`+"\n"+
			`r2,"{""a"":2}"`+"\n")
	xlsxPath := filepath.Join(filepath.Dir(csvPath), "out.xlsx")

	require.NoError(t, Flatten(csvPath, xlsxPath, slog.Default()))

	rows := sheetRows(t, xlsxPath, "Sheet1")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "a"}, rows[0])
	assert.NotContains(t, rows[0], "structured_data")
	assert.Equal(t, []string{"r1", "1"}, rows[1])
	assert.Equal(t, []string{"r2", "2"}, rows[2])
}

func TestFlattenNestedObjectsUseDottedPaths(t *testing.T) {
	csvPath := writeTempCSV(t, "nested.csv",
		"id,structured_data\n"+
			`r1,"{""meta"":{""model"":""M5""},""count"":3}"`+"\n")
	xlsxPath := filepath.Join(filepath.Dir(csvPath), "out.xlsx")

	require.NoError(t, Flatten(csvPath, xlsxPath, slog.Default()))

	rows := sheetRows(t, xlsxPath, "Sheet1")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"id", "count", "meta.model"}, rows[0])
	assert.Equal(t, []string{"r1", "3", "M5"}, rows[1])
}

func TestFlattenEmptyCellExpandsToNothing(t *testing.T) {
	csvPath := writeTempCSV(t, "gaps.csv",
		"id,structured_data\n"+
			`r1,"{""a"":1}"`+"\n"+
			"r2,\n")
	xlsxPath := filepath.Join(filepath.Dir(csvPath), "out.xlsx")

	require.NoError(t, Flatten(csvPath, xlsxPath, slog.Default()))

	rows := sheetRows(t, xlsxPath, "Sheet1")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "a"}, rows[0])
	assert.Equal(t, []string{"r1", "1"}, rows[1])
	// excelize trims trailing empty cells on read back
	assert.Equal(t, "r2", rows[2][0])
}

func TestFlattenWithoutJSONColumnPassesThrough(t *testing.T) {
	csvPath := writeTempCSV(t, "plain.csv", "x,y\n1,2\n")
	xlsxPath := filepath.Join(filepath.Dir(csvPath), "out.xlsx")

	require.NoError(t, Flatten(csvPath, xlsxPath, slog.Default()))

	rows := sheetRows(t, xlsxPath, "Sheet1")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"x", "y"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestFlattenMissingInput(t *testing.T) {
	err := Flatten(filepath.Join(t.TempDir(), "nope.csv"), "out.xlsx", slog.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestKeyValueWorkbook(t *testing.T) {
	csvPath := writeTempCSV(t, "detailed.csv",
		"Section,Category,Field,Value,Additional_Info\n"+
			"METADATA,PDF Info,format,PDF 1.4,\n"+
			"METADATA,=== PAGE 1 ===,,,\n"+
			"SETTINGS,Instrument,Temperature,25C,\n")
	xlsxPath := filepath.Join(filepath.Dir(csvPath), "kv.xlsx")

	require.NoError(t, KeyValueWorkbook(csvPath, xlsxPath))

	rows := sheetRows(t, xlsxPath, "PDF Content")
	require.Len(t, rows, 3)
	assert.Equal(t, "PDF Info | format", rows[0][0])
	assert.Equal(t, "PDF 1.4", rows[0][1])
	assert.Equal(t, "=== PAGE 1 ===", rows[1][0])
	assert.Equal(t, "Instrument | Temperature", rows[2][0])
	assert.Equal(t, "25C", rows[2][1])
}

func TestKeyValueWorkbookRejectsWrongShape(t *testing.T) {
	csvPath := writeTempCSV(t, "bad.csv", "A,B\n1,2\n")

	err := KeyValueWorkbook(csvPath, filepath.Join(filepath.Dir(csvPath), "kv.xlsx"))
	assert.Error(t, err)
}
