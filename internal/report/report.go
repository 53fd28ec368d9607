// Package report writes the extraction aggregate in its three on-disk
// formats: a JSON dump mirroring the in-memory result, a readable TXT with
// banner-separated sections, and a detailed CSV for spreadsheet work.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/assay-extract/internal/common"
	"github.com/joseph-ayodele/assay-extract/internal/extract"
)

// Paths lists the files written for one extraction run.
type Paths struct {
	JSON string
	TXT  string
	CSV  string
}

// WriteAll saves the result in all formats under outDir, creating it when
// absent. File names derive from the PDF base name, e.g. report.pdf yields
// report_complete.json, report_content.txt and report_data.csv.
func WriteAll(res *extract.Result, outDir string, logger *slog.Logger) (Paths, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(res.PDFPath), filepath.Ext(res.PDFPath))
	paths := Paths{
		JSON: filepath.Join(outDir, stem+"_complete.json"),
		TXT:  filepath.Join(outDir, stem+"_content.txt"),
		CSV:  filepath.Join(outDir, stem+"_data.csv"),
	}

	if err := writeJSON(res, paths.JSON); err != nil {
		return paths, common.WrapError(err, "json report")
	}
	logger.Info("report.json.saved", "path", paths.JSON)

	if err := writeTXT(res, paths.TXT); err != nil {
		return paths, common.WrapError(err, "txt report")
	}
	logger.Info("report.txt.saved", "path", paths.TXT)

	if err := writeCSV(res, paths.CSV); err != nil {
		return paths, common.WrapError(err, "csv report")
	}
	logger.Info("report.csv.saved", "path", paths.CSV)

	return paths, nil
}

func writeJSON(res *extract.Result, path string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// stringify renders a decoded JSON value for a CSV/TXT cell.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// preview returns the first n runes of s with a trailing ellipsis marker.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s + "..."
	}
	return string(r[:n]) + "..."
}
