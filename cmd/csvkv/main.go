package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/assay-extract/internal/flatten"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: csvkv <detailed_export.csv>")
		os.Exit(1)
	}
	csvPath := os.Args[1]

	if _, err := os.Stat(csvPath); err != nil {
		logger.Error("input csv not found", "path", csvPath, "error", err)
		os.Exit(2)
	}

	xlsxPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + "_key_value.xlsx"
	if err := flatten.KeyValueWorkbook(csvPath, xlsxPath); err != nil {
		logger.Error("key/value conversion failed", "error", err)
		os.Exit(1)
	}
	logger.Info("workbook saved", "xlsx", xlsxPath)
}
