package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joseph-ayodele/assay-extract/internal/fullcontent"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: fullcontent <export.csv>")
		os.Exit(1)
	}
	inputPath := os.Args[1]

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		logger.Error("input file not found", "path", inputPath, "error", err)
		os.Exit(2)
	}

	xlsxPath, tablePath := fullcontent.OutputPaths(inputPath)
	lines := splitLines(string(raw))

	sec, found := fullcontent.Locate(lines)
	if !found {
		// Normal outcome for exports without the section; dump the whole
		// file so the run still produces a workbook.
		logger.Info("full content section not found, writing raw dump", "path", inputPath)
		if err := fullcontent.WriteRawWorkbook(xlsxPath, string(raw)); err != nil {
			logger.Error("write raw workbook", "error", err)
			os.Exit(1)
		}
		logger.Info("fallback workbook saved", "xlsx", xlsxPath)
		return
	}

	logger.Info("full content header detected",
		"line", sec.HeaderIndex, "header", sec.HeaderText, "body_lines", len(sec.Lines))

	table := fullcontent.Recover(sec.Lines)
	logger.Info("table recovery finished", "method", table.Method, "rows", len(table.Rows))

	if table.IsEmpty() {
		if err := fullcontent.WriteRawWorkbook(xlsxPath, strings.Join(sec.Lines, "\n")); err != nil {
			logger.Error("write raw workbook", "error", err)
			os.Exit(1)
		}
		logger.Info("raw full-content workbook saved", "xlsx", xlsxPath)
		return
	}

	if err := fullcontent.WriteTableOutputs(xlsxPath, tablePath, table); err != nil {
		logger.Error("write table outputs", "error", err)
		os.Exit(1)
	}
	logger.Info("recovered table saved", "xlsx", xlsxPath, "csv", tablePath, "method", table.Method)
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
