package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/assay-extract/internal/common"
	"github.com/joseph-ayodele/assay-extract/internal/extract"
	"github.com/joseph-ayodele/assay-extract/internal/llm/anthropic"
	"github.com/joseph-ayodele/assay-extract/internal/report"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: assay-extract <report.pdf> [output-dir]")
		os.Exit(1)
	}
	pdfPath := os.Args[1]
	outDir := "output"
	if len(os.Args) >= 3 {
		outDir = os.Args[2]
	}

	if _, err := os.Stat(pdfPath); err != nil {
		logger.Error("input pdf not found", "path", pdfPath, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	client := anthropic.NewClient(anthropic.Config{
		APIKey:           cfg.LLM.APIKey,
		BaseURL:          cfg.LLM.BaseURL,
		Model:            cfg.LLM.Model,
		MaxTokens:        cfg.LLM.MaxTokens,
		SummaryMaxTokens: cfg.LLM.SummaryMaxTokens,
		Timeout:          cfg.LLM.Timeout,
	}, logger)

	extractor := extract.NewExtractor(client, cfg.Render.DPI, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := extractor.ExtractPDF(ctx, pdfPath)
	if err != nil {
		logger.Error("extraction failed", "pdf", pdfPath, "error", err)
		os.Exit(1)
	}

	paths, err := report.WriteAll(res, outDir, logger)
	if err != nil {
		logger.Error("write outputs", "error", err)
		os.Exit(1)
	}

	logger.Info("extraction complete",
		"pdf", pdfPath,
		"pages", len(res.Pages),
		"wells", len(res.WellPlateData),
		"standards", len(res.StandardsTable),
		"samples", len(res.SamplesData),
		"json", paths.JSON,
		"txt", paths.TXT,
		"csv", paths.CSV,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
