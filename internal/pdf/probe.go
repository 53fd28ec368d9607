package pdf

import (
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Probe runs a relaxed structural validation and reports the page count
// before any page is rendered. Instrument exports are frequently produced by
// printer drivers that bend the PDF format, so validation failures are logged and
// tolerated rather than fatal; a zero page count means the probe failed.
func Probe(path string, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		logger.Warn("pdf.probe.validation_failed", "path", path, "error", err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		logger.Warn("pdf.probe.page_count_failed", "path", path, "error", err)
		return 0
	}
	logger.Info("pdf.probe.ok", "path", path, "pages", pages)
	return pages
}
