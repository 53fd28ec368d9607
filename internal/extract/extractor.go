package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/assay-extract/internal/common"
	"github.com/joseph-ayodele/assay-extract/internal/llm"
	"github.com/joseph-ayodele/assay-extract/internal/pdf"
)

// Extractor runs the page-by-page vision extraction for one PDF.
// Pages are processed strictly sequentially; a failed page is recorded as an
// error placeholder and the run continues, so one bad page never aborts the
// document.
type Extractor struct {
	model llm.VisionModel
	dpi   float64
	log   *slog.Logger
}

func NewExtractor(model llm.VisionModel, dpi float64, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{model: model, dpi: dpi, log: logger}
}

// ExtractPDF renders every page, submits each to the vision model, merges
// the per-page substructures, and generates the document summary. It returns
// an error only when the PDF itself cannot be opened.
func (e *Extractor) ExtractPDF(ctx context.Context, pdfPath string) (*Result, error) {
	start := time.Now()
	e.log.Info("extract.start", "pdf", pdfPath)

	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, pdfPath)
	}

	probed := pdf.Probe(pdfPath, e.log)

	doc, err := pdf.Open(pdfPath, e.dpi)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.log.Warn("extract.close_error", "error", cerr)
		}
	}()

	res := newResult(pdfPath)
	res.Metadata = doc.Metadata()

	total := doc.NumPages()
	if pageCountMismatch(probed, total) {
		e.log.Warn("extract.page_count_mismatch", "probed", probed, "rendered", total)
	}
	e.log.Info("extract.pages", "count", total)

	for i := 0; i < total; i++ {
		pageNum := i + 1
		res.appendPage(e.analyzePage(ctx, doc, i))
		e.log.Info("extract.page.done", "page", pageNum)
	}

	e.merge(res)
	e.summarize(ctx, res)

	e.log.Info("extract.ok",
		"pdf", pdfPath,
		"pages", len(res.Pages),
		"wells", len(res.WellPlateData),
		"standards", len(res.StandardsTable),
		"samples", len(res.SamplesData),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) analyzePage(ctx context.Context, doc *pdf.Document, page int) PageRecord {
	pageNum := page + 1

	img, err := doc.RenderPNG(page)
	if err != nil {
		e.log.Error("extract.page.render_error", "page", pageNum, "error", err)
		return errorPage(pageNum, err)
	}

	text, err := e.model.AnalyzePage(ctx, img, pageNum)
	if err != nil {
		e.log.Error("extract.page.analyze_error", "page", pageNum, "error", err)
		return errorPage(pageNum, err)
	}

	return PageRecord{
		PageNumber:     pageNum,
		TextContent:    text,
		StructuredData: llm.DecodeStructured(text),
	}
}

// pageCountMismatch reports disagreement between the structural probe and
// the renderer. A zero probe means the probe itself failed and says nothing.
func pageCountMismatch(probed, rendered int) bool {
	return probed > 0 && probed != rendered
}

func errorPage(pageNum int, err error) PageRecord {
	return PageRecord{
		PageNumber:     pageNum,
		TextContent:    fmt.Sprintf("Error analyzing page %d: %v", pageNum, err),
		StructuredData: map[string]any{},
	}
}

func (r *Result) appendPage(p PageRecord) {
	r.Pages = append(r.Pages, p)
	r.FullContent += fmt.Sprintf("\n\n=== PAGE %d ===\n%s", p.PageNumber, p.TextContent)
}

func (e *Extractor) summarize(ctx context.Context, res *Result) {
	summary, err := e.model.Summarize(ctx, res.FullContent)
	if err != nil {
		e.log.Error("extract.summary_error", "error", err)
		res.Summary = fmt.Sprintf("Summary generation failed: %v", err)
		return
	}
	res.Summary = summary
}
