package extract

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/assay-extract/internal/common"
)

type fakeModel struct {
	pageText   string
	pageErr    error
	summary    string
	summaryErr error
}

func (f *fakeModel) AnalyzePage(_ context.Context, _ []byte, _ int) (string, error) {
	return f.pageText, f.pageErr
}

func (f *fakeModel) Summarize(_ context.Context, _ string) (string, error) {
	return f.summary, f.summaryErr
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func pageWith(num int, data map[string]any) PageRecord {
	return PageRecord{PageNumber: num, TextContent: "page text", StructuredData: data}
}

func TestMergeProbesAlternativeKeys(t *testing.T) {
	e := NewExtractor(nil, 0, slog.Default())
	res := newResult("r.pdf")
	res.Pages = []PageRecord{
		pageWith(1, map[string]any{
			"well_plate_data": []any{map[string]any{"well": "A1"}},
			"settings":        map[string]any{"pmt": "high"},
			"standards_table": []any{map[string]any{"sample": "Std1"}},
		}),
		pageWith(2, map[string]any{
			"wells":               []any{map[string]any{"well": "A2"}},
			"instrument_settings": map[string]any{"flashes": float64(6)},
			"standards":           []any{map[string]any{"sample": "Std2"}},
			"sample_data":         []any{map[string]any{"name": "S1"}},
		}),
	}

	e.merge(res)

	require.Len(t, res.WellPlateData, 2)
	assert.Equal(t, map[string]any{"well": "A1"}, res.WellPlateData[0])
	assert.Equal(t, map[string]any{"well": "A2"}, res.WellPlateData[1])
	require.Len(t, res.StandardsTable, 2)
	require.Len(t, res.SamplesData, 1)
	assert.Equal(t, "high", res.Settings["pmt"])
	assert.Equal(t, float64(6), res.Settings["flashes"])
}

func TestMergePrimaryKeyWinsOverAlternate(t *testing.T) {
	e := NewExtractor(nil, 0, slog.Default())
	res := newResult("r.pdf")
	res.Pages = []PageRecord{
		pageWith(1, map[string]any{
			"well_plate_data": []any{map[string]any{"well": "A1"}},
			"wells":           []any{map[string]any{"well": "ignored"}},
		}),
	}

	e.merge(res)

	require.Len(t, res.WellPlateData, 1)
	assert.Equal(t, map[string]any{"well": "A1"}, res.WellPlateData[0])
}

func TestMergeLogsUnrecognizedKeys(t *testing.T) {
	var buf bytes.Buffer
	e := NewExtractor(nil, 0, testLogger(&buf))
	res := newResult("r.pdf")
	res.Pages = []PageRecord{
		pageWith(1, map[string]any{
			"wells":       []any{},
			"mystery_key": "whatever",
			"raw_content": "ignored, recognized",
		}),
	}

	e.merge(res)

	out := buf.String()
	assert.Contains(t, out, "extract.merge.unrecognized_key")
	assert.Contains(t, out, "mystery_key")
	assert.NotContains(t, out, "key=raw_content")
}

func TestMergeWrapsNonListValue(t *testing.T) {
	var buf bytes.Buffer
	e := NewExtractor(nil, 0, testLogger(&buf))
	res := newResult("r.pdf")
	res.Pages = []PageRecord{
		pageWith(1, map[string]any{
			"wells": map[string]any{"well": "A1"},
		}),
	}

	e.merge(res)

	require.Len(t, res.WellPlateData, 1)
	assert.Contains(t, buf.String(), "extract.merge.non_list_value")
}

func TestSettingsLaterPagesOverride(t *testing.T) {
	e := NewExtractor(nil, 0, slog.Default())
	res := newResult("r.pdf")
	res.Pages = []PageRecord{
		pageWith(1, map[string]any{"settings": map[string]any{"temp": "25C", "pmt": "low"}}),
		pageWith(2, map[string]any{"settings": map[string]any{"pmt": "high"}}),
	}

	e.merge(res)

	assert.Equal(t, "25C", res.Settings["temp"])
	assert.Equal(t, "high", res.Settings["pmt"])
}

func TestAppendPageAccumulatesFullContent(t *testing.T) {
	res := newResult("r.pdf")
	res.appendPage(PageRecord{PageNumber: 1, TextContent: "first"})
	res.appendPage(PageRecord{PageNumber: 2, TextContent: "second"})

	assert.Equal(t, "\n\n=== PAGE 1 ===\nfirst\n\n=== PAGE 2 ===\nsecond", res.FullContent)
}

func TestErrorPagePlaceholder(t *testing.T) {
	p := errorPage(3, errors.New("model unavailable"))
	assert.Equal(t, 3, p.PageNumber)
	assert.Contains(t, p.TextContent, "Error analyzing page 3")
	assert.Contains(t, p.TextContent, "model unavailable")
	assert.Empty(t, p.StructuredData)
}

func TestSummarizeErrorDegradesToPlaceholder(t *testing.T) {
	model := &fakeModel{summaryErr: errors.New("timeout")}
	e := NewExtractor(model, 0, slog.Default())
	res := newResult("r.pdf")
	res.FullContent = "some content"

	e.summarize(context.Background(), res)

	assert.Contains(t, res.Summary, "Summary generation failed")
	assert.Contains(t, res.Summary, "timeout")
}

func TestSummarizeOK(t *testing.T) {
	model := &fakeModel{summary: "short summary"}
	e := NewExtractor(model, 0, slog.Default())
	res := newResult("r.pdf")

	e.summarize(context.Background(), res)

	assert.Equal(t, "short summary", res.Summary)
}

func TestPageCountMismatch(t *testing.T) {
	assert.False(t, pageCountMismatch(0, 5), "failed probe carries no signal")
	assert.False(t, pageCountMismatch(5, 5))
	assert.True(t, pageCountMismatch(4, 5))
	assert.True(t, pageCountMismatch(5, 4))
}

func TestExtractPDFMissingFile(t *testing.T) {
	e := NewExtractor(&fakeModel{}, 0, slog.Default())
	_, err := e.ExtractPDF(context.Background(), "does/not/exist.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
