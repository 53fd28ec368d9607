package llm

import "context"

// PageAnalyzer extracts structured content from a rendered report page.
type PageAnalyzer interface {
	// AnalyzePage submits the PNG image of a single page and returns the
	// model's raw reply text. pageNum is one-based and only used for
	// prompting and logging.
	AnalyzePage(ctx context.Context, pngImage []byte, pageNum int) (string, error)
}

// Summarizer produces a short document summary from extracted content.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// VisionModel is the interface the extraction pipeline depends on.
type VisionModel interface {
	PageAnalyzer
	Summarizer
}
