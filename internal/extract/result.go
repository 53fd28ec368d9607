package extract

// PageRecord holds one page's raw model reply and its best-effort decoding.
type PageRecord struct {
	PageNumber     int            `json:"page_number"`
	TextContent    string         `json:"text_content"`
	StructuredData map[string]any `json:"structured_data"`
}

// Result is the per-PDF aggregate written to the JSON/TXT/CSV outputs.
// The four category lists/maps are populated by probing each page's decoded
// reply; encounter order is preserved and duplicates are kept.
type Result struct {
	PDFPath        string            `json:"pdf_path"`
	Metadata       map[string]string `json:"metadata"`
	Pages          []PageRecord      `json:"pages"`
	WellPlateData  []any             `json:"well_plate_data"`
	StandardsTable []any             `json:"standards_table"`
	Settings       map[string]any    `json:"settings"`
	SamplesData    []any             `json:"samples_data"`
	FullContent    string            `json:"full_content"`
	Summary        string            `json:"summary"`
}

func newResult(pdfPath string) *Result {
	return &Result{
		PDFPath:        pdfPath,
		Metadata:       map[string]string{},
		Pages:          []PageRecord{},
		WellPlateData:  []any{},
		StandardsTable: []any{},
		Settings:       map[string]any{},
		SamplesData:    []any{},
	}
}
