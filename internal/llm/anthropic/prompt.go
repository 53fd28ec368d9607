package anthropic

import (
	"fmt"
	"strings"
)

// summaryInputLimit caps the content slice sent with a summary request.
const summaryInputLimit = 3000

// buildPagePrompt is the fixed extraction prompt for one fluorescence-assay
// report page. The categories mirror the sections of a plate-reader export:
// well boxes, instrument settings, the standards calibration table, read
// information, and the document identifiers used for QC sign-off.
func buildPagePrompt(pageNum int) string {
	parts := []string{
		fmt.Sprintf("Analyze this fluorescence assay PDF page (page %d) and extract ALL data in detail.", pageNum),
		"",
		"EXTRACT EVERYTHING YOU SEE:",
		"",
		"1. WELL PLATE DATA - Extract each well box with:",
		"   - Well ID (A1, A2, B1, etc.)",
		"   - Sample type (Std, Blank, Reference, Sample)",
		"   - Concentration value",
		"   - Raw value",
		"   - Reduced value",
		"   - Date and time",
		"",
		"2. SETTINGS TABLE - Extract all instrument settings:",
		"   - Endpoint type",
		"   - Wavelengths (Ex, Em, Cutoff)",
		"   - PMT settings",
		"   - Number of flashes",
		"   - Any other parameters",
		"",
		"3. STANDARDS TABLE - Extract the complete table:",
		"   - Sample names",
		"   - Concentration values",
		"   - Wells",
		"   - Values",
		"   - Back Calculated Concentration",
		"   - Percent Back Calc",
		"",
		"4. READ INFORMATION:",
		"   - Instrument model",
		"   - ROM version",
		"   - Start read time",
		"   - Temperature",
		"   - Operator name",
		"",
		"5. CALCULATED VALUES:",
		"   - Any ratios or calculations shown",
		"",
		"6. DOCUMENT IDENTIFIERS:",
		"   - Experiment number",
		"   - QC information",
		"   - Document status",
		"   - Approval information",
		"",
		"Format your response as structured JSON with clear sections for each data type.",
		"Be extremely thorough - include every number, value, and label you can see.",
	}
	return strings.Join(parts, "\n")
}

func buildSummaryPrompt(content string) string {
	if len(content) > summaryInputLimit {
		content = content[:summaryInputLimit]
	}
	parts := []string{
		"Provide a concise summary of this fluorescence assay report:",
		"",
		content,
		"",
		"Include:",
		"1. Experiment type and purpose",
		"2. Key instrument settings",
		"3. Number of standards and samples",
		"4. Main findings or results",
	}
	return strings.Join(parts, "\n")
}
