package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joseph-ayodele/assay-extract/internal/extract"
)

// writeTXT renders the result as a readable text file with a fixed section
// order: banner, metadata, settings, well data, standards, summary, then the
// complete extracted content.
func writeTXT(res *extract.Result, path string) error {
	banner := strings.Repeat("=", 100)
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("FLUORESCENCE ASSAY - PDF EXTRACTION RESULTS\n")
	b.WriteString(banner + "\n\n")

	fmt.Fprintf(&b, "PDF File: %s\n", res.PDFPath)
	fmt.Fprintf(&b, "Pages Processed: %d\n\n", len(res.Pages))

	b.WriteString(banner + "\n")
	b.WriteString("PDF METADATA\n")
	b.WriteString(banner + "\n")
	for _, key := range sortedKeys(res.Metadata) {
		fmt.Fprintf(&b, "%s: %s\n", key, res.Metadata[key])
	}
	b.WriteString("\n")

	if len(res.Settings) > 0 {
		b.WriteString(banner + "\n")
		b.WriteString("INSTRUMENT SETTINGS\n")
		b.WriteString(banner + "\n")
		b.WriteString(indentJSON(res.Settings))
		b.WriteString("\n\n")
	}

	if len(res.WellPlateData) > 0 {
		b.WriteString(banner + "\n")
		b.WriteString("WELL PLATE DATA\n")
		b.WriteString(banner + "\n")
		for _, well := range res.WellPlateData {
			b.WriteString(indentJSON(well))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(res.StandardsTable) > 0 {
		b.WriteString(banner + "\n")
		b.WriteString("STANDARDS CALIBRATION TABLE\n")
		b.WriteString(banner + "\n")
		for _, std := range res.StandardsTable {
			b.WriteString(indentJSON(std))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(banner + "\n")
	b.WriteString("DOCUMENT SUMMARY\n")
	b.WriteString(banner + "\n")
	b.WriteString(res.Summary)
	b.WriteString("\n\n")

	b.WriteString(banner + "\n")
	b.WriteString("COMPLETE EXTRACTED CONTENT\n")
	b.WriteString(banner + "\n")
	b.WriteString(res.FullContent)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}
	return nil
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
