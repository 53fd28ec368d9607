package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/joseph-ayodele/assay-extract/internal/extract"
)

// writeCSV renders the result as a detailed CSV with blank-row-separated
// subsections under the columns Section, Category, Field, Value,
// Additional_Info. Well and standards rows probe the same alternative key
// names the merge step probes, since the model varies its field spelling.
func writeCSV(res *extract.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	write := func(record ...string) {
		_ = w.Write(record)
	}
	blank := func() {
		_ = w.Write([]string{})
	}

	write("Section", "Category", "Field", "Value", "Additional_Info")
	blank()

	write("METADATA", "", "", "", "")
	for _, key := range sortedKeys(res.Metadata) {
		write("METADATA", "PDF Info", key, res.Metadata[key], "")
	}
	blank()

	write("INSTRUMENT SETTINGS", "", "", "", "")
	for _, key := range sortedAnyKeys(res.Settings) {
		write("SETTINGS", "Instrument", key, stringify(res.Settings[key]), "")
	}
	blank()

	write("WELL PLATE DATA", "", "", "", "")
	write("WELL DATA", "Well_ID", "Sample_Type", "Value", "Additional_Details")
	for _, item := range res.WellPlateData {
		well, ok := item.(map[string]any)
		if !ok {
			continue
		}
		wellID := firstOf(well, "well", "well_id")
		sampleType := firstOf(well, "type", "sample_type")
		value := firstOf(well, "value", "raw_value")
		details := map[string]any{}
		for k, v := range well {
			if k != "well" && k != "type" && k != "value" {
				details[k] = v
			}
		}
		write("WELL DATA", wellID, sampleType, value, compactJSON(details))
	}
	blank()

	write("STANDARDS CALIBRATION", "", "", "", "")
	write("STANDARDS", "Sample", "Concentration", "Well", "Value", "Back_Calc")
	for _, item := range res.StandardsTable {
		std, ok := item.(map[string]any)
		if !ok {
			continue
		}
		write("STANDARDS",
			firstOf(std, "sample", "standard"),
			firstOf(std, "concentration"),
			firstOf(std, "well"),
			firstOf(std, "value"),
			firstOf(std, "back_calc", "percent_back_calc"),
		)
	}
	blank()

	write("SAMPLES DATA", "", "", "", "")
	for _, item := range res.SamplesData {
		sample, ok := item.(map[string]any)
		if !ok {
			continue
		}
		write("SAMPLE",
			firstOf(sample, "name"),
			firstOf(sample, "type"),
			firstOf(sample, "value"),
			compactJSON(sample),
		)
	}
	blank()

	write("SUMMARY", "", "", "", "")
	write("SUMMARY", "Document Summary", res.Summary, "", "")
	blank()

	write("PAGE CONTENT", "", "", "", "")
	for _, page := range res.Pages {
		write("PAGE",
			fmt.Sprintf("Page_%d", page.PageNumber),
			preview(page.TextContent, 200),
			"", "")
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// firstOf returns the first present key's value, stringified.
func firstOf(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return stringify(v)
		}
	}
	return ""
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
