package extract

import "fmt"

// Category key probing: each aggregate accepts two alternative top-level key
// names because the model does not name its sections consistently across
// pages. Keys outside this set are logged (not silently dropped) so a third
// spelling shows up in the run log instead of vanishing.
var (
	wellKeys     = []string{"well_plate_data", "wells"}
	standardKeys = []string{"standards_table", "standards"}
	settingKeys  = []string{"settings", "instrument_settings"}
	sampleKeys   = []string{"samples", "sample_data"}
)

func (e *Extractor) merge(res *Result) {
	recognized := map[string]bool{"raw_content": true}
	for _, ks := range [][]string{wellKeys, standardKeys, settingKeys, sampleKeys} {
		for _, k := range ks {
			recognized[k] = true
		}
	}

	for _, page := range res.Pages {
		res.WellPlateData = append(res.WellPlateData, e.takeList(page, wellKeys)...)
		res.StandardsTable = append(res.StandardsTable, e.takeList(page, standardKeys)...)
		res.SamplesData = append(res.SamplesData, e.takeList(page, sampleKeys)...)
		e.takeSettings(page, res.Settings)

		for key := range page.StructuredData {
			if !recognized[key] {
				e.log.Warn("extract.merge.unrecognized_key",
					"page", page.PageNumber, "key", key)
			}
		}
	}
}

// takeList returns the first matching category list on the page. A scalar or
// object under a list key is wrapped as a single element rather than lost.
func (e *Extractor) takeList(page PageRecord, keys []string) []any {
	for _, key := range keys {
		v, ok := page.StructuredData[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case []any:
			return t
		default:
			e.log.Warn("extract.merge.non_list_value",
				"page", page.PageNumber, "key", key, "type", fmt.Sprintf("%T", v))
			return []any{v}
		}
	}
	return nil
}

func (e *Extractor) takeSettings(page PageRecord, into map[string]any) {
	for _, key := range settingKeys {
		v, ok := page.StructuredData[key]
		if !ok {
			continue
		}
		m, ok := v.(map[string]any)
		if !ok {
			e.log.Warn("extract.merge.non_map_settings",
				"page", page.PageNumber, "key", key, "type", fmt.Sprintf("%T", v))
			return
		}
		for k, val := range m {
			into[k] = val
		}
		return
	}
}
