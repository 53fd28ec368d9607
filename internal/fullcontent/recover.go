package fullcontent

import (
	"encoding/csv"
	"regexp"
	"strings"
)

var (
	reDashRule  = regexp.MustCompile(`^\s*\|?\s*:?-{2,}\s*(\|.+)?$`)
	rePureDash  = regexp.MustCompile(`^-{2,}`)
	reKVLine    = regexp.MustCompile(`^\s*[\w \-()/]+:\s*`)
	reParaSplit = regexp.MustCompile(`\n\s*\n`)
)

// Recover interprets a section's lines as structured data, trying each
// strategy in priority order and returning the first that succeeds:
// markdown pipe table, comma-delimited block, key-value lines, paragraph
// split, raw single cell. It never fails on malformed input; the worst case
// is the raw fallback. An empty section yields the explicit empty outcome.
func Recover(lines []string) Table {
	if len(lines) == 0 {
		return Table{Method: MethodEmpty}
	}

	if block := markdownBlock(lines); block != nil {
		if t, ok := parsePipeTable(block); ok {
			return t
		}
		if t, ok := parsePipeTableManual(block); ok {
			return t
		}
	}

	if block := commaBlock(lines); block != nil {
		if t, ok := parseDelimitedBlock(block); ok {
			return t
		}
	}

	if t, ok := parseKeyValue(lines); ok {
		return t
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if t, ok := parseParagraphs(text); ok {
		return t
	}

	return Table{
		Columns: []string{"FullContent"},
		Rows:    [][]string{{text}},
		Method:  MethodRawSingle,
	}
}

// markdownBlock finds the first pipe-led line followed by a dashed separator
// rule, then extends through the contiguous pipe-led lines below it.
func markdownBlock(lines []string) []string {
	for i := 0; i < len(lines)-1; i++ {
		s := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(s, "|") || !strings.Contains(s[1:], "|") {
			continue
		}
		if !reDashRule.MatchString(lines[i+1]) {
			continue
		}
		j := i + 2
		for j < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[j]), "|") {
			j++
		}
		return lines[i:j]
	}
	return nil
}

// parsePipeTable is the structured parse: cells split on pipes with empty
// cells preserved, rows padded to the header width. It fails when a row is
// wider than the header or when no data rows remain, handing over to the
// manual fallback.
func parsePipeTable(block []string) (Table, bool) {
	header := splitPipesKeepEmpty(block[0])
	if len(header) == 0 || len(block) < 3 {
		return Table{}, false
	}

	var rows [][]string
	for _, ln := range block[2:] {
		cells := splitPipesKeepEmpty(ln)
		if len(cells) > len(header) {
			return Table{}, false
		}
		for len(cells) < len(header) {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return Table{}, false
	}

	return trimUnnamedColumns(Table{Columns: header, Rows: rows, Method: MethodMarkdownPipe}), true
}

// parsePipeTableManual splits each row on pipes discarding empty cells,
// treats the first row as the header, and skips a pure-dashes rule row.
func parsePipeTableManual(block []string) (Table, bool) {
	var rows [][]string
	for _, ln := range block {
		cells := splitPipesDropEmpty(ln)
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) < 2 {
		return Table{}, false
	}

	header := rows[0]
	data := rows[1:]
	if rePureDash.MatchString(data[0][0]) || rePureDash.MatchString(strings.Join(data[0], "|")) {
		data = data[1:]
	}
	if len(data) == 0 {
		return Table{}, false
	}

	ncol := len(header)
	if len(data[0]) < ncol {
		ncol = len(data[0])
	}
	out := make([][]string, 0, len(data))
	for _, cells := range data {
		row := make([]string, ncol)
		copy(row, cells)
		out = append(out, row)
	}
	return Table{Columns: header[:ncol], Rows: out, Method: MethodMarkdownPipeManual}, true
}

// commaBlock returns the longest contiguous run (>= 2 lines) of lines each
// containing at least one comma. A single qualifying line never counts.
func commaBlock(lines []string) []string {
	var best, cur []string
	for _, ln := range lines {
		if strings.Contains(ln, ",") {
			cur = append(cur, ln)
			continue
		}
		if len(cur) >= 2 && len(cur) > len(best) {
			best = append([]string(nil), cur...)
		}
		cur = nil
	}
	if len(cur) >= 2 && len(cur) > len(best) {
		best = cur
	}
	return best
}

func parseDelimitedBlock(block []string) (Table, bool) {
	r := csv.NewReader(strings.NewReader(strings.Join(block, "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return relaxedDelimited(block)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}
	return Table{Columns: header, Rows: rows, Method: MethodCSVBlock}, true
}

// relaxedDelimited is the naive comma split used when strict CSV parsing
// chokes on unbalanced quotes.
func relaxedDelimited(block []string) (Table, bool) {
	split := func(ln string) []string {
		parts := strings.Split(ln, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	header := split(block[0])
	rows := make([][]string, 0, len(block)-1)
	for _, ln := range block[1:] {
		row := make([]string, len(header))
		copy(row, split(ln))
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return Table{}, false
	}
	return Table{Columns: header, Rows: rows, Method: MethodCSVBlockRelaxed}, true
}

// parseKeyValue collects `key: value` shaped lines and requires at least two.
func parseKeyValue(lines []string) (Table, bool) {
	var rows [][]string
	for _, ln := range lines {
		if !strings.Contains(ln, ":") || !reKVLine.MatchString(ln) {
			continue
		}
		parts := strings.SplitN(ln, ":", 2)
		rows = append(rows, []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	}
	if len(rows) < 2 {
		return Table{}, false
	}
	return Table{Columns: []string{"Field", "Value"}, Rows: rows, Method: MethodKeyValue}, true
}

func parseParagraphs(text string) (Table, bool) {
	var paras [][]string
	for _, p := range reParaSplit.Split(text, -1) {
		if t := strings.TrimSpace(p); t != "" {
			paras = append(paras, []string{t})
		}
	}
	if len(paras) <= 1 {
		return Table{}, false
	}
	return Table{Columns: []string{"Paragraph"}, Rows: paras, Method: MethodParagraphs}, true
}

// trimUnnamedColumns drops columns with an empty header name whose cells are
// all empty, the artifact of leading/trailing pipes.
func trimUnnamedColumns(t Table) Table {
	keep := make([]int, 0, len(t.Columns))
	for c, name := range t.Columns {
		if name != "" {
			keep = append(keep, c)
			continue
		}
		for _, row := range t.Rows {
			if row[c] != "" {
				keep = append(keep, c)
				break
			}
		}
	}
	if len(keep) == len(t.Columns) {
		return t
	}

	cols := make([]string, len(keep))
	for i, c := range keep {
		cols[i] = t.Columns[c]
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]string, len(keep))
		for j, c := range keep {
			out[j] = row[c]
		}
		rows[i] = out
	}
	return Table{Columns: cols, Rows: rows, Method: t.Method}
}

func splitPipesKeepEmpty(ln string) []string {
	s := strings.TrimSpace(ln)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func splitPipesDropEmpty(ln string) []string {
	var out []string
	for _, cell := range strings.Split(strings.Trim(strings.TrimSpace(ln), "| \t"), "|") {
		if c := strings.TrimSpace(cell); c != "" {
			out = append(out, c)
		}
	}
	return out
}
