package fullcontent

// Parse method tags, in fallback order.
const (
	MethodMarkdownPipe       = "markdown_pipe"
	MethodMarkdownPipeManual = "markdown_pipe_manual"
	MethodCSVBlock           = "csv_block"
	MethodCSVBlockRelaxed    = "csv_block_relaxed"
	MethodKeyValue           = "key_value"
	MethodParagraphs         = "paragraphs"
	MethodRawSingle          = "raw_single"
	MethodEmpty              = "empty"
)

// Table is an ordered sequence of rows with named columns, tagged with the
// strategy that produced it.
type Table struct {
	Columns []string
	Rows    [][]string
	Method  string
}

// IsEmpty reports the explicit empty outcome for an empty input section.
// A one-row raw-fallback table is not empty.
func (t Table) IsEmpty() bool {
	return t.Method == MethodEmpty
}
