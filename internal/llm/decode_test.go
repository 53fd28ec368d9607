package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStructuredPlainObject(t *testing.T) {
	m := DecodeStructured(`{"wells": [{"well": "A1"}], "settings": {"pmt": "high"}}`)
	require.Contains(t, m, "wells")
	require.Contains(t, m, "settings")
	assert.NotContains(t, m, "raw_content")
}

func TestDecodeStructuredFencedBlock(t *testing.T) {
	text := "Here is the extracted data:\n```json\n{\"wells\": []}\n```\nLet me know if you need more."
	m := DecodeStructured(text)
	assert.Contains(t, m, "wells")
	assert.NotContains(t, m, "raw_content")
}

func TestDecodeStructuredEmbeddedBraces(t *testing.T) {
	text := `The page contains: {"settings": {"flashes": 6}} as shown above.`
	m := DecodeStructured(text)
	assert.Contains(t, m, "settings")
}

func TestDecodeStructuredFallsBackToRawContent(t *testing.T) {
	text := "The page is a scanned cover sheet with no structured data."
	m := DecodeStructured(text)
	require.Contains(t, m, "raw_content")
	assert.Equal(t, text, m["raw_content"])
	assert.Len(t, m, 1)
}

func TestDecodeStructuredMalformedJSONFallsBack(t *testing.T) {
	text := `{"wells": [unterminated`
	m := DecodeStructured(text)
	assert.Contains(t, m, "raw_content")
}
