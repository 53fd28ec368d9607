package fullcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateExactHeader(t *testing.T) {
	lines := []string{
		"FULL CONTENT",
		"",
		"line1",
		"line2",
		"",
		"METADATA",
		"format: PDF 1.4",
	}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Equal(t, 0, sec.HeaderIndex)
	assert.Equal(t, []string{"line1", "line2"}, sec.Lines)
}

func TestLocateExactHeaderCaseInsensitive(t *testing.T) {
	lines := []string{"some preamble", "full_content", "body line"}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Equal(t, 1, sec.HeaderIndex)
	assert.Equal(t, []string{"body line"}, sec.Lines)
}

func TestLocatePrefersCompletenessAndContentWords(t *testing.T) {
	lines := []string{
		"PAGE INDEX",
		"index body",
		"COMPLETE PAGE DUMP",
		"dump body",
	}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Equal(t, 2, sec.HeaderIndex)
	assert.Equal(t, "COMPLETE PAGE DUMP", sec.HeaderText)
	assert.Equal(t, []string{"dump body"}, sec.Lines)
}

func TestLocateFallsBackToFirstHeuristicHeader(t *testing.T) {
	lines := []string{
		"intro text",
		"PAGE INDEX",
		"body a",
		"body b",
	}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Equal(t, 1, sec.HeaderIndex)
	assert.Equal(t, []string{"body a", "body b"}, sec.Lines)
}

func TestLocateNotFound(t *testing.T) {
	lines := []string{
		"just some prose",
		"more prose here",
		"nothing header-like at all",
	}

	_, found := Locate(lines)
	assert.False(t, found)
}

func TestLocateBodyRunsToEndOfFile(t *testing.T) {
	lines := []string{"FULL CONTENT", "a", "b"}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, sec.Lines)
}

func TestLocateEmptyBody(t *testing.T) {
	lines := []string{"FULL CONTENT", "", "", "SETTINGS", "x: y"}

	sec, found := Locate(lines)
	require.True(t, found)
	assert.Empty(t, sec.Lines)
}

func TestLocateLowercaseLineIsNotAHeuristicHeader(t *testing.T) {
	lines := []string{"complete page dump", "body"}

	// lowercase fails the header shape even though the keywords match
	// (it is also not in the exact vocabulary)
	_, found := Locate(lines)
	assert.False(t, found)
}
