// Package fullcontent locates the "full content" section inside a detailed
// CSV/text export and recovers tabular structure from it. Loading is a
// single pass of ordered header predicates; recovery is an ordered list of
// parse strategies that terminates at a guaranteed raw-text fallback.
package fullcontent

import (
	"regexp"
	"strings"
)

// fullContentHeaders is the exact-match vocabulary (case-insensitive) for
// the section holding the complete raw extracted document text.
var fullContentHeaders = []string{
	"COMPLETE EXTRACTED CONTENT",
	"FULL CONTENT",
	"FULL_CONTENT",
	"FULL_CONTENTS",
	"COMPLETE EXTRACTED CONTENTS",
	"COMPLETE CONTENT",
	"FULL_CONTENT_SECTION",
	"full_content",
}

var (
	// Header-like line: entirely uppercase/digits/punctuation within a
	// length bound. The letter requirement is checked separately.
	reHeaderShape = regexp.MustCompile(`^[A-Z0-9 \-_/&]{2,120}$`)
	reLetter      = regexp.MustCompile(`[A-Za-z]`)

	// Keyword gates for the heuristic header pass.
	reHeaderKeyword = regexp.MustCompile(`\b(CONTENT|COMPLETE|PAGE|EXTRACTED|FULL)\b`)
	reCompleteness  = regexp.MustCompile(`(?i)\b(COMPLETE|EXTRACTED|FULL)\b`)
	reContentWord   = regexp.MustCompile(`(?i)\b(CONTENT|CONTENTS|PAGE)\b`)

	// A line that opens a different named section, bounding the body.
	reNextSection = regexp.MustCompile(`\b(METADATA|SUMMARY|WELL|STANDARDS|SAMPLES|PAGE CONTENT|COMPLETE|FULL|SETTINGS)\b`)
)

// Section is a contiguous run of lines located by header matching.
type Section struct {
	HeaderIndex int
	HeaderText  string
	Lines       []string
}

// Locate returns the first full-content section in lines. Exact header
// matches win; otherwise heuristic header-like lines are scanned, preferring
// one that names both a completeness word and a content word. A false return
// is a normal outcome for exports without a full-content section.
func Locate(lines []string) (Section, bool) {
	for i, ln := range lines {
		s := strings.TrimSpace(ln)
		for _, key := range fullContentHeaders {
			if strings.EqualFold(s, key) {
				return section(lines, i, s), true
			}
		}
	}

	candidates := detectHeaders(lines)
	if len(candidates) == 0 {
		return Section{}, false
	}
	for _, c := range candidates {
		if reCompleteness.MatchString(c.text) && reContentWord.MatchString(c.text) {
			return section(lines, c.index, c.text), true
		}
	}
	first := candidates[0]
	return section(lines, first.index, first.text), true
}

type headerCandidate struct {
	index int
	text  string
}

func detectHeaders(lines []string) []headerCandidate {
	var out []headerCandidate
	for i, ln := range lines {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}
		for _, key := range fullContentHeaders {
			if strings.EqualFold(s, key) {
				out = append(out, headerCandidate{i, key})
			}
		}
		if reHeaderShape.MatchString(s) && reLetter.MatchString(s) && reHeaderKeyword.MatchString(s) {
			out = append(out, headerCandidate{i, s})
		}
	}
	return out
}

// section bounds the body at the next line that looks like a different named
// section header, then trims leading and trailing blank lines.
func section(lines []string, headerIdx int, headerText string) Section {
	next := len(lines)
	for j := headerIdx + 1; j < len(lines); j++ {
		s := strings.TrimSpace(lines[j])
		if s == "" {
			continue
		}
		if reHeaderShape.MatchString(s) && reNextSection.MatchString(s) {
			next = j
			break
		}
	}

	body := lines[headerIdx+1 : next]
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return Section{HeaderIndex: headerIdx, HeaderText: headerText, Lines: body}
}
