package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var reFencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// DecodeStructured recovers a JSON object from a model reply. Models asked
// for "structured JSON" return anything from a clean object to prose with a
// fenced code block, so decoding is best-effort:
//
//  1. the whole reply parses as a JSON object
//  2. a fenced ```json block parses
//  3. the outermost {...} slice parses
//
// When nothing parses, the reply is preserved verbatim under "raw_content"
// so no page content is ever lost.
func DecodeStructured(text string) map[string]any {
	trimmed := strings.TrimSpace(text)

	if m := tryObject(trimmed); m != nil {
		return m
	}
	if g := reFencedJSON.FindStringSubmatch(trimmed); g != nil {
		if m := tryObject(g[1]); m != nil {
			return m
		}
	}
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			if m := tryObject(trimmed[start : end+1]); m != nil {
				return m
			}
		}
	}
	return map[string]any{"raw_content": text}
}

func tryObject(s string) map[string]any {
	if !strings.HasPrefix(s, "{") {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}
