package anthropic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/assay-extract/internal/common"
	"github.com/joseph-ayodele/assay-extract/internal/llm"
)

// AnalyzePage implements llm.PageAnalyzer against the messages endpoint.
// The reply is returned as raw text; structured decoding is the caller's
// concern because the model is not guaranteed to honor the JSON instruction.
func (c *Client) AnalyzePage(ctx context.Context, pngImage []byte, pageNum int) (string, error) {
	start := time.Now()
	c.log.Info("llm.analyze.start",
		"model", c.cfg.Model,
		"page", pageNum,
		"image_bytes", len(pngImage),
	)

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": "image/png",
							"data":       base64.StdEncoding.EncodeToString(pngImage),
						},
					},
					{"type": "text", "text": buildPagePrompt(pageNum)},
				},
			},
		},
	}

	text, err := c.send(ctx, body)
	if err != nil {
		c.log.Error("llm.analyze.error",
			"page", pageNum, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	c.log.Info("llm.analyze.ok",
		"page", pageNum,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// Summarize implements llm.Summarizer with a second, text-only call.
// Content below the substance threshold is not worth a round trip.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	if len(strings.TrimSpace(content)) < 50 {
		return "No substantial content found for summary.", nil
	}

	start := time.Now()
	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.SummaryMaxTokens,
		"messages": []map[string]any{
			{"role": "user", "content": buildSummaryPrompt(content)},
		},
	}

	text, err := c.send(ctx, body)
	if err != nil {
		c.log.Error("llm.summary.error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	c.log.Info("llm.summary.ok", "chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds())
	return text, nil
}

func (c *Client) send(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": apiVersion,
	}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		return "", err
	}

	var reply struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("%w: decode messages response: %v", common.ErrRemoteCall, err)
	}

	var b strings.Builder
	for _, block := range reply.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no text content in messages response", common.ErrRemoteCall)
	}
	return b.String(), nil
}
