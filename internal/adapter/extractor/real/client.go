// Package real implements the extraction collaborator over an
// OpenAI-compatible chat completions endpoint.
package real

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/observability"
)

const systemPrompt = `당신은 항공사 객실승무원 면접관을 돕는 분석가입니다. ` +
	`지원자의 자기소개서 문항별 답변에서 면접에서 검증할 공격 포인트를 추출합니다. ` +
	`반드시 JSON만 출력하세요. 출력 형식: {"records":[{` +
	`"claim":"핵심 주장 한 문장",` +
	`"decision_criteria":["판단 기준 문장"],` +
	`"rejected_alternatives":["선택하지 않은 대안 문장"],` +
	`"over_idealized_points":["이상화된 표현 문장"],` +
	`"risk_points":["리스크가 드러나는 문장"],` +
	`"repeatability_questions":["재현성 확인 질문"],` +
	`"action_sentences":["행동 문장"],` +
	`"result_sentences":["결과 문장"]}]} ` +
	`records 배열은 문항 수와 같은 길이여야 하며, 모든 문장은 답변 원문에서 그대로 인용합니다.`

// Client calls the configured chat endpoint once per generation and maps the
// response onto positional attack point records.
type Client struct {
	cfg   config.Config
	httpc *http.Client
}

// New constructs a Client with the configured timeout.
func New(cfg config.Config) *Client {
	timeout := cfg.ExtractorTimeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Client{cfg: cfg, httpc: &http.Client{Timeout: timeout}}
}

func (c *Client) getBackoffConfig() *backoff.ExponentialBackOff {
	expo := backoff.NewExponentialBackOff()
	maxElapsedTime, initialInterval, maxInterval, multiplier := c.cfg.GetBackoffConfig()
	expo.MaxElapsedTime = maxElapsedTime
	expo.InitialInterval = initialInterval
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier
	return expo
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type extractionPayload struct {
	Records []*domain.AttackPointRecord `json:"records"`
}

// Extract sends every item in one request and returns one record per item.
// A response whose record count does not match the item count is rejected as
// schema-invalid; the caller degrades to local analysis.
func (c *Client) Extract(ctx context.Context, items []domain.EssayItem, airlineName string) ([]*domain.AttackPointRecord, error) {
	if len(items) == 0 {
		return nil, nil
	}
	lg := observability.LoggerFromContext(ctx)
	start := time.Now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "지원 항공사: %s\n문항 수: %d\n\n", airlineName, len(items))
	for _, it := range items {
		fmt.Fprintf(&sb, "[문항 %d] %s\n%s\n\n", it.Index, it.Prompt, it.Answer)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.ExtractorModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: sb.String()},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
		Temperature:    0,
	})
	if err != nil {
		return nil, fmt.Errorf("encode extraction request: %w", err)
	}

	var content string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ExtractorBaseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.ExtractorAPIKey)

		resp, err := c.httpc.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusTooManyRequests {
			lg.Warn("extractor rate limited", "status", resp.StatusCode)
			return fmt.Errorf("extract status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			lg.Warn("extractor 4xx", "status", resp.StatusCode, "body", string(snippet))
			return backoff.Permanent(fmt.Errorf("extract status %d", resp.StatusCode))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("extract status %d", resp.StatusCode)
		}
		var out chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("decode extraction response: %w", err)
		}
		if len(out.Choices) == 0 {
			return errors.New("empty choices")
		}
		content = out.Choices[0].Message.Content
		return nil
	}

	bo := backoff.WithContext(c.getBackoffConfig(), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: extraction: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("extraction: %w", err)
	}
	observability.ExtractionDuration.Observe(time.Since(start).Seconds())

	recs, err := parseRecords(content, len(items))
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// parseRecords decodes the model output and enforces the positional contract.
func parseRecords(content string, itemCount int) ([]*domain.AttackPointRecord, error) {
	content = stripFences(content)
	var payload extractionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: extraction payload: %v", domain.ErrSchemaInvalid, err)
	}
	if len(payload.Records) != itemCount {
		return nil, fmt.Errorf("%w: got %d records for %d items", domain.ErrSchemaInvalid, len(payload.Records), itemCount)
	}
	for _, r := range payload.Records {
		if r == nil {
			continue
		}
		r.Claim = strings.TrimSpace(r.Claim)
		trimAll(r.DecisionCriteria)
		trimAll(r.RejectedAlternatives)
		trimAll(r.OverIdealizedPoints)
		trimAll(r.RiskPoints)
		trimAll(r.RepeatabilityQs)
		trimAll(r.ActionSentences)
		trimAll(r.ResultSentences)
	}
	return payload.Records, nil
}

func trimAll(ss []string) {
	for i := range ss {
		ss[i] = strings.TrimSpace(ss[i])
	}
}

// stripFences removes a markdown code fence wrapper when the model adds one
// despite the JSON response format.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
