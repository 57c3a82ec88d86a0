package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ecolens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	defaultModel = "llama-3.3-70b-versatile"

	// The widget shows two sentences and three tips, nothing longer
	maxTokens   = 300
	temperature = 0.2

	// Each tip shown in the widget is a single short line
	maxTips      = 5
	maxTipLength = 200
)

// jsonObjectRegex extracts the first {...} block from the completion text.
// Models wrap JSON in prose or code fences often enough that strict decoding
// of the whole message is not viable.
var jsonObjectRegex = regexp.MustCompile(`(?s)\{.*\}`)

// Client handles communication with the Groq OpenAI-compatible
// chat-completions API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Groq API client
func NewClient(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = defaultModel
	}

	// Groq's free tier allows 30 requests per minute
	limiter := rate.NewLimiter(rate.Limit(0.5), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateNarrative asks the model for a short eco assessment and tips for an
// already-scored product. Exactly one attempt is made: the caller degrades to
// deterministic narrative on any error, so retrying would only add latency.
func (c *Client) GenerateNarrative(ctx context.Context, req *domain.NarrativeRequest) (*domain.Narrative, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	if c.apiKey == "" {
		return nil, domain.ErrNarrativeDisabled
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: buildPrompt(req)}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/openai/v1/chat/completions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNarrativeFailure, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[GROQ] API error - Status: %d, Body: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrNarrativeFailure, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNarrativeFailure, err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNarrativeFailure, chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrNarrativeFailure)
	}

	narrative, err := parseNarrative(chatResp.Choices[0].Message.Content)
	if err != nil {
		if c.debug {
			log.Printf("[GROQ] Unusable narrative: %v", err)
		}
		return nil, err
	}

	return narrative, nil
}

// buildPrompt carries the deterministic score and grade into the prompt so
// the narrative stays consistent with the rule engine's verdict
func buildPrompt(req *domain.NarrativeRequest) string {
	return fmt.Sprintf(`Product: %s
Score: %d, Grade: %s

Write 2-sentence eco assessment and 3 tips.

JSON only:
{
  "summary": "assessment",
  "tips": ["tip1", "tip2", "tip3"]
}`, req.ProductName, req.Score, req.Grade)
}

// parseNarrative extracts and validates the JSON object from the completion
// text. Anything that does not validate is treated as a failed enrichment.
func parseNarrative(content string) (*domain.Narrative, error) {
	match := jsonObjectRegex.FindString(content)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", domain.ErrNarrativeFailure)
	}

	var narrative domain.Narrative
	if err := json.Unmarshal([]byte(match), &narrative); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNarrativeFailure, err)
	}

	if err := validateNarrative(&narrative); err != nil {
		return nil, err
	}

	return &narrative, nil
}

// validateNarrative enforces the trust boundary on LLM output shape: a
// non-empty summary and a handful of short tips. Any score/grade/breakdown
// fields the model might include are already ignored by the Narrative type.
func validateNarrative(n *domain.Narrative) error {
	n.Summary = strings.TrimSpace(n.Summary)
	if n.Summary == "" {
		return fmt.Errorf("%w: empty summary", domain.ErrNarrativeFailure)
	}

	if len(n.Tips) == 0 || len(n.Tips) > maxTips {
		return fmt.Errorf("%w: expected 1-%d tips, got %d", domain.ErrNarrativeFailure, maxTips, len(n.Tips))
	}
	for i, tip := range n.Tips {
		tip = strings.TrimSpace(tip)
		if tip == "" || len(tip) > maxTipLength {
			return fmt.Errorf("%w: tip %d has invalid length", domain.ErrNarrativeFailure, i)
		}
		n.Tips[i] = tip
	}

	return nil
}
