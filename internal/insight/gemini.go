package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandeepkv93/zenflow/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 30 * time.Second
)

var ErrNoAPIKey = errors.New("insight: no API key configured")

// Analysis is the structured result of a schedule analysis. The caller treats
// a nil Analysis as "no insight available"; it is never a crash condition.
type Analysis struct {
	Conflicts   []string `json:"conflicts"`
	Suggestions []string `json:"suggestions"`
	Insight     string   `json:"insight"`
}

// Client calls the Gemini generateContent endpoint. There is no retry policy;
// a single failed request is a failed analysis.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// WithBaseURL points the client at a different endpoint; tests use it to run
// against a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSchema struct {
	Type       string                  `json:"type"`
	Items      *geminiSchema           `json:"items,omitempty"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func analysisSchema() *geminiSchema {
	stringArray := geminiSchema{Type: "ARRAY", Items: &geminiSchema{Type: "STRING"}}
	return &geminiSchema{
		Type: "OBJECT",
		Properties: map[string]geminiSchema{
			"conflicts":   stringArray,
			"suggestions": stringArray,
			"insight":     {Type: "STRING"},
		},
		Required: []string{"conflicts", "suggestions", "insight"},
	}
}

// Analyze asks the model to review the current schedule. Any failure returns a
// nil Analysis with the cause; callers surface it as "no insight available".
func (c *Client) Analyze(ctx context.Context, routines []model.Routine, events []model.Event) (*Analysis, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	routineJSON, err := json.Marshal(routines)
	if err != nil {
		return nil, fmt.Errorf("insight: marshal routines: %w", err)
	}
	eventJSON, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("insight: marshal events: %w", err)
	}

	prompt := fmt.Sprintf(`Current Routines: %s
Current Events: %s

Task: Analyze the user's routine and schedule.
1. Identify potential conflicts.
2. Suggest 3 ways to optimize for productivity.
3. Provide a motivational insight based on the schedule density.`, routineJSON, eventJSON)

	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   analysisSchema(),
		},
	}
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("insight: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("insight: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("insight: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("insight: API error (status %d): %s", resp.StatusCode, detail)
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("insight: decode response: %w", err)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("insight: empty response")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(apiResp.Candidates[0].Content.Parts[0].Text), &analysis); err != nil {
		return nil, fmt.Errorf("insight: malformed analysis payload: %w", err)
	}
	return &analysis, nil
}
