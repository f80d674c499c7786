// Package gemini wraps the Google GenAI backend used for open-ended questions.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/tkessler/parley/internal/session"
)

const defaultModel = "gemini-2.0-flash"

// systemPreamble frames answers for speech output: short and conversational.
const systemPreamble = "You are a helpful voice assistant. " +
	"Respond naturally and keep answers concise enough to be read aloud."

// Client issues single-prompt completions against the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New dials the Gemini API with the given key and model.
func New(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Answer sends one prompt and returns the model's text reply. Failures come
// back classified as *collab.Error for message selection at the handler.
func (c *Client) Answer(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(
		callCtx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: 512,
			Temperature:     genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return "", classify("generate content", err)
	}

	if blocked(resp) {
		return "", filteredError("generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", emptyError("generate content")
	}
	return text, nil
}

// BuildPrompt composes the model prompt, folding in up to the last three
// conversation turns for context.
func BuildPrompt(question string, recent []session.Turn) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\n")

	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	for _, turn := range recent {
		b.WriteString("User: ")
		b.WriteString(turn.User)
		b.WriteString("\nAssistant: ")
		b.WriteString(turn.Assistant)
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(question)
	b.WriteString("\nAssistant:")
	return b.String()
}

// blocked reports whether the response was suppressed by safety filtering.
func blocked(resp *genai.GenerateContentResponse) bool {
	if resp == nil {
		return false
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return true
	}
	for _, cand := range resp.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}
