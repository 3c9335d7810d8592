// Package gemini wraps the Google GenAI SDK behind the one call the
// assistant needs: prompt in, free-text reply out.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when the config does not name one.
const DefaultModel = "gemini-1.5-flash"

// Client issues single-shot generation calls against the Gemini API.
// No streaming, no retries; a failed call surfaces to the caller, who
// shows it to the user and waits for a fresh attempt.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client. The API key is required; model falls back
// to DefaultModel when empty.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("se requiere la API key de Gemini")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creando el cliente de Gemini: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate sends the prompt and returns the model's text reply. The
// context carries the caller's timeout; there is no internal one.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("llamada a Gemini falló: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini no devolvió texto")
	}
	return text, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }
