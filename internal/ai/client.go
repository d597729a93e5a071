// Package ai is the last-resort translator: when the deterministic pipeline
// produces no query at all, it asks Gemini for one. It is never consulted
// otherwise, and its failures are non-fatal.
package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const systemPrompt = `You translate natural-language trading card searches into Scryfall search syntax.
Reply with exactly one query string and nothing else.
Use only these operators: f: c: ci: t: -t: mv pow tou year usd r: otag: -otag: o:"..." -o:"..." is:.
Example: "cheap green ramp creatures" -> t:creature c:g otag:ramp usd<5`

// Client calls the Gemini API to translate a query.
type Client struct {
	genaiClient *genai.Client
	model       string
	debug       bool
}

// NewClient builds a Gemini-backed translator. apiKey empty falls back to
// Application Default Credentials. model empty uses the default.
func NewClient(ctx context.Context, apiKey, model string, debug bool) (*Client, error) {
	cfg := &genai.ClientConfig{}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	genaiClient, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{genaiClient: genaiClient, model: model, debug: debug}, nil
}

// TranslateQuery asks the model for a single raw query string. The caller
// sanitizes and validates the result like any other query.
func (c *Client) TranslateQuery(ctx context.Context, text string) (string, error) {
	prompt := systemPrompt + "\n\nSearch request: " + text

	if c.debug {
		fmt.Printf("[ai] translating %q with %s\n", text, c.model)
	}

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate query: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			result.WriteString(part.Text)
		}
	}

	query := strings.TrimSpace(result.String())
	query = strings.Trim(query, "`")
	if query == "" {
		return "", fmt.Errorf("model returned an empty query")
	}
	return query, nil
}
