// Package openai wraps the OpenAI-compatible chat completions API used
// for narrative generation. Groq exposes the same protocol, so the
// client works against either with a base URL switch.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type Client struct {
	client openai.Client
	model  string
}

func isModelInList(model string, models []openai.Model) bool {
	for i := range models {
		if models[i].ID == model {
			return true
		}
	}

	return false
}

// NewClient builds a client and verifies connectivity by listing models.
func NewClient(ctx context.Context, key, url, model string) (*Client, error) {
	client := openai.NewClient(option.WithAPIKey(key), option.WithBaseURL(url))

	modelList, err := client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("connection test failed: %w", err)
	}

	if !isModelInList(model, modelList.Data) {
		return nil, fmt.Errorf("no such model: %s", model)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GenerateText runs a single system+user completion and returns the
// trimmed text of the first choice.
func (c *Client) GenerateText(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		MaxTokens:   openai.Int(800),
		Temperature: openai.Float(0.8),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(system),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(user),
					},
				},
			},
		},
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
