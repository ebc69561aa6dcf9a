package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicModel = "claude-haiku-4-5"

// AnthropicGateway talks to the Anthropic API directly. Audio input is not
// supported by this provider.
type AnthropicGateway struct {
	client *anthropic.Client
}

func NewAnthropicGateway(apiKey string) *AnthropicGateway {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGateway{client: &client}
}

func (g *AnthropicGateway) Name() string {
	return "Anthropic"
}

func (g *AnthropicGateway) Complete(ctx context.Context, req Request) (string, error) {
	if req.AudioBase64 != "" {
		return "", ErrAudioUnsupported
	}

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(req.Prompt),
	}
	if req.ImageBase64 != "" {
		blocks = append(blocks, anthropic.NewImageBlockBase64("image/jpeg", req.ImageBase64))
	} else if req.ImageURL != "" {
		blocks = append(blocks, anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: req.ImageURL}))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(anthropicModel),
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &GatewayError{StatusCode: apierr.StatusCode}
		}
		return "", fmt.Errorf("AI gateway error: %w", err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", ErrNoContent
	}

	return resp.Content[0].Text, nil
}
