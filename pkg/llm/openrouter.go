package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	appReferer        = "https://verdade-na-lei.lovable.app"
	appTitle          = "Verdade na Lei BR"
)

// OpenRouterGateway talks to OpenRouter's OpenAI-compatible completion API.
type OpenRouterGateway struct {
	client *openai.Client
}

func NewOpenRouterGateway(apiKey string) *OpenRouterGateway {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
		option.WithHeader("HTTP-Referer", appReferer),
		option.WithHeader("X-Title", appTitle),
	)
	return &OpenRouterGateway{client: &client}
}

func (g *OpenRouterGateway) Name() string {
	return "OpenRouter"
}

func (g *OpenRouterGateway) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = ModelDefault
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			userMessage(req),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &GatewayError{StatusCode: apierr.StatusCode}
		}
		return "", fmt.Errorf("AI gateway error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}

	return resp.Choices[0].Message.Content, nil
}

func userMessage(req Request) openai.ChatCompletionMessageParamUnion {
	if req.ImageURL == "" && req.ImageBase64 == "" && req.AudioBase64 == "" {
		return openai.UserMessage(req.Prompt)
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(req.Prompt),
	}

	if req.ImageURL != "" || req.ImageBase64 != "" {
		imageSource := req.ImageURL
		if req.ImageBase64 != "" {
			imageSource = "data:image/jpeg;base64," + req.ImageBase64
		}
		parts = append(parts, openai.ImageContentPart(
			openai.ChatCompletionContentPartImageImageURLParam{URL: imageSource},
		))
	}

	if req.AudioBase64 != "" {
		parts = append(parts, openai.InputAudioContentPart(
			openai.ChatCompletionContentPartInputAudioInputAudioParam{
				Data:   req.AudioBase64,
				Format: req.AudioFormat,
			},
		))
	}

	return openai.UserMessage(parts)
}
