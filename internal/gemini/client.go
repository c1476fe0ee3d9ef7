package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ModelInfo описание модели из списка доступных
type ModelInfo struct {
	Name             string
	SupportedActions []string
}

// SupportsGenerateContent сообщает, умеет ли модель генерировать текст
func (m ModelInfo) SupportsGenerateContent() bool {
	for _, action := range m.SupportedActions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}

// TextGenerator абстракция над Gemini API
type TextGenerator interface {
	// GenerateContent возвращает текст ответа модели на промпт
	GenerateContent(ctx context.Context, model, prompt string) (string, error)

	// ListModels возвращает модели, доступные по ключу
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Client реализует TextGenerator поверх google.golang.org/genai
type Client struct {
	client *genai.Client
}

var _ TextGenerator = (*Client)(nil)

// NewClient создает клиент Gemini API
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return "", nil
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" && !part.Thought {
				b.WriteString(part.Text)
			}
		}
		// используется только первый кандидат с содержимым
		if b.Len() > 0 {
			break
		}
	}

	return b.String(), nil
}

func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	page, err := c.client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var models []ModelInfo
	for {
		for _, m := range page.Items {
			if m == nil {
				continue
			}
			models = append(models, ModelInfo{Name: m.Name, SupportedActions: m.SupportedActions})
		}

		if page.NextPageToken == "" {
			break
		}
		page, err = page.Next(ctx)
		if errors.Is(err, genai.ErrPageDone) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
	}

	return models, nil
}
