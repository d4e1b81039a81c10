package llmprovider

import (
	"context"
	"errors"
	"strings"

	"financial-coach/pkg/chatcompletion"
	"financial-coach/pkg/gemini"

	"google.golang.org/genai"
)

// ChatCompletionAdapter adapts pkg/chatcompletion (GLM, DeepSeek) to the Provider interface
type ChatCompletionAdapter struct {
	client     chatcompletion.IChatCompletion
	name       string
	systemRole bool
}

// NewChatCompletionAdapter creates a new OpenAI-compatible adapter
func NewChatCompletionAdapter(name string, client chatcompletion.IChatCompletion, systemRole bool) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{client: client, name: name, systemRole: systemRole}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ccReq := &chatcompletion.Request{
		Messages:    make([]chatcompletion.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	for _, msg := range req.Messages {
		ccReq.Messages = append(ccReq.Messages, chatcompletion.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.GenerateContent(ctx, ccReq)
	if err != nil {
		var apiErr *chatcompletion.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Code == chatcompletion.ZhipuSensitiveCode {
				return a.blocked(), nil
			}
			return nil, &ProviderError{Provider: a.name, Kind: KindForStatus(apiErr.StatusCode), Err: err}
		}
		return nil, Classify(a.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Kind: ErrUpstream, Err: ErrEmptyResponse}
	}

	choice := resp.Choices[0]
	switch choice.FinishReason {
	case chatcompletion.FinishReasonSensitive, chatcompletion.FinishReasonContentFilter:
		return a.blocked(), nil
	}

	return &Response{
		Text:         choice.Message.Content,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ChatCompletionAdapter) blocked() *Response {
	return &Response{
		ProviderName:  a.name,
		ModelName:     a.client.Model(),
		SafetyBlocked: true,
		Usage:         &Usage{},
	}
}

// Name returns provider name
func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

// SupportsSystemRole implements Provider interface
func (a *ChatCompletionAdapter) SupportsSystemRole() bool {
	return a.systemRole
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client     gemini.IGemini
	systemRole bool
}

// NewGeminiAdapter creates a new Gemini adapter. systemRole=false is for
// models without system instruction support.
func NewGeminiAdapter(client gemini.IGemini, systemRole bool) *GeminiAdapter {
	return &GeminiAdapter{client: client, systemRole: systemRole}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}

	var system []string
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, msg.Content)
		case RoleAssistant:
			gReq.Contents = append(gReq.Contents, gemini.Content{Role: "model", Text: msg.Content})
		default:
			gReq.Contents = append(gReq.Contents, gemini.Content{Role: "user", Text: msg.Content})
		}
	}
	gReq.SystemInstruction = strings.Join(system, "\n\n")

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{Provider: a.Name(), Kind: KindForStatus(apiErr.Code), Err: err}
		}
		return nil, Classify(a.Name(), err)
	}

	return &Response{
		Text:          resp.Text,
		ProviderName:  a.Name(),
		ModelName:     a.client.Model(),
		SafetyBlocked: resp.Blocked,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// SupportsSystemRole implements Provider interface
func (a *GeminiAdapter) SupportsSystemRole() bool {
	return a.systemRole
}
