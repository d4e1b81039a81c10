package llmprovider

import (
	"context"
	"errors"
	"testing"

	"financial-coach/pkg/chatcompletion"
	"financial-coach/pkg/gemini"
)

type mockChatClient struct {
	resp    *chatcompletion.Response
	err     error
	lastReq *chatcompletion.Request
}

func (m *mockChatClient) GenerateContent(ctx context.Context, req *chatcompletion.Request) (*chatcompletion.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func (m *mockChatClient) Model() string { return "glm-z1-air" }

type mockGeminiClient struct {
	resp    *gemini.Response
	err     error
	lastReq *gemini.Request
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func (m *mockGeminiClient) Model() string { return "gemini-2.5-flash" }

func TestChatCompletionAdapter(t *testing.T) {
	req := &Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "persona"},
			{Role: RoleUser, Content: "hi"},
		},
		Temperature: 0.7,
		TopP:        0.9,
	}

	t.Run("success", func(t *testing.T) {
		client := &mockChatClient{resp: &chatcompletion.Response{
			Model:   "glm-z1-air",
			Choices: []chatcompletion.Choice{{Message: chatcompletion.Message{Role: "assistant", Content: "hello"}, FinishReason: "stop"}},
			Usage:   chatcompletion.Usage{PromptTokens: 5, CompletionTokens: 1, TotalTokens: 6},
		}}
		a := NewChatCompletionAdapter("glm", client, true)

		resp, err := a.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "hello" || resp.Usage.TotalTokens != 6 {
			t.Errorf("unexpected response: %+v", resp)
		}
		if len(client.lastReq.Messages) != 2 || client.lastReq.Messages[0].Role != "system" || client.lastReq.TopP != 0.9 {
			t.Errorf("unexpected upstream request: %+v", client.lastReq)
		}
	})

	t.Run("sensitive finish reason", func(t *testing.T) {
		client := &mockChatClient{resp: &chatcompletion.Response{
			Choices: []chatcompletion.Choice{{FinishReason: chatcompletion.FinishReasonSensitive}},
		}}
		resp, err := NewChatCompletionAdapter("glm", client, true).GenerateContent(context.Background(), req)
		if err != nil || !resp.SafetyBlocked {
			t.Fatalf("expected safety block, got %+v, %v", resp, err)
		}
	})

	t.Run("sensitive prompt error code", func(t *testing.T) {
		client := &mockChatClient{err: &chatcompletion.APIError{StatusCode: 400, Code: chatcompletion.ZhipuSensitiveCode}}
		resp, err := NewChatCompletionAdapter("glm", client, true).GenerateContent(context.Background(), req)
		if err != nil || !resp.SafetyBlocked {
			t.Fatalf("expected safety block, got %+v, %v", resp, err)
		}
	})

	t.Run("unauthorized is config error", func(t *testing.T) {
		client := &mockChatClient{err: &chatcompletion.APIError{StatusCode: 401, Message: "bad key"}}
		_, err := NewChatCompletionAdapter("glm", client, true).GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("expected ErrConfig, got %v", err)
		}
	})

	t.Run("no choices", func(t *testing.T) {
		client := &mockChatClient{resp: &chatcompletion.Response{}}
		_, err := NewChatCompletionAdapter("glm", client, true).GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})
}

func TestGeminiAdapter(t *testing.T) {
	t.Run("maps roles and system instruction", func(t *testing.T) {
		client := &mockGeminiClient{resp: &gemini.Response{Text: "ok"}}
		a := NewGeminiAdapter(client, true)

		resp, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{
			{Role: RoleSystem, Content: "persona"},
			{Role: RoleUser, Content: "q1"},
			{Role: RoleAssistant, Content: "a1"},
			{Role: RoleUser, Content: "q2"},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ok" || resp.ProviderName != "gemini" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if client.lastReq.SystemInstruction != "persona" {
			t.Errorf("expected system instruction, got %q", client.lastReq.SystemInstruction)
		}
		roles := []string{}
		for _, c := range client.lastReq.Contents {
			roles = append(roles, c.Role)
		}
		if len(roles) != 3 || roles[0] != "user" || roles[1] != "model" || roles[2] != "user" {
			t.Errorf("unexpected roles: %v", roles)
		}
	})

	t.Run("blocked", func(t *testing.T) {
		client := &mockGeminiClient{resp: &gemini.Response{Blocked: true, BlockReason: "SAFETY"}}
		resp, err := NewGeminiAdapter(client, false).GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "q"}}})
		if err != nil || !resp.SafetyBlocked {
			t.Fatalf("expected safety block, got %+v, %v", resp, err)
		}
	})
}
