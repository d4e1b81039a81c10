package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestToResponse(t *testing.T) {
	t.Run("joins text parts and skips thoughts", func(t *testing.T) {
		resp := toResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "hidden", Thought: true},
					{Text: "Hello "},
					{Text: "there"},
				}},
				FinishReason: genai.FinishReasonStop,
			}},
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount: 10, CandidatesTokenCount: 2, TotalTokenCount: 12,
			},
		})
		if resp.Text != "Hello there" {
			t.Errorf("expected 'Hello there', got %q", resp.Text)
		}
		if resp.Blocked {
			t.Error("expected not blocked")
		}
		if resp.Usage.TotalTokens != 12 {
			t.Errorf("expected 12 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("prompt blocked", func(t *testing.T) {
		resp := toResponse(&genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
		})
		if !resp.Blocked || resp.BlockReason != string(genai.BlockedReasonSafety) {
			t.Errorf("expected blocked prompt, got %+v", resp)
		}
	})

	t.Run("candidate withheld for safety", func(t *testing.T) {
		resp := toResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		})
		if !resp.Blocked {
			t.Errorf("expected blocked candidate, got %+v", resp)
		}
	})

	t.Run("empty without block reason", func(t *testing.T) {
		resp := toResponse(&genai.GenerateContentResponse{})
		if resp.Blocked || resp.Text != "" {
			t.Errorf("expected empty unblocked response, got %+v", resp)
		}
	})
}
