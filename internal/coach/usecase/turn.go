package usecase

import (
	"context"
	"strings"

	"financial-coach/internal/coach"
	"financial-coach/internal/coach/prompt"
	"financial-coach/pkg/llmprovider"
	"financial-coach/pkg/sanitizer"
)

// HandleTurn answers one user message.
// The user turn is recorded before the model is called so it survives a failed or cancelled call.
// Model failures never surface as errors: the apology is returned with Degraded set.
// A context that ends before dispatch is returned as an error and nothing is recorded.
func (uc *implUseCase) HandleTurn(ctx context.Context, input coach.TurnInput) (coach.TurnOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return coach.TurnOutput{}, coach.ErrEmptyMessage
	}
	if input.UserID == "" {
		return coach.TurnOutput{}, coach.ErrEmptyUserID
	}

	unlock, err := uc.locker.Lock(ctx, input.UserID)
	if err != nil {
		return coach.TurnOutput{}, err
	}
	defer unlock()

	uc.hydrate(ctx, input.UserID)

	profile := input.Profile
	if profile == nil {
		profile = uc.storedProfile(ctx, input.UserID)
	}

	history := uc.sessions.Recent(input.UserID, uc.maxTurns())
	messages := prompt.Assemble(
		prompt.Merge(profile),
		history,
		input.Message,
		prompt.EncodingFor(uc.llm.SupportsSystemRole()),
	)

	// A request abandoned before dispatch leaves no trace in the history.
	if err := ctx.Err(); err != nil {
		return coach.TurnOutput{}, err
	}

	userTurn := coach.Turn{Sender: coach.SenderUser, Text: input.Message, Timestamp: uc.now()}
	uc.sessions.Append(input.UserID, userTurn)

	reply, resp, err := uc.generate(ctx, messages)
	if err != nil {
		uc.l.Errorf(ctx, "coach.usecase.HandleTurn: user=%s: %v", input.UserID, err)

		errTurn := coach.Turn{Sender: coach.SenderAssistant, Text: coach.ApologyReply, Timestamp: uc.now(), Error: true}
		uc.sessions.Append(input.UserID, errTurn)
		uc.persist(ctx, input.UserID, userTurn, errTurn)

		return coach.TurnOutput{Reply: coach.ApologyReply, Degraded: true, Cause: err}, nil
	}

	assistantTurn := coach.Turn{Sender: coach.SenderAssistant, Text: reply, Timestamp: uc.now()}
	uc.sessions.Append(input.UserID, assistantTurn)
	uc.persist(ctx, input.UserID, userTurn, assistantTurn)

	return coach.TurnOutput{
		Reply:         reply,
		SafetyBlocked: resp.SafetyBlocked,
		Provider:      resp.ProviderName,
	}, nil
}

func (uc *implUseCase) generate(ctx context.Context, messages []llmprovider.Message) (string, *llmprovider.Response, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    messages,
		Temperature: uc.cfg.Temperature,
		TopP:        uc.cfg.TopP,
		MaxTokens:   uc.cfg.MaxTokens,
	})
	if err != nil {
		return "", nil, err
	}

	reply := sanitizer.Sanitize(resp.Text)
	if reply == "" {
		return "", nil, coach.ErrEmptyReply
	}
	return reply, resp, nil
}
