package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"financial-coach/internal/coach"
	"financial-coach/pkg/llmprovider"
)

// Encoding selects how persona and context reach the model.
type Encoding int

const (
	// EncodingSystemRole emits persona and context as a leading system message.
	EncodingSystemRole Encoding = iota
	// EncodingInline prefixes persona and context onto the first user message,
	// for backends without a system role.
	EncodingInline
)

// EncodingFor picks the encoding matching a backend capability.
func EncodingFor(supportsSystemRole bool) Encoding {
	if supportsSystemRole {
		return EncodingSystemRole
	}
	return EncodingInline
}

// Assemble builds the message sequence for one model call:
// instructions, then history in chronological order, then the new user message.
func Assemble(pc Context, history []coach.Turn, message string, enc Encoding) []llmprovider.Message {
	instructions := Render(pc)

	messages := make([]llmprovider.Message, 0, len(history)+2)
	if enc == EncodingSystemRole {
		messages = append(messages, llmprovider.Message{Role: llmprovider.RoleSystem, Content: instructions})
	}

	for _, turn := range history {
		messages = append(messages, llmprovider.Message{Role: roleOf(turn.Sender), Content: turn.Text})
	}
	messages = append(messages, llmprovider.Message{Role: llmprovider.RoleUser, Content: message})

	if enc == EncodingInline {
		for i := range messages {
			if messages[i].Role == llmprovider.RoleUser {
				messages[i].Content = instructions + InlineSeparator + messages[i].Content
				break
			}
		}
	}

	return messages
}

// Render returns the persona text followed by the assessment block when one is present.
func Render(pc Context) string {
	persona := pc.PersonaText
	if persona == "" {
		persona = Persona
	}
	if pc.IsEmpty() {
		return persona
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\nUser assessment:\n")
	fmt.Fprintf(&b, "- Name: %s\n", pc.UserName)
	fmt.Fprintf(&b, "- Financial status: %s\n", pc.ResultTitle)
	fmt.Fprintf(&b, "- Score: %s/%s (%d%%)\n", formatNumber(pc.Score), formatNumber(pc.MaxScore), int(math.Round(pc.ScorePercentage)))
	fmt.Fprintf(&b, "- Strengths: %s\n", joinOr(pc.Strengths, ", ", NoStrengthsText))
	fmt.Fprintf(&b, "- Areas to improve: %s\n", joinOr(pc.Weaknesses, ", ", NoWeaknessesText))
	fmt.Fprintf(&b, "- Top advice: %s\n", joinOr(pc.TopAdvice, "; ", DefaultAdvice))
	b.WriteString("\nUse this assessment to personalize your guidance naturally. Do not recite it back to the user.")

	return b.String()
}

func roleOf(sender coach.Sender) string {
	if sender == coach.SenderUser {
		return llmprovider.RoleUser
	}
	return llmprovider.RoleAssistant
}

func joinOr(items []string, sep, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, sep)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
