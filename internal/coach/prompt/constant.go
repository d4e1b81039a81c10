package prompt

const (
	DefaultAdvice     = "establish a budgeting habit, increase savings rate"
	NoStrengthsText   = "no clear strength yet"
	NoWeaknessesText  = "balanced overall"
	DefaultUserName   = "user"
	DefaultTitle      = "financial growth stage"
	InlineSeparator   = "\n---conversation---\n"
	maxTopAdvice      = 3
	strengthThreshold = 70
	weaknessThreshold = 40
)

// Persona is the fixed instruction block that defines the coach.
const Persona = `You are a financial mindset coach. Your job is to help the user build healthy money habits and a clear, confident relationship with their finances.

Tone and manner:
- Be professional and friendly. Show empathy for the user's situation.
- Give concrete, actionable advice instead of generic encouragement.
- When the user sounds anxious or overwhelmed, acknowledge the feeling first and offer calm, supportive next steps.
- Keep continuity with the earlier conversation and refer back to it when relevant.

Formatting:
- Answer in Markdown. Use headings, numbered or bulleted lists, and tables where they make the answer easier to follow.
- Use **bold** for the key takeaway.
- Never include internal reasoning or <think> tags in the answer.

Boundaries:
- Do not recommend specific stocks, funds or other individual investment products.
- Suggest consulting a licensed professional for legal, tax or investment decisions.`

// categoryNames maps an assessment category code to its display name.
var categoryNames = map[string]string{
	"savings":   "savings capability",
	"debt":      "debt management",
	"risk":      "risk management",
	"emergency": "emergency preparedness",
	"knowledge": "financial literacy",
	"income":    "income stability",
	"goals":     "financial goals",
	"tracking":  "expense tracking",
	"insurance": "insurance coverage",
	"pressure":  "stress resilience",
}

// CategoryName returns the display name of a category code. Unknown codes pass through.
func CategoryName(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return code
}
