package prompt

import (
	"sort"

	"financial-coach/internal/coach"
)

// Context is the per-request view of an assessment used to personalize the prompt.
// The zero value means no assessment is available.
type Context struct {
	PersonaText     string
	UserName        string
	ResultTitle     string
	Score           float64
	MaxScore        float64
	ScorePercentage float64
	Strengths       []string
	Weaknesses      []string
	TopAdvice       []string
}

// IsEmpty reports whether the context carries no assessment.
func (c Context) IsEmpty() bool {
	return c.UserName == "" && c.ResultTitle == "" && len(c.TopAdvice) == 0
}

// Merge derives a Context from a profile. A nil profile yields a persona-only Context.
func Merge(profile *coach.AssessmentProfile) Context {
	if profile == nil {
		return Context{PersonaText: Persona}
	}

	pc := Context{
		PersonaText: Persona,
		UserName:    orDefault(profile.UserName, DefaultUserName),
		ResultTitle: orDefault(profile.ResultTitle, DefaultTitle),
		Score:       profile.Score,
		MaxScore:    profile.MaxScore,
	}
	if profile.MaxScore != 0 {
		pc.ScorePercentage = profile.Score / profile.MaxScore * 100
	}

	codes := make([]string, 0, len(profile.CategoryScores))
	for code := range profile.CategoryScores {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		score := profile.CategoryScores[code]
		switch {
		case score >= strengthThreshold:
			pc.Strengths = append(pc.Strengths, CategoryName(code))
		case score <= weaknessThreshold:
			pc.Weaknesses = append(pc.Weaknesses, CategoryName(code))
		}
	}

	// First entries as given, blanks included.
	advice := profile.AdviceList
	if len(advice) > maxTopAdvice {
		advice = advice[:maxTopAdvice]
	}
	pc.TopAdvice = append([]string(nil), advice...)
	if len(pc.TopAdvice) == 0 {
		pc.TopAdvice = []string{DefaultAdvice}
	}

	return pc
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
