package interview

import (
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

// Slot describes the category, difficulty and time allowance of the question
// at a given position in a session.
type Slot struct {
	Category   string
	Difficulty string
	TimeLimit  int // seconds
}

// QuestionsPerSession is how many questions a session asks.
const QuestionsPerSession = 5

var slots = []Slot{
	{Category: "Introduction", Difficulty: "Easy", TimeLimit: 120},
	{Category: "Technical", Difficulty: "Medium", TimeLimit: 180},
	{Category: "Behavioral", Difficulty: "Medium", TimeLimit: 150},
	{Category: "Problem Solving", Difficulty: "Hard", TimeLimit: 240},
	{Category: "Leadership", Difficulty: "Hard", TimeLimit: 200},
}

var defaultSlot = Slot{Category: "General", Difficulty: "Medium", TimeLimit: 180}

// SlotAt returns the slot for the zero-based position i.
func SlotAt(i int) Slot {
	if i >= 0 && i < len(slots) {
		return slots[i]
	}
	return defaultSlot
}

// fallbackTemplates are used when the model is unavailable or its reply has no
// numbered questions.
var fallbackTemplates = []string{
	"Tell me about yourself and why you're interested in the {role} position.",
	"What are the key skills and technologies required for a {role}?",
	"Describe a challenging situation you faced at work and how you handled it.",
	"How would you approach a complex problem in your role as a {role}?",
	"Tell me about a time when you had to work with a difficult team member.",
}

func FallbackQuestions(jobRole string) []models.InterviewQuestion {
	questions := make([]models.InterviewQuestion, len(fallbackTemplates))
	for i, tmpl := range fallbackTemplates {
		questions[i] = newQuestion(i, formatRole(tmpl, jobRole))
	}
	return questions
}

func formatRole(tmpl, role string) string {
	return strings.ReplaceAll(tmpl, "{role}", role)
}

func newQuestion(i int, text string) models.InterviewQuestion {
	s := SlotAt(i)
	return models.InterviewQuestion{
		ID:         i + 1,
		Category:   s.Category,
		Question:   text,
		Difficulty: s.Difficulty,
		TimeLimit:  s.TimeLimit,
	}
}
