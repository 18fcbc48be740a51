package interview

import (
	"regexp"
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

var numberedLine = regexp.MustCompile(`^\d+\.\s*`)

// ParseQuestions extracts "N. question" lines from a model reply in order.
// Positions decide category, difficulty and time limit.
func ParseQuestions(reply string) []models.InterviewQuestion {
	var questions []models.InterviewQuestion
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !numberedLine.MatchString(line) {
			continue
		}
		text := strings.TrimSpace(numberedLine.ReplaceAllString(line, ""))
		questions = append(questions, newQuestion(len(questions), text))
	}
	return questions
}

// IsInvalidRole reads the validity check reply: only its first line counts.
func IsInvalidRole(reply string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(reply), "\n")
	return strings.Contains(strings.ToUpper(first), "INVALID")
}
