// Package counsel answers free-form career questions.
package counsel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/guard"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
)

var ErrMessageRequired = errors.New("Message is required and must be a string.")

const (
	CVRefusal        = "I'm sorry, but I cannot analyze personal documents like CVs or resumes."
	FictionalRefusal = "I can only provide information on real-world careers. Please ask about a non-fictional profession."
)

const systemPrompt = `
You are a specialized Career Counseling Assistant. Your sole purpose is to provide helpful, accurate, and realistic information about real-world careers.

Follow these rules strictly:
1.  **Scope:** Only answer questions directly related to careers, jobs, skills, education, professional development, and salaries.
2.  **Refuse Resume/CV Analysis:** You MUST refuse to analyze, review, or give feedback on any text that appears to be a resume, CV, or personal profile. If asked, politely decline and state that you cannot handle personal documents.
3.  **Refuse Fictional Careers:** You MUST refuse to answer any questions about fictional careers (e.g., "how to become a Jedi Knight", "salary of a dragon rider"). Politely state that you only provide information on real-world professions.
4.  **Stay on Topic:** If the user asks a question unrelated to careers (e.g., about movies, recipes, history, general chit-chat), you MUST politely decline and steer the conversation back to career topics.
5.  **Be Concise and Professional:** Provide clear and helpful answers. Do not invent information.
`

// Reply is a chat answer. Refused is set when a local guardrail answered.
type Reply struct {
	Text    string
	Refused bool
}

type Counselor struct {
	gen llm.Generator
}

func NewCounselor(gen llm.Generator) *Counselor {
	return &Counselor{gen: gen}
}

// Ask applies the local guardrails, then forwards the question to the model.
func (c *Counselor) Ask(ctx context.Context, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrMessageRequired
	}
	// Whole-word matches; see guard.
	if guard.CVTopics.Contains(message) {
		return Reply{Text: CVRefusal, Refused: true}, nil
	}
	if guard.Careers.Contains(message) {
		return Reply{Text: FictionalRefusal, Refused: true}, nil
	}

	answer, err := c.gen.Generate(ctx, llm.Text(systemPrompt), llm.Text(fmt.Sprintf("User's question: '%s'", message)))
	if err != nil {
		return Reply{}, fmt.Errorf("counsel: %w", err)
	}
	return Reply{Text: answer}, nil
}
