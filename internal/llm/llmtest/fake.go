// Package llmtest provides a scripted llm.Generator for tests.
package llmtest

import (
	"context"
	"strings"
	"sync"

	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
)

// Fake replies with Replies in order, repeating the last one. If Err is set it is
// returned instead. Every call is recorded.
type Fake struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	Prompts [][]llm.Part
}

func New(replies ...string) *Fake {
	return &Fake{Replies: replies}
}

func Failing(err error) *Fake {
	return &Fake{Err: err}
}

func (f *Fake) Generate(_ context.Context, parts ...llm.Part) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, parts)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Replies) == 0 {
		return "", nil
	}
	i := len(f.Prompts) - 1
	if i >= len(f.Replies) {
		i = len(f.Replies) - 1
	}
	return f.Replies[i], nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

// PromptText joins the text parts of call i.
func (f *Fake) PromptText(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sb strings.Builder
	for _, p := range f.Prompts[i] {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
