/**
* Name: 			generator.go
* Description: 		생성형 AI 호출 추상화
* Workflow: 		설정에 따라 Gemini / 외부 LLM 서버 / 미설정(Unavailable) 중 하나를 선택
 */

package llm

import (
	"context"
	"fmt"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
)

// Part is one piece of a prompt: text, or inline binary data such as a resume image.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

func Text(s string) Part { return Part{Text: s} }

func Blob(data []byte, mimeType string) Part { return Part{Data: data, MIMEType: mimeType} }

// Generator produces a single text completion for the given prompt parts.
type Generator interface {
	Generate(ctx context.Context, parts ...Part) (string, error)
}

// Unavailable is the Generator used when no AI vendor is configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, ...Part) (string, error) {
	return "", ErrNotConfigured
}

// New returns the Generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return Unavailable{}, nil
	}
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, cfg)
	case "http":
		return NewHTTPGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

// Configured reports whether g can reach a vendor.
func Configured(g Generator) bool {
	if g == nil {
		return false
	}
	_, off := g.(Unavailable)
	return !off
}
