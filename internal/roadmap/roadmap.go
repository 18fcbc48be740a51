// Package roadmap generates staged career plans.
package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/guard"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

var (
	ErrCareerRequired = errors.New("Career input is required and must be a string")
	ErrFictional      = errors.New("I can only generate roadmaps for real-world careers. Please enter a valid profession.")
	ErrInvalidReply   = errors.New("AI response was not in valid JSON format. Please try again.")
	ErrInvalidShape   = errors.New("Invalid roadmap structure received from AI")
)

const systemPrompt = `
You are an expert career counselor. Your task is to generate a structured career roadmap for a given profession.
You MUST provide the output as a clean JSON object, without any surrounding text or markdown.
The JSON structure should be an array of stages in a "roadmap" key. The number of stages should be whatever is appropriate for the career.

Here is an example of the required structure:
{
  "career": "The Career Title",
  "roadmap": [
    {
      "title": "Stage 1 Title",
      "steps": [
        "Step 1.1 description",
        "Step 1.2 description"
      ]
    },
    {
      "title": "Stage 2 Title",
      "steps": [
        "Step 2.1 description",
        "Step 2.2 description",
        "Step 2.3 description"
      ]
    }
  ]
}
Ensure the roadmap is logical, comprehensive, and covers key skills, technologies, and milestones.
Do not generate roadmaps for fictional careers.
`

type Result struct {
	Roadmap  models.Roadmap
	Fallback bool
}

type Service struct {
	gen llm.Generator
}

func NewService(gen llm.Generator) *Service {
	return &Service{gen: gen}
}

// Generate returns an AI roadmap, or the keyword fallback when the model is
// unconfigured or the call fails. A reply that is not a roadmap is an error.
func (s *Service) Generate(ctx context.Context, career string) (Result, error) {
	if strings.TrimSpace(career) == "" {
		return Result{}, ErrCareerRequired
	}
	if guard.Careers.Contains(career) {
		return Result{}, ErrFictional
	}

	if !llm.Configured(s.gen) {
		logger.L().Info("AI not configured, using fallback roadmap", zap.String("career", career))
		return Result{Roadmap: Fallback(career), Fallback: true}, nil
	}

	reply, err := s.gen.Generate(ctx, llm.Text(systemPrompt+"\n\nPlease generate a roadmap for the career: '"+career+"'"))
	if err != nil {
		logger.L().Warn("roadmap generation failed, using fallback",
			zap.String("career", career),
			zap.String("kind", llm.Classify(err).String()),
			zap.Error(err),
		)
		return Result{Roadmap: Fallback(career), Fallback: true}, nil
	}

	roadmap, err := ParseReply(reply)
	if err != nil {
		logger.L().Error("unusable roadmap reply", zap.String("career", career), zap.Error(err))
		return Result{}, err
	}
	if roadmap.Career == "" {
		roadmap.Career = career
	}
	return Result{Roadmap: roadmap}, nil
}

// ParseReply decodes a fenced or bare JSON roadmap.
func ParseReply(reply string) (models.Roadmap, error) {
	var raw struct {
		Career  string          `json:"career"`
		Roadmap json.RawMessage `json:"roadmap"`
	}
	if err := llm.DecodeJSON(reply, &raw); err != nil {
		return models.Roadmap{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}

	var stages []models.RoadmapStage
	trimmed := strings.TrimSpace(string(raw.Roadmap))
	if !strings.HasPrefix(trimmed, "[") {
		return models.Roadmap{}, ErrInvalidShape
	}
	if err := json.Unmarshal(raw.Roadmap, &stages); err != nil {
		return models.Roadmap{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return models.Roadmap{Career: raw.Career, Roadmap: stages}, nil
}
