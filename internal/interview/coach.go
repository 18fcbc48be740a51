/**
* Name: 			coach.go
* Description: 		모의 면접 진행 로직
* Workflow: 		직무 검증 → 질문 생성 → 답변 분석(음성 지표 + LLM 채점) → 최종 리포트
 */

package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/guard"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

var (
	ErrRoleRequired  = errors.New("Job role is required")
	ErrFictionalRole = errors.New("I can only prepare interviews for real-world jobs. Please enter a valid job role.")
)

// InvalidRoleError is returned when the validity check rejects the role.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("'%s' does not seem to be a real-life job role. Please enter a valid one.", e.Role)
}

const fallbackJustification = "Your response was recorded successfully. Due to technical limitations, detailed content analysis is unavailable at the moment."

type Coach struct {
	gen llm.Generator
	rng Random
	now func() time.Time
}

type Option func(*Coach)

func WithRandom(r Random) Option { return func(c *Coach) { c.rng = r } }

func WithClock(now func() time.Time) Option { return func(c *Coach) { c.now = now } }

func NewCoach(gen llm.Generator, opts ...Option) *Coach {
	c := &Coach{gen: gen, rng: globalRandom{}, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type QuestionSet struct {
	Questions []models.InterviewQuestion `json:"questions"`
	JobRole   string                     `json:"jobRole"`
	IsValid   bool                       `json:"isValid"`
	Fallback  bool                       `json:"fallback,omitempty"`
}

// GenerateQuestions validates the role and asks the model for a question set.
// Without a configured model the fixed questions are returned.
func (c *Coach) GenerateQuestions(ctx context.Context, jobRole string) (QuestionSet, error) {
	jobRole = strings.TrimSpace(jobRole)
	if jobRole == "" {
		return QuestionSet{}, ErrRoleRequired
	}
	if term, blocked := guard.Careers.Match(jobRole); blocked {
		logger.L().Info("job role blocked", zap.String("role", jobRole), zap.String("term", term))
		return QuestionSet{}, ErrFictionalRole
	}

	if !llm.Configured(c.gen) {
		return fallbackSet(jobRole), nil
	}

	verdict, err := c.gen.Generate(ctx, llm.Text(validationPrompt(jobRole)))
	if err != nil {
		return QuestionSet{}, fmt.Errorf("validating job role: %w", err)
	}
	if IsInvalidRole(verdict) {
		return QuestionSet{}, &InvalidRoleError{Role: jobRole}
	}

	reply, err := c.gen.Generate(ctx, llm.Text(questionsPrompt(jobRole)))
	if err != nil {
		return QuestionSet{}, fmt.Errorf("generating questions: %w", err)
	}
	questions := ParseQuestions(reply)
	if len(questions) == 0 {
		logger.L().Warn("no questions parsed from model reply, using fallback", zap.String("role", jobRole))
		return fallbackSet(jobRole), nil
	}
	return QuestionSet{Questions: questions, JobRole: jobRole, IsValid: true}, nil
}

func fallbackSet(jobRole string) QuestionSet {
	return QuestionSet{
		Questions: FallbackQuestions(jobRole),
		JobRole:   jobRole,
		IsValid:   true,
		Fallback:  true,
	}
}

type Answer struct {
	Question   string
	JobRole    string
	Transcript string
	AudioSize  int64
}

// AnalyzeAnswer combines simulated speech metrics with a model score. Vendor or
// parse failures fall back to a neutral score.
func (c *Coach) AnalyzeAnswer(ctx context.Context, a Answer) models.AnswerAnalysis {
	speech := SimulateSpeech(a.AudioSize, a.Transcript, c.rng)

	eval := models.ContentEvaluation{Score: 3, Justification: fallbackJustification}
	reply, err := c.gen.Generate(ctx, llm.Text(evaluationPrompt(a.JobRole, a.Question, a.Transcript)))
	if err != nil {
		logger.L().Warn("answer evaluation unavailable", zap.String("kind", llm.Classify(err).String()), zap.Error(err))
	} else if parsed, ok := ParseEvaluation(reply); ok {
		eval = parsed
	} else {
		logger.L().Warn("could not parse answer evaluation", zap.String("reply", reply))
	}

	return models.AnswerAnalysis{
		SpeechMetrics:     speech,
		ContentEvaluation: eval,
		Timestamp:         c.now().UTC(),
	}
}

// ParseEvaluation decodes a {score, justification} reply, clamping the score to 1..5.
func ParseEvaluation(reply string) (models.ContentEvaluation, bool) {
	var raw struct {
		Score         *float64 `json:"score"`
		Justification string   `json:"justification"`
	}
	if err := llm.DecodeJSON(reply, &raw); err != nil || raw.Score == nil {
		return models.ContentEvaluation{}, false
	}
	score := int(math.Round(*raw.Score))
	score = min(max(score, 1), 5)

	justification := strings.TrimSpace(raw.Justification)
	if justification == "" {
		justification = "No feedback available"
	}
	return models.ContentEvaluation{Score: score, Justification: justification}, true
}

// FinalReport summarizes a whole session. A vendor failure yields the offline report.
func (c *Coach) FinalReport(ctx context.Context, jobRole string, history []HistoryItem) (models.FinalReport, error) {
	m, err := ComputeMetrics(history)
	if err != nil {
		return models.FinalReport{}, err
	}

	analysis, err := c.gen.Generate(ctx, llm.Text(summaryPrompt(jobRole, m, history)))
	if err != nil || strings.TrimSpace(analysis) == "" {
		if err != nil {
			logger.L().Warn("final analysis unavailable, using offline report", zap.String("kind", llm.Classify(err).String()), zap.Error(err))
		}
		return models.FinalReport{Analysis: OfflineReport(jobRole, m), Metrics: m.InterviewMetrics, Fallback: true}, nil
	}
	return models.FinalReport{Analysis: analysis, Metrics: m.InterviewMetrics}, nil
}
