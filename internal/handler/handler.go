/**
* Name: 			handler.go
* Description: 		HTTP 핸들러 공용 의존성 및 응답 타입
* Workflow: 		cmd/api에서 Deps 조립 -> New -> NewRouter로 라우팅 등록
 */

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/archiver"
	"github.com/Susmita-Codes/Pravartak-AI/internal/auth"
	"github.com/Susmita-Codes/Pravartak-AI/internal/blob"
	"github.com/Susmita-Codes/Pravartak-AI/internal/counsel"
	"github.com/Susmita-Codes/Pravartak-AI/internal/cv"
	"github.com/Susmita-Codes/Pravartak-AI/internal/events"
	"github.com/Susmita-Codes/Pravartak-AI/internal/insights"
	"github.com/Susmita-Codes/Pravartak-AI/internal/interview"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/middleware"
	"github.com/Susmita-Codes/Pravartak-AI/internal/roadmap"
	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

// Transcriber turns a recorded answer into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer reads a question aloud as MP3.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type TranscriptStream interface {
	SendAudio(audio []byte) error
	Receive(out chan<- llm.Transcript) error
	Close() error
}

type StreamOpener interface {
	NewStream(ctx context.Context) (TranscriptStream, error)
}

type StreamOpenerFunc func(ctx context.Context) (TranscriptStream, error)

func (f StreamOpenerFunc) NewStream(ctx context.Context) (TranscriptStream, error) { return f(ctx) }

// Deps is everything the handlers need. Speech, blob and event fields may be nil.
type Deps struct {
	Store     *storage.Store
	Tokens    *auth.TokenManager
	Coach     *interview.Coach
	CVs       *cv.Analyzer
	Roadmaps  *roadmap.Service
	Counselor *counsel.Counselor
	Insights  *insights.Generator
	Refresher *insights.Refresher
	Archive   *archiver.Archiver
	Blobs     blob.Store
	Events    events.Publisher
	STT       Transcriber
	TTS       Synthesizer
	Streams   StreamOpener
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.Blobs == nil {
		d.Blobs = blob.Noop{}
	}
	if d.Events == nil {
		d.Events = events.Noop{}
	}
	return &Handler{Deps: d}
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// vendorStatus maps an AI vendor failure to the status and message shown to the client.
func vendorStatus(err error) (int, string) {
	switch llm.Classify(err) {
	case llm.KindQuota:
		return http.StatusTooManyRequests, "AI service quota exceeded. Please try again later."
	case llm.KindNetwork:
		return http.StatusServiceUnavailable, "AI service is temporarily unreachable. Please try again."
	case llm.KindAuth, llm.KindNotConfigured:
		return http.StatusInternalServerError, "AI service is not configured correctly. Please contact support."
	default:
		return http.StatusInternalServerError, "Failed to process the request with the AI service."
	}
}

// publish sends an activity event without failing the request.
func (h *Handler) publish(ctx context.Context, ev events.Event) {
	if err := h.Events.Publish(ctx, ev); err != nil {
		logger.L().Warn("failed to publish event", zap.String("type", ev.Type), zap.Error(err))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
