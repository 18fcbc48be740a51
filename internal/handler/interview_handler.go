/**
* Name: 			interview_handler.go
* Description: 		모의 면접 HTTP 핸들러
* Workflow: 		질문 생성 -> (질문 음성) -> 답변별 분석 + 녹음 보관 -> 최종 분석 + 기록 저장 / 녹음 병합
 */

package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/archiver"
	"github.com/Susmita-Codes/Pravartak-AI/internal/blob"
	"github.com/Susmita-Codes/Pravartak-AI/internal/events"
	"github.com/Susmita-Codes/Pravartak-AI/internal/interview"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

const maxAudioSize = 25 << 20

type GenerateQuestionsRequest struct {
	JobRole string `json:"jobRole" example:"Software Engineer"`
}

type GenerateQuestionsResponse struct {
	interview.QuestionSet
	SessionID string `json:"sessionId" example:"5f0c6a2e-8d0b-4f8e-9a55-0d7b6c0e1a11"`
}

type QuestionAudioRequest struct {
	Question string `json:"question" example:"Tell me about yourself."`
}

type FinalAnalysisRequest struct {
	History   []interview.HistoryItem `json:"history"`
	JobRole   string                  `json:"jobRole" example:"Software Engineer"`
	SessionID string                  `json:"sessionId"`
}

type FinalAnalysisResponse struct {
	models.FinalReport
	RecordID  string `json:"recordId,omitempty"`
	AudioFile string `json:"audioFile,omitempty"`
}

// GenerateQuestions godoc
// @Summary      면접 질문 생성
// @Description  직무명을 검증한 뒤 5개의 면접 질문을 생성합니다. AI 미설정 시 고정 질문을 반환합니다.
// @Tags         Mock Interview
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.GenerateQuestionsRequest true "직무명"
// @Success      200 {object} handler.GenerateQuestionsResponse
// @Failure      400 {object} handler.ErrorResponse "직무 누락, 가상의 직무, 유효하지 않은 직무"
// @Failure      429 {object} handler.ErrorResponse "AI 할당량 초과"
// @Failure      503 {object} handler.ErrorResponse "AI 서비스 연결 실패"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/mock-interview/generate-questions [post]
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	set, err := h.Coach.GenerateQuestions(c.Request.Context(), req.JobRole)
	if err != nil {
		var invalid *interview.InvalidRoleError
		switch {
		case errors.Is(err, interview.ErrRoleRequired), errors.Is(err, interview.ErrFictionalRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "isValid": false})
		default:
			status, msg := vendorStatus(err)
			logger.L().Error("question generation failed", zap.String("role", req.JobRole), zap.Error(err))
			c.JSON(status, gin.H{"error": msg})
		}
		return
	}

	c.JSON(http.StatusOK, GenerateQuestionsResponse{QuestionSet: set, SessionID: uuid.New().String()})
}

// QuestionAudio godoc
// @Summary      질문 음성 합성 (TTS)
// @Description  면접 질문을 읽어주는 mp3 오디오를 반환합니다.
// @Tags         Mock Interview
// @Accept       json
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        request body handler.QuestionAudioRequest true "질문"
// @Success      200 {file} file "mp3 오디오"
// @Failure      400 {object} handler.ErrorResponse "질문 누락"
// @Failure      503 {object} handler.ErrorResponse "음성 서비스 미설정"
// @Failure      500 {object} handler.ErrorResponse "합성 실패"
// @Router       /api/mock-interview/question-audio [post]
func (h *Handler) QuestionAudio(c *gin.Context) {
	if h.TTS == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech service is not configured"})
		return
	}
	var req QuestionAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	audio, err := h.TTS.Synthesize(c.Request.Context(), req.Question)
	if err != nil {
		logger.L().Error("question synthesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to synthesize question audio"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// AnalyzeAnswer godoc
// @Summary      답변 분석
// @Description  녹음된 답변의 말하기 지표(WPM, 멈춤, 군말)를 계산하고 AI로 내용을 1~5점으로 채점합니다.
// @Description  sessionId를 보내면 녹음이 보관되어 최종 분석 시 하나의 파일로 병합됩니다.
// @Tags         Mock Interview
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio      formData file   true  "답변 녹음"
// @Param        question   formData string true  "질문"
// @Param        jobRole    formData string true  "직무명"
// @Param        transcript formData string false "클라이언트 측 전사문"
// @Param        sessionId  formData string false "면접 세션 ID"
// @Param        questionId formData int    false "질문 번호"
// @Success      200 {object} models.AnswerAnalysis
// @Failure      400 {object} handler.ErrorResponse "필수 항목 누락"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Router       /api/mock-interview/analyze-answer [post]
func (h *Handler) AnalyzeAnswer(c *gin.Context) {
	question := strings.TrimSpace(c.PostForm("question"))
	jobRole := strings.TrimSpace(c.PostForm("jobRole"))
	fileHeader, err := c.FormFile("audio")
	if err != nil || question == "" || jobRole == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio, question, and job role are required"})
		return
	}
	if fileHeader.Size > maxAudioSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is too large"})
		return
	}

	audio, err := readFormFile(c, "audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio"})
		return
	}

	ctx := c.Request.Context()
	mimeType := fileHeader.Header.Get("Content-Type")
	transcript := strings.TrimSpace(c.PostForm("transcript"))
	if transcript == "" && h.STT != nil && len(audio) > 0 {
		text, err := h.STT.Transcribe(ctx, audio, mimeType)
		if err != nil {
			logger.L().Warn("answer transcription failed, simulating", zap.Error(err))
		} else {
			transcript = text
		}
	}

	analysis := h.Coach.AnalyzeAnswer(ctx, interview.Answer{
		Question:   question,
		JobRole:    jobRole,
		Transcript: transcript,
		AudioSize:  int64(len(audio)),
	})
	questionID, _ := strconv.Atoi(c.PostForm("questionId"))
	analysis.QuestionID = questionID

	if sessionID := c.PostForm("sessionId"); sessionID != "" && h.Archive != nil {
		ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
		if ext == "" {
			ext = extFromMIME(mimeType)
		}
		if err := h.Archive.SaveClip(ctx, userID(c), sessionID, questionID, audio, ext); err != nil {
			logger.L().Warn("failed to archive answer clip", zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// FinalAnalysis godoc
// @Summary      최종 면접 분석
// @Description  답변별 분석 결과를 집계하여 지표와 마크다운 리포트를 생성하고 면접 기록으로 저장합니다.
// @Tags         Mock Interview
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.FinalAnalysisRequest true "답변 분석 이력"
// @Success      200 {object} handler.FinalAnalysisResponse
// @Failure      400 {object} handler.ErrorResponse "이력 누락"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/mock-interview/final-analysis [post]
func (h *Handler) FinalAnalysis(c *gin.Context) {
	var req FinalAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	jobRole := strings.TrimSpace(req.JobRole)
	if jobRole == "" {
		jobRole = "the target role"
	}

	ctx := c.Request.Context()
	report, err := h.Coach.FinalReport(ctx, jobRole, req.History)
	if err != nil {
		if errors.Is(err, interview.ErrEmptyHistory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Error("final analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate final analysis"})
		return
	}

	resp := FinalAnalysisResponse{FinalReport: report}
	uid := userID(c)
	record := models.InterviewRecord{
		UserID:    uid,
		SessionID: req.SessionID,
		JobRole:   jobRole,
		Metrics:   report.Metrics,
		Analysis:  report.Analysis,
	}
	if err := h.Store.CreateInterviewRecord(ctx, &record); err != nil {
		logger.L().Error("failed to save interview record", zap.String("user_id", uid), zap.Error(err))
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.RecordID = record.ID

	if req.SessionID != "" && h.Archive != nil {
		resp.AudioFile = h.archiveSession(ctx, uid, req.SessionID, record.ID)
	}

	h.publish(ctx, events.Event{
		Type:       events.InterviewCompleted,
		UserID:     uid,
		OccurredAt: record.CreatedAt,
		Data: map[string]any{
			"recordId":          record.ID,
			"jobRole":           jobRole,
			"avgContentScore":   report.Metrics.AvgContentScore,
			"questionsAnswered": report.Metrics.QuestionsAnswered,
		},
	})
	c.JSON(http.StatusOK, resp)
}

// archiveSession merges the session's clips, attaches them to the record and
// copies the result to blob storage. It returns the file name or "" on failure.
func (h *Handler) archiveSession(ctx context.Context, uid, sessionID, recordID string) string {
	fileName, err := h.Archive.Merge(ctx, uid, sessionID)
	if err != nil {
		if !errors.Is(err, archiver.ErrNoClips) {
			logger.L().Error("failed to merge session audio", zap.String("session_id", sessionID), zap.Error(err))
		}
		return ""
	}
	if err := h.Store.SetRecordAudio(ctx, recordID, fileName); err != nil {
		logger.L().Error("failed to attach session audio", zap.String("record_id", recordID), zap.Error(err))
		return ""
	}

	if path, ok := h.Archive.Path(uid, fileName); ok {
		if f, err := os.Open(path); err == nil {
			if err := h.Blobs.Put(ctx, blob.RecordingKey(uid, fileName), "audio/mpeg", f); err != nil {
				logger.L().Warn("failed to upload session audio", zap.String("file", fileName), zap.Error(err))
			}
			f.Close()
		}
	}
	return fileName
}

func readFormFile(c *gin.Context, field string) ([]byte, error) {
	f, _, err := c.Request.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func extFromMIME(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "ogg"):
		return "ogg"
	case strings.Contains(mimeType, "wav"):
		return "wav"
	case strings.Contains(mimeType, "mpeg"), strings.Contains(mimeType, "mp3"):
		return "mp3"
	case strings.Contains(mimeType, "mp4"):
		return "m4a"
	default:
		return "webm"
	}
}

