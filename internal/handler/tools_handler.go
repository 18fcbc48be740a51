package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/blob"
	"github.com/Susmita-Codes/Pravartak-AI/internal/counsel"
	"github.com/Susmita-Codes/Pravartak-AI/internal/cv"
	"github.com/Susmita-Codes/Pravartak-AI/internal/events"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
	"github.com/Susmita-Codes/Pravartak-AI/internal/roadmap"
)

type RoadmapRequest struct {
	Career string `json:"career" example:"Data Scientist"`
}

type RoadmapResponse struct {
	Success  bool           `json:"success" example:"true"`
	Data     models.Roadmap `json:"data"`
	Fallback bool           `json:"fallback,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" example:"How do I become a data analyst?"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// AnalyzeCV godoc
// @Summary      이력서 분석
// @Description  pdf, docx, txt 또는 이미지(png, jpg, jpeg, webp) 이력서를 목표 직무 기준으로 분석합니다. (최대 5MB)
// @Tags         Tools
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file     formData file   true "이력서 파일"
// @Param        jobTitle formData string true "목표 직무"
// @Success      200 {object} models.CVAnalysis
// @Failure      400 {object} handler.ErrorResponse "직무/파일 누락, 지원하지 않는 형식, 용량 초과"
// @Failure      500 {object} handler.ErrorResponse "AI 미설정 또는 분석 실패"
// @Router       /api/cv-analyser [post]
func (h *Handler) AnalyzeCV(c *gin.Context) {
	jobTitle := strings.TrimSpace(c.PostForm("jobTitle"))
	if jobTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": cv.ErrTitleRequired.Error()})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please upload a CV file."})
		return
	}
	if fileHeader.Size > cv.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": cv.ErrTooLarge.Error()})
		return
	}
	data, err := readFormFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read the uploaded file."})
		return
	}

	upload := cv.Upload{
		JobTitle:    jobTitle,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	ctx := c.Request.Context()
	result, err := h.CVs.Analyze(ctx, upload)
	if err != nil {
		switch {
		case cv.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, llm.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI service is not configured. Please set GEMINI_API_KEY."})
		default:
			_, msg := vendorStatus(err)
			logger.L().Error("cv analysis failed", zap.String("file", fileHeader.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
		}
		return
	}

	uid := userID(c)
	key := blob.CVKey(uid, fileHeader.Filename, time.Now())
	if err := h.Blobs.Put(ctx, key, upload.ContentType, bytes.NewReader(data)); err != nil {
		logger.L().Warn("failed to store cv upload", zap.String("key", key), zap.Error(err))
	}
	h.publish(ctx, events.Event{
		Type:   events.CVAnalyzed,
		UserID: uid,
		Data: map[string]any{
			"jobTitle": result.JobTitle,
			"fileName": result.FileName,
			"fileSize": result.FileSize,
		},
	})

	c.JSON(http.StatusOK, result)
}

// GenerateRoadmap godoc
// @Summary      커리어 로드맵 생성
// @Description  직업명에 대한 단계별 로드맵을 생성합니다. AI를 사용할 수 없으면 키워드 기반 기본 로드맵을 반환합니다.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.RoadmapRequest true "직업명"
// @Success      200 {object} handler.RoadmapResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 JSON, 직업명 누락, 가상의 직업"
// @Failure      500 {object} handler.ErrorResponse "AI 응답 형식 오류"
// @Router       /api/roadmap [post]
func (h *Handler) GenerateRoadmap(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body."})
		return
	}
	var career string
	if err := json.Unmarshal(raw["career"], &career); err != nil || strings.TrimSpace(career) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Career must be a non-empty string."})
		return
	}

	result, err := h.Roadmaps.Generate(c.Request.Context(), strings.TrimSpace(career))
	if err != nil {
		switch {
		case errors.Is(err, roadmap.ErrCareerRequired), errors.Is(err, roadmap.ErrFictional):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate roadmap: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, RoadmapResponse{Success: true, Data: result.Roadmap, Fallback: result.Fallback})
}

// Chat godoc
// @Summary      커리어 상담 챗봇
// @Description  실제 직업에 관한 질문에만 답합니다. 이력서 분석 요청과 가상의 직업 질문은 정중히 거절합니다.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.ChatRequest true "질문"
// @Success      200 {object} handler.ChatResponse
// @Failure      400 {object} handler.ErrorResponse "메시지 누락"
// @Failure      500 {object} handler.ChatResponse "AI 오류"
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": counsel.ErrMessageRequired.Error()})
		return
	}

	reply, err := h.Counselor.Ask(c.Request.Context(), req.Message)
	if err != nil {
		_, msg := vendorStatus(err)
		logger.L().Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ChatResponse{
			Response: "I'm sorry, I'm having trouble connecting to my knowledge base right now. Please try again later.",
			Success:  false,
			Error:    msg,
		})
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Response: reply.Text, Success: true})
}
