package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

// 면접 기록 목록 응답 (Wrapper)
type HistoryResponse struct {
	History []models.InterviewRecord `json:"history"`
}

// GetHistory godoc
// @Summary      모의 면접 기록 조회
// @Description  사용자의 과거 모의 면접 기록(지표, 리포트, 녹음 파일명)을 최신순으로 반환합니다.
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HistoryResponse "history: [기록 배열]"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패 등 서버 오류"
// @Router       /api/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	records, err := h.Store.ListInterviewRecords(c.Request.Context(), userID(c))
	if err != nil {
		logger.L().Error("failed to fetch interview records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: records})
}

// GetHistoryRecord godoc
// @Summary      모의 면접 기록 단건 조회
// @Description  본인의 면접 기록 하나를 ID로 조회합니다.
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "기록 ID"
// @Success      200 {object}  models.InterviewRecord
// @Failure      401 {object}  handler.ErrorResponse "인증 실패"
// @Failure      404 {object}  handler.ErrorResponse "기록 없음"
// @Failure      500 {object}  handler.ErrorResponse "DB 조회 실패 등 서버 오류"
// @Router       /api/history/{id} [get]
func (h *Handler) GetHistoryRecord(c *gin.Context) {
	record, err := h.Store.GetInterviewRecord(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.L().Error("failed to fetch interview record", zap.String("record_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// StreamAudio godoc
// @Summary      면접 녹음 스트리밍
// @Description  병합된 면접 녹음(.mp3)을 재생합니다.
// @Description  <br> **[인증]** Header에 `Authorization: Bearer ...`를 넣거나, URL 파라미터 `?token=...`을 사용하세요.
// @Tags         History
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        filename path      string  true  "오디오 파일명 (예: session_uuid.mp3)"
// @Param        token    query     string  false "JWT 토큰 (Header 사용 불가 시)"
// @Success      200      {file}    file    "오디오 바이너리 데이터"
// @Failure      401      {object}  handler.ErrorResponse "인증 실패"
// @Failure      404      {object}  handler.ErrorResponse "해당 파일을 찾을 수 없음"
// @Router       /api/history/audio/{filename} [get]
func (h *Handler) StreamAudio(c *gin.Context) {
	if h.Archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}
	path, ok := h.Archive.Path(userID(c), c.Param("filename"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}
	c.File(path)
}
