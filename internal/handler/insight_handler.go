package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/insights"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

type RefreshRequest struct {
	Industries []string `json:"industries" example:"tech-software-development"`
}

type RefreshResponse struct {
	Refreshed int `json:"refreshed" example:"3"`
}

// GetInsights godoc
// @Summary      산업 인사이트 조회
// @Description  사용자 산업의 연봉 범위, 성장률, 수요, 트렌드, 추천 기술을 반환합니다. 만료된 스냅샷은 즉시 재생성합니다.
// @Tags         Insights
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.IndustryInsight
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      404 {object} handler.ErrorResponse "온보딩 미완료 또는 사용자 없음"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/insights [get]
func (h *Handler) GetInsights(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.Store.GetUserByID(ctx, userID(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	if !user.IsOnboarded() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complete onboarding to see industry insights"})
		return
	}

	insight, err := h.currentInsight(c, user.Industry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load industry insights"})
		return
	}
	c.JSON(http.StatusOK, insight)
}

// currentInsight returns the stored snapshot, regenerating it first if missing or stale.
func (h *Handler) currentInsight(c *gin.Context, industry string) (models.IndustryInsight, error) {
	ctx := c.Request.Context()
	insight, err := h.Store.GetInsight(ctx, industry)
	if err == nil && !insight.Stale(time.Now()) {
		return insight, nil
	}
	if err != nil && !isNotFound(err) {
		logger.L().Error("failed to load insight", zap.String("industry", industry), zap.Error(err))
		return models.IndustryInsight{}, err
	}

	fresh := h.Insights.Generate(ctx, industry)
	if err := h.Store.UpsertInsight(ctx, &fresh); err != nil {
		logger.L().Error("failed to store insight", zap.String("industry", industry), zap.Error(err))
		return models.IndustryInsight{}, err
	}
	return fresh, nil
}

// Dashboard godoc
// @Summary      대시보드
// @Description  프로필, 산업 인사이트, 모의 면접 통계, 추천 항목을 한 번에 반환합니다.
// @Tags         Insights
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Dashboard
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      404 {object} handler.ErrorResponse "사용자 없음"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.Store.GetUserByID(ctx, userID(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	stats, err := h.Store.InterviewStats(ctx, user.ID)
	if err != nil {
		logger.L().Error("failed to compute interview stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var insight *models.IndustryInsight
	if user.IsOnboarded() {
		got, err := h.currentInsight(c, user.Industry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		insight = &got
	}

	c.JSON(http.StatusOK, models.Dashboard{
		User:            user,
		Insight:         insight,
		Stats:           stats,
		Recommendations: insights.Recommend(user, insight, stats, time.Now()),
	})
}

// RefreshInsights godoc
// @Summary      산업 인사이트 강제 갱신 (관리자)
// @Description  industries를 지정하면 해당 산업만, 비우면 만료된 모든 인사이트를 재생성합니다.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Key header string true "관리자 키"
// @Param        request body handler.RefreshRequest false "갱신할 산업 목록"
// @Success      200 {object} handler.RefreshResponse
// @Failure      403 {object} handler.ErrorResponse "관리자 키 불일치"
// @Failure      500 {object} handler.ErrorResponse "갱신 실패"
// @Router       /admin/insights/refresh [post]
func (h *Handler) RefreshInsights(c *gin.Context) {
	var req RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	var industries []string
	for _, ind := range req.Industries {
		if ind = strings.TrimSpace(ind); ind != "" {
			industries = append(industries, ind)
		}
	}

	var (
		n   int
		err error
	)
	if len(industries) > 0 {
		n, err = h.Refresher.Refresh(c.Request.Context(), industries...)
	} else {
		n, err = h.Refresher.RefreshStale(c.Request.Context())
	}
	if err != nil {
		logger.L().Error("manual insight refresh failed", zap.Int("refreshed", n), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh insights", "refreshed": n})
		return
	}
	c.JSON(http.StatusOK, RefreshResponse{Refreshed: n})
}
