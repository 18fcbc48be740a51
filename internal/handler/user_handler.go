/**
* Name: 			user_handler.go
* Description: 		사용자 프로필 및 온보딩 핸들러
* Workflow: 		프로필 조회 / 온보딩(산업 인사이트 생성 + 프로필 저장) / 온보딩 여부 확인
 */
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

type OnboardingStatusResponse struct {
	IsOnboarded bool `json:"isOnboarded" example:"true"`
}

// GetProfile godoc
// @Summary      프로필 조회 (Profile)
// @Description  인증된 사용자의 프로필 정보를 조회합니다. (JWT 필요)
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      404 {object} handler.ErrorResponse "사용자 없음"
// @Router       /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), userID(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      온보딩 / 프로필 수정
// @Description  산업, 경력, 소개, 기술 목록을 저장합니다. 해당 산업의 인사이트가 없으면 함께 생성합니다.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UserProfile true "프로필 정보"
// @Success      200 {object} models.User
// @Failure      400 {object} handler.ErrorResponse "산업 누락 등 잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	profile.Industry = strings.TrimSpace(profile.Industry)
	if profile.Industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Industry is required"})
		return
	}
	if profile.Experience < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Experience cannot be negative"})
		return
	}

	ctx := c.Request.Context()

	// 인사이트 생성은 트랜잭션 밖에서 (AI 호출이 느리므로)
	var insight *models.IndustryInsight
	if _, err := h.Store.GetInsight(ctx, profile.Industry); err != nil {
		if !isNotFound(err) {
			logger.L().Error("failed to look up industry insight", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		generated := h.Insights.Generate(ctx, profile.Industry)
		insight = &generated
	}

	user, err := h.Store.SaveOnboarding(ctx, userID(c), profile, insight)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.L().Error("failed to save onboarding", zap.String("user_id", userID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// OnboardingStatus godoc
// @Summary      온보딩 여부 확인
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.OnboardingStatusResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Router       /api/onboarding-status [get]
func (h *Handler) OnboardingStatus(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Request.Context(), userID(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check onboarding status"})
		return
	}
	c.JSON(http.StatusOK, OnboardingStatusResponse{IsOnboarded: user.IsOnboarded()})
}
