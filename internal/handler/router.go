package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Susmita-Codes/Pravartak-AI/docs"
	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/middleware"
)

// NewRouter wires every route. AI-backed endpoints are rate limited per caller.
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinLogger(), logger.GinRecovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 || cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Admin-Key")
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", h.Health)

	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)

	authRequired := middleware.AuthMiddleware(h.Tokens)
	limited := middleware.RateLimit(cfg.RateLimit)

	api := router.Group("/api", authRequired)
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.GET("/onboarding-status", h.OnboardingStatus)
		api.GET("/insights", h.GetInsights)
		api.GET("/dashboard", h.Dashboard)

		api.GET("/history", h.GetHistory)
		api.GET("/history/:id", h.GetHistoryRecord)
		api.GET("/history/audio/:filename", h.StreamAudio)

		mock := api.Group("/mock-interview", limited)
		{
			mock.POST("/generate-questions", h.GenerateQuestions)
			mock.POST("/question-audio", h.QuestionAudio)
			mock.POST("/analyze-answer", h.AnalyzeAnswer)
			mock.POST("/final-analysis", h.FinalAnalysis)
		}

		api.POST("/cv-analyser", limited, h.AnalyzeCV)
		api.POST("/roadmap", limited, h.GenerateRoadmap)
		api.POST("/chat", limited, h.Chat)
	}

	router.GET("/ws/interview/transcribe", authRequired, h.HandleTranscribe)

	admin := router.Group("/admin", middleware.AdminKeyMiddleware(cfg.Auth.AdminKey))
	{
		admin.POST("/insights/refresh", h.RefreshInsights)
	}

	return router
}

// Health godoc
// @Summary      헬스 체크
// @Tags         Operations
// @Produce      json
// @Success      200 {object} map[string]string "status: ok"
// @Failure      503 {object} map[string]string "DB 연결 실패"
// @Router       /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
