package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleTranscribe godoc
// @Summary      실시간 답변 전사 WebSocket 연결
// @Description  모의 면접 답변을 실시간으로 전사합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴으로 연결하고 LINEAR16 16kHz mono 오디오를 바이너리 프레임으로 보냅니다.
// @Description  서버는 `{"transcript": "...", "final": true}` 형식의 텍스트 프레임으로 응답합니다.
// @Description  인증은 HTTP Header가 아닌 **쿼리 파라미터('token')**를 통해 수행됩니다.
// @Tags         WebSocket (Interview)
// @Param        token    query     string  true  "로그인 시 발급받은 JWT 토큰"
// @Success      101      {string}  string  "101 Switching Protocols (WebSocket으로 프로토콜 전환 성공)"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Failure      503      {object}  handler.ErrorResponse "음성 서비스 미설정"
// @Router       /ws/interview/transcribe [get]
func (h *Handler) HandleTranscribe(c *gin.Context) {
	if h.Streams == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech service is not configured"})
		return
	}
	uid := userID(c)

	// WebSocket 연결 업그레이드
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("websocket upgrade failed", zap.String("user_id", uid), zap.Error(err))
		return
	}
	logger.L().Info("transcription websocket established", zap.String("user_id", uid))

	h.manageTranscribeSession(c.Request.Context(), conn, uid)
}
