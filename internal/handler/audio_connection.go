package handler

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

func (h *Handler) manageTranscribeSession(parentCtx context.Context, conn *websocket.Conn, uid string) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	stream, err := h.Streams.NewStream(ctx)
	if err != nil {
		logger.L().Error("failed to open transcription stream", zap.String("user_id", uid), zap.Error(err))
		conn.WriteJSON(ErrorResponse{Error: "Failed to start transcription"})
		return
	}

	clientChan := make(chan []byte, 128)
	transcripts := make(chan llm.Transcript, 16)

	var wg sync.WaitGroup
	wg.Add(3)

	// Client -> Server, 읽기 전담. 클라이언트가 끊으면 STT가 마지막 결과를 보낼 때까지 쓰기는 유지
	go func() {
		defer wg.Done()
		clientReadPump(ctx, conn, uid, clientChan)
	}()

	// Server -> STT
	go func() {
		defer wg.Done()
		forwardAudio(ctx, stream, uid, clientChan)
	}()

	// STT -> transcripts, closes transcripts when the stream ends
	go func() {
		defer wg.Done()
		if err := stream.Receive(transcripts); err != nil && ctx.Err() == nil {
			logger.L().Warn("transcription stream ended with error", zap.String("user_id", uid), zap.Error(err))
		}
	}()

	// Server -> Client, 쓰기 전담
	clientWritePump(ctx, conn, uid, transcripts)

	cancel()
	conn.Close()
	for range transcripts {
	}
	wg.Wait()
	logger.L().Info("transcription session ended", zap.String("user_id", uid))
}

func clientReadPump(ctx context.Context, conn *websocket.Conn, uid string, clientChan chan<- []byte) {
	defer close(clientChan)
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.L().Debug("websocket read ended", zap.String("user_id", uid), zap.Error(err))
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			logger.L().Debug("ignoring non-binary frame", zap.String("user_id", uid), zap.Int("type", messageType))
			continue
		}

		select {
		case clientChan <- message:
		case <-ctx.Done():
			return
		}
	}
}

func clientWritePump(ctx context.Context, conn *websocket.Conn, uid string, transcripts <-chan llm.Transcript) {
	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case t, ok := <-transcripts:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(t); err != nil {
				logger.L().Debug("websocket write failed", zap.String("user_id", uid), zap.Error(err))
				return
			}
		}
	}
}
