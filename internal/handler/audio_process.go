package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

// forwardAudio sends client audio to the recognizer until the client stops,
// then half-closes the stream so the final results are flushed.
func forwardAudio(ctx context.Context, stream TranscriptStream, uid string, clientChan <-chan []byte) {
	defer func() {
		if err := stream.Close(); err != nil {
			logger.L().Debug("closing transcription stream", zap.String("user_id", uid), zap.Error(err))
		}
	}()

	var sent int
	for {
		select {
		case <-ctx.Done():
			return
		case chunk, ok := <-clientChan:
			if !ok {
				logger.L().Debug("client audio finished", zap.String("user_id", uid), zap.Int("bytes", sent))
				return
			}
			if err := stream.SendAudio(chunk); err != nil {
				logger.L().Warn("failed to send audio to STT", zap.String("user_id", uid), zap.Error(err))
				return
			}
			sent += len(chunk)
		}
	}
}
