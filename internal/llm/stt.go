/**
* Name: 			stt.go
* Description: 		Google STT 연동 (일괄 인식 + 스트리밍)
* Workflow: 		답변 녹음 파일 → Recognize, 웹소켓 PCM → StreamingRecognize
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

type SpeechToText struct {
	client   *speech.Client
	language string
}

func NewSpeechToText(ctx context.Context, cfg config.SpeechConfig) (*SpeechToText, error) {
	if cfg.CredentialsFile == "" {
		return nil, errors.New("NewSpeechToText(): GOOGLE_APPLICATION_CREDENTIALS is not set")
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewSpeechToText(): failed to create speech client: %w", err)
	}
	return &SpeechToText{client: client, language: cfg.LanguageCode}, nil
}

// recognitionEncoding maps an upload's content type to the recognizer encoding.
// Containers with headers (wav, flac) are left unspecified so the service reads them.
func recognitionEncoding(mimeType string) (speechpb.RecognitionConfig_AudioEncoding, int32) {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(mt, "audio/webm"):
		return speechpb.RecognitionConfig_WEBM_OPUS, 48000
	case strings.HasPrefix(mt, "audio/ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS, 48000
	case strings.HasPrefix(mt, "audio/l16"), strings.HasPrefix(mt, "audio/pcm"):
		return speechpb.RecognitionConfig_LINEAR16, 16000
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0
	}
}

// Transcribe runs synchronous recognition on a recorded answer.
func (s *SpeechToText) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	encoding, rate := recognitionEncoding(mimeType)
	resp, err := s.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            rate,
			LanguageCode:               s.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("Transcribe(): recognize failed: %w", err)
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.TrimSpace(result.Alternatives[0].Transcript))
	}
	return sb.String(), nil
}

func (s *SpeechToText) Close() error {
	return s.client.Close()
}

// Transcript is one streaming recognition result.
type Transcript struct {
	Text  string `json:"transcript"`
	Final bool   `json:"final"`
}

type StreamingRecognizer struct {
	stream speechpb.Speech_StreamingRecognizeClient
}

// NewStream opens a streaming session for LINEAR16 16kHz mono audio.
func (s *SpeechToText) NewStream(ctx context.Context) (*StreamingRecognizer, error) {
	stream, err := s.client.StreamingRecognize(ctx)
	if err != nil {
		return nil, fmt.Errorf("NewStream(): failed to create streaming recognize client: %w", err)
	}

	streamingConfig := &speechpb.StreamingRecognitionConfig{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			AudioChannelCount: 1,
			LanguageCode:      s.language,
		},
		InterimResults: true,
	}
	if err := stream.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: streamingConfig,
		},
	}); err != nil {
		return nil, fmt.Errorf("NewStream(): failed to send initial config: %w", err)
	}
	return &StreamingRecognizer{stream: stream}, nil
}

func (r *StreamingRecognizer) SendAudio(audioData []byte) error {
	return r.stream.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_AudioContent{
			AudioContent: audioData,
		},
	})
}

// Receive forwards results to out until the stream ends. It closes out on return.
func (r *StreamingRecognizer) Receive(out chan<- Transcript) error {
	defer close(out)
	for {
		resp, err := r.stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Receive(): %w", err)
		}
		if st := resp.Error; st != nil {
			logger.L().Warn("streaming recognize error", zap.String("message", st.Message))
			return errors.New(st.Message)
		}

		for _, result := range resp.Results {
			if len(result.Alternatives) == 0 {
				continue
			}
			out <- Transcript{Text: result.Alternatives[0].Transcript, Final: result.IsFinal}
		}
	}
}

// Close half-closes the stream; Receive then drains remaining results.
func (r *StreamingRecognizer) Close() error {
	if r.stream == nil {
		return nil
	}
	return r.stream.CloseSend()
}
