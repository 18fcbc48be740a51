/**
* Name: 			tts.go
* Description: 		Google TTS 연동
* Workflow: 		면접 질문 텍스트 → MP3 오디오
 */

package llm

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

type TextToSpeech struct {
	client   *texttospeech.Client
	language string
	voice    string
}

func NewTextToSpeech(ctx context.Context, cfg config.SpeechConfig) (*TextToSpeech, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewTextToSpeech(): failed to create TTS client: %w", err)
	}
	return &TextToSpeech{client: client, language: cfg.LanguageCode, voice: cfg.VoiceName}, nil
}

// Synthesize converts text to MP3 audio.
func (t *TextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := t.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: t.language,
			Name:         t.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Synthesize(): %w", err)
	}
	logger.L().Debug("tts synthesized", zap.Int("chars", len(text)), zap.Int("bytes", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

func (t *TextToSpeech) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
