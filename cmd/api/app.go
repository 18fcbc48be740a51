package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/archiver"
	"github.com/Susmita-Codes/Pravartak-AI/internal/auth"
	"github.com/Susmita-Codes/Pravartak-AI/internal/blob"
	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/counsel"
	"github.com/Susmita-Codes/Pravartak-AI/internal/cv"
	"github.com/Susmita-Codes/Pravartak-AI/internal/events"
	"github.com/Susmita-Codes/Pravartak-AI/internal/handler"
	"github.com/Susmita-Codes/Pravartak-AI/internal/insights"
	"github.com/Susmita-Codes/Pravartak-AI/internal/interview"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/roadmap"
	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

// app holds the long-lived clients; close releases them in reverse order.
type app struct {
	cfg       *config.Config
	store     *storage.Store
	gen       llm.Generator
	refresher *insights.Refresher
	closers   []func() error
}

// setup loads config, installs the logger and opens the store.
func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if _, err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings {
		logger.L().Warn(w)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a := &app{cfg: cfg, store: store}
	a.closers = append(a.closers, store.Close)
	return a, nil
}

// withAI adds the generator and the insight refresher.
func (a *app) withAI(ctx context.Context) error {
	gen, err := llm.New(ctx, a.cfg.AI)
	if err != nil {
		return fmt.Errorf("creating AI client: %w", err)
	}
	if !llm.Configured(gen) {
		logger.L().Warn("AI provider not configured; fallback responses will be used", zap.String("provider", a.cfg.AI.Provider))
	}
	a.gen = gen
	a.refresher = insights.NewRefresher(a.store, a.insightGenerator(), a.cfg.Insights.Concurrency)
	return nil
}

func (a *app) insightGenerator() *insights.Generator {
	return insights.NewGenerator(a.gen, a.cfg.Insights.RefreshInterval)
}

// handlerDeps builds every optional integration. Speech, blob and events
// degrade to disabled rather than failing startup.
func (a *app) handlerDeps(ctx context.Context) (handler.Deps, error) {
	deps := handler.Deps{
		Store:     a.store,
		Tokens:    auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL),
		Coach:     interview.NewCoach(a.gen),
		CVs:       cv.NewAnalyzer(a.gen),
		Roadmaps:  roadmap.NewService(a.gen),
		Counselor: counsel.NewCounselor(a.gen),
		Insights:  a.insightGenerator(),
		Refresher: a.refresher,
		Archive:   archiver.New(a.store, a.cfg.Archive.DataDir, a.cfg.Archive.FFmpegPath),
	}

	if a.cfg.Speech.Enabled {
		stt, err := llm.NewSpeechToText(ctx, a.cfg.Speech)
		if err != nil {
			logger.L().Error("speech-to-text disabled", zap.Error(err))
		} else {
			a.closers = append(a.closers, stt.Close)
			deps.STT = stt
			deps.Streams = handler.StreamOpenerFunc(func(ctx context.Context) (handler.TranscriptStream, error) {
				s, err := stt.NewStream(ctx)
				if err != nil {
					return nil, err
				}
				return s, nil
			})
		}
		tts, err := llm.NewTextToSpeech(ctx, a.cfg.Speech)
		if err != nil {
			logger.L().Error("text-to-speech disabled", zap.Error(err))
		} else {
			a.closers = append(a.closers, tts.Close)
			deps.TTS = tts
		}
	}

	blobs, err := blob.New(ctx, a.cfg.Blob)
	if err != nil {
		logger.L().Error("blob storage disabled", zap.Error(err))
		blobs = blob.Noop{}
	}
	deps.Blobs = blobs

	pub, err := events.New(a.cfg.Events)
	if err != nil {
		logger.L().Error("event publishing disabled", zap.Error(err))
		pub = events.Noop{}
	}
	a.closers = append(a.closers, pub.Close)
	deps.Events = pub

	return deps, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.L().Warn("error during shutdown", zap.Error(err))
		}
	}
	logger.L().Sync()
}
