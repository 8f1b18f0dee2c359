package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/assistant"
	"github.com/jonathan/devfolio/internal/config"
	"github.com/jonathan/devfolio/internal/llm"
	"github.com/jonathan/devfolio/internal/observability"
	"github.com/jonathan/devfolio/internal/storage"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// app bundles what every command needs: configuration, a logger and the
// storage adapter for the root document.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	backend storage.Backend
	adapter *storage.Adapter
}

func openApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, opts.devLogs)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, cfg.StorageURL)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	adapter := storage.NewAdapter(backend, cfg.StorageKey,
		storage.WithLogger(logger.Named("storage")),
		storage.WithResetAuthOnLoad(cfg.ResetAuthOnLoad),
	)

	return &app{cfg: cfg, logger: logger, backend: backend, adapter: adapter}, nil
}

// Close releases the storage backend and flushes the logger.
func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// loadStore reads the persisted document and wraps it in a store that
// writes every handled action back through the adapter.
func (a *app) loadStore(ctx context.Context) *store.Store {
	return store.New(a.adapter.Load(ctx), a.adapter, a.logger.Named("store"))
}

// loadDocument reads the persisted document without creating a store.
func (a *app) loadDocument(ctx context.Context) *types.Document {
	return a.adapter.Load(ctx)
}

// newAssistant builds the AI assistant. Without an API key the assistant is
// returned disabled rather than failing.
func (a *app) newAssistant(ctx context.Context) (*assistant.Assistant, error) {
	logger := a.logger.Named("assistant")
	if a.cfg.APIKey == "" {
		a.logger.Info("no API key configured, AI assistant disabled")
		return assistant.New(nil, logger), nil
	}

	llmCfg, err := llm.ConfigFor(a.cfg.LLMProvider, a.cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(ctx, llmCfg, a.cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	a.logger.Info("AI assistant enabled",
		zap.String("provider", string(llmCfg.Provider)),
		zap.String("model", llmCfg.GetModel(llm.TierLite)))
	return assistant.New(client, logger), nil
}
