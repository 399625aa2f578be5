// File: cmd/app/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ShamanRShetty/Mental-Wellness/internal/config"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	aiAdapters "github.com/ShamanRShetty/Mental-Wellness/internal/infra/adapters/ai"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/adapters/nlp"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/api"
	pg "github.com/ShamanRShetty/Mental-Wellness/internal/infra/db/postgres"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/logging"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/metrics"
	red "github.com/ShamanRShetty/Mental-Wellness/internal/infra/redis"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/sched"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/security"
	"github.com/ShamanRShetty/Mental-Wellness/internal/respond"
	"github.com/ShamanRShetty/Mental-Wellness/internal/sentiment"
	"github.com/ShamanRShetty/Mental-Wellness/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("developer mode enabled")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Postgres ----
	pool, err := pg.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	go reportPoolStats(ctx, pool)

	// ---- Redis (optional; sessions fall back to Postgres-only reads) ----
	var sessionCache *red.SessionCache
	if cfg.Redis.URL != "" {
		client, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, continuing without session cache")
		} else {
			defer client.Close()
			sessionCache = red.NewSessionCache(client, cfg.Redis.TTL)
		}
	}

	// ---- Journal encryption ----
	var cipher *security.EncryptionService
	if cfg.Security.EncryptionKey != "" {
		cipher, err = security.NewEncryptionService(cfg.Security.EncryptionKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("encryption key invalid")
		}
	} else {
		logger.Warn().Msg("security.encryption_key not set, journal entries stored in plaintext")
	}

	// ---- Repositories ----
	sessionRepo := pg.NewPostgresSessionRepo(pool, sessionCache)
	journalRepo := pg.NewPostgresJournalRepo(pool, cipher)
	resourceRepo := pg.NewPostgresResourceRepo(pool)

	// ---- AI providers (Gemini preferred, OpenAI as failover) ----
	var chain []adapter.AIServiceAdapter
	if cfg.AI.GeminiKey != "" {
		gem, err := aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.DefaultModel, 0)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini adapter init failed")
		}
		chain = append(chain, aiAdapters.NewMeasuredAI(gem, "gemini"))
		logger.Info().Str("model", cfg.AI.DefaultModel).Msg("AI provider: gemini")
	}
	if cfg.AI.OpenAIKey != "" {
		oai, err := aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.OpenAIBaseURL, cfg.AI.DefaultModel, 0)
		if err != nil {
			logger.Fatal().Err(err).Msg("openai adapter init failed")
		}
		chain = append(chain, aiAdapters.NewMeasuredAI(oai, "openai"))
		logger.Info().Msg("AI provider: openai")
	}
	if len(chain) == 0 {
		if !cfg.Runtime.Dev {
			logger.Fatal().Msg("no AI provider configured")
		}
		logger.Warn().Msg("no AI provider configured, using canned replies only")
		chain = append(chain, aiAdapters.NewNoopAIAdapter())
	}
	ai := aiAdapters.NewLimitedAI(aiAdapters.NewFailoverAdapter(chain...), cfg.AI.ConcurrentLimit)

	// ---- Conversation routing ----
	catalog, err := respond.DefaultCatalog()
	if err != nil {
		logger.Fatal().Err(err).Msg("response catalog load failed")
	}
	var replyCache *respond.ResponseCache
	if cfg.Chat.CacheEnabled {
		replyCache = respond.NewResponseCache(cfg.Chat.CacheTTL, cfg.Chat.CacheSize)
	}
	budget := respond.NewRequestBudget(cfg.Chat.MaxRequestsDaily, cfg.Chat.MaxRequestsMin)
	router := respond.NewRouter(ai, cfg.AI.DefaultModel, catalog, replyCache, budget, logger)

	// ---- NLP ----
	sentimentProvider := nlp.NewGeminiSentiment(ai, cfg.AI.DefaultModel)
	analyzer := sentiment.NewAnalyzer(sentimentProvider, cfg.Sentiment.CloudEnabled, cfg.Sentiment.DailyCap, logger)
	translator := nlp.NewGeminiTranslator(ai, cfg.AI.DefaultModel)

	// ---- Use cases ----
	chatUC := usecase.NewChatUseCase(sessionRepo, router, analyzer, logger, cfg.Runtime.Dev)
	moodUC := usecase.NewMoodUseCase(sessionRepo, ai, cfg.AI.DefaultModel, logger)
	journalUC := usecase.NewJournalUseCase(journalRepo, sessionRepo)
	resourceUC := usecase.NewResourceUseCase(resourceRepo, logger)
	translateUC := usecase.NewTranslateUseCase(translator, cfg.Translation.Enabled, cfg.Translation.MaxChars, logger)

	// ---- HTTP server ----
	srv := api.NewServer(chatUC, moodUC, journalUC, resourceUC, translateUC, cfg.Server.APIKey, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	// ---- Retention sweep ----
	retention := sched.NewRetentionWorker(cfg.Retention.SweepInterval, cfg.Retention.SessionIdle, sessionRepo, logger)
	go func() { _ = retention.Run(ctx) }()

	<-ctx.Done()
	logger.Info().Msg("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}

func reportPoolStats(ctx context.Context, pool *pgxpool.Pool) {
	t := time.NewTicker(30 * time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s := pool.Stat()
			metrics.SetDBPoolStats(s.TotalConns(), s.IdleConns(), s.AcquiredConns())
		}
	}
}
