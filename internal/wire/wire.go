// Package wire assembles the application object graph.
package wire

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"telco-enable-ai-api/internal/application/decision"
	"telco-enable-ai-api/internal/application/render"
	"telco-enable-ai-api/internal/application/style"
	"telco-enable-ai-api/internal/config"
	"telco-enable-ai-api/internal/infrastructure/persistence/postgres"
	"telco-enable-ai-api/internal/infrastructure/persistence/redis"
	"telco-enable-ai-api/internal/interfaces/http/handler"
	"telco-enable-ai-api/internal/interfaces/http/router"
	"telco-enable-ai-api/pkg/logger"
)

// App holds the assembled application.
type App struct {
	Router *router.Router

	pg    *postgres.Client
	redis *redis.Client
}

// Engine returns the HTTP engine.
func (a *App) Engine() *gin.Engine {
	return a.Router.Engine()
}

// InitializeApp builds the full dependency graph and returns the app
// plus a cleanup function for its connections.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		_ = pgClient.Close()
		return nil, nil, fmt.Errorf("redis: %w", err)
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Error(ctx, "failed to close redis", err)
		}
		if err := pgClient.Close(); err != nil {
			logger.Error(ctx, "failed to close postgres", err)
		}
	}

	newID := func() string { return uuid.NewString() }

	kv := redis.NewKVStore(redisClient)
	styleStore := style.NewStore(ctx, kv, cfg.Brand, newID)

	assetRepo := postgres.NewAssetRepository(pgClient)
	renderSvc := render.NewService(
		newStrategy(cfg),
		styleStore,
		assetRepo,
		newID,
	)

	engine := decision.NewEngine()

	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(pgClient, redisClient),
		Decision: handler.NewDecisionHandler(engine),
		Style:    handler.NewStyleHandler(styleStore),
		Asset:    handler.NewAssetHandler(renderSvc),
	}

	limiter := redis.NewRateLimiter(redisClient)
	r := router.New(cfg, handlers, limiter)

	return &App{
		Router: r,
		pg:     pgClient,
		redis:  redisClient,
	}, cleanup, nil
}

// newStrategy selects the configured rendering backend.
func newStrategy(cfg *config.Config) render.Strategy {
	if cfg.Renderer.Strategy == "placeholder" {
		client := &http.Client{Timeout: cfg.Renderer.Placeholder.Timeout}
		return render.NewPlaceholder(cfg.Renderer.Placeholder, client)
	}
	return render.NewCompositor(cfg.Renderer, cfg.Brand)
}
