package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/config"
	"github.com/mnthn04/AICarouselApp/internal/service/ai"
	"github.com/mnthn04/AICarouselApp/internal/service/cache"
	"github.com/mnthn04/AICarouselApp/internal/service/carousel"
	"github.com/mnthn04/AICarouselApp/internal/service/database"
	"github.com/mnthn04/AICarouselApp/internal/service/storage"
)

// Container bundles assembled services for the generator runtime.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Carousel *carousel.Service

	cacheSvc    *cache.CacheService
	postgresSvc *database.PostgresService
}

// Close releases infrastructure connections in reverse order of creation.
func (c *Container) Close() {
	if c.postgresSvc != nil {
		_ = c.postgresSvc.Close()
	}
	if c.cacheSvc != nil {
		_ = c.cacheSvc.Close()
	}
}

// Build assembles all infrastructure services. Heavy initialization (DB,
// cache, AI clients) happens here so the carousel service stays focused on
// orchestration.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	projectRepo := database.NewProjectRepository(postgresSvc, logger)
	slideRepo := database.NewSlideRepository(postgresSvc, logger)
	previewRepo := database.NewPreviewRepository(postgresSvc, logger)

	// AI stack
	openaiClient := ai.NewOpenAIClient(cfg.OpenAI.APIKey)
	primary := ai.NewOpenAIProvider(openaiClient, cfg.OpenAI.TextModel, logger)

	var fallback ai.TextProvider
	if cfg.Gemini.EnableFallback {
		gemini, gerr := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if gerr != nil {
			return nil, fmt.Errorf("failed to create gemini provider: %w", gerr)
		}
		fallback = gemini
	}

	manager := ai.NewProviderManager(primary, fallback, logger)
	slideGen := ai.NewSlideGenerator(manager, logger)
	imageGen := ai.NewImageGenerator(openaiClient, cfg.OpenAI.ImageModel, logger)

	mediaStore, err := storage.NewMediaStore(cfg.Media.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}

	carouselSvc := carousel.NewService(carousel.Deps{
		Content:      slideGen,
		Images:       imageGen,
		Media:        mediaStore,
		Projects:     projectRepo,
		Slides:       slideRepo,
		Previews:     previewRepo,
		PreviewCache: cacheSvc,
		ImageWorkers: cfg.Generation.ImageWorkers,
	}, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Carousel:    carouselSvc,
		cacheSvc:    cacheSvc,
		postgresSvc: postgresSvc,
	}, nil
}
