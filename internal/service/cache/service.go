package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/constants"
	"github.com/mnthn04/AICarouselApp/internal/domain"
	"github.com/mnthn04/AICarouselApp/pkg/errors"
)

// CacheService stores preview sessions and short-lived slide snapshots in
// Redis. Session data is JSON-encoded under namespaced keys.
type CacheService struct {
	client *redis.Client
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
	}, nil
}

func (c *CacheService) Get(ctx context.Context, key string, dest any) error {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil // Key doesn't exist - not an error
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}

	return nil
}

func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}

	return nil
}

func (c *CacheService) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", key, err)
	}
	return nil
}

func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.logger.Error("Cache exists failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("exists failed", "exists", key, err)
	}
	return count > 0, nil
}

func previewSessionKey(sessionID string) string {
	return "carousel:previews:" + sessionID
}

func projectSlidesKey(projectID int64) string {
	return fmt.Sprintf("carousel:project:%d:slides", projectID)
}

// StorePreviews caches a preview session's variants for later selection.
func (c *CacheService) StorePreviews(ctx context.Context, sessionID string, previews []domain.ContentPreview) error {
	return c.Set(ctx, previewSessionKey(sessionID), previews, constants.CacheTTL.PreviewSession)
}

// GetPreviews returns the cached variants for a session, or nil when the
// session has expired or never existed.
func (c *CacheService) GetPreviews(ctx context.Context, sessionID string) ([]domain.ContentPreview, error) {
	var previews []domain.ContentPreview
	if err := c.Get(ctx, previewSessionKey(sessionID), &previews); err != nil {
		return nil, err
	}
	return previews, nil
}

func (c *CacheService) DeletePreviews(ctx context.Context, sessionID string) error {
	return c.Del(ctx, previewSessionKey(sessionID))
}

// GetProjectSlides returns the cached slide snapshot for a project. The
// second return value reports a cache hit.
func (c *CacheService) GetProjectSlides(ctx context.Context, projectID int64) ([]domain.SlideContent, bool) {
	var slides []domain.SlideContent
	if err := c.Get(ctx, projectSlidesKey(projectID), &slides); err != nil {
		c.logger.Debug("Cache miss or error", zap.Int64("project_id", projectID))
		return nil, false
	}
	if slides == nil {
		return nil, false
	}
	return slides, true
}

func (c *CacheService) SetProjectSlides(ctx context.Context, projectID int64, slides []domain.SlideContent) {
	if err := c.Set(ctx, projectSlidesKey(projectID), slides, constants.CacheTTL.ProjectSlides); err != nil {
		c.logger.Error("Failed to cache project slides", zap.Int64("project_id", projectID), zap.Error(err))
	}
}

func (c *CacheService) InvalidateProjectSlides(ctx context.Context, projectID int64) {
	if err := c.Del(ctx, projectSlidesKey(projectID)); err != nil {
		c.logger.Error("Failed to invalidate project slides", zap.Int64("project_id", projectID), zap.Error(err))
	}
}

func (c *CacheService) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *CacheService) WaitUntilReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for Redis to be ready")
		case <-ticker.C:
			if c.IsConnected(ctx) {
				return nil
			}
		}
	}
}

func (c *CacheService) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	c.logger.Info("Redis disconnected")
	return nil
}
