package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

// Migrate creates the carousel tables when they do not exist yet.
func (ps *PostgresService) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			topic TEXT NOT NULL,
			platform TEXT NOT NULL DEFAULT 'instagram',
			style TEXT NOT NULL DEFAULT 'modern',
			slide_count INT NOT NULL DEFAULT 5,
			profile_handle TEXT NOT NULL DEFAULT '',
			brand_colors TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS slides (
			id BIGSERIAL PRIMARY KEY,
			project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			slide_number INT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_prompt TEXT NOT NULL DEFAULT '',
			background_color TEXT NOT NULL DEFAULT '',
			font_color TEXT NOT NULL DEFAULT '',
			width INT NOT NULL DEFAULT 1080,
			height INT NOT NULL DEFAULT 1080,
			layout TEXT NOT NULL DEFAULT 'image-top',
			generated_image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (project_id, slide_number)
		)`,
		`CREATE TABLE IF NOT EXISTS carousel_templates (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT 'instagram',
			style TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			preview_image TEXT NOT NULL DEFAULT '',
			slide_images JSONB NOT NULL DEFAULT '[]',
			slide_count INT NOT NULL DEFAULT 0,
			primary_color TEXT NOT NULL DEFAULT '',
			secondary_color TEXT NOT NULL DEFAULT '',
			accent_color TEXT NOT NULL DEFAULT '',
			font_color TEXT NOT NULL DEFAULT '',
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			use_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS content_previews (
			id BIGSERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			variant_number INT NOT NULL,
			variant_name TEXT NOT NULL DEFAULT '',
			topic TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT 'instagram',
			style TEXT NOT NULL DEFAULT '',
			slide_count INT NOT NULL DEFAULT 0,
			slides JSONB NOT NULL,
			is_selected BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (session_id, variant_number)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_slides_project ON slides(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_previews_session ON content_previews(session_id)`,
	}

	for _, stmt := range statements {
		if _, err := ps.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	ps.logger.Info("Database schema ready")
	return nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}
