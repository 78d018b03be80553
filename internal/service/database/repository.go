package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/domain"
	"github.com/mnthn04/AICarouselApp/pkg/errors"
)

// ProjectRepository persists carousel projects.
type ProjectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProjectRepository(postgres *PostgresService, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (topic, platform, style, slide_count, profile_handle, brand_colors)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		project.Topic, project.Platform, project.Style, project.SlideCount,
		project.ProfileHandle, strings.Join(project.BrandColors, ","),
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	r.logger.Info("Project created",
		zap.Int64("project_id", project.ID),
		zap.String("topic", project.Topic),
	)
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT id, topic, platform, style, slide_count, profile_handle, brand_colors, created_at
		FROM projects
		WHERE id = $1
	`

	var (
		project     domain.Project
		brandColors string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.Topic, &project.Platform, &project.Style,
		&project.SlideCount, &project.ProfileHandle, &brandColors, &project.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("project", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	project.BrandColors = splitColors(brandColors)
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError("project", strconv.FormatInt(id, 10))
	}
	return nil
}

func splitColors(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	colors := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			colors = append(colors, trimmed)
		}
	}
	return colors
}

// SlideRepository persists individual slides of a project.
type SlideRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSlideRepository(postgres *PostgresService, logger *zap.Logger) *SlideRepository {
	return &SlideRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *SlideRepository) Create(ctx context.Context, slide *domain.Slide) error {
	query := `
		INSERT INTO slides (project_id, slide_number, title, description, image_prompt,
		                    background_color, font_color, width, height, layout, generated_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (project_id, slide_number) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			image_prompt = EXCLUDED.image_prompt,
			background_color = EXCLUDED.background_color,
			font_color = EXCLUDED.font_color,
			layout = EXCLUDED.layout,
			generated_image = EXCLUDED.generated_image,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		slide.ProjectID, slide.SlideNumber, slide.Title, slide.Description, slide.ImagePrompt,
		slide.BackgroundColor, slide.FontColor, slide.Width, slide.Height, slide.Layout,
		slide.GeneratedImage,
	).Scan(&slide.ID, &slide.CreatedAt, &slide.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert slide: %w", err)
	}
	return nil
}

func (r *SlideRepository) UpdateImage(ctx context.Context, slideID int64, imagePath string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE slides SET generated_image = $1, updated_at = NOW() WHERE id = $2`,
		imagePath, slideID,
	)
	if err != nil {
		return fmt.Errorf("failed to update slide image: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError("slide", strconv.FormatInt(slideID, 10))
	}
	return nil
}

func (r *SlideRepository) FindByProject(ctx context.Context, projectID int64) ([]*domain.Slide, error) {
	query := `
		SELECT id, project_id, slide_number, title, description, image_prompt,
		       background_color, font_color, width, height, layout, generated_image,
		       created_at, updated_at
		FROM slides
		WHERE project_id = $1
		ORDER BY slide_number
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []*domain.Slide
	for rows.Next() {
		var s domain.Slide
		if err := rows.Scan(
			&s.ID, &s.ProjectID, &s.SlideNumber, &s.Title, &s.Description, &s.ImagePrompt,
			&s.BackgroundColor, &s.FontColor, &s.Width, &s.Height, &s.Layout, &s.GeneratedImage,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan slide: %w", err)
		}
		slides = append(slides, &s)
	}
	return slides, rows.Err()
}

// TemplateRepository persists reusable pre-generated carousels.
type TemplateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewTemplateRepository(postgres *PostgresService, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.CarouselTemplate) error {
	slideImages, err := json.Marshal(t.SlideImages)
	if err != nil {
		return fmt.Errorf("failed to encode slide images: %w", err)
	}

	query := `
		INSERT INTO carousel_templates (name, category, platform, style, description,
		                                preview_image, slide_images, slide_count,
		                                primary_color, secondary_color, accent_color, font_color,
		                                is_premium, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		t.Name, t.Category, t.Platform, t.Style, t.Description,
		t.PreviewImage, slideImages, t.SlideCount,
		t.PrimaryColor, t.SecondaryColor, t.AccentColor, t.FontColor,
		t.IsPremium, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) FindActive(ctx context.Context, platform string) ([]*domain.CarouselTemplate, error) {
	query := `
		SELECT id, name, category, platform, style, description,
		       preview_image, slide_images, slide_count,
		       primary_color, secondary_color, accent_color, font_color,
		       is_premium, is_active, use_count, created_at
		FROM carousel_templates
		WHERE is_active = TRUE AND ($1 = '' OR platform = $1)
		ORDER BY use_count DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.CarouselTemplate
	for rows.Next() {
		var (
			t           domain.CarouselTemplate
			slideImages []byte
		)
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Category, &t.Platform, &t.Style, &t.Description,
			&t.PreviewImage, &slideImages, &t.SlideCount,
			&t.PrimaryColor, &t.SecondaryColor, &t.AccentColor, &t.FontColor,
			&t.IsPremium, &t.IsActive, &t.UseCount, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		if len(slideImages) > 0 {
			if err := json.Unmarshal(slideImages, &t.SlideImages); err != nil {
				r.logger.Warn("Corrupt slide images payload", zap.Int64("template_id", t.ID), zap.Error(err))
			}
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) IncrementUseCount(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE carousel_templates SET use_count = use_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment use count: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError("template", strconv.FormatInt(id, 10))
	}
	return nil
}

// PreviewRepository persists preview variants so a selection survives cache
// expiry.
type PreviewRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPreviewRepository(postgres *PostgresService, logger *zap.Logger) *PreviewRepository {
	return &PreviewRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *PreviewRepository) Create(ctx context.Context, p *domain.ContentPreview) error {
	slides, err := json.Marshal(p.Slides)
	if err != nil {
		return fmt.Errorf("failed to encode preview slides: %w", err)
	}

	query := `
		INSERT INTO content_previews (session_id, variant_number, variant_name,
		                              topic, platform, style, slide_count, slides, is_selected)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (session_id, variant_number) DO UPDATE SET
			variant_name = EXCLUDED.variant_name,
			slides = EXCLUDED.slides,
			is_selected = EXCLUDED.is_selected
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		p.SessionID, p.VariantNumber, p.VariantName,
		p.Topic, p.Platform, p.Style, p.SlideCount, slides, p.IsSelected,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert preview: %w", err)
	}
	return nil
}

func (r *PreviewRepository) FindBySession(ctx context.Context, sessionID string) ([]*domain.ContentPreview, error) {
	query := `
		SELECT id, session_id, variant_number, variant_name,
		       topic, platform, style, slide_count, slides, is_selected, created_at
		FROM content_previews
		WHERE session_id = $1
		ORDER BY variant_number
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query previews: %w", err)
	}
	defer rows.Close()

	var previews []*domain.ContentPreview
	for rows.Next() {
		var (
			p      domain.ContentPreview
			slides []byte
		)
		if err := rows.Scan(
			&p.ID, &p.SessionID, &p.VariantNumber, &p.VariantName,
			&p.Topic, &p.Platform, &p.Style, &p.SlideCount, &slides, &p.IsSelected, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan preview: %w", err)
		}
		if err := json.Unmarshal(slides, &p.Slides); err != nil {
			return nil, fmt.Errorf("failed to decode preview slides: %w", err)
		}
		previews = append(previews, &p)
	}
	return previews, rows.Err()
}

// MarkSelected flags one variant of a session as chosen and clears the flag
// on the others.
func (r *PreviewRepository) MarkSelected(ctx context.Context, sessionID string, variantNumber int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE content_previews SET is_selected = FALSE WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE content_previews SET is_selected = TRUE WHERE session_id = $1 AND variant_number = $2`,
		sessionID, variantNumber)
	if err != nil {
		return fmt.Errorf("failed to mark selection: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError("preview", fmt.Sprintf("%s/%d", sessionID, variantNumber))
	}

	return tx.Commit()
}
