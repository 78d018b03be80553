package carousel

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/constants"
	"github.com/mnthn04/AICarouselApp/internal/domain"
	"github.com/mnthn04/AICarouselApp/internal/prompt"
	"github.com/mnthn04/AICarouselApp/pkg/errors"
)

// ContentGenerator produces slide content for a topic. The bool reports
// whether the model produced it or the fallback templates did.
type ContentGenerator interface {
	Generate(ctx context.Context, topic string, slideCount int, platform, style string) ([]domain.SlideContent, bool)
	GenerateVariant(ctx context.Context, topic string, slideCount int, platform, style, variantName string) ([]domain.SlideContent, bool)
}

// ImageRenderer turns an image prompt into PNG bytes.
type ImageRenderer interface {
	Generate(ctx context.Context, imagePrompt string) ([]byte, error)
}

// MediaSaver persists image bytes and returns the stored file name.
type MediaSaver interface {
	Save(prefix string, data []byte) (string, error)
}

// ProjectStore persists projects.
type ProjectStore interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
}

// SlideStore persists slides.
type SlideStore interface {
	Create(ctx context.Context, slide *domain.Slide) error
	UpdateImage(ctx context.Context, slideID int64, imagePath string) error
	FindByProject(ctx context.Context, projectID int64) ([]*domain.Slide, error)
}

// PreviewStore persists preview variants.
type PreviewStore interface {
	Create(ctx context.Context, preview *domain.ContentPreview) error
	FindBySession(ctx context.Context, sessionID string) ([]*domain.ContentPreview, error)
	MarkSelected(ctx context.Context, sessionID string, variantNumber int) error
}

// PreviewCache holds preview sessions in fast storage.
type PreviewCache interface {
	StorePreviews(ctx context.Context, sessionID string, previews []domain.ContentPreview) error
	GetPreviews(ctx context.Context, sessionID string) ([]domain.ContentPreview, error)
	DeletePreviews(ctx context.Context, sessionID string) error
}

// GenerateRequest describes one carousel job.
type GenerateRequest struct {
	Topic       string
	SlideCount  int
	Platform    string
	Style       string
	BrandColors []string
	WithImages  bool
}

// GenerateResult is the outcome of one carousel job.
type GenerateResult struct {
	Project     *domain.Project
	Slides      []*domain.Slide
	AIGenerated bool
}

// Service orchestrates content generation, persistence, and concurrent image
// rendering for a carousel.
type Service struct {
	content      ContentGenerator
	images       ImageRenderer
	media        MediaSaver
	projects     ProjectStore
	slides       SlideStore
	previews     PreviewStore
	previewCache PreviewCache
	imageWorkers int
	logger       *zap.Logger
}

type Deps struct {
	Content      ContentGenerator
	Images       ImageRenderer
	Media        MediaSaver
	Projects     ProjectStore
	Slides       SlideStore
	Previews     PreviewStore
	PreviewCache PreviewCache
	ImageWorkers int
}

func NewService(deps Deps, logger *zap.Logger) *Service {
	workers := deps.ImageWorkers
	if workers <= 0 {
		workers = 3
	}

	return &Service{
		content:      deps.Content,
		images:       deps.Images,
		media:        deps.Media,
		projects:     deps.Projects,
		slides:       deps.Slides,
		previews:     deps.Previews,
		previewCache: deps.PreviewCache,
		imageWorkers: workers,
		logger:       logger,
	}
}

// Generate runs the full pipeline: content, persistence, then image
// rendering. Image failures degrade the affected slide rather than failing
// the carousel.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	content, aiGenerated := s.content.Generate(ctx, req.Topic, req.SlideCount, req.Platform, req.Style)

	project := &domain.Project{
		Topic:       req.Topic,
		Platform:    req.Platform,
		Style:       req.Style,
		SlideCount:  req.SlideCount,
		BrandColors: req.BrandColors,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	slides := make([]*domain.Slide, len(content))
	for i, sc := range content {
		slide := &domain.Slide{
			ProjectID:       project.ID,
			SlideNumber:     i + 1,
			Title:           sc.Title,
			Description:     sc.Description,
			ImagePrompt:     sc.ImagePrompt,
			BackgroundColor: sc.BackgroundColor,
			FontColor:       sc.FontColor,
			Width:           constants.ImageDefaults.Width,
			Height:          constants.ImageDefaults.Height,
			Layout:          sc.Layout,
		}
		if err := s.slides.Create(ctx, slide); err != nil {
			return nil, err
		}
		slides[i] = slide
	}

	if req.WithImages {
		s.renderImages(ctx, project, slides)
	}

	s.logger.Info("Carousel generated",
		zap.Int64("project_id", project.ID),
		zap.Int("slides", len(slides)),
		zap.Bool("ai_generated", aiGenerated),
	)

	return &GenerateResult{
		Project:     project,
		Slides:      slides,
		AIGenerated: aiGenerated,
	}, nil
}

// renderImages generates slide images concurrently. Each slide's prompt is
// the model's own image prompt wrapped with deterministic styling derived
// from the project.
func (s *Service) renderImages(ctx context.Context, project *domain.Project, slides []*domain.Slide) {
	p := pool.New().WithMaxGoroutines(s.imageWorkers)
	var mu sync.Mutex
	failed := 0

	for _, slide := range slides {
		slide := slide
		p.Go(func() {
			params := prompt.ImagePromptParams{
				Topic:            project.Topic,
				SlideNumber:      slide.SlideNumber,
				TotalSlides:      len(slides),
				Platform:         project.Platform,
				Style:            project.Style,
				BrandColors:      project.BrandColors,
				ProjectID:        project.ID,
				SlideTitle:       slide.Title,
				SlideDescription: slide.Description,
			}
			fullPrompt := prompt.BuildSlideImagePrompt(slide.ImagePrompt, params)

			data, err := s.images.Generate(ctx, fullPrompt)
			if err != nil {
				s.logger.Warn("slide image generation failed",
					zap.Int64("project_id", project.ID),
					zap.Int("slide", slide.SlideNumber),
					zap.Error(err),
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			name, err := s.media.Save(fmt.Sprintf("slide_%d_%d", project.ID, slide.SlideNumber), data)
			if err != nil {
				s.logger.Error("failed to store slide image",
					zap.Int64("project_id", project.ID),
					zap.Int("slide", slide.SlideNumber),
					zap.Error(err),
				)
				return
			}

			if err := s.slides.UpdateImage(ctx, slide.ID, name); err != nil {
				s.logger.Error("failed to record slide image",
					zap.Int64("slide_id", slide.ID),
					zap.Error(err),
				)
				return
			}
			slide.GeneratedImage = name
		})
	}
	p.Wait()

	if failed > 0 {
		s.logger.Warn("carousel rendered with missing images",
			zap.Int64("project_id", project.ID),
			zap.Int("failed", failed),
		)
	}
}

// GeneratePreviews produces the named content variants for a topic and
// stores them under a fresh session ID. No images are rendered at this
// stage.
func (s *Service) GeneratePreviews(ctx context.Context, topic string, slideCount int, platform, style string) (string, []domain.ContentPreview, error) {
	if topic == "" {
		return "", nil, errors.NewValidationError("topic must not be empty", "topic", topic)
	}

	sessionID := uuid.NewString()
	previews := make([]domain.ContentPreview, 0, len(constants.PreviewVariants))

	for i, name := range constants.PreviewVariants {
		slides, _ := s.content.GenerateVariant(ctx, topic, slideCount, platform, style, name)
		preview := domain.ContentPreview{
			SessionID:     sessionID,
			VariantNumber: i + 1,
			VariantName:   name,
			Topic:         topic,
			Platform:      platform,
			Style:         style,
			SlideCount:    slideCount,
			Slides:        slides,
		}
		if err := s.previews.Create(ctx, &preview); err != nil {
			return "", nil, err
		}
		previews = append(previews, preview)
	}

	if err := s.previewCache.StorePreviews(ctx, sessionID, previews); err != nil {
		s.logger.Warn("failed to cache preview session", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Info("Preview session created",
		zap.String("session_id", sessionID),
		zap.Int("variants", len(previews)),
	)
	return sessionID, previews, nil
}

// SelectPreview promotes one variant of a session into a full carousel
// project.
func (s *Service) SelectPreview(ctx context.Context, sessionID string, variantNumber int, withImages bool) (*GenerateResult, error) {
	previews, err := s.previewCache.GetPreviews(ctx, sessionID)
	if err != nil || len(previews) == 0 {
		stored, dbErr := s.previews.FindBySession(ctx, sessionID)
		if dbErr != nil {
			return nil, dbErr
		}
		previews = make([]domain.ContentPreview, len(stored))
		for i, p := range stored {
			previews[i] = *p
		}
	}

	var selected *domain.ContentPreview
	for i := range previews {
		if previews[i].VariantNumber == variantNumber {
			selected = &previews[i]
			break
		}
	}
	if selected == nil {
		return nil, errors.NewNotFoundError("preview", fmt.Sprintf("%s/%d", sessionID, variantNumber))
	}

	if err := s.previews.MarkSelected(ctx, sessionID, variantNumber); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Topic:      selected.Topic,
		Platform:   selected.Platform,
		Style:      selected.Style,
		SlideCount: selected.SlideCount,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	slides := make([]*domain.Slide, len(selected.Slides))
	for i, sc := range selected.Slides {
		slide := &domain.Slide{
			ProjectID:       project.ID,
			SlideNumber:     i + 1,
			Title:           sc.Title,
			Description:     sc.Description,
			ImagePrompt:     sc.ImagePrompt,
			BackgroundColor: sc.BackgroundColor,
			FontColor:       sc.FontColor,
			Width:           constants.ImageDefaults.Width,
			Height:          constants.ImageDefaults.Height,
			Layout:          sc.Layout,
		}
		if err := s.slides.Create(ctx, slide); err != nil {
			return nil, err
		}
		slides[i] = slide
	}

	if withImages {
		s.renderImages(ctx, project, slides)
	}

	if err := s.previewCache.DeletePreviews(ctx, sessionID); err != nil {
		s.logger.Debug("failed to clear preview session", zap.String("session_id", sessionID), zap.Error(err))
	}

	return &GenerateResult{Project: project, Slides: slides, AIGenerated: true}, nil
}

func validateRequest(req GenerateRequest) error {
	if req.Topic == "" {
		return errors.NewValidationError("topic must not be empty", "topic", req.Topic)
	}
	if len(req.Topic) > constants.InputLimits.MaxTopicLength {
		return errors.NewValidationError("topic too long", "topic", req.Topic)
	}
	if req.SlideCount < 1 {
		return errors.NewValidationError("slide count must be at least 1", "slide_count", req.SlideCount)
	}
	return nil
}
