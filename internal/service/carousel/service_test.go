package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/domain"
)

type fakeContent struct {
	slides      []domain.SlideContent
	aiGenerated bool
	variants    map[string][]domain.SlideContent
}

func (f *fakeContent) Generate(_ context.Context, _ string, _ int, _, _ string) ([]domain.SlideContent, bool) {
	return f.slides, f.aiGenerated
}

func (f *fakeContent) GenerateVariant(_ context.Context, _ string, _ int, _, _, name string) ([]domain.SlideContent, bool) {
	if v, ok := f.variants[name]; ok {
		return v, true
	}
	return f.slides, f.aiGenerated
}

type fakeImages struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeImages) Generate(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

type fakeMedia struct {
	mu    sync.Mutex
	saved []string
}

func (f *fakeMedia) Save(prefix string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := fmt.Sprintf("%s_test.png", prefix)
	f.saved = append(f.saved, name)
	return name, nil
}

type fakeProjects struct {
	nextID  int64
	created []*domain.Project
}

func (f *fakeProjects) Create(_ context.Context, p *domain.Project) error {
	f.nextID++
	p.ID = f.nextID
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProjects) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeSlides struct {
	mu     sync.Mutex
	nextID int64
	rows   []*domain.Slide
	images map[int64]string
}

func (f *fakeSlides) Create(_ context.Context, s *domain.Slide) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakeSlides) UpdateImage(_ context.Context, slideID int64, imagePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.images == nil {
		f.images = map[int64]string{}
	}
	f.images[slideID] = imagePath
	return nil
}

func (f *fakeSlides) FindByProject(_ context.Context, projectID int64) ([]*domain.Slide, error) {
	var out []*domain.Slide
	for _, s := range f.rows {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePreviews struct {
	rows     []*domain.ContentPreview
	selected map[string]int
}

func (f *fakePreviews) Create(_ context.Context, p *domain.ContentPreview) error {
	copied := *p
	f.rows = append(f.rows, &copied)
	return nil
}

func (f *fakePreviews) FindBySession(_ context.Context, sessionID string) ([]*domain.ContentPreview, error) {
	var out []*domain.ContentPreview
	for _, p := range f.rows {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePreviews) MarkSelected(_ context.Context, sessionID string, variantNumber int) error {
	if f.selected == nil {
		f.selected = map[string]int{}
	}
	f.selected[sessionID] = variantNumber
	return nil
}

type fakePreviewCache struct {
	sessions map[string][]domain.ContentPreview
}

func (f *fakePreviewCache) StorePreviews(_ context.Context, sessionID string, previews []domain.ContentPreview) error {
	if f.sessions == nil {
		f.sessions = map[string][]domain.ContentPreview{}
	}
	f.sessions[sessionID] = previews
	return nil
}

func (f *fakePreviewCache) GetPreviews(_ context.Context, sessionID string) ([]domain.ContentPreview, error) {
	return f.sessions[sessionID], nil
}

func (f *fakePreviewCache) DeletePreviews(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func testContent(n int) []domain.SlideContent {
	slides := make([]domain.SlideContent, n)
	for i := range slides {
		slides[i] = domain.SlideContent{
			Title:           fmt.Sprintf("Slide %d", i+1),
			Description:     "description",
			ImagePrompt:     "a calm illustration",
			BackgroundColor: "#E8F4FD",
			FontColor:       "#1A365D",
			Layout:          domain.LayoutImageTop,
		}
	}
	return slides
}

func newTestService(content ContentGenerator, images ImageRenderer) (*Service, *fakeProjects, *fakeSlides, *fakePreviews, *fakePreviewCache, *fakeMedia) {
	projects := &fakeProjects{}
	slides := &fakeSlides{}
	previews := &fakePreviews{}
	cache := &fakePreviewCache{}
	media := &fakeMedia{}

	svc := NewService(Deps{
		Content:      content,
		Images:       images,
		Media:        media,
		Projects:     projects,
		Slides:       slides,
		Previews:     previews,
		PreviewCache: cache,
		ImageWorkers: 2,
	}, zap.NewNop())

	return svc, projects, slides, previews, cache, media
}

func TestGeneratePersistsProjectAndSlides(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	svc, projects, slides, _, _, _ := newTestService(content, &fakeImages{})

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Topic:      "budgeting basics",
		SlideCount: 3,
		Platform:   "instagram",
		Style:      "modern",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Project.ID == 0 {
		t.Error("project was not assigned an ID")
	}
	if len(projects.created) != 1 {
		t.Fatalf("created %d projects, want 1", len(projects.created))
	}
	if len(slides.rows) != 3 {
		t.Fatalf("persisted %d slides, want 3", len(slides.rows))
	}
	for i, s := range slides.rows {
		if s.SlideNumber != i+1 {
			t.Errorf("slide %d has number %d", i, s.SlideNumber)
		}
		if s.ProjectID != result.Project.ID {
			t.Errorf("slide %d not linked to project", i)
		}
	}
	if !result.AIGenerated {
		t.Error("AI generation flag lost")
	}
}

func TestGenerateRendersImagesForEverySlide(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	images := &fakeImages{}
	svc, _, slides, _, _, media := newTestService(content, images)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Topic:      "budgeting basics",
		SlideCount: 3,
		Platform:   "instagram",
		Style:      "modern",
		WithImages: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if images.calls != 3 {
		t.Errorf("rendered %d images, want 3", images.calls)
	}
	if len(media.saved) != 3 {
		t.Errorf("saved %d images, want 3", len(media.saved))
	}
	if len(slides.images) != 3 {
		t.Errorf("recorded %d slide images, want 3", len(slides.images))
	}
	for _, s := range result.Slides {
		if s.GeneratedImage == "" {
			t.Errorf("slide %d has no image", s.SlideNumber)
		}
	}
}

func TestGenerateSkipsImagesWhenNotRequested(t *testing.T) {
	content := &fakeContent{slides: testContent(2), aiGenerated: true}
	images := &fakeImages{}
	svc, _, _, _, _, _ := newTestService(content, images)

	if _, err := svc.Generate(context.Background(), GenerateRequest{
		Topic:      "topic",
		SlideCount: 2,
		Platform:   "instagram",
		Style:      "modern",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if images.calls != 0 {
		t.Errorf("rendered %d images, want 0", images.calls)
	}
}

func TestGenerateSurvivesImageFailures(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	images := &fakeImages{err: errors.New("provider down")}
	svc, _, _, _, _, _ := newTestService(content, images)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Topic:      "topic",
		SlideCount: 3,
		Platform:   "instagram",
		Style:      "modern",
		WithImages: true,
	})
	if err != nil {
		t.Fatalf("image failures must not fail the carousel: %v", err)
	}
	for _, s := range result.Slides {
		if s.GeneratedImage != "" {
			t.Error("failed render should leave the slide without an image")
		}
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(&fakeContent{}, &fakeImages{})

	if _, err := svc.Generate(context.Background(), GenerateRequest{Topic: "", SlideCount: 3}); err == nil {
		t.Error("empty topic should be rejected")
	}
	if _, err := svc.Generate(context.Background(), GenerateRequest{Topic: "x", SlideCount: 0}); err == nil {
		t.Error("zero slides should be rejected")
	}
}

func TestGeneratePreviewsCreatesAllVariants(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	svc, _, _, previews, cache, _ := newTestService(content, &fakeImages{})

	sessionID, variants, err := svc.GeneratePreviews(context.Background(), "topic", 3, "instagram", "modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessionID == "" {
		t.Fatal("no session ID returned")
	}
	if len(variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(variants))
	}
	if len(previews.rows) != 3 {
		t.Errorf("persisted %d previews, want 3", len(previews.rows))
	}
	if len(cache.sessions[sessionID]) != 3 {
		t.Errorf("cached %d previews, want 3", len(cache.sessions[sessionID]))
	}
	for i, v := range variants {
		if v.VariantNumber != i+1 {
			t.Errorf("variant %d numbered %d", i, v.VariantNumber)
		}
		if v.VariantName == "" {
			t.Errorf("variant %d has no name", i)
		}
	}
}

func TestSelectPreviewPromotesVariant(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	svc, projects, slides, previews, cache, _ := newTestService(content, &fakeImages{})

	sessionID, _, err := svc.GeneratePreviews(context.Background(), "topic", 3, "instagram", "modern")
	if err != nil {
		t.Fatal(err)
	}

	result, err := svc.SelectPreview(context.Background(), sessionID, 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if previews.selected[sessionID] != 2 {
		t.Error("selection not recorded")
	}
	if len(projects.created) != 1 {
		t.Fatalf("created %d projects, want 1", len(projects.created))
	}
	if len(slides.rows) != 3 {
		t.Errorf("persisted %d slides, want 3", len(slides.rows))
	}
	if result.Project.Topic != "topic" {
		t.Errorf("project topic = %q", result.Project.Topic)
	}
	if _, ok := cache.sessions[sessionID]; ok {
		t.Error("session should be cleared after selection")
	}
}

func TestSelectPreviewUnknownVariant(t *testing.T) {
	content := &fakeContent{slides: testContent(3), aiGenerated: true}
	svc, _, _, _, _, _ := newTestService(content, &fakeImages{})

	sessionID, _, err := svc.GeneratePreviews(context.Background(), "topic", 3, "instagram", "modern")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SelectPreview(context.Background(), sessionID, 9, false); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestSelectPreviewFallsBackToDatabase(t *testing.T) {
	content := &fakeContent{slides: testContent(2), aiGenerated: true}
	svc, _, _, _, cache, _ := newTestService(content, &fakeImages{})

	sessionID, _, err := svc.GeneratePreviews(context.Background(), "topic", 2, "instagram", "modern")
	if err != nil {
		t.Fatal(err)
	}

	// Simulate cache expiry; the persisted previews still resolve.
	delete(cache.sessions, sessionID)

	result, err := svc.SelectPreview(context.Background(), sessionID, 1, false)
	if err != nil {
		t.Fatalf("database fallback failed: %v", err)
	}
	if len(result.Slides) != 2 {
		t.Errorf("got %d slides, want 2", len(result.Slides))
	}
}
