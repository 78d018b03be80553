package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/constants"
	"github.com/mnthn04/AICarouselApp/internal/domain"
	"github.com/mnthn04/AICarouselApp/internal/prompt"
	"github.com/mnthn04/AICarouselApp/internal/visual"
)

// Generator is the narrow text-generation surface SlideGenerator depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// SlideGenerator produces carousel slide content from a topic. Upstream
// failures never surface to the caller; the generator degrades to template
// slides instead.
type SlideGenerator struct {
	provider Generator
	logger   *zap.Logger
}

func NewSlideGenerator(provider Generator, logger *zap.Logger) *SlideGenerator {
	return &SlideGenerator{
		provider: provider,
		logger:   logger,
	}
}

// Generate returns slideCount slides for the topic. The second return value
// reports whether the slides came from the model or from the fallback
// templates.
func (s *SlideGenerator) Generate(ctx context.Context, topic string, slideCount int, platform, style string) ([]domain.SlideContent, bool) {
	return s.generate(ctx, prompt.BuildContentPrompt(topic, slideCount, platform, style), topic, slideCount, platform, style)
}

// GenerateVariant produces one named preview variant by layering a tone
// directive over the content prompt. The topic stays untouched so all
// variants of a topic share the same category and palette, and fallback
// slides read cleanly.
func (s *SlideGenerator) GenerateVariant(ctx context.Context, topic string, slideCount int, platform, style, variantName string) ([]domain.SlideContent, bool) {
	tone := strings.ToLower(variantName)
	return s.generate(ctx, prompt.BuildVariantContentPrompt(topic, slideCount, platform, style, tone), topic, slideCount, platform, style)
}

func (s *SlideGenerator) generate(ctx context.Context, contentPrompt, topic string, slideCount int, platform, style string) ([]domain.SlideContent, bool) {
	raw, err := s.provider.Generate(ctx, contentPrompt, GenerateOptions{
		JSONMode:    true,
		Temperature: 0.7,
		MaxTokens:   constants.InputLimits.MaxContentTokens,
	})
	if err != nil {
		s.logger.Warn("content generation failed, using default slides",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return prompt.DefaultSlides(topic, slideCount, platform, style), false
	}

	slides, err := parseSlides(raw)
	if err != nil {
		s.logger.Warn("failed to parse generated content, using default slides",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return prompt.DefaultSlides(topic, slideCount, platform, style), false
	}

	slides = s.sanitize(slides, topic, slideCount, platform, style)
	return slides, true
}

// sanitize validates each slide, coerces colors to renderable hex, maps
// unknown layouts, and pads or trims to the requested count.
func (s *SlideGenerator) sanitize(slides []domain.SlideContent, topic string, slideCount int, platform, style string) []domain.SlideContent {
	if len(slides) > slideCount {
		slides = slides[:slideCount]
	}

	for i := range slides {
		if strings.TrimSpace(slides[i].Title) == "" {
			slides[i].Title = fmt.Sprintf("Slide %d", i+1)
		}
		slides[i].BackgroundColor = visual.NormalizeHex(slides[i].BackgroundColor)
		slides[i].FontColor = visual.NormalizeHex(slides[i].FontColor)
		slides[i].Layout = normalizeLayout(slides[i].Layout)
	}

	for len(slides) < slideCount {
		s.logger.Debug("padding short carousel with fallback slide",
			zap.Int("slide", len(slides)+1),
			zap.Int("requested", slideCount),
		)
		slides = append(slides, prompt.FallbackSlide(topic, len(slides)+1, platform, style))
	}

	return slides
}

// layoutAliases maps the layout vocabulary models tend to emit onto the
// renderer's layout names.
var layoutAliases = map[string]string{
	"hero_split":   domain.LayoutImageRight,
	"visual_focus": domain.LayoutFullBackground,
	"card_grid":    domain.LayoutImageLeft,
	"step_flow":    domain.LayoutImageRight,
	"stat_focus":   domain.LayoutImageTop,
}

func normalizeLayout(layout string) string {
	normalized := strings.ToLower(strings.TrimSpace(layout))
	switch normalized {
	case domain.LayoutImageTop, domain.LayoutImageLeft, domain.LayoutImageRight,
		domain.LayoutFullBackground, domain.LayoutTable:
		return normalized
	}
	if mapped, ok := layoutAliases[normalized]; ok {
		return mapped
	}
	return domain.LayoutImageRight
}

// parseSlides decodes the model output into slides. It tolerates markdown
// code fences, a bare JSON array, a single slide object, or an object
// wrapping the array under a well-known key.
func parseSlides(raw string) ([]domain.SlideContent, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var slides []domain.SlideContent
	if err := json.Unmarshal([]byte(cleaned), &slides); err == nil {
		if len(slides) == 0 {
			return nil, fmt.Errorf("model returned an empty slide array")
		}
		return slides, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
		return nil, fmt.Errorf("response is neither a JSON array nor object: %w", err)
	}

	for _, key := range []string{"slides", "content", "data", "carousel"} {
		inner, ok := wrapper[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &slides); err == nil && len(slides) > 0 {
			return slides, nil
		}
	}

	// A single slide object decodes as a map with title/description keys.
	var single domain.SlideContent
	if err := json.Unmarshal([]byte(cleaned), &single); err == nil && single.Title != "" {
		return []domain.SlideContent{single}, nil
	}

	return nil, fmt.Errorf("no slide array found in model response")
}

func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
