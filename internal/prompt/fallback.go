package prompt

import (
	"fmt"
	"strings"

	"github.com/mnthn04/AICarouselApp/internal/domain"
)

type colorPair struct {
	Background string
	Font       string
}

// Platform fallback palettes used when the text generator is unavailable.
var platformPalettes = map[string][]colorPair{
	"instagram": {
		{"#405DE6", "#FFFFFF"},
		{"#8A2BE2", "#FFFFFF"},
		{"#FF6B6B", "#FFFFFF"},
		{"#4ECDC4", "#000000"},
		{"#FFD166", "#000000"},
	},
	"linkedin": {
		{"#0A66C2", "#FFFFFF"},
		{"#333333", "#FFFFFF"},
		{"#666666", "#FFFFFF"},
		{"#999999", "#000000"},
		{"#CCCCCC", "#000000"},
	},
	"twitter": {
		{"#1DA1F2", "#FFFFFF"},
		{"#14171A", "#FFFFFF"},
		{"#657786", "#FFFFFF"},
		{"#AAB8C2", "#000000"},
		{"#E1E8ED", "#000000"},
	},
	"presentation": {
		{"#2E86AB", "#FFFFFF"},
		{"#A23B72", "#FFFFFF"},
		{"#F18F01", "#000000"},
		{"#C73E1D", "#FFFFFF"},
		{"#6BAA75", "#000000"},
	},
}

type defaultTemplate struct {
	Title       string
	Description string
	Suffix      string
}

var defaultTemplates = []defaultTemplate{
	{"Unlock {topic} Excellence", "Discover the essential concepts that drive success in {topic}.", "minimal clean background with soft gradients"},
	{"Master {topic} Fundamentals", "Build a strong foundation with core {topic} principles.", "professional geometric shapes and subtle patterns"},
	{"Transform Your {topic} Journey", "Implement proven strategies to accelerate your {topic} growth.", "modern abstract design with flowing elements"},
	{"Elevate Your {topic} Skills", "Take your expertise to the next level with advanced techniques.", "sophisticated color gradients and clean lines"},
	{"Dominate {topic} Strategies", "Learn industry-leading approaches that deliver results.", "premium design with elegant simplicity"},
	{"Navigate {topic} Like a Pro", "Master the skills needed to excel in {topic}.", "contemporary layout with subtle textures"},
	{"Revolutionize Your {topic} Approach", "Discover innovative methods that transform outcomes.", "cutting-edge design with minimalist elements"},
	{"Conquer {topic} Challenges", "Overcome obstacles and achieve {topic} mastery.", "bold and confident design aesthetic"},
}

var fallbackTitles = []string{
	"Unlock {topic} Success",
	"Master {topic} Fundamentals",
	"Transform Your {topic} Journey",
	"Elevate Your {topic} Skills",
	"Discover {topic} Excellence",
	"Navigate {topic} Like a Pro",
	"Accelerate {topic} Growth",
	"Dominate {topic} Strategies",
	"Revolutionize Your {topic} Approach",
	"Conquer {topic} Challenges",
}

var fallbackDescriptions = []string{
	"Discover the essential concepts that drive success in {topic}.",
	"Master the core principles behind effective {topic} strategies.",
	"Transform your approach with proven {topic} techniques.",
	"Elevate your skills with professional {topic} insights.",
	"Unlock excellence through strategic {topic} implementation.",
	"Navigate complex {topic} challenges with confidence.",
	"Accelerate your progress with expert {topic} guidance.",
	"Dominate your field with advanced {topic} strategies.",
	"Revolutionize your results with innovative {topic} methods.",
	"Conquer obstacles and achieve {topic} mastery.",
}

// DefaultSlides produces a full deterministic slide set for when the text
// generation collaborator fails entirely. The pipeline must still deliver a
// usable carousel, so this never errors.
func DefaultSlides(topic string, slideCount int, platform, style string) []domain.SlideContent {
	colors := palettePairs(platform)

	count := slideCount
	if count > len(defaultTemplates) {
		count = len(defaultTemplates)
	}

	slides := make([]domain.SlideContent, 0, slideCount)
	for i := 0; i < count; i++ {
		pair := colors[i%len(colors)]
		tmpl := defaultTemplates[i]

		slides = append(slides, domain.SlideContent{
			Title:           fillTopic(tmpl.Title, topic),
			Description:     fillTopic(tmpl.Description, topic),
			ImagePrompt:     fmt.Sprintf("Minimal %s background: %s, perfect for professional %s content, text-friendly design", platform, tmpl.Suffix, topic),
			BackgroundColor: pair.Background,
			FontColor:       pair.Font,
			Layout:          domain.LayoutFullBackground,
		})
	}

	for len(slides) < slideCount {
		slides = append(slides, FallbackSlide(topic, len(slides)+1, platform, style))
	}

	return slides
}

// FallbackSlide produces one deterministic slide, used to pad generations
// that came back short or to replace a single malformed slide.
func FallbackSlide(topic string, slideNumber int, platform, style string) domain.SlideContent {
	colors := palettePairs(platform)
	pair := colors[(slideNumber-1)%len(colors)]

	titleIdx := slideNumber - 1
	if titleIdx >= len(fallbackTitles) {
		titleIdx = len(fallbackTitles) - 1
	}
	descIdx := slideNumber - 1
	if descIdx >= len(fallbackDescriptions) {
		descIdx = len(fallbackDescriptions) - 1
	}

	return domain.SlideContent{
		Title:           fillTopic(fallbackTitles[titleIdx], topic),
		Description:     fillTopic(fallbackDescriptions[descIdx], topic),
		ImagePrompt:     fmt.Sprintf("Minimal %s background with soft %s gradients, subtle abstract shapes, and clean professional design perfect for %s content", platform, style, topic),
		BackgroundColor: pair.Background,
		FontColor:       pair.Font,
		Layout:          domain.LayoutFullBackground,
	}
}

func palettePairs(platform string) []colorPair {
	if pairs, ok := platformPalettes[platform]; ok {
		return pairs
	}
	return platformPalettes["instagram"]
}

func fillTopic(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}
