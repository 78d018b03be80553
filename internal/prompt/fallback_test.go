package prompt

import (
	"strings"
	"testing"

	"github.com/mnthn04/AICarouselApp/internal/domain"
)

func TestDefaultSlidesCount(t *testing.T) {
	for _, count := range []int{1, 3, 5, 8, 10} {
		slides := DefaultSlides("remote work", count, "instagram", "modern")
		if len(slides) != count {
			t.Errorf("requested %d slides, got %d", count, len(slides))
		}
	}
}

func TestDefaultSlidesFillTopic(t *testing.T) {
	slides := DefaultSlides("remote work", 3, "instagram", "modern")
	for i, s := range slides {
		if strings.Contains(s.Title, "{topic}") || strings.Contains(s.Description, "{topic}") {
			t.Errorf("slide %d still contains the topic placeholder", i+1)
		}
		if !strings.Contains(s.Title, "remote work") {
			t.Errorf("slide %d title %q does not mention the topic", i+1, s.Title)
		}
	}
}

func TestDefaultSlidesCycleColors(t *testing.T) {
	slides := DefaultSlides("any", 6, "instagram", "modern")
	pairs := platformPalettes["instagram"]

	for i, s := range slides {
		want := pairs[i%len(pairs)]
		if s.BackgroundColor != want.Background || s.FontColor != want.Font {
			t.Errorf("slide %d colors (%s, %s), want (%s, %s)",
				i+1, s.BackgroundColor, s.FontColor, want.Background, want.Font)
		}
	}
}

func TestDefaultSlidesUnknownPlatformUsesInstagram(t *testing.T) {
	got := DefaultSlides("any", 2, "myspace", "modern")
	want := DefaultSlides("any", 2, "instagram", "modern")
	for i := range got {
		if got[i].BackgroundColor != want[i].BackgroundColor {
			t.Errorf("slide %d background differs from the instagram fallback", i+1)
		}
	}
}

func TestDefaultSlidesAllHaveContent(t *testing.T) {
	for _, s := range DefaultSlides("budgeting", 10, "linkedin", "minimal") {
		if s.Title == "" || s.Description == "" || s.ImagePrompt == "" {
			t.Errorf("incomplete fallback slide: %+v", s)
		}
		if s.Layout != domain.LayoutFullBackground {
			t.Errorf("fallback layout = %q, want full-background", s.Layout)
		}
	}
}

func TestFallbackSlideIsDeterministic(t *testing.T) {
	a := FallbackSlide("yoga", 4, "instagram", "modern")
	b := FallbackSlide("yoga", 4, "instagram", "modern")
	if a != b {
		t.Error("fallback slide should be deterministic for the same inputs")
	}
}

func TestFallbackSlideClampsHighSlideNumbers(t *testing.T) {
	s := FallbackSlide("yoga", 50, "instagram", "modern")
	if s.Title == "" || s.Description == "" {
		t.Error("slide numbers past the template lists should reuse the last entry")
	}
}
