package prompt

import (
	"strings"
	"testing"

	"github.com/mnthn04/AICarouselApp/internal/visual"
)

func TestBuildContentPromptEmbedsPaletteColors(t *testing.T) {
	topic := "fitness and wellness tips"
	palette := visual.PaletteFor(visual.ClassifyTopic(topic))

	got := BuildContentPrompt(topic, 5, "instagram", "modern")

	for _, color := range []string{palette.Background, palette.FontColor, palette.Accent} {
		if !strings.Contains(got, color) {
			t.Errorf("prompt missing palette color %q", color)
		}
	}
}

func TestBuildVariantContentPromptSharesPaletteAcrossTones(t *testing.T) {
	topic := "time management"
	palette := visual.PaletteFor(visual.ClassifyTopic(topic))

	for _, tone := range []string{"professional", "creative", "bold"} {
		got := BuildVariantContentPrompt(topic, 5, "instagram", "modern", tone)

		for _, color := range []string{palette.Background, palette.FontColor, palette.Accent} {
			if !strings.Contains(got, color) {
				t.Errorf("%s variant missing palette color %q", tone, color)
			}
		}
		if !strings.Contains(got, "TONE DIRECTIVE") || !strings.Contains(got, tone) {
			t.Errorf("%s variant missing its tone directive", tone)
		}
	}
}

func TestBuildVariantContentPromptKeepsTopicCategory(t *testing.T) {
	// A tone name that doubles as a category keyword must not reclassify the
	// topic. "creative" alone maps to the creative palette; a creative-toned
	// variant of a productivity topic must not.
	base := BuildContentPrompt("time management", 5, "instagram", "modern")
	variant := BuildVariantContentPrompt("time management", 5, "instagram", "modern", "creative")

	if !strings.HasPrefix(variant, base) {
		t.Error("variant prompt should extend the base prompt unchanged")
	}
	if visual.ClassifyTopic("time management") == visual.ClassifyTopic("creative") {
		t.Fatal("test premise broken: tone keyword no longer classifies differently")
	}
}

func TestBuildContentPromptNamesCategory(t *testing.T) {
	got := BuildContentPrompt("crypto investing for beginners", 5, "instagram", "modern")
	if !strings.Contains(got, "FINANCE TOPIC") {
		t.Error("prompt should name the classified category in upper case")
	}
}

func TestBuildContentPromptStructure(t *testing.T) {
	got := BuildContentPrompt("any topic", 6, "linkedin", "professional")

	if !strings.Contains(got, "Create 6 carousel slides") {
		t.Error("slide count not embedded")
	}
	if !strings.Contains(got, "Slides 2-5: Value delivery") {
		t.Error("value slides range should be 2 through count-1")
	}
	if !strings.Contains(got, "Slide 6: Call to action") {
		t.Error("final slide should be the call to action")
	}
	if !strings.Contains(got, "JSON array with 6 objects") {
		t.Error("JSON contract missing")
	}
	if !strings.Contains(got, "linkedin") {
		t.Error("platform not embedded")
	}
}
