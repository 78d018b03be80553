package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func baseParams() ImagePromptParams {
	return ImagePromptParams{
		Topic:       "morning productivity habits",
		SlideNumber: 2,
		TotalSlides: 5,
		Platform:    "instagram",
		Style:       "modern",
		ProjectID:   99,
	}
}

func TestBuildImagePromptIsDeterministic(t *testing.T) {
	p := baseParams()
	first := BuildImagePrompt(p)
	for i := 0; i < 5; i++ {
		if got := BuildImagePrompt(p); got != first {
			t.Fatal("same params should always compose the same prompt")
		}
	}
}

func TestBuildImagePromptEmbedsTopicAndPosition(t *testing.T) {
	got := BuildImagePrompt(baseParams())
	if !strings.Contains(got, `"morning productivity habits"`) {
		t.Error("topic not embedded")
	}
	if !strings.Contains(got, "SLIDE 2 OF 5") {
		t.Error("slide position not embedded")
	}
	if !strings.Contains(got, "DO NOT INCLUDE") {
		t.Error("negative constraints block missing")
	}
}

func TestBuildImagePromptUsesSlideContextWhenContentKnown(t *testing.T) {
	p := baseParams()
	p.SlideTitle = "Quarterly Revenue Growth of 40%"
	p.SlideDescription = "Our sales metrics show strong results"

	got := BuildImagePrompt(p)
	if !strings.Contains(got, "SLIDE-SPECIFIC VISUAL MATCHING") {
		t.Error("expected the per-slide visual matching block")
	}
	if !strings.Contains(got, "Data/Statistics") {
		t.Error("detected purpose name should appear in the prompt")
	}
}

func TestBuildImagePromptFallsBackToTopicObjects(t *testing.T) {
	got := BuildImagePrompt(baseParams())
	if !strings.Contains(got, "TOPIC-RELATED OBJECTS") {
		t.Error("expected the topic-level object block without slide content")
	}
	if strings.Contains(got, "SLIDE-SPECIFIC VISUAL MATCHING") {
		t.Error("per-slide block should not appear without title and description")
	}
}

func TestBuildSlideImagePromptLeadsWithPrimary(t *testing.T) {
	primary := "a golden retriever balancing a coffee cup on its nose"
	got := BuildSlideImagePrompt(primary, baseParams())

	if !strings.HasPrefix(got, "PRIMARY IMAGE INSTRUCTION") {
		t.Error("prompt should open with the primary instruction header")
	}
	if !strings.Contains(got, primary) {
		t.Error("primary instruction missing")
	}
	if !strings.Contains(got, "INSTAGRAM carousel slide (2 of 5)") {
		t.Error("platform context missing")
	}
}

func TestBuildSlideImagePromptBoundsStylingContext(t *testing.T) {
	primary := "short subject"
	full := BuildImagePrompt(baseParams())
	got := BuildSlideImagePrompt(primary, baseParams())

	// The styling tail is capped, so the composite stays well under the raw
	// styling prompt plus wrapper.
	if len(got) >= len(full)+len(primary) {
		t.Errorf("styling context does not appear bounded: %d vs %d", len(got), len(full))
	}
	if !strings.Contains(got, full[len(full)-100:]) {
		t.Error("the tail of the styling context should survive truncation")
	}
}

func TestBuildSlideImagePromptKeepsMultiByteTopicsValid(t *testing.T) {
	p := baseParams()
	p.Topic = strings.Repeat("아침 생산성 루틴 ", 40)

	got := BuildSlideImagePrompt("a sunrise over a desk", p)
	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte rune")
	}
}

func TestTailRunesCutsOnRuneBoundaries(t *testing.T) {
	s := strings.Repeat("가", 10)

	got := tailRunes(s, 4)
	if got != strings.Repeat("가", 4) {
		t.Errorf("got %q, want the last 4 runes", got)
	}
	if !utf8.ValidString(got) {
		t.Error("tail is not valid UTF-8")
	}
	if tailRunes("short", 10) != "short" {
		t.Error("strings within the limit should pass through unchanged")
	}
}

func TestRotateObjectsCyclesDistinct(t *testing.T) {
	all := []string{"a", "b", "c", "d"}

	if got := rotateObjects(all, 1, 3); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Errorf("slide 1 got %v", got)
	}
	if got := rotateObjects(all, 2, 3); !equalStrings(got, []string{"b", "c", "d"}) {
		t.Errorf("slide 2 got %v", got)
	}
	if got := rotateObjects(all, 5, 3); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Errorf("slide 5 should wrap to the start, got %v", got)
	}
}

func TestRotateObjectsShortList(t *testing.T) {
	if got := rotateObjects([]string{"only"}, 3, 3); !equalStrings(got, []string{"only"}) {
		t.Errorf("got %v, want the single object once", got)
	}
	if got := rotateObjects(nil, 1, 3); got != nil {
		t.Errorf("empty list should yield nil, got %v", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
