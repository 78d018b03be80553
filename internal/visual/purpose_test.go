package visual

import (
	"reflect"
	"testing"
)

func TestAnalyzePurpose(t *testing.T) {
	cases := []struct {
		title       string
		description string
		want        Purpose
	}{
		{"Quarterly Revenue Growth of 40%", "Our sales metrics show strong results", PurposeData},
		{"5 Steps to Build a Morning Workflow", "A simple process you can follow", PurposeProcess},
		{"Freelance vs Full-time", "Compare the pros and cons of each option", PurposeComparison},
		{"What is Compound Interest?", "Understand the basics explained simply", PurposeConcept},
		{"Our Journey: 2020 to 2025", "A timeline of every milestone", PurposeTimeline},
		{"Follow us today!", "Subscribe and share now", PurposeCTA},
		{"Ocean waves", "calm water", PurposeConcept},
	}

	for _, tc := range cases {
		if got := AnalyzePurpose(tc.title, tc.description); got != tc.want {
			t.Errorf("AnalyzePurpose(%q, %q) = %q, want %q", tc.title, tc.description, got, tc.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("How to Start Investing Today", "Learn the basics of the stock market", 5)
	want := []string{"start", "investing", "today", "learn", "basics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractKeywordsDropsShortWordsAndDuplicates(t *testing.T) {
	got := ExtractKeywords("Go go GO run", "run fast ok", 5)
	want := []string{"run", "fast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractKeywordsHonorsLimit(t *testing.T) {
	got := ExtractKeywords("alpha bravo charlie delta echo foxtrot golf", "", 3)
	if len(got) != 3 {
		t.Errorf("got %d keywords, want 3", len(got))
	}
}

func TestAnalyzeSlideFirstSlideBiasedToConcept(t *testing.T) {
	ctx := AnalyzeSlide("5 Tips for Better Sleep", "Simple tricks that work", 1, 5, "sleep health")
	if ctx.Purpose != PurposeConcept {
		t.Errorf("first slide purpose = %q, want concept", ctx.Purpose)
	}
}

func TestAnalyzeSlideFirstSlideKeepsDataAndTimeline(t *testing.T) {
	ctx := AnalyzeSlide("Quarterly Revenue Growth of 40%", "Sales metrics and results", 1, 5, "business")
	if ctx.Purpose != PurposeData {
		t.Errorf("data-heavy first slide purpose = %q, want data", ctx.Purpose)
	}

	ctx = AnalyzeSlide("Our Journey Timeline", "milestones year by year", 1, 5, "business")
	if ctx.Purpose != PurposeTimeline {
		t.Errorf("timeline first slide purpose = %q, want timeline", ctx.Purpose)
	}
}

func TestAnalyzeSlideLastSlideForcedToCTA(t *testing.T) {
	ctx := AnalyzeSlide("A summary of the data", "metrics and statistics and growth", 5, 5, "business")
	if ctx.Purpose != PurposeCTA {
		t.Errorf("last slide purpose = %q, want cta", ctx.Purpose)
	}
}

func TestAnalyzeSlideSingleSlideTakesOpeningBranch(t *testing.T) {
	ctx := AnalyzeSlide("Follow us today!", "Subscribe now", 1, 1, "marketing")
	// Slide 1 of 1 goes through the first-slide override, not the cta one.
	if ctx.Purpose != PurposeConcept {
		t.Errorf("single slide purpose = %q, want concept", ctx.Purpose)
	}
}

func TestAnalyzeSlideCarriesGlobalCategory(t *testing.T) {
	ctx := AnalyzeSlide("Any title", "any description", 2, 4, "instagram marketing tips")
	if ctx.GlobalCategory != CategoryMarketing {
		t.Errorf("global category = %q, want marketing", ctx.GlobalCategory)
	}
	if ctx.SlideNumber != 2 || ctx.TotalSlides != 4 {
		t.Error("slide position not propagated")
	}
}

func TestInfoAndVisualsFallBackToConcept(t *testing.T) {
	if InfoFor(Purpose("bogus")).Name != purposeTypes[PurposeConcept].Name {
		t.Error("unknown purpose info should fall back to concept")
	}
	if VisualsFor(Purpose("bogus")).Objects != purposeVisuals[PurposeConcept].Objects {
		t.Error("unknown purpose visuals should fall back to concept")
	}
}
