package visual

import (
	"regexp"
	"strings"
)

// Purpose is the rhetorical role a single slide plays in the carousel.
type Purpose string

const (
	PurposeData            Purpose = "data"
	PurposeProcess         Purpose = "process"
	PurposeComparison      Purpose = "comparison"
	PurposeConcept         Purpose = "concept"
	PurposeTimeline        Purpose = "timeline"
	PurposeProblemSolution Purpose = "problem_solution"
	PurposeList            Purpose = "list"
	PurposeQuote           Purpose = "quote"
	PurposeCTA             Purpose = "cta"
)

// PurposeInfo carries the human-readable framing of a purpose.
type PurposeInfo struct {
	Name           string
	Description    string
	VisualApproach string
}

// PurposeVisuals is the static visual vocabulary of a purpose.
type PurposeVisuals struct {
	Objects string
	Icons   string
	Style   string
}

// SlideContext is the fully resolved per-slide visual instruction set
// produced by AnalyzeSlide. It is derived fresh per slide and never stored by
// the engine.
type SlideContext struct {
	Purpose        Purpose
	PurposeName    string
	VisualApproach string
	Objects        string
	Icons          string
	Style          string
	Keywords       []string
	SlideNumber    int
	TotalSlides    int
	GlobalCategory Category
}

// purposeOrder fixes the scoring iteration for deterministic tie-breaks.
var purposeOrder = []Purpose{
	PurposeData,
	PurposeProcess,
	PurposeComparison,
	PurposeConcept,
	PurposeTimeline,
	PurposeProblemSolution,
	PurposeList,
	PurposeQuote,
	PurposeCTA,
}

var purposeTypes = map[Purpose]PurposeInfo{
	PurposeData: {
		Name:           "Data/Statistics",
		Description:    "Presenting numbers, percentages, metrics, growth figures",
		VisualApproach: "Charts, graphs, metrics with visual impact",
	},
	PurposeProcess: {
		Name:           "Process/Flow",
		Description:    "Explaining steps, workflows, sequences, how things work",
		VisualApproach: "Flowcharts, step diagrams, connected arrows",
	},
	PurposeComparison: {
		Name:           "Comparison/Contrast",
		Description:    "Comparing options, before/after, pros/cons",
		VisualApproach: "Split visuals, comparison tables, side-by-side",
	},
	PurposeConcept: {
		Name:           "Concept/Definition",
		Description:    "Explaining ideas, defining terms, abstract concepts",
		VisualApproach: "Metaphorical illustrations, conceptual icons",
	},
	PurposeTimeline: {
		Name:           "Timeline/Sequence",
		Description:    "Historical progression, roadmaps, milestones",
		VisualApproach: "Timeline graphics, milestone markers, journey path",
	},
	PurposeProblemSolution: {
		Name:           "Problem/Solution",
		Description:    "Identifying issues and proposing fixes",
		VisualApproach: "Before/after visuals, problem icons, solution arrows",
	},
	PurposeList: {
		Name:           "List/Itemization",
		Description:    "Bullet points, numbered lists, tips, features",
		VisualApproach: "Icon grids, numbered graphics, checkbox visuals",
	},
	PurposeQuote: {
		Name:           "Quote/Testimonial",
		Description:    "Inspirational quotes, customer testimonials, expert opinions",
		VisualApproach: "Elegant typography frames, quote marks, portrait frames",
	},
	PurposeCTA: {
		Name:           "Call-to-Action",
		Description:    "Encouraging action, signup, purchase, follow",
		VisualApproach: "Button graphics, directional arrows, action icons",
	},
}

var purposeVisuals = map[Purpose]PurposeVisuals{
	PurposeData: {
		Objects: "bar chart, line graph, pie chart, metrics dashboard, upward arrow, percentage badge, growth indicator, data visualization panel",
		Icons:   "trending up arrow, chart icon, statistics graph, metric counter, progress bar, analytics icon",
		Style:   "clean data visualization, infographic style, bold numbers, highlighted metrics",
	},
	PurposeProcess: {
		Objects: "flowchart diagram, step arrows, numbered circles, process pipeline, gear mechanism, workflow nodes",
		Icons:   "connected arrows, step indicators, flow arrows, process wheels, sequential markers",
		Style:   "clean flowchart, numbered steps with connecting lines, process diagram aesthetic",
	},
	PurposeComparison: {
		Objects: "split screen layout, comparison table, versus badge, balance scale, side-by-side panels",
		Icons:   "vs symbol, comparison arrows, check/x marks, rating stars, pro/con icons",
		Style:   "dual layout, clear separation, before/after effect, contrast zones",
	},
	PurposeConcept: {
		Objects: "lightbulb illustration, brain graphic, abstract shapes, conceptual diagram, thought bubble",
		Icons:   "idea bulb, brain icon, puzzle pieces, concept cloud, abstract symbols",
		Style:   "metaphorical illustration, abstract representation, conceptual visual",
	},
	PurposeTimeline: {
		Objects: "horizontal timeline, milestone markers, date badges, journey path, roadmap illustration",
		Icons:   "calendar icon, clock, milestone flag, date marker, progress dots",
		Style:   "timeline graphic, chronological markers, journey visualization",
	},
	PurposeProblemSolution: {
		Objects: "broken chain icon, warning symbol, checkmark solution, transformation arrow, before/after split",
		Icons:   "warning triangle, problem X, solution checkmark, fix wrench, healing cross",
		Style:   "problem illustration transitioning to solution, transformation visual",
	},
	PurposeList: {
		Objects: "numbered list graphic, icon grid, feature boxes, bullet point markers, checklist visual",
		Icons:   "numbered badges, checkbox icons, bullet markers, list icons, feature stars",
		Style:   "organized grid layout, numbered or bulleted visual list, icon collection",
	},
	PurposeQuote: {
		Objects: "large quotation marks, elegant frame, portrait silhouette, speech bubble, testimonial card",
		Icons:   "quote marks, speech icon, person silhouette, star rating, testimonial badge",
		Style:   "elegant typography frame, inspirational quote layout, testimonial card design",
	},
	PurposeCTA: {
		Objects: "call-to-action button, pointing arrow, follow icon, subscribe button, action badge",
		Icons:   "arrow pointing right, click cursor, follow plus, subscribe bell, action hand",
		Style:   "prominent action visual, directional emphasis, invitation to act",
	},
}

// purposeKeywords are matched as raw substrings (same tradeoff as
// topicKeywords).
var purposeKeywords = map[Purpose][]string{
	PurposeData: {
		"percent", "percentage", "%", "growth", "increase", "decrease", "revenue", "sales",
		"metrics", "statistics", "numbers", "data", "rate", "ratio", "score", "results",
		"quarterly", "annually", "yoy", "mom", "kpi", "roi", "conversion", "profits",
	},
	PurposeProcess: {
		"step", "steps", "process", "workflow", "how to", "guide", "method", "procedure",
		"framework", "system", "approach", "sequence", "phase", "stage", "pipeline",
	},
	PurposeComparison: {
		"vs", "versus", "compare", "comparison", "difference", "between", "better",
		"worse", "pros", "cons", "advantages", "disadvantages", "option", "alternative",
	},
	PurposeConcept: {
		"what is", "definition", "meaning", "concept", "idea", "understand", "learn",
		"discover", "introduce", "about", "overview", "explained", "basics",
	},
	PurposeTimeline: {
		"timeline", "history", "evolution", "journey", "roadmap", "milestone", "future",
		"past", "present", "year", "quarter", "month", "when", "date", "period",
	},
	PurposeProblemSolution: {
		"problem", "challenge", "issue", "solution", "fix", "solve", "overcome",
		"struggle", "difficulty", "obstacle", "barrier", "pain point", "mistake",
	},
	PurposeList: {
		"tip", "tips", "ways", "reasons", "things", "list", "top", "best", "must", "key",
		"essential", "important", "features", "benefits", "secrets", "hacks", "tricks",
	},
	PurposeQuote: {
		"quote", "said", "says", "according", "expert", "testimonial", "review", "feedback",
		"opinion", "believe", "philosophy", "wisdom", "inspiration", "motivational",
	},
	PurposeCTA: {
		"follow", "subscribe", "join", "sign up", "start", "get started", "try", "download",
		"click", "share", "comment", "save", "contact", "book", "call", "action", "now", "today",
	},
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "from": {}, "up": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {}, "it": {}, "its": {}, "your": {},
	"you": {}, "we": {}, "they": {}, "our": {}, "their": {}, "how": {}, "why": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "who": {}, "whom": {}, "whose": {}, "not": {}, "no": {}, "yes": {}, "all": {}, "each": {}, "every": {},
	"most": {}, "more": {}, "some": {}, "any": {}, "make": {}, "get": {}, "just": {}, "also": {}, "than": {},
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// AnalyzePurpose scores the slide's combined title and description against
// every purpose keyword list and returns the best match. A slide with no
// keyword hits is treated as a concept slide; that is a defined fallback, not
// a failure.
func AnalyzePurpose(title, description string) Purpose {
	text := strings.ToLower(title + " " + description)

	best := PurposeConcept
	bestScore := 0
	for _, purpose := range purposeOrder {
		score := 0
		for _, keyword := range purposeKeywords[purpose] {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = purpose
			bestScore = score
		}
	}

	return best
}

// ExtractKeywords pulls up to maxKeywords content words from the slide text:
// alphabetic runs of three or more characters, stop words dropped, first-seen
// order preserved, duplicates removed.
func ExtractKeywords(title, description string, maxKeywords int) []string {
	text := strings.ToLower(title + " " + description)
	words := wordPattern.FindAllString(text, -1)

	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{}, maxKeywords)
	for _, word := range words {
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		keywords = append(keywords, word)
		seen[word] = struct{}{}
		if len(keywords) >= maxKeywords {
			break
		}
	}

	return keywords
}

// InfoFor returns the descriptive framing for a purpose, defaulting to the
// concept entry.
func InfoFor(purpose Purpose) PurposeInfo {
	if info, ok := purposeTypes[purpose]; ok {
		return info
	}
	return purposeTypes[PurposeConcept]
}

// VisualsFor returns the static visual vocabulary for a purpose, defaulting
// to the concept entry.
func VisualsFor(purpose Purpose) PurposeVisuals {
	if visuals, ok := purposeVisuals[purpose]; ok {
		return visuals
	}
	return purposeVisuals[PurposeConcept]
}

// AnalyzeSlide runs the full per-slide analysis: keyword extraction, purpose
// detection, position overrides, and vocabulary lookup.
//
// Position overrides: the first slide is biased to concept unless the raw
// purpose is data or timeline; the last slide of a multi-slide carousel is
// forced to cta regardless of the detected purpose. A single-slide carousel
// takes the first-slide branch only.
func AnalyzeSlide(title, description string, slideNumber, totalSlides int, globalTopic string) SlideContext {
	keywords := ExtractKeywords(title, description, 5)
	purpose := AnalyzePurpose(title, description)

	if slideNumber == 1 {
		if purpose != PurposeData && purpose != PurposeTimeline {
			purpose = PurposeConcept
		}
	} else if slideNumber == totalSlides {
		purpose = PurposeCTA
	}

	info := InfoFor(purpose)
	visuals := VisualsFor(purpose)

	return SlideContext{
		Purpose:        purpose,
		PurposeName:    info.Name,
		VisualApproach: info.VisualApproach,
		Objects:        visuals.Objects,
		Icons:          visuals.Icons,
		Style:          visuals.Style,
		Keywords:       keywords,
		SlideNumber:    slideNumber,
		TotalSlides:    totalSlides,
		GlobalCategory: ClassifyTopic(globalTopic),
	}
}
