package prompt

import (
	"fmt"
	"strings"

	"github.com/mnthn04/AICarouselApp/internal/visual"
)

// ImagePromptParams carries everything needed to compose one slide's image
// generation instruction. SlideTitle and SlideDescription are optional; when
// both are present the per-slide analysis (Layer 2) replaces the topic-level
// object rotation (Layer 1).
type ImagePromptParams struct {
	Topic            string
	SlideNumber      int
	TotalSlides      int
	Platform         string
	Style            string
	BrandColors      []string
	ProjectID        int64
	SlideTitle       string
	SlideDescription string
}

// slideStylingContextLimit bounds how much of the composed styling context is
// appended after a slide's own image prompt.
const slideStylingContextLimit = 1500

// BuildImagePrompt assembles the full image generation instruction for one
// carousel slide: flow continuity, palette directives, the slide's visual
// vocabulary, and the fixed composition constraints.
func BuildImagePrompt(p ImagePromptParams) string {
	seed := visual.FlowSeed(p.ProjectID, p.Topic)
	template := visual.TemplateByKey(visual.SelectTemplate(seed, p.Style))

	palette := visual.PaletteForTopic(p.Topic, p.BrandColors)
	category := visual.ClassifyTopic(p.Topic)

	flowDesc := FlowDescription(p.SlideNumber, p.TotalSlides, template.FlowElement)

	var objectsInstruction string
	if p.SlideTitle != "" && p.SlideDescription != "" {
		ctx := visual.AnalyzeSlide(p.SlideTitle, p.SlideDescription, p.SlideNumber, p.TotalSlides, p.Topic)
		objectsInstruction = layer2Instruction(p.SlideTitle, ctx)
	} else {
		objectsInstruction = layer1Instruction(p.Topic, category, palette, p.SlideNumber)
	}

	return fmt.Sprintf(`Create a SCROLL-STOPPING carousel background inspired by premium design templates.

## TOPIC: %q
## SLIDE %d OF %d - part of ONE SEAMLESS DESIGN
%s

## DESIGN APPROACH
Create a premium, high-end carousel background with:
- HIGH-CONTRAST colors: bold %s against soft %s background
- Soft gradient flowing from %s to %s
- EDGE-LOADING: objects placed at TOP and BOTTOM edges only
- CENTRAL READABILITY ZONE: 55-60%% clear center for text
- Glassmorphism: semi-transparent, blurred overlay effects
- Mood: %s, with %s

## SEAMLESS CONTINUITY (PANORAMIC EFFECT)
- Elements should BLEED off the right edge of this slide
- And CONTINUE from the left edge of the next slide
- When swiped, all %d slides feel like ONE continuous artwork
- Use flowing shapes, gradients, or abstract elements that connect slides
%s

## CENTRAL READABILITY ZONE - CRITICAL
- 55-60%% clear center space for the user's text
- This zone should be BRIGHT, CLEAN, and BREATHABLE
- NO complex backgrounds or busy patterns in center
- Soft, pale %s or subtle gradient only
- Keep generous margin space around the text area

## VISUAL ELEMENTS
- Micro-accents: small decorative shapes at edges (sparkles, geometric shapes)
- Frosted glass overlays with blur effect
- Soft gradient transitions for depth
- Framing objects in opposite corners (top-left and bottom-right)
- Flowing shapes that bleed off edges
- %s

## DO NOT INCLUDE
- NO text, NO typography, NO words, NO letters
- NO logos, NO watermarks
- NO objects in the CENTER (only edges)
- NO busy or complex center backgrounds
- NO disconnected random elements

Create a premium, seamless carousel background for %q on %s that makes viewers want to swipe through.`,
		p.Topic,
		p.SlideNumber, p.TotalSlides,
		flowDesc,
		palette.Accent, palette.Background,
		palette.Background, palette.BackgroundAlt,
		template.Mood, template.AccentStyle,
		p.TotalSlides,
		objectsInstruction,
		palette.Background,
		strings.Join(template.VisualElements, "\n- "),
		p.Topic, p.Platform,
	)
}

// BuildSlideImagePrompt wraps a slide's own image prompt as the primary
// instruction, with the composed styling context appended. The context is
// truncated to its tail so the primary subject always survives the image
// API's prompt budget.
func BuildSlideImagePrompt(primary string, p ImagePromptParams) string {
	styling := tailRunes(BuildImagePrompt(p), slideStylingContextLimit)

	return fmt.Sprintf(`PRIMARY IMAGE INSTRUCTION - THIS IS WHAT TO DRAW:
%s

CRITICAL: the above description is the MAIN SUBJECT of this image.
Draw EXACTLY what is described above. Do NOT replace it with generic objects or icons.

STYLING AND LAYOUT CONTEXT (apply to the main subject above):
- Platform: %s carousel slide (%d of %d)
- Keep center 40-50%% clear for text overlay
- Premium, professional styling with soft pastel colors and modern gradients

%s`,
		primary,
		strings.ToUpper(p.Platform), p.SlideNumber, p.TotalSlides,
		styling,
	)
}

// tailRunes keeps the last max runes of s. Truncating on runes rather than
// bytes keeps multi-byte topics intact at the cut point.
func tailRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[len(runes)-max:])
}

// layer2Instruction renders the purpose-specific visual matching block for a
// slide whose content is known.
func layer2Instruction(slideTitle string, ctx visual.SlideContext) string {
	return fmt.Sprintf(`
## SLIDE-SPECIFIC VISUAL MATCHING
SLIDE TITLE: %q
DETECTED PURPOSE: %s
KEY CONTENT: %s

VISUAL APPROACH FOR THIS SLIDE:
%s

RECOMMENDED OBJECTS FOR THIS SLIDE:
%s

RECOMMENDED ICONS:
%s

VISUAL STYLE:
%s

CRITICAL: the visuals MUST directly relate to %q.
Do NOT use generic objects - use objects that SPECIFICALLY support this slide's content.`,
		slideTitle,
		ctx.PurposeName,
		strings.Join(ctx.Keywords, ", "),
		ctx.VisualApproach,
		ctx.Objects,
		ctx.Icons,
		ctx.Style,
		slideTitle,
	)
}

// layer1Instruction falls back to rotating through the topic palette's object
// lists so consecutive slides cycle through different but topic-consistent
// objects.
func layer1Instruction(topic string, category visual.Category, palette visual.Palette, slideNumber int) string {
	objects := rotateObjects(palette.Objects, slideNumber, 3)
	creative := ""
	if len(palette.CreativeElements) > 0 {
		creative = palette.CreativeElements[(slideNumber-1)%len(palette.CreativeElements)]
	}

	return fmt.Sprintf(`
## TOPIC-RELATED OBJECTS (GLOBAL THEME)
Create illustrated objects related to the %s theme:
- Suggested: %s
- Creative accent: %s
- Make them relevant to %q`,
		category,
		strings.Join(objects, ", "),
		creative,
		topic,
	)
}

// rotateObjects picks up to count distinct objects starting at the slide's
// rotation offset, wrapping around the list.
func rotateObjects(all []string, slideNumber, count int) []string {
	if len(all) == 0 {
		return nil
	}

	start := (slideNumber - 1) % len(all)
	selected := make([]string, 0, count)
	for i := 0; i < count; i++ {
		candidate := all[(start+i)%len(all)]
		if !contains(selected, candidate) {
			selected = append(selected, candidate)
		}
	}
	return selected
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
