package prompt

import (
	"fmt"
	"strings"

	"github.com/mnthn04/AICarouselApp/internal/visual"
)

// BuildContentPrompt composes the slide-content generation instruction. The
// palette hex values embedded here are a contract: the downstream text
// generator must echo them back verbatim for background_color and font_color
// on every slide.
func BuildContentPrompt(topic string, slideCount int, platform, style string) string {
	category := visual.ClassifyTopic(topic)
	palette := visual.PaletteFor(category)

	categoryUpper := strings.ToUpper(string(category))

	return fmt.Sprintf(`Create %d carousel slides for %q that will go VIRAL on %s (style: %s).

===== MANDATORY COLOR SCHEME FOR %s TOPIC =====
This is a %s carousel. Use these EXACT colors for ALL slides:
- background_color: %q (this is the %s theme background)
- font_color: %q (this dark color matches the %s theme)
- accent_color: %q (for highlighted words)

DO NOT deviate from these colors - they are specifically designed for %s content!

===== CONTENT REQUIREMENTS =====
For each slide, provide:
- title: Compelling title (5-8 words) with ONE power word to emphasize
- highlight_word: The single most impactful word from the title
- description: Clear, valuable description (1-2 sentences)
- image_prompt: Description for background (NO TEXT in image, just objects/illustrations)
- background_color: %q (SAME for ALL slides)
- font_color: %q (SAME for ALL slides)
- accent_color: %q (for highlighted word)
- layout: ONE of ["image-top", "image-left", "image-right", "full-background"]

===== SLIDE STRUCTURE =====
- Slide 1: Hook/Attention grabber - Make them curious
- Slides 2-%d: Value delivery - Each with ONE key insight
- Slide %d: Call to action - What should they do next?

===== IMAGE PROMPT GUIDELINES =====
Each image_prompt should describe:
1. A %s-themed light background
2. Topic-relevant objects at edges/corners (flat-lay style)
3. OR a stylized illustrated person relevant to the topic
4. CLEAR center area for text (NO TEXT in image itself!)
5. Same visual theme across all slides

Return ONLY a JSON array with %d objects. No explanations.
CRITICAL: Use %q for background_color and %q for font_color in ALL slides!`,
		slideCount, topic, platform, style,
		categoryUpper,
		category,
		palette.Background, category,
		palette.FontColor, category,
		palette.Accent,
		category,
		palette.Background,
		palette.FontColor,
		palette.Accent,
		slideCount-1,
		slideCount,
		category,
		slideCount,
		palette.Background, palette.FontColor,
	)
}

// BuildVariantContentPrompt layers a tone directive over the standard content
// prompt. The topic itself stays untouched so category classification, the
// mandated palette, and any fallback content are identical across variants of
// the same topic.
func BuildVariantContentPrompt(topic string, slideCount int, platform, style, tone string) string {
	return fmt.Sprintf(`%s

===== TONE DIRECTIVE =====
Write every title and description in a %s tone of voice.
The tone changes the WRITING only - keep the colors, structure, and JSON contract above exactly as specified.`,
		BuildContentPrompt(topic, slideCount, platform, style),
		tone,
	)
}
