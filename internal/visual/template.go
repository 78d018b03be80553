package visual

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// DesignTemplate describes one of the light, airy carousel looks. The same
// template is reused for every slide of a carousel so the design reads as one
// piece.
type DesignTemplate struct {
	Name           string
	Description    string
	VisualElements []string
	FlowElement    string
	AccentStyle    string
	Mood           string
	FontColor      string
}

// templateOrder fixes candidate ordering for seeded selection.
var templateOrder = []string{
	"cream_lifestyle",
	"soft_beige",
	"warm_ivory",
	"light_gray_minimal",
	"pastel_blush",
	"clean_white",
	"sand_neutral",
	"pearl_elegant",
}

var designTemplates = map[string]DesignTemplate{
	"cream_lifestyle": {
		Name:        "Cream Lifestyle",
		Description: "Warm cream and beige tones with lifestyle objects, cozy and inviting",
		VisualElements: []string{
			"Soft cream to warm beige gradient background",
			"Lifestyle objects arranged artistically (laptop, planner, coffee, plants)",
			"Natural wood textures and warm lighting",
			"Subtle sparkle or star accents for elegance",
		},
		FlowElement: "A subtle warm-toned curved line or shadow",
		AccentStyle: "warm golden highlights",
		Mood:        "cozy, warm, and inviting",
		FontColor:   "#5D4E37",
	},
	"soft_beige": {
		Name:        "Soft Beige",
		Description: "Light beige and off-white with clean minimalist objects",
		VisualElements: []string{
			"Clean off-white to light beige background",
			"Minimalist desk setup with modern devices",
			"Soft shadows and clean lines",
			"Subtle geometric accents",
		},
		FlowElement: "A thin elegant dividing line",
		AccentStyle: "clean shadow effects",
		Mood:        "clean, modern, and professional",
		FontColor:   "#3D3D3D",
	},
	"warm_ivory": {
		Name:        "Warm Ivory",
		Description: "Ivory and pale peach with elegant illustrated people",
		VisualElements: []string{
			"Ivory to pale peach gradient background",
			"Stylized illustrated person working or presenting",
			"Elegant furniture and workspace elements",
			"Soft ambient lighting effects",
		},
		FlowElement: "Flowing illustration that extends across slides",
		AccentStyle: "soft peachy highlights",
		Mood:        "elegant and aspirational",
		FontColor:   "#6B4423",
	},
	"light_gray_minimal": {
		Name:        "Light Gray Minimal",
		Description: "Soft gray with clean professional flat illustrations",
		VisualElements: []string{
			"Light gray to white gradient background",
			"Flat-style illustrated person in business context",
			"Clean charts, graphs, or business icons",
			"Minimalist city skyline or office window",
		},
		FlowElement: "A clean horizontal accent line",
		AccentStyle: "subtle blue-gray accents",
		Mood:        "professional and trustworthy",
		FontColor:   "#2C3E50",
	},
	"pastel_blush": {
		Name:        "Pastel Blush",
		Description: "Very light pink and cream with feminine elegance",
		VisualElements: []string{
			"Pale blush pink to cream gradient",
			"Beauty or lifestyle products arranged elegantly",
			"Soft floral or abstract organic shapes",
			"Delicate sparkle and shimmer effects",
		},
		FlowElement: "A soft curved pastel ribbon",
		AccentStyle: "delicate rose gold accents",
		Mood:        "feminine, soft, and elegant",
		FontColor:   "#8B5A5A",
	},
	"clean_white": {
		Name:        "Clean White",
		Description: "Crisp white with strategic pops of objects and color",
		VisualElements: []string{
			"Bright white to very light gray background",
			"Flat-lay style arrangement of topic-relevant objects",
			"Strategic negative space for text",
			"Minimal accent colors only on objects",
		},
		FlowElement: "A simple connecting line or shape",
		AccentStyle: "clean object placement",
		Mood:        "fresh, clean, and modern",
		FontColor:   "#333333",
	},
	"sand_neutral": {
		Name:        "Sand Neutral",
		Description: "Sandy beige and taupe with earthy warmth",
		VisualElements: []string{
			"Warm sand to taupe gradient background",
			"Natural materials like notebooks, leather, wood",
			"Earthy textures and organic shapes",
			"Warm ambient lighting",
		},
		FlowElement: "An organic curved shape or wave",
		AccentStyle: "warm earthy accents",
		Mood:        "grounded, natural, and authentic",
		FontColor:   "#4A3728",
	},
	"pearl_elegant": {
		Name:        "Pearl Elegant",
		Description: "Pearlescent white and soft gray with luxury feel",
		VisualElements: []string{
			"Pearl white to soft silver gradient",
			"Elegant illustrated professional or lifestyle scene",
			"Subtle shimmer and light effects",
			"Premium minimalist design elements",
		},
		FlowElement: "A subtle gradient transition",
		AccentStyle: "pearlescent sheen",
		Mood:        "luxurious and premium",
		FontColor:   "#2F2F2F",
	},
}

// stylePreferences maps a caller style hint to preferred templates.
var stylePreferences = map[string][]string{
	"modern":       {"light_gray_minimal", "clean_white", "soft_beige"},
	"minimal":      {"clean_white", "soft_beige", "pearl_elegant"},
	"playful":      {"pastel_blush", "cream_lifestyle", "warm_ivory"},
	"professional": {"light_gray_minimal", "soft_beige", "pearl_elegant"},
	"creative":     {"warm_ivory", "cream_lifestyle", "pastel_blush"},
	"elegant":      {"pearl_elegant", "warm_ivory", "cream_lifestyle"},
}

// FlowSeed derives the carousel's design seed from the project and topic.
// md5 keeps the value stable across processes; the first 8 hex digits bound
// it to 32 bits so all slides of one carousel resolve the same template
// without any shared state.
func FlowSeed(projectID int64, topic string) int64 {
	seedString := fmt.Sprintf("%d-%s", projectID, topic)
	sum := md5.Sum([]byte(seedString))
	digest := hex.EncodeToString(sum[:])

	value, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		// Unreachable for a hex digest; keep the contract total anyway.
		return 0
	}
	return int64(value)
}

// SelectTemplate picks a template key for the carousel. The style hint
// restricts candidates to its preferred list when recognized; selection is
// uniform over the candidates using a locally seeded source, so the same
// (seed, styleHint) pair always resolves the same template even under
// concurrent calls.
func SelectTemplate(seed int64, styleHint string) string {
	candidates := templateOrder

	if styleHint != "" {
		if preferred, ok := stylePreferences[strings.ToLower(styleHint)]; ok {
			valid := make([]string, 0, len(preferred))
			for _, key := range preferred {
				if _, exists := designTemplates[key]; exists {
					valid = append(valid, key)
				}
			}
			if len(valid) > 0 {
				candidates = valid
			}
		}
	}

	rng := rand.New(rand.NewSource(seed))
	return candidates[rng.Intn(len(candidates))]
}

// TemplateByKey resolves a template, falling back to the first template in
// fixed order for unknown keys.
func TemplateByKey(key string) DesignTemplate {
	if template, ok := designTemplates[key]; ok {
		return template
	}
	return designTemplates[templateOrder[0]]
}

// TemplateNames maps template keys to display names.
func TemplateNames() map[string]string {
	names := make(map[string]string, len(designTemplates))
	for key, template := range designTemplates {
		names[key] = template.Name
	}
	return names
}
