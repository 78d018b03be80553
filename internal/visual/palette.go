package visual

import "strings"

// Category is the global topic classification driving palette selection.
type Category string

const (
	CategoryBusiness   Category = "business"
	CategoryMarketing  Category = "marketing"
	CategoryTechnology Category = "technology"
	CategoryHealth     Category = "health"
	CategoryLifestyle  Category = "lifestyle"
	CategoryEducation  Category = "education"
	CategoryCreative   Category = "creative"
	CategoryTravel     Category = "travel"
	CategoryFinance    Category = "finance"
	CategoryFashion    Category = "fashion"
	CategoryFood       Category = "food"
	CategoryDefault    Category = "default"
)

// Palette is the static color scheme and visual vocabulary for a category.
// Pastel and Secondary are only populated when brand colors override the
// accent.
type Palette struct {
	Background       string
	BackgroundAlt    string
	AccentBG         string
	FontColor        string
	Accent           string
	Highlight        string
	Light            string
	Objects          []string
	CreativeElements []string
	Pastel           string
	Secondary        string
}

// categoryOrder fixes the iteration order for scoring so that ties are broken
// deterministically (first seen wins).
var categoryOrder = []Category{
	CategoryBusiness,
	CategoryMarketing,
	CategoryTechnology,
	CategoryHealth,
	CategoryLifestyle,
	CategoryEducation,
	CategoryCreative,
	CategoryTravel,
	CategoryFinance,
	CategoryFashion,
	CategoryFood,
}

// topicKeywords are matched as raw substrings against the lower-cased topic.
// Substring containment trades precision for recall and can over-match short
// keywords inside unrelated words; that behavior is intentional and kept.
var topicKeywords = map[Category][]string{
	CategoryBusiness:   {"business", "startup", "entrepreneur", "company", "finance", "money", "investment", "sales", "profit", "ceo", "success"},
	CategoryMarketing:  {"marketing", "social media", "instagram", "content", "brand", "audience", "engagement", "viral", "followers", "influencer", "tiktok", "reels"},
	CategoryTechnology: {"tech", "technology", "ai", "software", "app", "digital", "computer", "data", "automation", "code", "programming", "developer"},
	CategoryHealth:     {"health", "fitness", "wellness", "diet", "exercise", "mental", "meditation", "yoga", "nutrition", "workout", "gym"},
	CategoryLifestyle:  {"lifestyle", "life", "daily", "routine", "productivity", "habits", "morning", "self-care", "home"},
	CategoryEducation:  {"learn", "education", "course", "study", "teach", "training", "skill", "tips", "how to", "guide", "tutorial"},
	CategoryCreative:   {"art", "design", "creative", "photography", "video", "music", "writing", "craft", "artist"},
	CategoryTravel:     {"travel", "trip", "vacation", "adventure", "destination", "explore", "tourism", "journey"},
	CategoryFinance:    {"finance", "investing", "stocks", "crypto", "wealth", "budget", "savings", "financial"},
	CategoryFashion:    {"fashion", "style", "outfit", "clothing", "beauty", "makeup", "skincare", "trends"},
	CategoryFood:       {"food", "recipe", "cooking", "chef", "restaurant", "baking", "cuisine", "meal"},
}

// Light, vibrant palettes; one per category, default as fallback.
var topicPalettes = map[Category]Palette{
	CategoryBusiness: {
		Background:    "#E8F4FD",
		BackgroundAlt: "#D0E8FF",
		AccentBG:      "#B8DCFF",
		FontColor:     "#1A365D",
		Accent:        "#0066FF",
		Highlight:     "#3399FF",
		Light:         "#F0F8FF",
		Objects: []string{
			"laptop", "business charts", "coffee cup", "notebook", "pen", "smartphone", "office desk",
			"glass wall office", "floating UI panels", "minimal desk accessories", "digital clock",
			"leather chair", "desk plant", "sticky notes", "tablet stand", "wireless mouse",
			"presentation screen", "business documents", "clipboard", "file folders",
		},
		CreativeElements: []string{
			"business infographics", "statistics icons", "growth charts", "professional person in suit",
			"abstract geometric shapes", "subtle shadows", "corporate illustration style", "layered depth",
			"soft reflections", "modern gradients", "isometric elements", "corporate icons",
			"workflow arrows", "clean grid layout",
		},
	},
	CategoryMarketing: {
		Background:    "#FFF0F5",
		BackgroundAlt: "#FFE4EC",
		AccentBG:      "#FED7E2",
		FontColor:     "#702459",
		Accent:        "#ED64A6",
		Highlight:     "#F687B3",
		Light:         "#FFF5F7",
		Objects: []string{
			"phone with instagram", "ring light", "camera", "pink laptop", "content calendar",
			"floating emojis", "aesthetic props", "neon frame", "tripod", "mic", "story stickers",
			"analytics dashboard", "brand mood board", "marketing funnel chart",
		},
		CreativeElements: []string{
			"social media icons", "heart icons", "like buttons", "influencer aesthetic", "pink neon signs",
			"gradient overlays", "viral reel UI", "sparkles", "glow effects", "motion arrows",
			"floating reactions", "swipe indicators", "CTA buttons",
		},
	},
	CategoryTechnology: {
		Background:    "#E8E0FF",
		BackgroundAlt: "#D4C4FF",
		AccentBG:      "#C5B3FF",
		FontColor:     "#2D1B69",
		Accent:        "#7C3AED",
		Highlight:     "#A855F7",
		Light:         "#F5F0FF",
		Objects: []string{
			"modern laptop", "smartphone", "tablet", "headphones", "smart devices", "code on screen",
			"holographic screen", "glowing keyboard", "server racks", "VR headset", "robotic arm",
			"digital assistant orb", "microchips", "circuit boards",
		},
		CreativeElements: []string{
			"circuit patterns", "data visualization", "tech icons", "futuristic UI elements", "neon lines",
			"AI brain illustration", "cyber grid", "HUD overlays", "sci-fi lighting", "volumetric glow",
			"matrix style code rain",
		},
	},
	CategoryHealth: {
		Background:    "#CCFBF1",
		BackgroundAlt: "#99F6E4",
		AccentBG:      "#5EEAD4",
		FontColor:     "#134E4A",
		Accent:        "#14B8A6",
		Highlight:     "#2DD4BF",
		Light:         "#F0FDFA",
		Objects: []string{
			"yoga mat", "water bottle", "fresh fruits", "plants", "fitness equipment", "smoothie",
			"smart watch", "resistance bands", "dumbbells", "foam roller", "gym towel", "protein shaker",
		},
		CreativeElements: []string{
			"leaves", "wellness icons", "heart rate graphics", "healthy food flat-lay", "calm gradients",
			"sunlight rays", "zen symbols", "breathing patterns", "organic shapes", "mindfulness icons",
		},
	},
	CategoryLifestyle: {
		Background:    "#FEF3C7",
		BackgroundAlt: "#FDE68A",
		AccentBG:      "#FCD34D",
		FontColor:     "#78350F",
		Accent:        "#F59E0B",
		Highlight:     "#FBBF24",
		Light:         "#FFFBEB",
		Objects: []string{
			"planner", "coffee", "cozy blanket", "candles", "books", "plants", "aesthetic desk",
			"ceramic mug", "fairy lights", "incense", "journal", "wooden tray", "cushions",
			"home decor items",
		},
		CreativeElements: []string{
			"lifestyle flat-lay", "cozy room aesthetic", "morning routine items", "self-care products",
			"warm shadows", "soft textures", "lifestyle vignette", "ambient lighting", "neutral tones",
		},
	},
	CategoryEducation: {
		Background:    "#E0F7FF",
		BackgroundAlt: "#B8ECFF",
		AccentBG:      "#9BE0FF",
		FontColor:     "#0C4A6E",
		Accent:        "#0EA5E9",
		Highlight:     "#38BDF8",
		Light:         "#F0FAFF",
		Objects: []string{
			"books", "notebook", "pencils", "glasses", "desk lamp", "apple", "graduation cap",
			"sticky notes", "digital tablet", "chalk", "ruler", "school bag", "whiteboard",
		},
		CreativeElements: []string{
			"study desk setup", "lightbulb ideas", "brain icons", "learning graphics", "doodle arrows",
			"chalkboard texture", "mind maps", "academic diagrams", "educational symbols",
		},
	},
	CategoryCreative: {
		Background:    "#F5D0FE",
		BackgroundAlt: "#E879F9",
		AccentBG:      "#D946EF",
		FontColor:     "#701A75",
		Accent:        "#C026D3",
		Highlight:     "#E879F9",
		Light:         "#FDF4FF",
		Objects: []string{
			"camera", "art supplies", "sketchbook", "color palette", "iPad with stylus", "paint tubes",
			"creative props", "scissors", "brushes", "markers", "canvas board", "glue tape",
		},
		CreativeElements: []string{
			"paint splashes", "creative tools", "artistic workspace", "colorful illustrations",
			"abstract blobs", "brush strokes", "layered collage", "surreal elements",
			"mixed media textures",
		},
	},
	CategoryTravel: {
		Background:    "#CFFAFE",
		BackgroundAlt: "#A5F3FC",
		AccentBG:      "#67E8F9",
		FontColor:     "#164E63",
		Accent:        "#06B6D4",
		Highlight:     "#22D3EE",
		Light:         "#ECFEFF",
		Objects: []string{
			"passport", "boarding pass", "camera", "suitcase", "vintage map", "sunglasses", "airplane",
			"travel stickers", "compass", "backpack", "travel journal", "map pins",
		},
		CreativeElements: []string{
			"world map", "destination pins", "travel icons", "adventure aesthetic", "clouds",
			"motion trails", "paper cutouts", "postcard style", "travel doodles",
		},
	},
	CategoryFinance: {
		Background:    "#D4FFED",
		BackgroundAlt: "#A7F3D0",
		AccentBG:      "#6EE7B7",
		FontColor:     "#064E3B",
		Accent:        "#10B981",
		Highlight:     "#34D399",
		Light:         "#ECFDF5",
		Objects: []string{
			"calculator", "coins", "money graphics", "financial charts", "piggy bank",
			"laptop with graphs", "credit cards", "wallet", "receipt slips", "budget notebook",
		},
		CreativeElements: []string{
			"money icons", "growth arrows", "financial infographics", "investment graphics",
			"glowing bars", "stock tickers", "upward graphs", "profit indicators",
		},
	},
	CategoryFashion: {
		Background:    "#FCE7F3",
		BackgroundAlt: "#FBCFE8",
		AccentBG:      "#F9A8D4",
		FontColor:     "#831843",
		Accent:        "#EC4899",
		Highlight:     "#F472B6",
		Light:         "#FDF2F8",
		Objects: []string{
			"clothing rack", "fashion accessories", "sunglasses", "handbag", "stylish outfits",
			"mirror", "heels", "perfume bottle", "jewelry", "fabric swatches",
		},
		CreativeElements: []string{
			"fashion sketches", "runway aesthetic", "style icons", "trendy flat-lay",
			"editorial lighting", "magazine layout", "fashion grids",
		},
	},
	CategoryFood: {
		Background:    "#FFEDD5",
		BackgroundAlt: "#FDBA74",
		AccentBG:      "#FB923C",
		FontColor:     "#7C2D12",
		Accent:        "#F97316",
		Highlight:     "#FB923C",
		Light:         "#FFF7ED",
		Objects: []string{
			"beautiful food flat-lay", "coffee", "cooking ingredients", "elegant plates",
			"wooden table", "herbs", "napkin", "cutlery", "spices", "sauce bowls",
		},
		CreativeElements: []string{
			"food photography", "recipe cards", "kitchen aesthetic", "chef icons", "steam effects",
			"rustic textures", "overhead composition",
		},
	},
	CategoryDefault: {
		Background:    "#E0E7FF",
		BackgroundAlt: "#C7D2FE",
		AccentBG:      "#A5B4FC",
		FontColor:     "#312E81",
		Accent:        "#6366F1",
		Highlight:     "#818CF8",
		Light:         "#EEF2FF",
		Objects: []string{
			"laptop", "notebook", "smartphone", "coffee cup", "modern desk items", "ambient props",
			"minimal decor", "clean surfaces", "neutral accessories",
		},
		CreativeElements: []string{
			"clean minimalist aesthetic", "professional workspace", "modern design elements",
			"soft gradients", "depth layering", "balanced composition",
		},
	},
}

// ClassifyTopic scores the topic against every category's keyword list and
// returns the best match. Each keyword that occurs anywhere in the lower-cased
// topic counts once; the category with the highest total wins, ties going to
// the earliest category in the fixed order. No match at all yields the
// default category.
func ClassifyTopic(topic string) Category {
	topicLower := strings.ToLower(topic)

	best := CategoryDefault
	bestScore := 0
	for _, category := range categoryOrder {
		score := 0
		for _, word := range topicKeywords[category] {
			if strings.Contains(topicLower, word) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	return best
}

// PaletteFor returns the static palette for a category, falling back to the
// default palette for unknown values.
func PaletteFor(category Category) Palette {
	if palette, ok := topicPalettes[category]; ok {
		return palette
	}
	return topicPalettes[CategoryDefault]
}

// PaletteForTopic classifies the topic and resolves its palette. When brand
// colors are supplied, the first replaces the accent (with a derived pastel
// variant) and the second becomes the secondary color.
func PaletteForTopic(topic string, brandColors []string) Palette {
	palette := PaletteFor(ClassifyTopic(topic))

	if len(brandColors) > 0 {
		palette.Accent = brandColors[0]
		palette.Pastel = PastelVariant(brandColors[0], 0.25)
		if len(brandColors) > 1 {
			palette.Secondary = brandColors[1]
		}
	}

	return palette
}

// FontColorForTopic returns the dark font color paired with the topic's
// background.
func FontColorForTopic(topic string) string {
	return PaletteFor(ClassifyTopic(topic)).FontColor
}

// BackgroundColorForTopic returns the topic's background color.
func BackgroundColorForTopic(topic string) string {
	return PaletteFor(ClassifyTopic(topic)).Background
}

// AccentColorForTopic returns the topic's accent color.
func AccentColorForTopic(topic string) string {
	return PaletteFor(ClassifyTopic(topic)).Accent
}

// Categories lists every known category including default, in scoring order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryOrder)+1)
	out = append(out, categoryOrder...)
	out = append(out, CategoryDefault)
	return out
}
