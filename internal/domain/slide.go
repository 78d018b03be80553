package domain

import "time"

// Layout options for a slide's image/text arrangement.
const (
	LayoutImageTop       = "image-top"
	LayoutImageLeft      = "image-left"
	LayoutImageRight     = "image-right"
	LayoutFullBackground = "full-background"
	LayoutTable          = "table"
)

// SlideContent is the generated (or fallback) content for one slide before it
// is persisted. Colors are always normalized #RRGGBB strings.
type SlideContent struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImagePrompt     string `json:"image_prompt"`
	BackgroundColor string `json:"background_color"`
	FontColor       string `json:"font_color"`
	Layout          string `json:"layout,omitempty"`
}

// Slide is the persisted record for one carousel slide.
type Slide struct {
	ID              int64
	ProjectID       int64
	SlideNumber     int
	Title           string
	Description     string
	ImagePrompt     string
	BackgroundColor string
	FontColor       string
	Width           int
	Height          int
	Layout          string
	GeneratedImage  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
