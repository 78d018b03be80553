package domain

import "time"

// ContentPreview is one of the content variants offered for a session before
// any image generation happens.
type ContentPreview struct {
	ID            int64
	SessionID     string
	VariantNumber int
	VariantName   string
	Topic         string
	Platform      string
	Style         string
	SlideCount    int
	Slides        []SlideContent
	IsSelected    bool
	CreatedAt     time.Time
}
