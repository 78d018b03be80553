package domain

import "time"

// CarouselTemplate is a pre-generated carousel stored for reuse. Slide images
// are kept as encoded strings; this layer treats them as opaque data.
type CarouselTemplate struct {
	ID             int64
	Name           string
	Category       string
	Platform       string
	Style          string
	Description    string
	PreviewImage   string
	SlideImages    []string
	SlideCount     int
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	FontColor      string
	IsPremium      bool
	IsActive       bool
	UseCount       int
	CreatedAt      time.Time
}
