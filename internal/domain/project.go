package domain

import "time"

// Project is one carousel generation job: a topic rendered as an ordered set
// of slides sharing a platform and visual identity.
type Project struct {
	ID            int64
	Topic         string
	Platform      string
	Style         string
	SlideCount    int
	ProfileHandle string
	BrandColors   []string
	CreatedAt     time.Time
}
