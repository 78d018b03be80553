package constants

import "time"

var CacheTTL = struct {
	PreviewSession time.Duration
	ProjectSlides  time.Duration
}{
	PreviewSession: 30 * time.Minute,
	ProjectSlides:  5 * time.Minute,
}

var InputLimits = struct {
	MaxTopicLength       int
	MaxImagePromptLength int
	MaxContentTokens     int
}{
	MaxTopicLength:       255,
	MaxImagePromptLength: 4000,
	MaxContentTokens:     2500,
}

var ImageDefaults = struct {
	Size            string
	Width           int
	Height          int
	DownloadTimeout time.Duration
}{
	Size:            "1024x1024",
	Width:           1080,
	Height:          1080,
	DownloadTimeout: 30 * time.Second,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}{
	FailureThreshold: 3,
	ResetTimeout:     30 * time.Second,
}

var PreviewVariants = []string{"Professional", "Creative", "Bold"}
