package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/app"
	"github.com/mnthn04/AICarouselApp/internal/config"
	"github.com/mnthn04/AICarouselApp/internal/service/carousel"
	"github.com/mnthn04/AICarouselApp/internal/util"
)

func main() {
	topic := flag.String("topic", "", "carousel topic (required)")
	slides := flag.Int("slides", 5, "number of slides")
	platform := flag.String("platform", "", "target platform (instagram, linkedin, twitter, presentation)")
	style := flag.String("style", "", "visual style hint (modern, minimal, playful, professional, creative, elegant)")
	noImages := flag.Bool("no-images", false, "skip image generation")
	flag.Parse()

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "a -topic is required")
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *platform == "" {
		*platform = cfg.Generation.DefaultPlatform
	}
	if *style == "" {
		*style = cfg.Generation.DefaultStyle
	}
	if *slides < 1 || *slides > cfg.Generation.MaxSlides {
		fmt.Fprintf(os.Stderr, "slides must be between 1 and %d\n", cfg.Generation.MaxSlides)
		os.Exit(2)
	}

	logger.Info("Carousel generator starting...",
		zap.String("topic", *topic),
		zap.Int("slides", *slides),
		zap.String("platform", *platform),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	// Cancel the run on SIGINT/SIGTERM so in-flight generation stops cleanly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	result, err := container.Carousel.Generate(ctx, carousel.GenerateRequest{
		Topic:       *topic,
		SlideCount:  *slides,
		Platform:    *platform,
		Style:       *style,
		BrandColors: cfg.Generation.BrandColors,
		WithImages:  !*noImages,
	})
	if err != nil {
		logger.Error("Carousel generation failed", zap.Error(err))
		os.Exit(1)
	}

	source := "templates"
	if result.AIGenerated {
		source = "model"
	}
	fmt.Printf("Project %d: %d slides (%s)\n", result.Project.ID, len(result.Slides), source)
	for _, s := range result.Slides {
		image := s.GeneratedImage
		if image == "" {
			image = "-"
		}
		fmt.Printf("  %2d. %-40s %s\n", s.SlideNumber, s.Title, image)
	}
}
