package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/openai/openai-go/v3"
	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/constants"
	"github.com/mnthn04/AICarouselApp/internal/util"
	apperrors "github.com/mnthn04/AICarouselApp/pkg/errors"
)

// ImageGenerator renders slide background images through the OpenAI image
// API. Responses arrive either as a hosted URL or inline base64; both are
// normalized to raw bytes.
type ImageGenerator struct {
	client     *openai.Client
	model      string
	breaker    *util.CircuitBreaker
	httpClient *http.Client
	logger     *zap.Logger
}

func NewImageGenerator(client *openai.Client, model string, logger *zap.Logger) *ImageGenerator {
	return &ImageGenerator{
		client: client,
		model:  model,
		breaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		httpClient: &http.Client{Timeout: constants.ImageDefaults.DownloadTimeout},
		logger:     logger,
	}
}

// Generate renders one image for the prompt and returns its PNG bytes.
// Prompts beyond the API limit are truncated.
func (g *ImageGenerator) Generate(ctx context.Context, imagePrompt string) ([]byte, error) {
	if !g.breaker.CanExecute() {
		return nil, apperrors.NewUpstreamError("image generation unavailable", "OpenAI", "images.generate",
			fmt.Errorf("circuit breaker open"))
	}

	truncated := util.TruncateString(imagePrompt, constants.InputLimits.MaxImagePromptLength)
	if len(truncated) < len(imagePrompt) {
		g.logger.Debug("image prompt truncated",
			zap.Int("original", len(imagePrompt)),
			zap.Int("limit", constants.InputLimits.MaxImagePromptLength),
		)
	}

	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: truncated,
		Model:  openai.ImageModel(g.model),
		Size:   openai.ImageGenerateParamsSize1024x1024,
		N:      openai.Int(1),
	})
	if err != nil {
		g.breaker.RecordFailure()
		return nil, apperrors.NewUpstreamError("image generation failed", "OpenAI", "images.generate", err)
	}
	if len(resp.Data) == 0 {
		g.breaker.RecordFailure()
		return nil, apperrors.NewUpstreamError("image generation failed", "OpenAI", "images.generate",
			fmt.Errorf("empty image response"))
	}
	g.breaker.RecordSuccess()

	image := resp.Data[0]
	if image.B64JSON != "" {
		data, err := base64.StdEncoding.DecodeString(image.B64JSON)
		if err != nil {
			return nil, apperrors.NewUpstreamError("image decode failed", "OpenAI", "images.decode", err)
		}
		return data, nil
	}
	if image.URL != "" {
		return g.download(ctx, image.URL)
	}

	return nil, apperrors.NewUpstreamError("image generation failed", "OpenAI", "images.generate",
		fmt.Errorf("response contains neither URL nor inline data"))
}

func (g *ImageGenerator) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image download request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("image download failed", "OpenAI", "images.download", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("image download failed", "OpenAI", "images.download",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("image download failed", "OpenAI", "images.download", err)
	}

	g.logger.Debug("image downloaded", zap.Int("bytes", len(data)))
	return data, nil
}
