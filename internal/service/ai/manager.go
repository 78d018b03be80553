package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mnthn04/AICarouselApp/internal/constants"
	"github.com/mnthn04/AICarouselApp/internal/util"
	apperrors "github.com/mnthn04/AICarouselApp/pkg/errors"
)

// ProviderManager runs generation against a primary provider and falls back
// to a secondary one when the primary's circuit is open or the call fails.
type ProviderManager struct {
	primary  TextProvider
	fallback TextProvider
	breaker  *util.CircuitBreaker
	logger   *zap.Logger
}

func NewProviderManager(primary, fallback TextProvider, logger *zap.Logger) *ProviderManager {
	return &ProviderManager{
		primary:  primary,
		fallback: fallback,
		breaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		logger: logger,
	}
}

// Generate tries the primary provider first. Failures trip the circuit
// breaker; while the circuit is open calls go straight to the fallback.
func (m *ProviderManager) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if m.breaker.CanExecute() {
		text, err := m.primary.Generate(ctx, prompt, opts)
		if err == nil {
			m.breaker.RecordSuccess()
			return text, nil
		}

		m.breaker.RecordFailure()
		m.logger.Warn("primary provider failed",
			zap.String("provider", m.primary.Name()),
			zap.Error(err),
		)

		if m.fallback == nil {
			return "", apperrors.NewUpstreamError("text generation failed", m.primary.Name(), "generate", err)
		}
	} else {
		m.logger.Debug("circuit open, skipping primary provider",
			zap.String("provider", m.primary.Name()),
		)
		if m.fallback == nil {
			return "", apperrors.NewUpstreamError("text generation unavailable", m.primary.Name(), "generate",
				fmt.Errorf("circuit breaker open and no fallback configured"))
		}
	}

	text, err := m.fallback.Generate(ctx, prompt, opts)
	if err != nil {
		return "", apperrors.NewUpstreamError("text generation failed", m.fallback.Name(), "generate", err)
	}

	m.logger.Info("served by fallback provider", zap.String("provider", m.fallback.Name()))
	return text, nil
}
