// Package classifier produces a fraud verdict for a canonical URL. The
// remote ML service is asked first; when it cannot answer, a local keyword
// heuristic decides. Callers always get a verdict.
package classifier

import (
	"context"
	"log/slog"
	"time"
)

const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
	SourceCache    = "cache"
)

type Predictor interface {
	Predict(ctx context.Context, link string) (bool, error)
}

// Fallback is the local decision used when the Predictor fails.
type Fallback interface {
	Predict(link string) bool
}

type VerdictCache interface {
	Get(link string) (isFraud, found bool)
	Set(link string, isFraud bool)
}

type Observer interface {
	ObservePrediction(source string, duration time.Duration)
	ObservePredictionFailure(reason string)
}

type healthChecker interface {
	Health(ctx context.Context) error
}

type Service struct {
	remote   Predictor
	fallback Fallback
	cache    VerdictCache
	observer Observer
	logger   *slog.Logger
}

// NewService wires the classifier. cache and observer may be nil.
func NewService(remote Predictor, fallback Fallback, cache VerdictCache, observer Observer, logger *slog.Logger) *Service {
	return &Service{
		remote:   remote,
		fallback: fallback,
		cache:    cache,
		observer: observer,
		logger:   logger,
	}
}

// Classify never fails. Only remote verdicts are cached, so a fallback answer
// given during an outage is re-evaluated once the service is back.
func (s *Service) Classify(ctx context.Context, link string) bool {
	if s.cache != nil {
		if isFraud, ok := s.cache.Get(link); ok {
			s.observe(SourceCache, 0)
			return isFraud
		}
	}

	start := time.Now()
	isFraud, err := s.remote.Predict(ctx, link)
	if err == nil {
		s.observe(SourceRemote, time.Since(start))
		if s.cache != nil {
			s.cache.Set(link, isFraud)
		}
		return isFraud
	}

	reason := FailureReason(err)
	s.logger.Warn("classifier prediction failed, using keyword fallback",
		slog.String("link", link),
		slog.String("reason", reason),
		slog.String("error", err.Error()))
	if s.observer != nil {
		s.observer.ObservePredictionFailure(reason)
	}

	isFraud = s.fallback.Predict(link)
	s.observe(SourceFallback, 0)
	return isFraud
}

// Health reports the remote service's reachability.
func (s *Service) Health(ctx context.Context) error {
	if hc, ok := s.remote.(healthChecker); ok {
		return hc.Health(ctx)
	}
	return nil
}

func (s *Service) observe(source string, d time.Duration) {
	if s.observer != nil {
		s.observer.ObservePrediction(source, d)
	}
}
