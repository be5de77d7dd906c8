package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"linkguard/internal/config"
	"linkguard/internal/domain"
	"linkguard/internal/validation"
)

var (
	ErrURLNotFound  = errors.New("url not found")
	ErrNoLinks      = errors.New("no links provided")
	ErrTooManyLinks = errors.New("too many links in one request")
)

type URLService struct {
	store        Store
	classifier   Classifier
	pipeline     *Pipeline
	codec        IDCodec
	recorder     BusinessRecorder
	logger       *slog.Logger
	listDefault  int
	listMax      int
	maxBulkLinks int
}

func NewURLService(
	store Store,
	classifier Classifier,
	pipeline *Pipeline,
	codec IDCodec,
	listCfg *config.ListConfig,
	ingestCfg *config.IngestConfig,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *URLService {
	return &URLService{
		store:        store,
		classifier:   classifier,
		pipeline:     pipeline,
		codec:        codec,
		recorder:     recorder,
		logger:       logger,
		listDefault:  listCfg.DefaultLimit,
		listMax:      listCfg.MaxLimit,
		maxBulkLinks: ingestCfg.MaxBulkLinks,
	}
}

// Add stores raw once. Adding a link that is already stored, including one
// that a concurrent caller inserted first, reports AddStatusExists with the
// stored entry.
func (s *URLService) Add(ctx context.Context, raw string) (*domain.AddResult, error) {
	link, err := validation.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindByLink(ctx, link)
	switch {
	case err == nil:
		return s.addResult(domain.AddStatusExists, existing)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to find url: %w", err)
	}

	isFraud := s.classifier.Classify(ctx, link)

	created, err := s.store.Insert(ctx, domain.NewURLRecord{Link: link, IsFraud: isFraud})
	if errors.Is(err, domain.ErrDuplicateLink) {
		s.logger.Info("link inserted concurrently, returning stored record", slog.String("link", link))
		existing, err = s.store.FindByLink(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch concurrently inserted url: %w", err)
		}
		return s.addResult(domain.AddStatusExists, existing)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create url: %w", err)
	}

	s.recordBusiness("links_ingested", 1, map[string]string{"path": "single"})
	if created.IsFraud {
		s.recordBusiness("links_flagged", 1, map[string]string{"path": "single"})
	}

	return s.addResult(domain.AddStatusInserted, created)
}

// Check looks raw up without writing anything.
func (s *URLService) Check(ctx context.Context, raw string) (*domain.CheckResult, error) {
	link, err := validation.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.FindByLink(ctx, link)
	if errors.Is(err, domain.ErrNotFound) {
		s.recordBusiness("links_checked", 1, map[string]string{"found": "false"})
		return &domain.CheckResult{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find url: %w", err)
	}

	entry, err := s.toEntry(rec)
	if err != nil {
		return nil, err
	}
	s.recordBusiness("links_checked", 1, map[string]string{"found": "true"})
	return &domain.CheckResult{Found: true, Entry: entry}, nil
}

// Delete removes the record with the given public id. Ids that do not decode
// are treated like ids that are not stored.
func (s *URLService) Delete(ctx context.Context, id string) (*domain.Entry, error) {
	dbID, err := s.codec.Decode(id)
	if err != nil {
		return nil, ErrURLNotFound
	}

	rec, err := s.store.DeleteByID(ctx, dbID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrURLNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete url: %w", err)
	}

	return s.toEntry(rec)
}

// List returns the newest records first. A non-positive limit selects the
// default; larger limits are capped.
func (s *URLService) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = s.listDefault
	}
	if limit > s.listMax {
		limit = s.listMax
	}

	recs, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}

	entries := make([]domain.Entry, 0, len(recs))
	for i := range recs {
		entry, err := s.toEntry(&recs[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// BulkAdd rejects a nil list. An empty non-nil list runs through the pipeline
// and comes back with zero counts.
func (s *URLService) BulkAdd(ctx context.Context, raws []string) (*domain.BatchResult, error) {
	if raws == nil {
		return nil, ErrNoLinks
	}
	if s.maxBulkLinks > 0 && len(raws) > s.maxBulkLinks {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyLinks, len(raws), s.maxBulkLinks)
	}

	return s.pipeline.BulkIngest(ctx, raws)
}

func (s *URLService) addResult(status domain.AddStatus, rec *domain.URLRecord) (*domain.AddResult, error) {
	entry, err := s.toEntry(rec)
	if err != nil {
		return nil, err
	}
	return &domain.AddResult{Status: status, Entry: *entry}, nil
}

func (s *URLService) toEntry(rec *domain.URLRecord) (*domain.Entry, error) {
	id, err := s.codec.Encode(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id: %w", err)
	}
	return &domain.Entry{
		ID:        id,
		Link:      rec.Link,
		IsFraud:   rec.IsFraud,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (s *URLService) recordBusiness(name string, value float64, labels map[string]string) {
	if s.recorder != nil {
		s.recorder.RecordBusiness(name, value, labels)
	}
}
