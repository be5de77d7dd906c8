package service

//go:generate go tool mockery

import (
	"context"

	"linkguard/internal/domain"
)

type Store interface {
	FindByLink(ctx context.Context, link string) (*domain.URLRecord, error)
	FindExistingLinks(ctx context.Context, links []string) ([]string, error)
	Insert(ctx context.Context, rec domain.NewURLRecord) (*domain.URLRecord, error)
	InsertMany(ctx context.Context, recs []domain.NewURLRecord) (domain.InsertResult, error)
	DeleteByID(ctx context.Context, id int64) (*domain.URLRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.URLRecord, error)
}

// Classifier always returns a verdict; failures are handled behind it.
type Classifier interface {
	Classify(ctx context.Context, link string) bool
}

type IDCodec interface {
	Encode(id int64) (string, error)
	Decode(code string) (int64, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

type BatchObserver interface {
	ObserveBatch(size, inserted, conflicts int, failed bool)
	ObserveRejected(invalid, existing int)
}
