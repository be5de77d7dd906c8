package handler

import (
	"context"

	"linkguard/internal/domain"
)

type URLService interface {
	Add(ctx context.Context, raw string) (*domain.AddResult, error)
	Check(ctx context.Context, raw string) (*domain.CheckResult, error)
	Delete(ctx context.Context, id string) (*domain.Entry, error)
	List(ctx context.Context, limit int) ([]domain.Entry, error)
	BulkAdd(ctx context.Context, raws []string) (*domain.BatchResult, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

type HealthChecker interface {
	Health(ctx context.Context) error
}
