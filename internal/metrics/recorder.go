package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"linkguard/internal/config"
)

// Copier is the part of *pgxpool.Pool the recorder writes through.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Recorder buffers metrics in memory and bulk-copies them into postgres,
// either when FlushThreshold rows are pending or every FlushInterval.
// Metrics offered while a buffer is full are dropped.
type Recorder struct {
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *sink[HTTPMetric]
	business     *sink[BusinessMetric]
	infra        *sink[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(db Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		logger: logger,
		cfg:    cfg,
		http: newSink(db, cfg.BufferSize, "http_metrics",
			[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
			func(m HTTPMetric) []any {
				return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
			}),
		business: newSink(db, cfg.BufferSize, "business_metrics",
			[]string{"time", "metric_name", "value", "labels"},
			func(m BusinessMetric) []any {
				labelsJSON, _ := json.Marshal(m.Labels)
				return []any{m.Time, m.MetricName, m.Value, labelsJSON}
			}),
		infra: newSink(db, cfg.BufferSize, "infra_metrics",
			[]string{
				"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
				"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
			},
			func(m InfraMetric) []any {
				return []any{
					m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
					m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
				}
			}),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if r.cfg.Enabled {
		r.http.offer(m, r.logger)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.cfg.Enabled {
		return
	}
	r.business.offer(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}, r.logger)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if r.cfg.Enabled {
		r.infra.offer(m, r.logger)
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.http.run(ctx, r, interval)
	go r.business.run(ctx, r, interval)
	go r.infra.run(ctx, r, interval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close flushes whatever is buffered and waits for the writers to exit.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type sink[T any] struct {
	db      Copier
	table   string
	columns []string
	row     func(T) []any
	ch      chan T
}

func newSink[T any](db Copier, size int, table string, columns []string, row func(T) []any) *sink[T] {
	return &sink[T]{
		db:      db,
		table:   table,
		columns: columns,
		row:     row,
		ch:      make(chan T, size),
	}
}

func (s *sink[T]) offer(m T, logger *slog.Logger) {
	select {
	case s.ch <- m:
	default:
		logger.Warn("metrics buffer full, dropping metric", slog.String("table", s.table))
	}
}

func (s *sink[T]) run(ctx context.Context, r *Recorder, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			s.drain(batch, r.logger)
			return
		case <-r.shutdownCh:
			s.drain(batch, r.logger)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				s.write(ctx, batch, r.logger)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.write(ctx, batch, r.logger)
				batch = batch[:0]
			}
		}
	}
}

func (s *sink[T]) drain(batch []T, logger *slog.Logger) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.write(ctx, batch, logger)
				cancel()
			}
			return
		}
	}
}

func (s *sink[T]) write(ctx context.Context, batch []T, logger *slog.Logger) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = s.row(m)
	}

	_, err := s.db.CopyFrom(ctx, pgx.Identifier{s.table}, s.columns, pgx.CopyFromRows(rows))
	if err != nil {
		logger.Error("failed to write metrics batch",
			slog.String("table", s.table),
			slog.String("error", err.Error()))
	}
}
