package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"linkguard/internal/config"
	"linkguard/internal/domain"
	"linkguard/internal/validation"
)

const defaultBatchSize = 100

// Pipeline ingests lists of raw links. New links are classified and stored
// in fixed-size batches that run one after another; within a batch every
// link is classified concurrently.
type Pipeline struct {
	resolver    *DedupResolver
	store       Store
	classifier  Classifier
	observer    BatchObserver
	recorder    BusinessRecorder
	tracer      trace.Tracer
	logger      *slog.Logger
	batchSize   int
	concurrency int
}

// NewPipeline builds a pipeline. observer, recorder and tracer may be nil.
func NewPipeline(
	store Store,
	classifier Classifier,
	cfg *config.IngestConfig,
	observer BatchObserver,
	recorder BusinessRecorder,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Pipeline {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	concurrency := cfg.ClassifyConcurrency
	if concurrency <= 0 || concurrency > batchSize {
		concurrency = batchSize
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Pipeline{
		resolver:    NewDedupResolver(store),
		store:       store,
		classifier:  classifier,
		observer:    observer,
		recorder:    recorder,
		tracer:      tracer,
		logger:      logger,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

// BulkIngest canonicalizes raws, drops links that are already stored and
// inserts the rest. A batch that fails to insert is logged and counted in
// FailedBatches; later batches still run. Only a failed existence lookup or a
// cancelled context fails the call.
func (p *Pipeline) BulkIngest(ctx context.Context, raws []string) (*domain.BatchResult, error) {
	ctx, span := p.tracer.Start(ctx, "ingest.bulk",
		trace.WithAttributes(attribute.Int("links.raw", len(raws))))
	defer span.End()

	result := &domain.BatchResult{InvalidInputs: []string{}}

	canonicals := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		link, err := validation.Canonicalize(raw)
		if err != nil {
			result.InvalidInputs = append(result.InvalidInputs, raw)
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		canonicals = append(canonicals, link)
	}

	if len(canonicals) == 0 {
		p.observeRejected(len(result.InvalidInputs), 0)
		return result, nil
	}

	partition, err := p.resolver.Resolve(ctx, canonicals)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dedup failed")
		return nil, err
	}
	result.SkippedExisting = len(partition.Existing)
	p.observeRejected(len(result.InvalidInputs), result.SkippedExisting)

	span.SetAttributes(
		attribute.Int("links.valid", len(canonicals)),
		attribute.Int("links.new", len(partition.New)),
	)

	for start, n := 0, 0; start < len(partition.New); start, n = start+p.batchSize, n+1 {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return nil, fmt.Errorf("ingest cancelled after %d batches: %w", n, err)
		}

		batch := partition.New[start:min(start+p.batchSize, len(partition.New))]
		inserted, err := p.ingestBatch(ctx, n, batch)
		if err != nil {
			p.logger.Error("failed to insert batch",
				slog.Int("batch", n),
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()))
			result.FailedBatches++
			continue
		}
		result.InsertedCount += inserted
	}

	span.SetAttributes(
		attribute.Int("links.inserted", result.InsertedCount),
		attribute.Int("batches.failed", result.FailedBatches),
	)
	p.record("links_ingested", float64(result.InsertedCount), "bulk")
	p.record("links_invalid", float64(len(result.InvalidInputs)), "bulk")

	return result, nil
}

func (p *Pipeline) ingestBatch(ctx context.Context, n int, links []string) (int, error) {
	ctx, span := p.tracer.Start(ctx, "ingest.batch", trace.WithAttributes(
		attribute.Int("batch.index", n),
		attribute.Int("batch.size", len(links)),
	))
	defer span.End()

	recs := p.classifyBatch(ctx, links)

	res, err := p.store.InsertMany(ctx, recs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		p.observeBatch(len(links), 0, 0, true)
		return 0, err
	}

	span.SetAttributes(
		attribute.Int("batch.inserted", len(res.Inserted)),
		attribute.Int("batch.conflicts", res.Conflicts),
		attribute.Int("batch.dropped", len(res.Failed)),
	)
	p.observeBatch(len(links), len(res.Inserted), res.Conflicts, false)
	if len(res.Failed) > 0 {
		p.logger.Warn("batch rows dropped",
			slog.Int("batch", n),
			slog.Int("dropped", len(res.Failed)),
			slog.Int("inserted", len(res.Inserted)))
		p.record("links_dropped", float64(len(res.Failed)), "bulk")
	}

	fraud := 0
	for _, rec := range res.Inserted {
		if rec.IsFraud {
			fraud++
		}
	}
	p.record("links_flagged", float64(fraud), "bulk")

	return len(res.Inserted), nil
}

// classifyBatch returns one record per link, in the same order.
func (p *Pipeline) classifyBatch(ctx context.Context, links []string) []domain.NewURLRecord {
	recs := make([]domain.NewURLRecord, len(links))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, link := range links {
		g.Go(func() error {
			recs[i] = domain.NewURLRecord{
				Link:    link,
				IsFraud: p.classifier.Classify(ctx, link),
			}
			return nil
		})
	}
	_ = g.Wait()

	return recs
}

func (p *Pipeline) observeBatch(size, inserted, conflicts int, failed bool) {
	if p.observer != nil {
		p.observer.ObserveBatch(size, inserted, conflicts, failed)
	}
}

func (p *Pipeline) observeRejected(invalid, existing int) {
	if p.observer != nil {
		p.observer.ObserveRejected(invalid, existing)
	}
}

func (p *Pipeline) record(name string, value float64, path string) {
	if p.recorder != nil {
		p.recorder.RecordBusiness(name, value, map[string]string{"path": path, "batch_size": strconv.Itoa(p.batchSize)})
	}
}
