package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkguard/internal/classifier"
	"linkguard/internal/config"
	"linkguard/internal/domain"
	"linkguard/internal/service"
	"linkguard/internal/service/mocks"
)

type downPredictor struct{}

func (downPredictor) Predict(context.Context, string) (bool, error) {
	return false, classifier.ErrUnavailable
}

// offlineClassifier behaves like a deployment whose ML service is unreachable.
func offlineClassifier() *classifier.Service {
	return classifier.NewService(
		downPredictor{},
		classifier.NewKeywordHeuristic(classifier.DefaultKeywords),
		nil, nil, discardLogger(),
	)
}

func newPipeline(store service.Store, c service.Classifier, batchSize int) *service.Pipeline {
	return service.NewPipeline(store, c, &config.IngestConfig{BatchSize: batchSize}, nil, nil, nil, discardLogger())
}

func TestBulkIngest_ClassifierOffline(t *testing.T) {
	store := newMemStore()
	p := newPipeline(store, offlineClassifier(), 100)

	res, err := p.BulkIngest(context.Background(),
		[]string{"good.com", "WIN-free-cash.biz", "not a url", "good.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.InsertedCount)
	assert.Equal(t, []string{"not a url"}, res.InvalidInputs)
	assert.Equal(t, 0, res.SkippedExisting)
	assert.Equal(t, 0, res.FailedBatches)
	assert.Equal(t, map[string]bool{
		"https://good.com/":          false,
		"https://win-free-cash.biz/": true,
	}, store.snapshot())
}

func TestBulkIngest_SkipsExisting(t *testing.T) {
	store := newMemStore("https://a.com/")
	p := newPipeline(store, offlineClassifier(), 100)

	res, err := p.BulkIngest(context.Background(), []string{"a.com", "HTTPS://A.COM", "b.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.InsertedCount)
	assert.Equal(t, 1, res.SkippedExisting)
	assert.Empty(t, res.InvalidInputs)
	assert.NotNil(t, res.InvalidInputs)
	assert.Equal(t, 1, store.findExistingCalls)
}

func TestBulkIngest_InvalidKeepsOrderAndDuplicates(t *testing.T) {
	store := newMemStore()
	p := newPipeline(store, offlineClassifier(), 100)

	res, err := p.BulkIngest(context.Background(), []string{"bad", "localhost", "ok.com", "bad", "127.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bad", "localhost", "bad", "127.0.0.1"}, res.InvalidInputs)
	assert.Equal(t, 1, res.InsertedCount)
}

func TestBulkIngest_AllInvalidSkipsStore(t *testing.T) {
	store := mocks.NewMockStore(t)
	c := mocks.NewMockClassifier(t)
	p := newPipeline(store, c, 100)

	res, err := p.BulkIngest(context.Background(), []string{"nope", ""})
	require.NoError(t, err)

	assert.Equal(t, 0, res.InsertedCount)
	assert.Equal(t, []string{"nope", ""}, res.InvalidInputs)
}

func TestBulkIngest_NothingNewSkipsClassifier(t *testing.T) {
	store := newMemStore("https://a.com/", "https://b.com/")
	c := mocks.NewMockClassifier(t)
	p := newPipeline(store, c, 100)

	res, err := p.BulkIngest(context.Background(), []string{"a.com", "b.com"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.InsertedCount)
	assert.Equal(t, 2, res.SkippedExisting)
	assert.Equal(t, 0, store.insertManyCalls)
}

func TestBulkIngest_BatchSizeDoesNotChangeResult(t *testing.T) {
	raws := make([]string, 0, 60)
	for i := range 25 {
		raws = append(raws, fmt.Sprintf("site%d.example.com", i))
		if i%5 == 0 {
			raws = append(raws, fmt.Sprintf("https://SITE%d.example.com/", i))
		}
		if i%7 == 0 {
			raws = append(raws, fmt.Sprintf("free-%d", i))
		}
	}
	seeded := []string{"https://site3.example.com/", "https://site11.example.com/"}

	var want *domain.BatchResult
	var wantRows map[string]bool
	for _, size := range []int{1, 2, 7, 25, 100} {
		t.Run(fmt.Sprintf("batch %d", size), func(t *testing.T) {
			store := newMemStore(seeded...)
			p := newPipeline(store, offlineClassifier(), size)

			res, err := p.BulkIngest(context.Background(), raws)
			require.NoError(t, err)

			assert.Equal(t, (23+size-1)/size, store.insertManyCalls)
			if want == nil {
				want, wantRows = res, store.snapshot()
				return
			}
			assert.Equal(t, want, res)
			assert.Equal(t, wantRows, store.snapshot())
		})
	}
	require.NotNil(t, want)
	assert.Equal(t, 23, want.InsertedCount)
	assert.Equal(t, 2, want.SkippedExisting)
}

func TestBulkIngest_ConcurrentWriterConflict(t *testing.T) {
	store := newMemStore()
	store.beforeInsertMany = func(call int, recs []domain.NewURLRecord) error {
		if call == 1 {
			store.add(recs[1].Link, false)
		}
		return nil
	}
	p := newPipeline(store, offlineClassifier(), 100)

	res, err := p.BulkIngest(context.Background(), []string{"a.com", "b.com", "c.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.InsertedCount)
	assert.Equal(t, 0, res.FailedBatches)
	assert.Len(t, store.snapshot(), 3)
}

func TestBulkIngest_FailedBatchDoesNotAbort(t *testing.T) {
	store := newMemStore()
	store.beforeInsertMany = func(call int, _ []domain.NewURLRecord) error {
		if call == 2 {
			return errors.New("deadlock detected")
		}
		return nil
	}
	p := newPipeline(store, offlineClassifier(), 2)

	res, err := p.BulkIngest(context.Background(), []string{"a.com", "b.com", "c.com", "d.com", "e.com"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.InsertedCount)
	assert.Equal(t, 1, res.FailedBatches)
	assert.Equal(t, 3, store.insertManyCalls)
	assert.NotContains(t, store.snapshot(), "https://c.com/")
	assert.NotContains(t, store.snapshot(), "https://d.com/")
}

func TestBulkIngest_RowFailureKeepsRestOfBatch(t *testing.T) {
	store := newMemStore()
	store.unwritable = map[string]bool{"https://b.com/": true}
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("links_dropped", float64(1), mock.Anything).Return().Once()
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return()
	p := service.NewPipeline(store, offlineClassifier(), &config.IngestConfig{BatchSize: 100}, nil, recorder, nil, discardLogger())

	res, err := p.BulkIngest(context.Background(), []string{"a.com", "b.com", "c.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.InsertedCount)
	assert.Equal(t, 0, res.FailedBatches)
	assert.Equal(t, map[string]bool{
		"https://a.com/": false,
		"https://c.com/": false,
	}, store.snapshot())
}

func TestBulkIngest_OversizedLinkIsInvalid(t *testing.T) {
	store := newMemStore()
	p := newPipeline(store, offlineClassifier(), 100)
	long := "a.com/" + strings.Repeat("x", 3000)

	res, err := p.BulkIngest(context.Background(), []string{"a.com", long, "b.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.InsertedCount)
	assert.Equal(t, []string{long}, res.InvalidInputs)
	assert.Equal(t, 0, res.FailedBatches)
}

func TestBulkIngest_DedupErrorFailsCall(t *testing.T) {
	expectedErr := errors.New("too many connections")

	store := mocks.NewMockStore(t)
	store.EXPECT().FindExistingLinks(mock.Anything, []string{"https://a.com/"}).Return(nil, expectedErr)
	p := newPipeline(store, mocks.NewMockClassifier(t), 100)

	res, err := p.BulkIngest(context.Background(), []string{"a.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, res)
}

func TestBulkIngest_ClassifiesBatchConcurrently(t *testing.T) {
	const size = 4

	var arrived sync.WaitGroup
	arrived.Add(size)
	released := make(chan struct{})
	go func() {
		arrived.Wait()
		close(released)
	}()

	var timedOut atomic.Bool
	c := classifierFunc(func(_ context.Context, link string) bool {
		arrived.Done()
		select {
		case <-released:
		case <-time.After(2 * time.Second):
			timedOut.Store(true)
		}
		return strings.Contains(link, "b")
	})

	var got []domain.NewURLRecord
	store := mocks.NewMockStore(t)
	store.EXPECT().FindExistingLinks(mock.Anything, mock.Anything).Return(nil, nil)
	store.EXPECT().InsertMany(mock.Anything, mock.Anything).
		Run(func(_ context.Context, recs []domain.NewURLRecord) { got = recs }).
		Return(domain.InsertResult{Inserted: make([]domain.URLRecord, size)}, nil).Once()

	p := newPipeline(store, c, size)
	res, err := p.BulkIngest(context.Background(), []string{"a.com", "b.com", "c.com", "bb.com"})
	require.NoError(t, err)

	assert.False(t, timedOut.Load(), "batch members were not classified concurrently")
	assert.Equal(t, size, res.InsertedCount)
	assert.Equal(t, []domain.NewURLRecord{
		{Link: "https://a.com/", IsFraud: false},
		{Link: "https://b.com/", IsFraud: true},
		{Link: "https://c.com/", IsFraud: false},
		{Link: "https://bb.com/", IsFraud: true},
	}, got)
}

func TestBulkIngest_ConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	c := classifierFunc(func(context.Context, string) bool {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return false
	})

	store := newMemStore()
	p := service.NewPipeline(store, c, &config.IngestConfig{BatchSize: 10, ClassifyConcurrency: 2}, nil, nil, nil, discardLogger())

	raws := make([]string, 10)
	for i := range raws {
		raws[i] = fmt.Sprintf("l%d.com", i)
	}
	res, err := p.BulkIngest(context.Background(), raws)
	require.NoError(t, err)

	assert.Equal(t, 10, res.InsertedCount)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestBulkIngest_CancelledContext(t *testing.T) {
	store := newMemStore()
	p := newPipeline(store, offlineClassifier(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.BulkIngest(ctx, []string{"a.com", "b.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
	assert.Equal(t, 0, store.insertManyCalls)
}

func TestBulkIngest_RecordsBusinessMetrics(t *testing.T) {
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("links_flagged", float64(1), mock.Anything).Return().Once()
	recorder.EXPECT().RecordBusiness("links_ingested", float64(2), mock.Anything).Return().Once()
	recorder.EXPECT().RecordBusiness("links_invalid", float64(1), mock.Anything).Return().Once()

	p := service.NewPipeline(newMemStore(), offlineClassifier(), &config.IngestConfig{BatchSize: 100}, nil, recorder, nil, discardLogger())

	_, err := p.BulkIngest(context.Background(), []string{"prize.com", "plain.com", "x"})
	require.NoError(t, err)
}
