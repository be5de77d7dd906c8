package service_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"linkguard/internal/domain"
)

// memStore is an in-memory Store with a unique link constraint.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	clock  time.Time
	rows   map[string]domain.URLRecord

	findExistingCalls int
	insertManyCalls   int

	// beforeInsertMany runs without the lock held, before each InsertMany.
	beforeInsertMany func(call int, recs []domain.NewURLRecord) error

	// unwritable links fail on their own inside InsertMany.
	unwritable map[string]bool
}

func newMemStore(links ...string) *memStore {
	s := &memStore{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		rows:  map[string]domain.URLRecord{},
	}
	for _, link := range links {
		s.insertLocked(domain.NewURLRecord{Link: link})
	}
	return s
}

func (s *memStore) insertLocked(rec domain.NewURLRecord) domain.URLRecord {
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	row := domain.URLRecord{ID: s.nextID, Link: rec.Link, IsFraud: rec.IsFraud, CreatedAt: s.clock}
	s.rows[rec.Link] = row
	return row
}

func (s *memStore) FindByLink(_ context.Context, link string) (*domain.URLRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[link]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (s *memStore) FindExistingLinks(_ context.Context, links []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findExistingCalls++
	var out []string
	for _, link := range links {
		if _, ok := s.rows[link]; ok {
			out = append(out, link)
		}
	}
	return out, nil
}

func (s *memStore) Insert(_ context.Context, rec domain.NewURLRecord) (*domain.URLRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[rec.Link]; ok {
		return nil, domain.ErrDuplicateLink
	}
	row := s.insertLocked(rec)
	return &row, nil
}

func (s *memStore) InsertMany(_ context.Context, recs []domain.NewURLRecord) (domain.InsertResult, error) {
	s.mu.Lock()
	s.insertManyCalls++
	call := s.insertManyCalls
	s.mu.Unlock()

	if s.beforeInsertMany != nil {
		if err := s.beforeInsertMany(call, recs); err != nil {
			return domain.InsertResult{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var res domain.InsertResult
	for _, rec := range recs {
		if s.unwritable[rec.Link] {
			res.Failed = append(res.Failed, rec.Link)
			continue
		}
		if _, ok := s.rows[rec.Link]; ok {
			res.Conflicts++
			continue
		}
		res.Inserted = append(res.Inserted, s.insertLocked(rec))
	}
	return res, nil
}

func (s *memStore) DeleteByID(_ context.Context, id int64) (*domain.URLRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for link, row := range s.rows {
		if row.ID == id {
			delete(s.rows, link)
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) ListRecent(_ context.Context, limit int) ([]domain.URLRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.URLRecord, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b domain.URLRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out[:min(limit, len(out))], nil
}

func (s *memStore) add(link string, isFraud bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(domain.NewURLRecord{Link: link, IsFraud: isFraud})
}

// snapshot returns link -> isFraud for every stored row.
func (s *memStore) snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.rows))
	for link, row := range s.rows {
		out[link] = row.IsFraud
	}
	return out
}

type classifierFunc func(ctx context.Context, link string) bool

func (f classifierFunc) Classify(ctx context.Context, link string) bool {
	return f(ctx, link)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
